package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

const sampleDoc = `{
	"name": "midnight",
	"type": "dark",
	"colors": {
		"editor.background": "C_11_02",
		"activityBar.border": "C_01_05",
		"badge.background": "C_02_07"
	},
	"tokenColors": [
		{"name": "Comments", "scope": "comment", "settings": {"foreground": "C_01_30"}},
		{"scope": "keyword.control", "settings": {"foreground": "C_02_40"}}
	],
	"semanticHighlighting": true
}`

func TestParsePreservesDocumentOrder(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	be.NilErr(t, err)

	be.Equal(t, "editor.background,activityBar.border,badge.background",
		strings.Join(doc.Properties(), ","))
	be.Equal(t, "comment,keyword.control", strings.Join(doc.Scopes(), ","))
}

func TestMarshalStableBytes(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	be.NilErr(t, err)

	// Top-level keys keep template order; colors sort by property,
	// tokenColors by scope, and the token names drop away.
	want := `{"name":"midnight","type":"dark",` +
		`"colors":{"activityBar.border":"C_01_05","badge.background":"C_02_07","editor.background":"C_11_02"},` +
		`"tokenColors":[{"scope":"comment","settings":{"foreground":"C_01_30"}},` +
		`{"scope":"keyword.control","settings":{"foreground":"C_02_40"}}],` +
		`"semanticHighlighting":true}`

	got, err := json.Marshal(doc)
	be.NilErr(t, err)
	be.Equal(t, want, string(got))
}

func TestParseFlattensArrayScopes(t *testing.T) {
	doc, err := Parse([]byte(`{
		"colors": {},
		"tokenColors": [
			{"scope": ["string.template", "string.quoted"], "settings": {"foreground": "#ffffff"}}
		]
	}`))
	be.NilErr(t, err)

	be.Equal(t, "string.template,string.quoted", strings.Join(doc.Scopes(), ","))
	for _, e := range doc.TokenColors {
		be.Equal(t, "#ffffff", e.Foreground)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"missing tokenColors", `{"colors": {}}`, "tokenColors"},
		{"missing colors", `{"tokenColors": []}`, "colors"},
		{"top-level array", `[]`, "object"},
		{"duplicate key", `{"colors": {}, "tokenColors": [], "colors": {}}`, "duplicate key"},
		{
			"duplicate property",
			`{"colors": {"a.b": "x", "a.b": "y"}, "tokenColors": []}`,
			"duplicate property",
		},
		{
			"numeric scope",
			`{"colors": {}, "tokenColors": [{"scope": 3, "settings": {"foreground": "#fff"}}]}`,
			"string or string array",
		},
		{
			"scopeless record",
			`{"colors": {}, "tokenColors": [{"settings": {"foreground": "#fff"}}]}`,
			"without a scope",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			be.Nonzero(t, err)
			be.True(t, strings.Contains(err.Error(), tt.want))
		})
	}
}

func TestSetColors(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	be.NilErr(t, err)

	doc.SetColors(map[string]string{
		"editor.background":  "#0c0c0c",
		"activityBar.border": "#112233aa",
	})

	got, ok := doc.Color("editor.background")
	be.True(t, ok)
	be.Equal(t, "#0c0c0c", got)

	// Untouched properties keep their template value.
	got, ok = doc.Color("badge.background")
	be.True(t, ok)
	be.Equal(t, "C_02_07", got)

	_, ok = doc.Color("no.such.property")
	be.False(t, ok)
}

func TestSetTokenColors(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	be.NilErr(t, err)

	doc.SetTokenColors(map[string]string{"comment": "#445566"})

	be.Equal(t, "#445566", doc.TokenColors[0].Foreground)
	be.Equal(t, "C_02_40", doc.TokenColors[1].Foreground)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	be.NilErr(t, err)

	path := filepath.Join(t.TempDir(), "midnight-color-theme.json")
	be.NilErr(t, doc.Save(path))

	raw, err := os.ReadFile(path)
	be.NilErr(t, err)
	be.True(t, strings.HasPrefix(string(raw), "{\n    \""))
	be.True(t, strings.HasSuffix(string(raw), "\n}\n"))

	loaded, err := Load(path)
	be.NilErr(t, err)

	first, err := json.Marshal(doc)
	be.NilErr(t, err)
	second, err := json.Marshal(loaded)
	be.NilErr(t, err)
	be.Equal(t, string(first), string(second))
}

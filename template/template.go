// Package template loads and writes editor color theme documents. A
// theme document is JSON with a "colors" object mapping workbench
// properties to values, a "tokenColors" array of syntax highlighting
// records, and any number of other top-level keys that generation
// passes through untouched.
package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Entry is one workbench color record.
type Entry struct {
	Property string
	Value    string
}

// TokenEntry is one syntax highlighting record. A source record whose
// scope is an array flattens to one entry per scope at load; only the
// foreground survives, since generation rebuilds every record from
// scope and foreground alone.
type TokenEntry struct {
	Scope      string
	Foreground string
}

// Document is a theme template: the ordered colors and token records
// plus the remaining top-level keys, kept verbatim.
type Document struct {
	Colors      []Entry
	TokenColors []TokenEntry

	keys   []string
	extras map[string]json.RawMessage
}

// Load reads and parses a theme document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a theme document. The order of top-level keys and of
// the colors object is preserved, because resolution walks colors in
// document order. Both the "colors" and "tokenColors" sections must be
// present.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("template: want a JSON object, got %v", tok)
	}

	doc := &Document{extras: make(map[string]json.RawMessage)}
	var haveColors, haveTokens bool
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("template: %w", err)
		}
		key := keyTok.(string)
		for _, k := range doc.keys {
			if k == key {
				return nil, fmt.Errorf("template: duplicate key %q", key)
			}
		}
		doc.keys = append(doc.keys, key)

		switch key {
		case "colors":
			entries, err := parseColors(dec)
			if err != nil {
				return nil, err
			}
			doc.Colors = entries
			haveColors = true
		case "tokenColors":
			var records []tokenJSON
			if err := dec.Decode(&records); err != nil {
				return nil, fmt.Errorf("template: tokenColors: %w", err)
			}
			for _, r := range records {
				scopes, err := r.scopes()
				if err != nil {
					return nil, err
				}
				for _, s := range scopes {
					doc.TokenColors = append(doc.TokenColors, TokenEntry{
						Scope:      s,
						Foreground: r.Settings.Foreground,
					})
				}
			}
			haveTokens = true
		default:
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("template: %s: %w", key, err)
			}
			doc.extras[key] = raw
		}
	}
	if !haveColors {
		return nil, fmt.Errorf("template: missing colors section")
	}
	if !haveTokens {
		return nil, fmt.Errorf("template: missing tokenColors section")
	}
	return doc, nil
}

func parseColors(dec *json.Decoder) ([]Entry, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("template: colors: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("template: colors: want an object, got %v", tok)
	}
	var entries []Entry
	seen := make(map[string]bool)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("template: colors: %w", err)
		}
		property := keyTok.(string)
		if seen[property] {
			return nil, fmt.Errorf("template: colors: duplicate property %q", property)
		}
		seen[property] = true
		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("template: colors: %s: %w", property, err)
		}
		entries = append(entries, Entry{Property: property, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("template: colors: %w", err)
	}
	return entries, nil
}

type tokenJSON struct {
	Scope    json.RawMessage `json:"scope"`
	Settings struct {
		Foreground string `json:"foreground"`
	} `json:"settings"`
}

// scopes normalizes the scope field, which may be a single string or an
// array of strings.
func (t tokenJSON) scopes() ([]string, error) {
	if len(t.Scope) == 0 {
		return nil, fmt.Errorf("template: tokenColors record without a scope")
	}
	var single string
	if err := json.Unmarshal(t.Scope, &single); err == nil {
		return []string{single}, nil
	}
	var many []string
	if err := json.Unmarshal(t.Scope, &many); err == nil {
		return many, nil
	}
	return nil, fmt.Errorf("template: scope must be a string or string array, got %s", t.Scope)
}

// MarshalJSON writes the document with its original top-level key
// order. The colors object comes out sorted by property and
// tokenColors sorted by scope, so two runs with the same resolution
// produce identical bytes.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		var vb []byte
		switch key {
		case "colors":
			vb, err = marshalColors(d.Colors)
		case "tokenColors":
			vb, err = marshalTokenColors(d.TokenColors)
		default:
			vb = d.extras[key]
		}
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalColors(entries []Entry) ([]byte, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Property < sorted[j].Property })
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range sorted {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(e.Property)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalTokenColors(entries []TokenEntry) ([]byte, error) {
	sorted := make([]TokenEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Scope < sorted[j].Scope })
	type settings struct {
		Foreground string `json:"foreground"`
	}
	type record struct {
		Scope    string   `json:"scope"`
		Settings settings `json:"settings"`
	}
	records := make([]record, 0, len(sorted))
	for _, e := range sorted {
		records = append(records, record{Scope: e.Scope, Settings: settings{Foreground: e.Foreground}})
	}
	return json.Marshal(records)
}

// Save writes the document to path with 4-space indentation.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

// Properties returns the color property names in document order.
func (d *Document) Properties() []string {
	out := make([]string, 0, len(d.Colors))
	for _, e := range d.Colors {
		out = append(out, e.Property)
	}
	return out
}

// Scopes returns the token scopes in document order.
func (d *Document) Scopes() []string {
	out := make([]string, 0, len(d.TokenColors))
	for _, e := range d.TokenColors {
		out = append(out, e.Scope)
	}
	return out
}

// Color reports the current value of one property.
func (d *Document) Color(property string) (string, bool) {
	for _, e := range d.Colors {
		if e.Property == property {
			return e.Value, true
		}
	}
	return "", false
}

// SetColors replaces the value of every property present in colors.
// Properties missing from the map keep their current value.
func (d *Document) SetColors(colors map[string]string) {
	for i := range d.Colors {
		if v, ok := colors[d.Colors[i].Property]; ok {
			d.Colors[i].Value = v
		}
	}
}

// SetTokenColors replaces the foreground of every scope present in
// colors. Scopes missing from the map keep their current foreground.
func (d *Document) SetTokenColors(colors map[string]string) {
	for i := range d.TokenColors {
		if v, ok := colors[d.TokenColors[i].Scope]; ok {
			d.TokenColors[i].Foreground = v
		}
	}
}

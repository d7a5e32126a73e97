package rules

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

func newTestEngine(t *testing.T, doc string, seed int64) *Engine {
	t.Helper()
	d, err := Parse([]byte(doc))
	be.NilErr(t, err)
	return NewEngine(d, d.Settings(nil), rand.New(rand.NewSource(seed)))
}

func TestResolveDefaultAreaPrecedence(t *testing.T) {
	// The background-area rule matches more specifically (dotted suffix
	// beats dotted prefix), but any default-area match eclipses it.
	eng := newTestEngine(t, `{
		"background": [
			{"groups": ["background"], "color": {"basic_range": [8, 9], "light_range": [1, 2]}}
		],
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}},
			{"groups": ["activityBar"], "color": {"basic_range": [3, 4], "light_range": [10, 11]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}}
		]
	}`, 1)

	got, err := eng.Resolve("activityBar.background")
	be.NilErr(t, err)
	be.Equal(t, "C_03_10", got)
}

func TestResolvePropertyAreaSkipped(t *testing.T) {
	// The background area would match by prefix, but the property name
	// never mentions "background", so only the editor area is consulted.
	eng := newTestEngine(t, `{
		"background": [
			{"groups": ["activityBar"], "color": {"basic_range": [8, 9], "light_range": [1, 2]}}
		],
		"editor": [
			{"groups": ["activityBar"], "color": {"basic_range": [5, 6], "light_range": [20, 21]}}
		],
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}}
		]
	}`, 1)

	got, err := eng.Resolve("activityBar.border")
	be.NilErr(t, err)
	be.Equal(t, "C_05_20", got)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	eng := newTestEngine(t, minimalDoc, 1)

	got, err := eng.Resolve("widget.shadow")
	be.NilErr(t, err)
	be.Equal(t, "C_11_02", got)

	// The fallback books the default group as used.
	be.Equal(t, "default", strings.Join(eng.UsedGroups(), ","))
}

func TestResolveRepeatDiscardsNonDefaultMatch(t *testing.T) {
	// A wide range would almost surely draw a different value on the
	// second call; the stored color must survive anyway.
	eng := newTestEngine(t, `{
		"editor": [
			{"groups": ["editor"], "color": {"basic_range": [1, 8], "light_range": [1, 60]}}
		],
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}}
		]
	}`, 7)

	first, err := eng.Resolve("editor.lineHighlight")
	be.NilErr(t, err)
	second, err := eng.Resolve("editor.lineHighlight")
	be.NilErr(t, err)
	be.Equal(t, first, second)
}

func TestResolveRepeatDefaultMatchRefinesAlpha(t *testing.T) {
	// A named default-area rule refines the alpha component on repeat
	// resolution and leaves the rest of the value alone.
	eng := newTestEngine(t, `{
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}},
			{
				"groups": ["panel"],
				"color": {"basic_range": [1, 2], "light_range": [5, 6], "alpha_range": ["0x10", "0x20"]}
			}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}}
		]
	}`, 11)

	first, err := eng.Resolve("panel.border")
	be.NilErr(t, err)
	second, err := eng.Resolve("panel.border")
	be.NilErr(t, err)

	be.Equal(t, "C_01_05", ParseColor(first).Head())
	be.Equal(t, "C_01_05", ParseColor(second).Head())
	be.Equal(t, 2, len(ParseColor(second).Alpha()))
}

func TestResolveCustomizedPropertyFrozen(t *testing.T) {
	// A group spelled exactly like the property freezes it after the
	// first resolution.
	eng := newTestEngine(t, `{
		"status": [
			{"groups": ["statusBar.border"], "color": {"basic_range": [1, 8], "light_range": [1, 60]}}
		],
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}}
		]
	}`, 3)

	first, err := eng.Resolve("statusBar.border")
	be.NilErr(t, err)
	second, err := eng.Resolve("statusBar.border")
	be.NilErr(t, err)
	be.Equal(t, first, second)
}

func TestResolveTokenAreaWinFallsBackToDefault(t *testing.T) {
	// A token rule can out-match every workbench rule for a property,
	// but token rules color scopes; the property falls back to the
	// default instead of staying unset.
	eng := newTestEngine(t, `{
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}},
			{"groups": ["comment"], "color": {"basic_range": [2, 3], "light_range": [40, 41]}}
		]
	}`, 5)

	got, err := eng.Resolve("editorCommentsWidget.border")
	be.NilErr(t, err)
	be.Equal(t, "C_11_02", got)
}

func TestResolveToken(t *testing.T) {
	eng := newTestEngine(t, `{
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}},
			{"groups": ["comment"], "color": {"basic_range": [2, 3], "light_range": [40, 41]}}
		]
	}`, 9)

	got, err := eng.ResolveToken("comment.line.double-slash")
	be.NilErr(t, err)
	be.Equal(t, "C_02_40", got)

	fallback, err := eng.ResolveToken("entity.name.function")
	be.NilErr(t, err)
	be.Equal(t, "C_01_30", fallback)

	// Scope resolution never writes into the property map.
	be.Equal(t, 0, len(eng.Colors()))
}

func TestResolveTokenIgnoresWorkbenchAreas(t *testing.T) {
	// Only token-area rules apply to scopes, even when another area
	// matches more specifically.
	eng := newTestEngine(t, `{
		"commentctl": [
			{"groups": ["comment.line"], "color": {"basic_range": [7, 8], "light_range": [1, 2]}}
		],
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}},
			{"groups": ["comment"], "color": {"basic_range": [2, 3], "light_range": [40, 41]}}
		]
	}`, 9)

	got, err := eng.ResolveToken("comment.line")
	be.NilErr(t, err)
	be.Equal(t, "C_02_40", got)
}

func TestResolveDecorationGroupsShareBasicSpan(t *testing.T) {
	eng := newTestEngine(t, `{
		"editor": [
			{"groups": ["decoration", "badge"], "color": {"basic_range": [1, 2], "light_range": [7, 8]}}
		],
		"scrollbar": [
			{"groups": ["scrollbarSlider", "decoration"], "color": {"basic_range": [5, 6], "light_range": [7, 8]}}
		],
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}}
		],
		"options": {
			"random_decoration_color": true,
			"random_decoration_color_basic_range": [3, 3]
		}
	}`, 2)

	badge, err := eng.Resolve("innerBadge.count")
	be.NilErr(t, err)
	slider, err := eng.Resolve("scrollbarSlider.active")
	be.NilErr(t, err)

	// Both rules configured different basic ranges, but decoration
	// groups draw from one shared span per run.
	be.Equal(t, "C_03_07", badge)
	be.Equal(t, "C_03_07", slider)
}

func TestResolveInvalidColorSurfaces(t *testing.T) {
	eng := newTestEngine(t, `{
		"editor": [
			{"groups": ["editor"], "color": {}}
		],
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}}
		]
	}`, 1)

	_, err := eng.Resolve("editor.selectionBackground")
	be.True(t, errors.Is(err, ErrInvalidColorConfig))
}

func TestResolveSeedDeterminism(t *testing.T) {
	doc := `{
		"editor": [
			{"groups": ["editor"], "color": {"basic_range": [1, 8], "light_range": [10, 50]}}
		],
		"status": [
			{"groups": ["status"], "color": {"hex": "#223344", "alpha_range": ["0x10", "0x60"]}}
		],
		"default": [
			{"groups": ["default"], "color": {"basic_range": [1, 8], "light_range": [1, 60], "alpha_range": ["0x20", "0x80"]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 8], "light_range": [1, 60]}}
		]
	}`
	properties := []string{"editor.foo", "statusLine.left", "editorWidget.resize", "tab.activeBorder"}
	scopes := []string{"comment.line", "keyword.control", "string.quoted"}

	run := func(seed int64) string {
		eng := newTestEngine(t, doc, seed)
		var out []string
		for _, p := range properties {
			v, err := eng.Resolve(p)
			be.NilErr(t, err)
			out = append(out, p+"="+v)
		}
		for _, s := range scopes {
			v, err := eng.ResolveToken(s)
			be.NilErr(t, err)
			out = append(out, s+"="+v)
		}
		return strings.Join(out, ",")
	}

	be.Equal(t, run(42), run(42))
}

func TestResolveUsedGroupsOrder(t *testing.T) {
	eng := newTestEngine(t, `{
		"editor": [
			{"groups": ["editor"], "color": {"basic_range": [1, 2], "light_range": [1, 2]}},
			{"groups": ["minimap"], "color": {"basic_range": [1, 2], "light_range": [1, 2]}}
		],
		"default": [
			{"groups": ["default"], "color": {"basic_range": [11, 12], "light_range": [2, 3]}}
		],
		"token": [
			{"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [30, 31]}}
		]
	}`, 1)

	for _, p := range []string{"minimap.background", "editor.foreground", "minimap.border", "unmatched.thing"} {
		_, err := eng.Resolve(p)
		be.NilErr(t, err)
	}

	be.Equal(t, "minimap,editor,default", strings.Join(eng.UsedGroups(), ","))
}

func TestEngineAccessors(t *testing.T) {
	eng := newTestEngine(t, minimalDoc, 1)

	_, err := eng.Resolve("b.prop")
	be.NilErr(t, err)
	_, err = eng.Resolve("a.prop")
	be.NilErr(t, err)

	be.Equal(t, "a.prop,b.prop", strings.Join(eng.Properties(), ","))

	// Colors returns a copy.
	snapshot := eng.Colors()
	snapshot["a.prop"] = "tampered"
	be.Equal(t, "C_11_02", eng.Colors()["a.prop"])
}

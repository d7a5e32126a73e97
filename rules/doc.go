package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Rule maps a set of group patterns to a color spec inside one area.
type Rule struct {
	// Groups holds the patterns in document order.
	Groups []string
	// Spec is the color the rule resolves to.
	Spec ColorSpec
	// Replace lists the components the rule may refine on an already
	// resolved value.
	Replace ComponentSet
	// Enabled rules participate in matching; disabled ones are kept for
	// reporting only.
	Enabled bool

	patterns []pattern
}

// Area is one named rule list of the document. The name doubles as the
// area's role: "default" rules override other matches, "token" rules
// color syntax scopes, and the property areas "background" and
// "foreground" only apply to properties naming them.
type Area struct {
	Name  string
	Rules []*Rule
}

// Document is a parsed rule document: the areas in file order plus the
// generation options and theme presets.
type Document struct {
	Areas   []Area
	Options Options
	Themes  []ThemeSpec

	defaultRule      *Rule
	tokenDefaultRule *Rule
	decorationGroups map[string]bool
}

// ruleJSON is the wire form of a rule.
type ruleJSON struct {
	Groups                []string  `json:"groups"`
	Color                 ColorSpec `json:"color"`
	ReplaceColorComponent []string  `json:"replace_color_component"`
	Enabled               *bool     `json:"enabled"`
}

// Load reads and parses a rule document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a rule document. Every top-level key except "options"
// and "themes" is an area; area order is preserved because it breaks
// ties during resolution. The document must contain a default-area rule
// with a "default" group and a token-area rule with the single group
// "token_default".
func Parse(data []byte) (*Document, error) {
	doc := &Document{decorationGroups: make(map[string]bool)}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode document: want object, got %v", tok)
	}

	seen := make(map[string]bool)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode document: bad key %v", keyTok)
		}
		if seen[key] {
			return nil, fmt.Errorf("decode document: duplicate key %q makes area order ambiguous", key)
		}
		seen[key] = true

		switch key {
		case "options":
			if err := dec.Decode(&doc.Options); err != nil {
				return nil, fmt.Errorf("decode options: %w", err)
			}
		case "themes":
			if err := dec.Decode(&doc.Themes); err != nil {
				return nil, fmt.Errorf("decode themes: %w", err)
			}
		default:
			var raw []ruleJSON
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("decode area %q: %w", key, err)
			}
			area := Area{Name: key, Rules: make([]*Rule, 0, len(raw))}
			for i, rj := range raw {
				r, err := newRule(key, rj)
				if err != nil {
					return nil, fmt.Errorf("area %q rule %d: %w", key, i, err)
				}
				area.Rules = append(area.Rules, r)
			}
			doc.Areas = append(doc.Areas, area)
		}
	}

	if err := doc.resolveDefaults(); err != nil {
		return nil, err
	}
	if err := doc.validateDecorationSpans(); err != nil {
		return nil, err
	}
	doc.collectDecorationGroups()
	return doc, nil
}

// newRule builds a matchable rule. Patterns are sorted longest first so
// more specific patterns win strategy ties; the sort is stable to keep
// document order among equal lengths.
func newRule(area string, rj ruleJSON) (*Rule, error) {
	if len(rj.Groups) == 0 {
		return nil, fmt.Errorf("rule has no groups")
	}
	r := &Rule{
		Groups:  rj.Groups,
		Spec:    rj.Color,
		Enabled: rj.Enabled == nil || *rj.Enabled,
	}

	sorted := make([]string, len(rj.Groups))
	copy(sorted, rj.Groups)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	r.patterns = make([]pattern, len(sorted))
	for i, g := range sorted {
		r.patterns[i] = newPattern(g)
	}

	if rj.ReplaceColorComponent == nil {
		if area == "default" {
			r.Replace = ComponentSet{Alpha}
		} else {
			r.Replace = ComponentSet{All}
		}
	} else {
		r.Replace = make(ComponentSet, 0, len(rj.ReplaceColorComponent))
		for _, name := range rj.ReplaceColorComponent {
			c, err := ParseComponent(name)
			if err != nil {
				return nil, err
			}
			r.Replace = append(r.Replace, c)
		}
	}
	return r, nil
}

// resolveDefaults locates the two mandatory fallback rules.
func (d *Document) resolveDefaults() error {
	for _, area := range d.Areas {
		switch area.Name {
		case "default":
			for _, r := range area.Rules {
				if containsString(r.Groups, "default") {
					d.defaultRule = r
					break
				}
			}
		case "token":
			for _, r := range area.Rules {
				if len(r.Groups) == 1 && r.Groups[0] == "token_default" {
					d.tokenDefaultRule = r
					break
				}
			}
		}
	}
	if d.defaultRule == nil {
		return fmt.Errorf(`%w: no rule with group "default" in area "default"`, ErrMissingDefault)
	}
	if d.tokenDefaultRule == nil {
		return fmt.Errorf(`%w: no rule with the single group "token_default" in area "token"`, ErrMissingDefault)
	}
	return nil
}

// validateDecorationSpans rejects reversed decoration ranges up front.
// Unlike placeholder ranges these are inclusive on both ends, so equal
// bounds are fine.
func (d *Document) validateDecorationSpans() error {
	for _, s := range []Span{
		d.Options.RandomDecorationColorBasicRange,
		d.Options.StaticDecorationColorBasicRange,
	} {
		if s.Present() && s.Max < s.Min {
			return fmt.Errorf("%w: decoration basic range %s", ErrInvalidRange, s)
		}
	}
	return nil
}

// collectDecorationGroups gathers every group of every rule that names
// the "decoration" group. Those groups share one basic span per run.
func (d *Document) collectDecorationGroups() {
	for _, area := range d.Areas {
		for _, r := range area.Rules {
			if !containsString(r.Groups, "decoration") {
				continue
			}
			for _, g := range r.Groups {
				d.decorationGroups[g] = true
			}
		}
	}
}

func containsString(list []string, want string) bool {
	for _, have := range list {
		if have == want {
			return true
		}
	}
	return false
}

// defaultDescriptor is the fallback draw for unmatched properties. It
// replaces the whole value, not just the alpha a matched default rule
// would refine.
func (d *Document) defaultDescriptor() Descriptor {
	return Descriptor{
		Spec:    d.defaultRule.Spec,
		Area:    "default",
		Group:   "default",
		Replace: ComponentSet{All},
	}
}

// tokenDefaultDescriptor is the fallback draw for unmatched token scopes.
func (d *Document) tokenDefaultDescriptor() Descriptor {
	return Descriptor{
		Spec:    d.tokenDefaultRule.Spec,
		Area:    "token",
		Group:   d.tokenDefaultRule.Groups[0],
		Replace: ComponentSet{All},
	}
}

// AllGroups returns every group name configured in any area, including
// disabled rules, sorted and deduplicated.
func (d *Document) AllGroups() []string {
	seen := make(map[string]bool)
	var out []string
	for _, area := range d.Areas {
		for _, r := range area.Rules {
			for _, g := range r.Groups {
				if seen[g] {
					continue
				}
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Theme returns the named theme spec, or nil when not configured.
func (d *Document) Theme(name string) *ThemeSpec {
	for i := range d.Themes {
		if d.Themes[i].Name == name {
			return &d.Themes[i]
		}
	}
	return nil
}

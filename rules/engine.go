package rules

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Engine resolves property names and token scopes to colors against a
// rule document. Resolved property colors accumulate in the engine so
// that later matches refine rather than replace what earlier passes
// produced. An Engine draws from a caller-provided rand source and is
// not safe for concurrent use; independent theme runs get independent
// engines.
type Engine struct {
	doc *Document
	rng *rand.Rand

	decorationSpan Span

	colors         map[string]string
	defaultClaimed map[string]bool
	customized     map[string]bool
	usedGroups     map[string]bool
	usedOrder      []string
}

// NewEngine builds an engine for one generation run. The unified basic
// span for decoration groups is drawn here, once per run: either a
// random single-value span from the configured random range or the
// static range as-is.
func NewEngine(doc *Document, settings Settings, rng *rand.Rand) *Engine {
	e := &Engine{
		doc:            doc,
		rng:            rng,
		colors:         make(map[string]string),
		defaultClaimed: make(map[string]bool),
		customized:     make(map[string]bool),
		usedGroups:     make(map[string]bool),
	}
	if settings.RandomDecorationColor {
		span := settings.RandomDecorationColorBasicRange
		// Both bounds are inclusive for this option.
		n := span.Min + rng.Intn(span.Max-span.Min+1)
		e.decorationSpan = NewSpan(n, n+1)
	} else {
		e.decorationSpan = settings.StaticDecorationColorBasicRange
	}
	return e
}

// scored is one area's best match with its strategy kept for the
// cross-area comparison.
type scored struct {
	desc     Descriptor
	strategy Strategy
}

// areaMatches collects the best match of every eligible area, in
// document order. Property areas are skipped unless the property names
// them; targetArea, when set, restricts the scan to that single area.
func (e *Engine) areaMatches(property, targetArea string) []scored {
	var out []scored
	lower := strings.ToLower(property)
	for _, area := range e.doc.Areas {
		if targetArea != "" && area.Name != targetArea {
			continue
		}
		if isPropertyArea(area.Name) && !strings.Contains(lower, area.Name) {
			continue
		}
		m, ok := matchArea(area.Rules, property)
		if !ok {
			continue
		}
		out = append(out, scored{desc: e.descriptorFor(area.Name, m), strategy: m.strategy})
	}
	return out
}

// descriptorFor turns an area match into a descriptor. Decoration
// groups get the run's unified basic span in place of their own.
func (e *Engine) descriptorFor(area string, m areaMatch) Descriptor {
	spec := m.rule.Spec
	if e.doc.decorationGroups[m.group] && e.decorationSpan.Present() {
		spec.Basic = e.decorationSpan
	}
	return Descriptor{
		Spec:    spec,
		Area:    area,
		Group:   m.group,
		Replace: m.rule.Replace,
	}
}

// bestMatch picks the winning descriptor across areas: default-area
// matches eclipse all others, then the lowest strategy ordinal wins,
// and remaining ties go to the earliest area in document order.
func (e *Engine) bestMatch(property, targetArea string) (Descriptor, bool) {
	matches := e.areaMatches(property, targetArea)
	if len(matches) == 0 {
		return Descriptor{}, false
	}
	var defaults []scored
	for _, m := range matches {
		if m.desc.Area == "default" {
			defaults = append(defaults, m)
		}
	}
	if len(defaults) > 0 {
		matches = defaults
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.strategy < best.strategy {
			best = m
		}
	}
	return best.desc, true
}

// Resolve picks a color for a property and folds it into the engine's
// color map.
//
// A fresh property stores its draw directly. A property that already
// has a color is only touched by default-area or token-area matches:
// those replace the components the rule names, or the whole value when
// the rule replaces ALL or its group equals the property name. A
// property once claimed by a named default rule ignores later
// non-default matches entirely, and a property whose winning group was
// its own name is frozen. Unmatched properties always fall back to the
// document's default color, so Resolve never leaves a property without
// a value.
func (e *Engine) Resolve(property string) (string, error) {
	desc, matched := e.bestMatch(property, "")
	if !matched {
		desc = e.doc.defaultDescriptor()
	}

	old, exists := e.colors[property]
	if exists && e.defaultClaimed[property] && desc.Area != "default" {
		return old, nil
	}
	if desc.Area == "token" && !exists {
		// Token rules color syntax scopes; a property they happen to
		// match still needs a workbench value.
		desc = e.doc.defaultDescriptor()
	}

	candidates, err := desc.Candidates()
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", property, err)
	}
	out := candidates[e.rng.Intn(len(candidates))]

	if exists {
		if e.customized[property] {
			return old, nil
		}
		if desc.Area != "default" && desc.Area != "token" {
			return old, nil
		}
		merged := ParseColor(old)
		incoming := ParseColor(out)
		if desc.Replace.Has(Basic) {
			merged = merged.WithBasicFrom(incoming)
		}
		if desc.Replace.Has(Light) {
			merged = merged.WithLightFrom(incoming)
		}
		if desc.Replace.Has(Alpha) {
			merged = merged.WithAlphaFrom(incoming)
		}
		if !desc.Replace.Has(All) && desc.Group != property {
			out = merged.String()
		}
	}

	if desc.Area == "default" && desc.Group != "default" {
		e.defaultClaimed[property] = true
	}
	if desc.Group == property {
		e.customized[property] = true
	}
	e.markGroupUsed(desc.Group)
	e.colors[property] = out
	return out, nil
}

// ResolveToken picks a foreground for one token scope. Scopes draw
// fresh on every call and never touch the property color map. A scope
// matching rules in more than one area indicates a malformed document;
// area restriction makes that impossible for well-formed ones.
func (e *Engine) ResolveToken(scope string) (string, error) {
	matches := e.areaMatches(scope, "token")
	if len(matches) > 1 {
		return "", fmt.Errorf("%w: scope %q matched %d areas", ErrAmbiguousTokenMatch, scope, len(matches))
	}
	desc := e.doc.tokenDefaultDescriptor()
	if len(matches) == 1 {
		desc = matches[0].desc
	}
	candidates, err := desc.Candidates()
	if err != nil {
		return "", fmt.Errorf("resolve token %s: %w", scope, err)
	}
	e.markGroupUsed(desc.Group)
	return candidates[e.rng.Intn(len(candidates))], nil
}

func (e *Engine) markGroupUsed(group string) {
	if e.usedGroups[group] {
		return
	}
	e.usedGroups[group] = true
	e.usedOrder = append(e.usedOrder, group)
}

// Colors returns a copy of the resolved property colors.
func (e *Engine) Colors() map[string]string {
	out := make(map[string]string, len(e.colors))
	for k, v := range e.colors {
		out[k] = v
	}
	return out
}

// Properties returns the resolved property names in sorted order.
func (e *Engine) Properties() []string {
	out := make([]string, 0, len(e.colors))
	for k := range e.colors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// UsedGroups returns every group that resolved a property or scope, in
// first-use order.
func (e *Engine) UsedGroups() []string {
	out := make([]string, len(e.usedOrder))
	copy(out, e.usedOrder)
	return out
}

package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Strategy orders the ways a group pattern can match a property name,
// from most to least specific. Lower values win.
type Strategy int

const (
	// Exact matches the whole name, ignoring case.
	Exact Strategy = iota + 1
	// EndsWith matches "<...>.<pattern>".
	EndsWith
	// StartsWith matches "<pattern>.<...>".
	StartsWith
	// Contains matches the pattern anywhere in the name.
	Contains
	// Fuzzy treats the pattern as a regular expression anchored at the
	// start of the name.
	Fuzzy
)

var strategies = []Strategy{Exact, EndsWith, StartsWith, Contains, Fuzzy}

func (s Strategy) String() string {
	switch s {
	case Exact:
		return "exact"
	case EndsWith:
		return "endswith"
	case StartsWith:
		return "startswith"
	case Contains:
		return "contains"
	case Fuzzy:
		return "fuzzy"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// pattern is one group entry of a rule, precompiled for matching. A
// pattern whose text is not a valid regular expression never matches
// fuzzily but still participates in the string strategies.
type pattern struct {
	text  string
	lower string
	expr  *regexp.Regexp
}

func newPattern(text string) pattern {
	p := pattern{text: text, lower: strings.ToLower(text)}
	if expr, err := regexp.Compile("(?i)^(?:" + text + ")"); err == nil {
		p.expr = expr
	}
	return p
}

func (p pattern) matches(s Strategy, property, lowerProperty string) bool {
	switch s {
	case Exact:
		return lowerProperty == p.lower
	case EndsWith:
		return strings.HasSuffix(lowerProperty, "."+p.lower)
	case StartsWith:
		return strings.HasPrefix(lowerProperty, p.lower+".")
	case Contains:
		return strings.Contains(lowerProperty, p.lower)
	case Fuzzy:
		return p.expr != nil && p.expr.MatchString(property)
	}
	return false
}

// matchPatterns returns the winning pattern and strategy for one rule.
// Strategies are tried in order; within a strategy the patterns are
// already sorted longest first, so more specific patterns win ties.
func matchPatterns(patterns []pattern, property string) (pattern, Strategy, bool) {
	lower := strings.ToLower(property)
	for _, strategy := range strategies {
		for _, p := range patterns {
			if p.matches(strategy, property, lower) {
				return p, strategy, true
			}
		}
	}
	return pattern{}, 0, false
}

// areaMatch is the best rule match found inside one area.
type areaMatch struct {
	rule     *Rule
	group    string
	strategy Strategy
}

// matchArea returns the best enabled rule match in an area. Lower
// strategy ordinals win; on ties the earlier rule in document order is
// kept.
func matchArea(areaRules []*Rule, property string) (areaMatch, bool) {
	var best areaMatch
	found := false
	for _, r := range areaRules {
		if !r.Enabled {
			continue
		}
		p, strategy, ok := matchPatterns(r.patterns, property)
		if !ok {
			continue
		}
		if !found || strategy < best.strategy {
			best = areaMatch{rule: r, group: p.text, strategy: strategy}
			found = true
		}
	}
	return best, found
}

// isPropertyArea reports whether the area only applies to properties
// whose name mentions it.
func isPropertyArea(area string) bool {
	return area == "background" || area == "foreground"
}

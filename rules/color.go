package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Component identifies one replaceable part of a color value.
type Component int

const (
	// Basic is the color family digits of a placeholder.
	Basic Component = iota + 1
	// Light is the gradation digits of a placeholder.
	Light
	// Alpha is the two-digit hex opacity suffix.
	Alpha
	// All stands for the whole value.
	All
)

var componentNames = map[string]Component{
	"BASIC": Basic,
	"LIGHT": Light,
	"ALPHA": Alpha,
	"ALL":   All,
}

func (c Component) String() string {
	switch c {
	case Basic:
		return "BASIC"
	case Light:
		return "LIGHT"
	case Alpha:
		return "ALPHA"
	case All:
		return "ALL"
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// ParseComponent converts a document name like "ALPHA" to its Component.
func ParseComponent(name string) (Component, error) {
	c, ok := componentNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown color component %q", ErrInvalidColorConfig, name)
	}
	return c, nil
}

// ComponentSet is the list of components a rule replaces when it refines
// an already resolved color.
type ComponentSet []Component

// Has reports whether the set contains c.
func (s ComponentSet) Has(c Component) bool {
	for _, have := range s {
		if have == c {
			return true
		}
	}
	return false
}

func (s ComponentSet) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

var placeholderPattern = regexp.MustCompile(`^C_[0-9a-zA-Z]{2}_[0-9a-zA-Z]{2}`)

// Color is one resolved color value in either of its two forms: a
// palette placeholder such as "C_01_59" or a literal hex value such as
// "#aabbcc", each optionally followed by a two-digit alpha.
type Color struct {
	literal string
	basic   string
	light   string
	alpha   string
}

// ParseColor splits a raw value into its components. Values that are not
// placeholders are treated as literals; anything past the seventh
// character becomes the alpha suffix, capped at two digits.
func ParseColor(raw string) Color {
	if placeholderPattern.MatchString(raw) {
		c := Color{basic: raw[2:4], light: raw[5:7]}
		c.alpha = clipAlpha(raw)
		return c
	}
	c := Color{literal: raw}
	if len(raw) > 7 {
		c.literal = raw[:7]
		c.alpha = clipAlpha(raw)
	}
	return c
}

func clipAlpha(raw string) string {
	if len(raw) <= 7 {
		return ""
	}
	alpha := raw[7:]
	if len(alpha) > 2 {
		alpha = alpha[:2]
	}
	return alpha
}

// IsPlaceholder reports whether the color still references the palette.
func (c Color) IsPlaceholder() bool { return c.literal == "" }

// Head returns the color without its alpha suffix.
func (c Color) Head() string {
	if !c.IsPlaceholder() {
		return c.literal
	}
	return "C_" + c.basic + "_" + c.light
}

// Alpha returns the alpha suffix, which may be empty.
func (c Color) Alpha() string { return c.alpha }

func (c Color) String() string { return c.Head() + c.alpha }

// WithBasicFrom returns c with the basic digits taken from o. Literal
// colors on either side keep c unchanged: a concrete hex value has no
// basic component to give or take.
func (c Color) WithBasicFrom(o Color) Color {
	if !c.IsPlaceholder() || !o.IsPlaceholder() {
		return c
	}
	c.basic = o.basic
	return c
}

// WithLightFrom returns c with the light digits taken from o, under the
// same placeholder-only constraint as WithBasicFrom.
func (c Color) WithLightFrom(o Color) Color {
	if !c.IsPlaceholder() || !o.IsPlaceholder() {
		return c
	}
	c.light = o.light
	return c
}

// WithAlphaFrom returns c carrying o's alpha suffix. An absent alpha on
// o clears the suffix on c.
func (c Color) WithAlphaFrom(o Color) Color {
	c.alpha = o.alpha
	return c
}

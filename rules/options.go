package rules

// Options is the generation knob block of a rule document. Every field
// is optional; nil fields fall through to the next layer when settings
// are resolved (theme override, then document options, then built-in
// defaults).
type Options struct {
	RandomDecorationColor           *bool `json:"random_decoration_color"`
	RandomDecorationColorBasicRange Span  `json:"random_decoration_color_basic_range"`
	StaticDecorationColorBasicRange Span  `json:"static_decoration_color_basic_range"`

	DiscardDarkRedColor    *bool   `json:"discard_dark_red_color"`
	WorkbenchBaseColorName *string `json:"workbench_base_color_name"`

	TokenColorsTotal           *int     `json:"token_colors_total"`
	TokenColorsGradationsTotal *int     `json:"token_colors_gradations_total"`
	TokenColorsMin             *int     `json:"token_colors_min"`
	TokenColorsMax             *int     `json:"token_colors_max"`
	TokenColorsSaturation      *float64 `json:"token_colors_saturation"`
	TokenColorsLightness       *float64 `json:"token_colors_lightness"`

	WorkbenchColorsTotal           *int     `json:"workbench_colors_total"`
	WorkbenchColorsGradationsTotal *int     `json:"workbench_colors_gradations_total"`
	WorkbenchColorsMin             *int     `json:"workbench_colors_min"`
	WorkbenchColorsMax             *int     `json:"workbench_colors_max"`
	WorkbenchColorsSaturation      *float64 `json:"workbench_colors_saturation"`
	WorkbenchColorsLightness       *float64 `json:"workbench_colors_lightness"`
}

// ThemeSpec is one entry of the themes block: a named preset whose
// option fields override the document options for that theme only.
type ThemeSpec struct {
	Name string `json:"name"`
	Options
}

// Settings is a fully resolved option set with no absent fields.
type Settings struct {
	RandomDecorationColor           bool
	RandomDecorationColorBasicRange Span
	StaticDecorationColorBasicRange Span

	DiscardDarkRedColor    bool
	WorkbenchBaseColorName string

	TokenColorsTotal           int
	TokenColorsGradationsTotal int
	TokenColorsMin             int
	TokenColorsMax             int
	TokenColorsSaturation      float64
	TokenColorsLightness       float64

	WorkbenchColorsTotal           int
	WorkbenchColorsGradationsTotal int
	WorkbenchColorsMin             int
	WorkbenchColorsMax             int
	WorkbenchColorsSaturation      float64
	WorkbenchColorsLightness       float64
}

// defaultSettings returns the built-in generation parameters: seven
// mid-lightness token families and seven near-black workbench families,
// sixty gradations each.
func defaultSettings() Settings {
	return Settings{
		RandomDecorationColorBasicRange: NewSpan(1, 11),
		StaticDecorationColorBasicRange: NewSpan(1, 11),
		WorkbenchBaseColorName:          "BLUE",

		TokenColorsTotal:           7,
		TokenColorsGradationsTotal: 60,
		TokenColorsMin:             120,
		TokenColorsMax:             180,
		TokenColorsSaturation:      0.35,
		TokenColorsLightness:       0.15,

		WorkbenchColorsTotal:           7,
		WorkbenchColorsGradationsTotal: 60,
		WorkbenchColorsMin:             19,
		WorkbenchColorsMax:             20,
		WorkbenchColorsSaturation:      0.2,
		WorkbenchColorsLightness:       0.09,
	}
}

func (s *Settings) apply(o Options) {
	if o.RandomDecorationColor != nil {
		s.RandomDecorationColor = *o.RandomDecorationColor
	}
	if o.RandomDecorationColorBasicRange.Present() {
		s.RandomDecorationColorBasicRange = o.RandomDecorationColorBasicRange
	}
	if o.StaticDecorationColorBasicRange.Present() {
		s.StaticDecorationColorBasicRange = o.StaticDecorationColorBasicRange
	}
	if o.DiscardDarkRedColor != nil {
		s.DiscardDarkRedColor = *o.DiscardDarkRedColor
	}
	if o.WorkbenchBaseColorName != nil {
		s.WorkbenchBaseColorName = *o.WorkbenchBaseColorName
	}
	if o.TokenColorsTotal != nil {
		s.TokenColorsTotal = *o.TokenColorsTotal
	}
	if o.TokenColorsGradationsTotal != nil {
		s.TokenColorsGradationsTotal = *o.TokenColorsGradationsTotal
	}
	if o.TokenColorsMin != nil {
		s.TokenColorsMin = *o.TokenColorsMin
	}
	if o.TokenColorsMax != nil {
		s.TokenColorsMax = *o.TokenColorsMax
	}
	if o.TokenColorsSaturation != nil {
		s.TokenColorsSaturation = *o.TokenColorsSaturation
	}
	if o.TokenColorsLightness != nil {
		s.TokenColorsLightness = *o.TokenColorsLightness
	}
	if o.WorkbenchColorsTotal != nil {
		s.WorkbenchColorsTotal = *o.WorkbenchColorsTotal
	}
	if o.WorkbenchColorsGradationsTotal != nil {
		s.WorkbenchColorsGradationsTotal = *o.WorkbenchColorsGradationsTotal
	}
	if o.WorkbenchColorsMin != nil {
		s.WorkbenchColorsMin = *o.WorkbenchColorsMin
	}
	if o.WorkbenchColorsMax != nil {
		s.WorkbenchColorsMax = *o.WorkbenchColorsMax
	}
	if o.WorkbenchColorsSaturation != nil {
		s.WorkbenchColorsSaturation = *o.WorkbenchColorsSaturation
	}
	if o.WorkbenchColorsLightness != nil {
		s.WorkbenchColorsLightness = *o.WorkbenchColorsLightness
	}
}

// Settings resolves the effective generation parameters for a theme.
// A nil theme resolves the document options against the defaults only.
func (d *Document) Settings(theme *ThemeSpec) Settings {
	s := defaultSettings()
	s.apply(d.Options)
	if theme != nil {
		s.apply(theme.Options)
	}
	return s
}

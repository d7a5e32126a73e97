package rules

import "fmt"

// ColorSpec is the color half of a rule: either a literal hex value or
// the numeric ranges that expand to palette placeholders. A literal wins
// over ranges when both are present.
type ColorSpec struct {
	Hex   string `json:"hex"`
	Basic Span   `json:"basic_range"`
	Light Span   `json:"light_range"`
	Alpha Span   `json:"alpha_range"`
}

func (s ColorSpec) colorRange() ColorRange {
	return ColorRange{Basic: s.Basic, Light: s.Light, Alpha: s.Alpha}
}

// Descriptor couples a color spec with the rule context it matched
// under: the area, the winning group pattern, and the components the
// match may replace on an existing value.
type Descriptor struct {
	Spec    ColorSpec
	Area    string
	Group   string
	Replace ComponentSet
}

// Candidates expands the descriptor into every concrete value it can
// produce. A literal hex still fans out over a valid alpha span; a range
// descriptor expands the full placeholder product. Descriptors with
// neither form fail with ErrInvalidColorConfig.
func (d Descriptor) Candidates() ([]string, error) {
	if d.Spec.Hex != "" {
		tails := alphaTails(d.Spec.Alpha)
		out := make([]string, 0, len(tails))
		for _, tail := range tails {
			out = append(out, d.Spec.Hex+tail)
		}
		return out, nil
	}
	out, err := d.Spec.colorRange().Expand()
	if err != nil {
		return nil, fmt.Errorf("%w: group %q in area %q: %v",
			ErrInvalidColorConfig, d.Group, d.Area, err)
	}
	return out, nil
}

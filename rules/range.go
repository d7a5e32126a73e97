package rules

import "fmt"

// ColorRange expands numeric intervals into palette placeholders of the
// form "C_<basic>_<light>" with an optional two-digit hex alpha suffix.
// Basic selects the color family, light the gradation inside it.
type ColorRange struct {
	Basic Span
	Light Span
	Alpha Span
}

// Valid reports whether the range can produce at least one placeholder.
// Basic and light must both be present and non-empty; alpha is optional
// but must be non-empty when present.
func (r ColorRange) Valid() bool {
	if !r.Basic.Valid() || !r.Light.Valid() {
		return false
	}
	if r.Alpha.Present() && !r.Alpha.Valid() {
		return false
	}
	return true
}

// Expand returns every placeholder the range covers: basic-major, light
// within each basic value, and alpha innermost. The result has
// Basic.Len()*Light.Len() entries, multiplied by Alpha.Len() when an
// alpha span is present.
func (r ColorRange) Expand() ([]string, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: basic %s light %s alpha %s",
			ErrInvalidRange, r.Basic, r.Light, r.Alpha)
	}
	tails := alphaTails(r.Alpha)
	out := make([]string, 0, r.Basic.Len()*r.Light.Len()*len(tails))
	for _, basic := range r.Basic.normalize() {
		for _, light := range r.Light.normalize() {
			for _, tail := range tails {
				out = append(out, "C_"+basic+"_"+light+tail)
			}
		}
	}
	return out, nil
}

// alphaTails returns the alpha suffixes for a span, or the single empty
// suffix when the span is absent or empty.
func alphaTails(s Span) []string {
	if !s.Valid() {
		return []string{""}
	}
	return s.normalizeHex()
}

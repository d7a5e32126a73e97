package rules

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Span is a half-open integer interval [Min, Max). The zero Span is
// absent: it contributes nothing and is distinct from an empty interval
// that was explicitly configured.
type Span struct {
	Min int
	Max int

	set bool
}

// NewSpan returns a present span covering [min, max).
func NewSpan(min, max int) Span {
	return Span{Min: min, Max: max, set: true}
}

// Present reports whether the span was set at all.
func (s Span) Present() bool { return s.set }

// Valid reports whether the span is present and covers at least one value.
func (s Span) Valid() bool { return s.set && s.Min < s.Max }

// Len returns the number of values the span covers.
func (s Span) Len() int {
	if !s.Valid() {
		return 0
	}
	return s.Max - s.Min
}

func (s Span) String() string {
	if !s.set {
		return "[]"
	}
	return fmt.Sprintf("[%d,%d)", s.Min, s.Max)
}

// UnmarshalJSON accepts a two-element array of bounds or an empty array
// for an absent span. Bounds may be numbers, decimal strings, or hex
// strings like "0x99".
func (s *Span) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRange, data)
	}
	switch len(raw) {
	case 0:
		*s = Span{}
		return nil
	case 2:
		minBound, err := parseBound(raw[0])
		if err != nil {
			return err
		}
		maxBound, err := parseBound(raw[1])
		if err != nil {
			return err
		}
		*s = NewSpan(minBound, maxBound)
		return nil
	default:
		return fmt.Errorf("%w: want two bounds, got %d", ErrInvalidRange, len(raw))
	}
}

// parseBound decodes one range endpoint. Strings are decimal unless they
// carry a 0x prefix.
func parseBound(raw json.RawMessage) (int, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, fmt.Errorf("%w: bad bound %s", ErrInvalidRange, raw)
		}
		if strings.HasPrefix(str, "0x") {
			n, err := strconv.ParseInt(str[2:], 16, 32)
			if err != nil {
				return 0, fmt.Errorf("%w: bad hex bound %q", ErrInvalidRange, str)
			}
			return int(n), nil
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			return 0, fmt.Errorf("%w: bad bound %q", ErrInvalidRange, str)
		}
		return n, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: bad bound %s", ErrInvalidRange, raw)
	}
	return n, nil
}

// normalize renders every value in the span as a two-digit decimal
// string, the form placeholder heads are built from.
func (s Span) normalize() []string {
	out := make([]string, 0, s.Len())
	for i := s.Min; i < s.Max; i++ {
		out = append(out, fmt.Sprintf("%02d", i))
	}
	return out
}

// normalizeHex renders every value in the span as two lowercase hex
// digits, the form alpha suffixes use.
func (s Span) normalizeHex() []string {
	out := make([]string, 0, s.Len())
	for i := s.Min; i < s.Max; i++ {
		out = append(out, fmt.Sprintf("%02x", i))
	}
	return out
}

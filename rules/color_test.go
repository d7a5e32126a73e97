package rules

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		placeholder bool
		head        string
		alpha       string
	}{
		{name: "placeholder", raw: "C_01_59", placeholder: true, head: "C_01_59"},
		{name: "placeholder with alpha", raw: "C_11_3499", placeholder: true, head: "C_11_34", alpha: "99"},
		{name: "literal", raw: "#aabbcc", head: "#aabbcc"},
		{name: "literal with alpha", raw: "#aabbccdd", head: "#aabbcc", alpha: "dd"},
		{name: "overlong alpha is clipped", raw: "C_01_0299ff", placeholder: true, head: "C_01_02", alpha: "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseColor(tt.raw)
			be.Equal(t, tt.placeholder, c.IsPlaceholder())
			be.Equal(t, tt.head, c.Head())
			be.Equal(t, tt.alpha, c.Alpha())
		})
	}
}

func TestParseColorRoundTrip(t *testing.T) {
	for _, raw := range []string{"C_01_59", "C_11_3499", "#aabbcc", "#aabbccdd"} {
		be.Equal(t, raw, ParseColor(raw).String())
	}
}

func TestWithAlphaFrom(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		incoming string
		want     string
	}{
		{name: "replace alpha", old: "C_01_2299", incoming: "C_03_44cc", want: "C_01_22cc"},
		{name: "add alpha", old: "C_01_22", incoming: "C_03_44cc", want: "C_01_22cc"},
		{name: "drop alpha", old: "C_01_2299", incoming: "C_03_44", want: "C_01_22"},
		{name: "literal target", old: "#aabbcc99", incoming: "C_03_44cc", want: "#aabbcccc"},
		{name: "literal incoming", old: "C_01_2299", incoming: "#11223344", want: "C_01_2244"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseColor(tt.old).WithAlphaFrom(ParseColor(tt.incoming))
			be.Equal(t, tt.want, got.String())
			// Everything before the alpha suffix is untouched.
			be.Equal(t, ParseColor(tt.old).Head(), got.Head())
		})
	}
}

func TestWithBasicFrom(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		incoming string
		want     string
	}{
		{name: "replace basic", old: "C_01_2299", incoming: "C_03_44cc", want: "C_03_2299"},
		{name: "literal target keeps value", old: "#aabbcc99", incoming: "C_03_44cc", want: "#aabbcc99"},
		{name: "literal incoming keeps value", old: "C_01_2299", incoming: "#11223344", want: "C_01_2299"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseColor(tt.old).WithBasicFrom(ParseColor(tt.incoming))
			be.Equal(t, tt.want, got.String())
		})
	}
}

func TestWithLightFrom(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		incoming string
		want     string
	}{
		{name: "replace light", old: "C_01_2299", incoming: "C_03_44cc", want: "C_01_4499"},
		{name: "literal target keeps value", old: "#aabbcc99", incoming: "C_03_44cc", want: "#aabbcc99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseColor(tt.old).WithLightFrom(ParseColor(tt.incoming))
			be.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseComponent(t *testing.T) {
	for name, want := range componentNames {
		got, err := ParseComponent(name)
		be.NilErr(t, err)
		be.Equal(t, want, got)
	}

	_, err := ParseComponent("BOGUS")
	be.Nonzero(t, err)
}

func TestComponentSetHas(t *testing.T) {
	set := ComponentSet{Basic, Alpha}
	be.True(t, set.Has(Basic))
	be.True(t, set.Has(Alpha))
	be.False(t, set.Has(Light))
	be.False(t, set.Has(All))
	be.False(t, ComponentSet{}.Has(Alpha))
}

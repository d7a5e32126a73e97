package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestDescriptorCandidatesLiteral(t *testing.T) {
	d := Descriptor{Spec: ColorSpec{Hex: "#008000"}}

	got, err := d.Candidates()
	be.NilErr(t, err)
	be.Equal(t, 1, len(got))
	be.Equal(t, "#008000", got[0])
}

func TestDescriptorCandidatesLiteralWithAlpha(t *testing.T) {
	d := Descriptor{Spec: ColorSpec{Hex: "#008000", Alpha: NewSpan(153, 155)}}

	got, err := d.Candidates()
	be.NilErr(t, err)
	be.Equal(t, "#00800099,#0080009a", strings.Join(got, ","))
}

func TestDescriptorCandidatesLiteralBeatsRanges(t *testing.T) {
	d := Descriptor{Spec: ColorSpec{
		Hex:   "#112233",
		Basic: NewSpan(1, 5),
		Light: NewSpan(1, 5),
	}}

	got, err := d.Candidates()
	be.NilErr(t, err)
	be.Equal(t, 1, len(got))
	be.Equal(t, "#112233", got[0])
}

func TestDescriptorCandidatesRange(t *testing.T) {
	d := Descriptor{Spec: ColorSpec{
		Basic: NewSpan(1, 3),
		Light: NewSpan(59, 60),
	}}

	got, err := d.Candidates()
	be.NilErr(t, err)
	be.Equal(t, "C_01_59,C_02_59", strings.Join(got, ","))
}

func TestDescriptorCandidatesInvalid(t *testing.T) {
	tests := []struct {
		name string
		spec ColorSpec
	}{
		{name: "empty spec", spec: ColorSpec{}},
		{name: "basic without light", spec: ColorSpec{Basic: NewSpan(1, 2)}},
		{name: "reversed basic", spec: ColorSpec{Basic: NewSpan(9, 1), Light: NewSpan(1, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Descriptor{Spec: tt.spec, Area: "status", Group: "statusBar"}
			_, err := d.Candidates()
			be.True(t, errors.Is(err, ErrInvalidColorConfig))
		})
	}
}

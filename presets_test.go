package main

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestFindPreset(t *testing.T) {
	p, ok := findPreset("dark-blue")
	be.True(t, ok)
	be.Equal(t, "#000001", p.Base)

	p, ok = findPreset("random-3")
	be.True(t, ok)
	be.Equal(t, "", p.Base)

	_, ok = findPreset("no-such-preset")
	be.False(t, ok)
}

func TestPresetNamesKeepMenuOrder(t *testing.T) {
	names := presetNames()

	be.Equal(t, len(darkPresets), len(names))
	be.Equal(t, "dark-black", names[0])
	be.Equal(t, "random-7", names[len(names)-1])
	for i, p := range darkPresets {
		be.Equal(t, p.Name, names[i])
	}
}

func TestPresetBasesAreHexColors(t *testing.T) {
	for _, p := range darkPresets {
		if p.Base == "" {
			be.True(t, strings.HasPrefix(p.Name, "random-"))
			continue
		}
		be.Equal(t, 7, len(p.Base))
		be.True(t, strings.HasPrefix(p.Base, "#"))
	}
}

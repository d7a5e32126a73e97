package main

// preset is one built-in dark theme: a name plus the base color its
// workbench color families build on. Presets without a base draw random
// dark hues on every run.
type preset struct {
	Name string
	Base string
}

// darkPresets lists the built-in themes in menu order.
var darkPresets = []preset{
	{Name: "dark-black", Base: "#010101"},
	{Name: "dark-red", Base: "#010000"},
	{Name: "dark-yellow", Base: "#010100"},
	{Name: "dark-desaturated-yellow", Base: "#202313"},
	{Name: "dark-olive-yellow", Base: "#222118"},
	{Name: "dark-green", Base: "#000100"},
	{Name: "dark-lime-green", Base: "#1e2420"},
	{Name: "dark-cyan", Base: "#000101"},
	{Name: "dark-grayish-cyan", Base: "#090c0c"},
	{Name: "dark-blue", Base: "#000001"},
	{Name: "dark-desaturated-blue", Base: "#191f27"},
	{Name: "dark-violet", Base: "#010001"},
	{Name: "dark-pink", Base: "#271622"},
	{Name: "dark-magenta", Base: "#231626"},
	{Name: "dark-grayish-violet", Base: "#18171a"},
	{Name: "black", Base: "#0b0b0b"},
	{Name: "red", Base: "#0c0000"},
	{Name: "yellow", Base: "#0c0c00"},
	{Name: "green", Base: "#000c00"},
	{Name: "cyan", Base: "#000c0c"},
	{Name: "blue", Base: "#00000c"},
	{Name: "violet", Base: "#0c000c"},
	{Name: "ericsson-black", Base: "#0c0c0c"},
	{Name: "github-blue", Base: "#010409"},
	{Name: "twitter-dim", Base: "#0d1319"},
	{Name: "random-0"},
	{Name: "random-1"},
	{Name: "random-2"},
	{Name: "random-3"},
	{Name: "random-4"},
	{Name: "random-5"},
	{Name: "random-6"},
	{Name: "random-7"},
}

// presetNames returns the built-in theme names in menu order.
func presetNames() []string {
	names := make([]string, 0, len(darkPresets))
	for _, p := range darkPresets {
		names = append(names, p.Name)
	}
	return names
}

// findPreset looks up a built-in theme by name.
func findPreset(name string) (preset, bool) {
	for _, p := range darkPresets {
		if p.Name == name {
			return p, true
		}
	}
	return preset{}, false
}

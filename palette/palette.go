// Package palette turns the placeholder grid referenced by resolved
// theme colors into concrete sRGB values. Placeholders name a color
// family and a gradation step, C_ff_gg with both parts zero padded.
// Families split in two classes: token families carry the saturated
// hues syntax highlighting draws from, dark families carry the muted
// near-background shades the workbench draws from.
package palette

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Config sizes and shapes one palette. Lightness bounds are expressed
// on the 0 to 255 scale and mapped into the share of the lightness axis
// left above the floor.
type Config struct {
	TokenColors     int
	TokenGradations int
	TokenMin        int
	TokenMax        int
	TokenSaturation float64
	TokenLightness  float64

	DarkColors     int
	DarkGradations int
	DarkMin        int
	DarkMax        int
	DarkSaturation float64
	DarkLightness  float64

	// DarkBaseColors pins the hue and saturation of dark families to
	// explicit base values, cycling when there are more families than
	// bases. When empty, DarkBaseColorName picks a named hue for every
	// dark family, and an empty name falls back to random hues.
	DarkBaseColors    []string
	DarkBaseColorName string
}

// namedHues are the hue anchors a dark family class can be pinned to by
// name.
var namedHues = map[string]float64{
	"RED":     0,
	"ORANGE":  30,
	"YELLOW":  60,
	"GREEN":   120,
	"CYAN":    180,
	"BLUE":    240,
	"VIOLET":  270,
	"MAGENTA": 300,
}

// Generate expands the full family and gradation grid into a map from
// placeholder to lowercase hex. Token families take evenly spaced hues
// seeded from the rng; dark families follow the configured bases. The
// same rng state and config always produce the same palette.
func Generate(cfg Config, rng *rand.Rand) (map[string]string, error) {
	out := make(map[string]string, cfg.TokenColors*cfg.TokenGradations+cfg.DarkColors*cfg.DarkGradations)

	seedHue := rng.Float64() * 360
	for i := 0; i < cfg.TokenColors; i++ {
		family := i + 1
		hue := math.Mod(seedHue+float64(i)*360/float64(cfg.TokenColors), 360)
		fillFamily(out, family, hue, cfg.TokenSaturation,
			cfg.TokenGradations, cfg.TokenMin, cfg.TokenMax, cfg.TokenLightness)
	}

	for i := 0; i < cfg.DarkColors; i++ {
		family := cfg.TokenColors + i + 1
		hue, saturation, err := darkBase(cfg, i, rng)
		if err != nil {
			return nil, err
		}
		fillFamily(out, family, hue, saturation,
			cfg.DarkGradations, cfg.DarkMin, cfg.DarkMax, cfg.DarkLightness)
	}
	return out, nil
}

// darkBase picks hue and saturation for the i-th dark family.
func darkBase(cfg Config, i int, rng *rand.Rand) (hue, saturation float64, err error) {
	if len(cfg.DarkBaseColors) > 0 {
		raw := cfg.DarkBaseColors[i%len(cfg.DarkBaseColors)]
		base, err := colorful.Hex(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("palette: dark base color %q: %w", raw, err)
		}
		h, s, _ := base.Hsl()
		return h, s, nil
	}
	if cfg.DarkBaseColorName != "" {
		h, ok := namedHues[strings.ToUpper(cfg.DarkBaseColorName)]
		if !ok {
			return 0, 0, fmt.Errorf("palette: unknown base color name %q", cfg.DarkBaseColorName)
		}
		return h, cfg.DarkSaturation, nil
	}
	return rng.Float64() * 360, cfg.DarkSaturation, nil
}

func fillFamily(out map[string]string, family int, hue, saturation float64, gradations, min, max int, floor float64) {
	for g := 0; g < gradations; g++ {
		t := 0.0
		if gradations > 1 {
			t = float64(g) / float64(gradations-1)
		}
		level := float64(min) + (float64(max)-float64(min))*t
		lightness := floor + level/255*(1-floor)
		out[Key(family, g)] = colorful.Hsl(hue, saturation, lightness).Hex()
	}
}

// Key formats the placeholder for one family and gradation.
func Key(family, gradation int) string {
	return fmt.Sprintf("C_%02d_%02d", family, gradation)
}

// DiscardDarkRed retires a red-leaning last dark family. When the last
// dark family's final gradation is strictly red dominant, the whole
// family is overwritten with the first earlier dark family whose final
// gradation is not led by red, and true is returned. The two youngest
// dark families never serve as replacements. The palette is left
// untouched when the reference shade is fine or no replacement exists.
func DiscardDarkRed(pal map[string]string, cfg Config) bool {
	last := cfg.TokenColors + cfg.DarkColors
	final := cfg.DarkGradations - 1
	ref, ok := pal[Key(last, final)]
	if !ok {
		return false
	}
	c, err := colorful.Hex(ref)
	if err != nil || !redDominant(c) {
		return false
	}
	for family := cfg.TokenColors + 1; family <= last-2; family++ {
		candidate, ok := pal[Key(family, final)]
		if !ok {
			continue
		}
		cc, err := colorful.Hex(candidate)
		if err != nil || redLeads(cc) {
			continue
		}
		for g := 0; g < cfg.DarkGradations; g++ {
			if v, ok := pal[Key(family, g)]; ok {
				pal[Key(last, g)] = v
			}
		}
		return true
	}
	return false
}

// Substitute maps one resolved color through the palette. The 7-rune
// head selects the final value and any alpha suffix carries over.
// Colors whose head is not a palette key, literal hex values included,
// pass through unchanged.
func Substitute(pal map[string]string, color string) string {
	if len(color) < 7 {
		return color
	}
	if v, ok := pal[color[:7]]; ok {
		return v + color[7:]
	}
	return color
}

// redDominant reports whether red is the strict channel maximum.
func redDominant(c colorful.Color) bool {
	return c.R > c.G && c.R > c.B
}

// redLeads reports whether no other channel exceeds red.
func redLeads(c colorful.Color) bool {
	return c.R >= c.G && c.R >= c.B
}

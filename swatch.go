package main

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// swatch renders a label on a background of the given color. Values
// that are not hex colors, unsubstituted placeholders included, come
// back unstyled.
func swatch(color, label string) string {
	head := color
	if len(head) > 7 {
		head = head[:7]
	}
	if _, err := colorful.Hex(head); err != nil {
		return label
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(head)).
		Foreground(lipgloss.Color(swatchForeground(head))).
		Render(label)
}

// swatchForeground picks black or white text for a hex background so
// the label stays readable on it.
func swatchForeground(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	luminance := 0.299*c.R + 0.587*c.G + 0.114*c.B
	if luminance > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"huegen/template"
)

// themeColor is one theme property with the color it ended up with and
// the placeholder the color was drawn for.
type themeColor struct {
	Property    string `json:"property"`
	Color       string `json:"color"`
	Placeholder string `json:"placeholder,omitempty"`
}

// colorsCmd represents the colors command.
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Show the colors of a generated theme",
	Long: `Show every workbench property of a generated theme file with its
color. When the resolved template report of the last run is available
each property also shows the placeholder its color was drawn for.`,
	RunE: colorsRun,
}

func init() {
	// Colors flags
	colorsCmd.Flags().StringP("theme", "t", "huegen-random-0", "name of the generated theme")
	colorsCmd.Flags().StringP("filter", "f", "", "only show properties matching this name or pattern")
	colorsCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func colorsRun(cmd *cobra.Command, _ []string) error {
	// Get and validate output format
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}
	name, err := cmd.Flags().GetString("theme")
	if err != nil {
		return fmt.Errorf("failed to get theme flag: %w", err)
	}
	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		return fmt.Errorf("failed to get filter flag: %w", err)
	}
	match, err := nameFilter(filter)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.ThemesDir, strings.ToLower(name)+"-color-theme.json")
	doc, err := template.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no theme file at %s, run \"huegen generate\" first", path)
		}
		return err
	}
	placeholders, err := loadPlaceholders(cfg.OutputDir)
	if err != nil {
		return err
	}

	colors := make([]themeColor, 0, len(doc.Colors))
	for _, property := range doc.Properties() {
		if !match(property) {
			continue
		}
		value, _ := doc.Color(property)
		colors = append(colors, themeColor{
			Property:    property,
			Color:       value,
			Placeholder: placeholders[property],
		})
	}

	// Sort properties for consistent output
	sort.Slice(colors, func(i, j int) bool {
		return colors[i].Property < colors[j].Property
	})

	// Output based on format
	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, colors)
	case tableOutputFormat:
		return outputColorsTable(cmd, colors)
	default:
		return errors.New("unsupported output format")
	}
}

// loadPlaceholders reads the resolved template report and maps each
// property to the placeholder drawn for it. A missing report leaves
// every placeholder empty.
func loadPlaceholders(dir string) (map[string]string, error) {
	doc, err := template.Load(filepath.Join(dir, "resolved-template.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	out := make(map[string]string, len(doc.Colors))
	for _, e := range doc.Colors {
		out[e.Property] = e.Value
	}
	return out, nil
}

func outputColorsTable(cmd *cobra.Command, colors []themeColor) error {
	t := createStyledTable("PROPERTY", "COLOR", "PLACEHOLDER", "SWATCH")

	for _, c := range colors {
		placeholder := c.Placeholder
		if placeholder == "" {
			placeholder = "-"
		}
		t.Row(c.Property, c.Color, placeholder, swatch(c.Color, "        "))
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)

	return nil
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

// paletteSection pairs one palette report with its display title.
type paletteSection struct {
	Title   string            `json:"title"`
	Entries map[string]string `json:"entries"`
}

// paletteCmd represents the palette command.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the palettes of the last generation run",
	Long: `Show the random palette and the selected UI and token palettes
written by the last generate run.`,
	RunE: paletteRun,
}

func init() {
	// Palette flags
	paletteCmd.Flags().StringP("filter", "f", "", "only show entries matching this name or pattern")
	paletteCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func paletteRun(cmd *cobra.Command, _ []string) error {
	// Get and validate output format
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}
	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		return fmt.Errorf("failed to get filter flag: %w", err)
	}
	match, err := nameFilter(filter)
	if err != nil {
		return err
	}

	sections, err := loadPaletteSections(cfg.OutputDir)
	if err != nil {
		return err
	}
	for i := range sections {
		sections[i].Entries = filterEntries(sections[i].Entries, match)
	}

	// Output based on format
	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, sections)
	case tableOutputFormat:
		return outputPaletteTables(cmd, sections)
	default:
		return errors.New("unsupported output format")
	}
}

// loadPaletteSections reads the three palette reports of the last run.
func loadPaletteSections(dir string) ([]paletteSection, error) {
	files := []struct {
		title string
		name  string
	}{
		{"Random Palette", "random-palette.json"},
		{"Selected UI Palette", "selected-ui-palette.json"},
		{"Selected Token Palette", "selected-token-palette.json"},
	}
	sections := make([]paletteSection, 0, len(files))
	for _, f := range files {
		entries, err := loadColorMap(filepath.Join(dir, f.name))
		if err != nil {
			return nil, err
		}
		sections = append(sections, paletteSection{Title: f.title, Entries: entries})
	}
	return sections, nil
}

// loadColorMap reads one name-to-color JSON report.
func loadColorMap(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no report at %s, run \"huegen generate\" first", path)
		}
		return nil, fmt.Errorf("read report: %w", err)
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return m, nil
}

// filterEntries keeps the entries whose name passes the filter.
func filterEntries(entries map[string]string, match func(string) bool) map[string]string {
	out := make(map[string]string, len(entries))
	for k, v := range entries {
		if match(k) {
			out[k] = v
		}
	}
	return out
}

func outputPaletteTables(cmd *cobra.Command, sections []paletteSection) error {
	for _, section := range sections {
		t := createStyledTable("NAME", "COLOR", "SWATCH")

		keys := make([]string, 0, len(section.Entries))
		for k := range section.Entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v := section.Entries[k]
			t.Row(k, v, swatch(v, "        "))
		}

		fmt.Fprintln(cmd.OutOrStdout(), section.Title)
		fmt.Fprintln(cmd.OutOrStdout(), t)
	}
	return nil
}

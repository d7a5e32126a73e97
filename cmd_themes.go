package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"huegen/rules"
)

// themeListing is one generatable theme for display.
type themeListing struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Source  string `json:"source"`
	Base    string `json:"base,omitempty"`
}

// themesCmd represents the themes command.
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the themes huegen can generate",
	Long: `List the themes configured in the rule document and the built-in
presets, with the base color each preset builds its dark palette from.`,
	RunE: themesRun,
}

func init() {
	// Themes flags
	themesCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func themesRun(cmd *cobra.Command, _ []string) error {
	// Get and validate output format
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	doc, err := rules.Load(cfg.Rules)
	if err != nil {
		return err
	}
	listings := themeListings(doc)

	// Output based on format
	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, listings)
	case tableOutputFormat:
		return outputThemesTable(cmd, listings)
	default:
		return errors.New("unsupported output format")
	}
}

// themeListings collects the configured themes followed by the
// built-in presets.
func themeListings(doc *rules.Document) []themeListing {
	titler := cases.Title(language.English)
	listings := make([]themeListing, 0, len(doc.Themes)+len(darkPresets))
	for i := range doc.Themes {
		name := doc.Themes[i].Name
		listings = append(listings, themeListing{
			Name:    name,
			Display: titler.String(strings.ReplaceAll(name, "-", " ")),
			Source:  "configured",
		})
	}
	for _, p := range darkPresets {
		listings = append(listings, themeListing{
			Name:    p.Name,
			Display: titler.String(strings.ReplaceAll(p.Name, "-", " ")),
			Source:  "preset",
			Base:    p.Base,
		})
	}
	return listings
}

func outputThemesTable(cmd *cobra.Command, listings []themeListing) error {
	t := createStyledTable("NAME", "DISPLAY", "SOURCE", "BASE")

	for _, l := range listings {
		base := l.Base
		if base == "" {
			base = "-"
		}
		t.Row(l.Name, l.Display, l.Source, swatch(base, base))
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)

	return nil
}

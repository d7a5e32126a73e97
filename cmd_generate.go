package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"huegen/rules"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate color theme files",
	Long: `Generate color themes from the rule document and the theme template.

Without flags every configured theme is generated, or a single random
theme when the document configures none. Each theme resolves every
template property and token scope against the rules, substitutes the
drawn placeholders through a fresh palette, and writes the theme file
next to the palette and group reports.`,
	RunE: generateRun,
}

func init() {
	// Generate flags
	generateCmd.Flags().StringP("theme", "t", "", "only generate configured themes matching this name or pattern")
	generateCmd.Flags().StringP("preset", "p", "", "generate a single built-in preset theme")
	generateCmd.Flags().BoolP("interactive", "i", false, "pick the theme to generate from a menu")
}

func generateRun(cmd *cobra.Command, _ []string) error {
	target, err := cmd.Flags().GetString("theme")
	if err != nil {
		return fmt.Errorf("failed to get theme flag: %w", err)
	}
	presetName, err := cmd.Flags().GetString("preset")
	if err != nil {
		return fmt.Errorf("failed to get preset flag: %w", err)
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return fmt.Errorf("failed to get interactive flag: %w", err)
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	if interactive {
		target, presetName, err = pickTheme(gen.doc)
		if err != nil {
			return err
		}
	}

	return gen.run(target, presetName, cfg.Seed)
}

// pickTheme asks for one theme from the configured themes and the
// built-in presets. A configured name narrows generation the same way
// the theme flag does.
func pickTheme(doc *rules.Document) (target, presetName string, err error) {
	names := make([]string, 0, len(doc.Themes)+len(darkPresets))
	for i := range doc.Themes {
		names = append(names, doc.Themes[i].Name)
	}
	names = append(names, presetNames()...)

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("Configured themes first, then built-in presets.").
				Options(huh.NewOptions(names...)...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return "", "", fmt.Errorf("theme selection failed: %w", err)
	}

	if doc.Theme(choice) != nil {
		return choice, "", nil
	}
	return "", choice, nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// configSetting is one effective configuration value for display.
type configSetting struct {
	Setting     string `json:"setting"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration after merging defaults, the config
file, environment variables, and flags, plus the config file the
defaults were read from.`,
	RunE: configRun,
}

func init() {
	// Config flags
	configCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func configRun(cmd *cobra.Command, _ []string) error {
	// Get and validate output format
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	settings := configSettings(cfg, findConfigFile())

	// Output based on format
	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, settings)
	case tableOutputFormat:
		return outputConfigTable(cmd, settings)
	default:
		return errors.New("unsupported output format")
	}
}

// configSettings lists the effective values in flag order.
func configSettings(c Config, configPath string) []configSetting {
	if configPath == "" {
		configPath = "(not found)"
	}
	return []configSetting{
		{Setting: "Config File", Value: configPath, Description: "Config file the defaults were read from"},
		{Setting: "Debug", Value: strconv.FormatBool(c.Debug), Description: "Enable debug logging"},
		{Setting: "Rules", Value: c.Rules, Description: "Path of the rule document"},
		{Setting: "Template", Value: c.Template, Description: "Path of the theme template"},
		{Setting: "Output Dir", Value: c.OutputDir, Description: "Directory receiving palette and group reports"},
		{Setting: "Themes Dir", Value: c.ThemesDir, Description: "Directory receiving generated theme files"},
		{Setting: "Seed", Value: strconv.FormatInt(c.Seed, 10), Description: "Random seed, zero draws one from the clock"},
	}
}

func outputConfigTable(cmd *cobra.Command, settings []configSetting) error {
	t := createStyledTable("SETTING", "VALUE", "DESCRIPTION")

	for _, s := range settings {
		t.Row(s.Setting, s.Value, s.Description)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)

	return nil
}

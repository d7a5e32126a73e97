package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile      string
	debug        bool
	rulesPath    string
	templatePath string
	outputDir    string
	themesDir    string
	seed         int64

	cfg Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "huegen",
	Short: "A rule-driven editor color theme generator",
	Long: `huegen generates editor color themes from a declarative rule document.

Rules map workbench properties and syntax token scopes onto color
ranges. Each run draws concrete colors from those ranges, expands them
through a generated palette, and writes ready-to-install theme files.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Snapshot the effective configuration
		cfg = Config{
			Debug:     debug,
			Rules:     rulesPath,
			Template:  templatePath,
			OutputDir: outputDir,
			ThemesDir: themesDir,
			Seed:      seed,
		}

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is huegen.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "rules.json", "rule document with color matching rules")
	rootCmd.PersistentFlags().StringVar(&templatePath, "template", "themes/huegen-color-theme.template.json",
		"theme template listing the properties and scopes to color")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "output", "directory for palette and group reports")
	rootCmd.PersistentFlags().StringVar(&themesDir, "themes-dir", "themes", "directory for generated theme files")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed, 0 draws one from the clock")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("rules", rootCmd.PersistentFlags().Lookup("rules"))
	_ = viper.BindPFlag("template", rootCmd.PersistentFlags().Lookup("template"))
	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("themes_dir", rootCmd.PersistentFlags().Lookup("themes-dir"))
	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))

	// Bind environment variables
	_ = viper.BindEnv("rules", "HUEGEN_RULES")
	_ = viper.BindEnv("template", "HUEGEN_TEMPLATE")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName("huegen")
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, "huegen"))
		}

		// User home directory
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(filepath.Join(home, ".config", "huegen"))
		}

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/huegen")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())

	// Update global variables from viper
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("rules") {
		rulesPath = viper.GetString("rules")
	}
	if !rootCmd.PersistentFlags().Changed("template") {
		templatePath = viper.GetString("template")
	}
	if !rootCmd.PersistentFlags().Changed("output-dir") {
		outputDir = viper.GetString("output_dir")
	}
	if !rootCmd.PersistentFlags().Changed("themes-dir") {
		themesDir = viper.GetString("themes_dir")
	}
	if !rootCmd.PersistentFlags().Changed("seed") {
		seed = viper.GetInt64("seed")
	}
}

// Utility functions for output formatting.
func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", fmt.Errorf("failed to get output flag: %w", err)
	}
	if outputFormat != jsonOutputFormat && outputFormat != tableOutputFormat {
		return "", fmt.Errorf("unsupported output format %q: use %s or %s",
			outputFormat, tableOutputFormat, jsonOutputFormat)
	}
	return outputFormat, nil
}

func outputJSON(cmd *cobra.Command, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}

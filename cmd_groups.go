package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"huegen/rules"
	"huegen/template"
)

// groupsCmd represents the groups command.
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Show which rule groups a run would use",
	Long: `Resolve every template property and token scope without writing any
file and report the rule groups the run used in first-use order, or
with --unused the configured groups no resolution touched.`,
	RunE: groupsRun,
}

func init() {
	// Groups flags
	groupsCmd.Flags().Bool("unused", false, "show the configured groups the run did not use")
	groupsCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func groupsRun(cmd *cobra.Command, _ []string) error {
	// Get and validate output format
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}
	unused, err := cmd.Flags().GetBool("unused")
	if err != nil {
		return fmt.Errorf("failed to get unused flag: %w", err)
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	used, err := gen.dryRunGroups(cfg.Seed)
	if err != nil {
		return err
	}

	groups := used
	if unused {
		groups = complementGroups(gen.doc.AllGroups(), used)
	}

	// Output based on format
	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, groups)
	case tableOutputFormat:
		return outputGroupsTable(cmd, groups, unused)
	default:
		return errors.New("unsupported output format")
	}
}

// dryRunGroups resolves every property and scope of the template the
// way an options-driven generate run would, without writing anything,
// and returns the used groups in first-use order.
func (g *generator) dryRunGroups(runSeed int64) ([]string, error) {
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	tpl, err := template.Parse(g.rawTpl)
	if err != nil {
		return nil, err
	}

	eng := rules.NewEngine(g.doc, g.doc.Settings(nil), rand.New(rand.NewSource(runSeed)))
	for _, property := range tpl.Properties() {
		if _, err := eng.Resolve(property); err != nil {
			return nil, err
		}
	}
	for _, scope := range tpl.Scopes() {
		if _, err := eng.ResolveToken(scope); err != nil {
			return nil, err
		}
	}
	return eng.UsedGroups(), nil
}

func outputGroupsTable(cmd *cobra.Command, groups []string, unused bool) error {
	header := "USED GROUP"
	if unused {
		header = "UNUSED GROUP"
	}
	t := createStyledTable("#", header)

	for i, group := range groups {
		t.Row(strconv.Itoa(i+1), group)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)

	return nil
}

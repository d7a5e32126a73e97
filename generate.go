package main

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"huegen/palette"
	"huegen/rules"
	"huegen/template"
)

// themeRun names one theme to generate, with its effective settings,
// its derived seed, and the explicit dark base colors of preset runs.
type themeRun struct {
	Name      string
	Settings  rules.Settings
	DarkBases []string
	Seed      int64
}

// runArtifacts carries the reports of one finished theme run.
type runArtifacts struct {
	resolved       []byte
	palette        map[string]string
	selectedUI     map[string]string
	selectedTokens map[string]string
	usedGroups     []string
}

// generator drives theme generation over one rule document and one
// theme template.
type generator struct {
	doc      *rules.Document
	rawTpl   []byte
	themeDir string
	outDir   string
}

// newGenerator loads the rule document and the theme template. The
// template is parsed once up front so a malformed one fails the run
// before any theme starts.
func newGenerator(c Config) (*generator, error) {
	doc, err := rules.Load(c.Rules)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(c.Template)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	if _, err := template.Parse(raw); err != nil {
		return nil, err
	}
	return &generator{
		doc:      doc,
		rawTpl:   raw,
		themeDir: c.ThemesDir,
		outDir:   c.OutputDir,
	}, nil
}

// planRuns picks the themes to generate: a built-in preset when named,
// otherwise the configured themes narrowed by target, otherwise one
// run straight from the document options.
func (g *generator) planRuns(target, presetName string, runSeed int64) ([]themeRun, error) {
	if presetName != "" {
		p, ok := findPreset(presetName)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q, run \"huegen themes\" to list them", presetName)
		}
		run := themeRun{
			Name:     "huegen-" + p.Name,
			Settings: g.doc.Settings(nil),
			Seed:     themeSeed(runSeed, "huegen-"+p.Name),
		}
		if p.Base != "" {
			run.DarkBases = []string{p.Base}
		}
		return []themeRun{run}, nil
	}

	if len(g.doc.Themes) > 0 {
		match, err := nameFilter(target)
		if err != nil {
			return nil, err
		}
		var runs []themeRun
		for i := range g.doc.Themes {
			theme := &g.doc.Themes[i]
			if !match(theme.Name) {
				continue
			}
			runs = append(runs, themeRun{
				Name:     theme.Name,
				Settings: g.doc.Settings(theme),
				Seed:     themeSeed(runSeed, theme.Name),
			})
		}
		if len(runs) == 0 {
			return nil, fmt.Errorf("no configured theme matches %q", target)
		}
		return runs, nil
	}

	name := "huegen-random-0"
	return []themeRun{{
		Name:     name,
		Settings: g.doc.Settings(nil),
		Seed:     themeSeed(runSeed, name),
	}}, nil
}

// nameFilter builds the name predicate shared by theme selection and
// the report filters: everything when target is empty, otherwise an
// exact name or a case-insensitive containment match with target
// treated as a regular expression.
func nameFilter(target string) (func(string) bool, error) {
	if target == "" {
		return func(string) bool { return true }, nil
	}
	re, err := regexp.Compile("(?i).*" + target + ".*")
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", target, err)
	}
	return func(name string) bool {
		return name == target || re.MatchString(name)
	}, nil
}

// themeSeed derives a per-theme seed so concurrent runs stay
// reproducible for a fixed run seed.
func themeSeed(runSeed int64, name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return runSeed ^ int64(h.Sum64())
}

// run generates every planned theme concurrently and then writes the
// shared reports from the last theme in plan order.
func (g *generator) run(target, presetName string, runSeed int64) error {
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
		log.Info("drew a random seed", "seed", runSeed)
	}
	runs, err := g.planRuns(target, presetName, runSeed)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(g.themeDir, 0o755); err != nil {
		return fmt.Errorf("create themes directory: %w", err)
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	results := make([]*runArtifacts, len(runs))
	var eg errgroup.Group
	for i, run := range runs {
		eg.Go(func() error {
			art, err := g.generateTheme(run)
			if err != nil {
				return fmt.Errorf("theme %s: %w", run.Name, err)
			}
			results[i] = art
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	return g.writeReports(results[len(results)-1])
}

// generateTheme resolves, palettes, and writes a single theme. Nothing
// is written until every property and scope resolved cleanly.
func (g *generator) generateTheme(run themeRun) (*runArtifacts, error) {
	rng := rand.New(rand.NewSource(run.Seed))
	eng := rules.NewEngine(g.doc, run.Settings, rng)

	tpl, err := template.Parse(g.rawTpl)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]string)
	for _, property := range tpl.Properties() {
		v, err := eng.Resolve(property)
		if err != nil {
			return nil, err
		}
		resolved[property] = v
	}
	tokens := make(map[string]string)
	for _, scope := range tpl.Scopes() {
		v, err := eng.ResolveToken(scope)
		if err != nil {
			return nil, err
		}
		tokens[scope] = v
	}

	tpl.SetColors(resolved)
	tpl.SetTokenColors(tokens)
	resolvedBytes, err := json.MarshalIndent(tpl, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode resolved template: %w", err)
	}

	pal, err := palette.Generate(paletteConfig(run), rng)
	if err != nil {
		return nil, err
	}
	if run.Settings.DiscardDarkRedColor && palette.DiscardDarkRed(pal, paletteConfig(run)) {
		log.Debug("replaced a red dark color family", "theme", run.Name)
	}

	final := make(map[string]string, len(resolved))
	selectedUI := make(map[string]string)
	for property, v := range resolved {
		f := palette.Substitute(pal, v)
		final[property] = f
		if f != v {
			selectedUI[v[:7]] = f
		}
	}
	finalTokens := make(map[string]string, len(tokens))
	selectedTokens := make(map[string]string)
	for scope, v := range tokens {
		f := palette.Substitute(pal, v)
		finalTokens[scope] = f
		if f != v {
			selectedTokens[v[:7]] = f
		}
	}

	tpl.SetColors(final)
	tpl.SetTokenColors(finalTokens)
	filename := strings.ToLower(run.Name) + "-color-theme.json"
	if err := tpl.Save(filepath.Join(g.themeDir, filename)); err != nil {
		return nil, err
	}
	log.Info("generated theme", "theme", run.Name, "file", filename, "seed", run.Seed)

	return &runArtifacts{
		resolved:       resolvedBytes,
		palette:        pal,
		selectedUI:     selectedUI,
		selectedTokens: selectedTokens,
		usedGroups:     eng.UsedGroups(),
	}, nil
}

// paletteConfig maps resolved settings onto the palette grid.
func paletteConfig(run themeRun) palette.Config {
	s := run.Settings
	return palette.Config{
		TokenColors:     s.TokenColorsTotal,
		TokenGradations: s.TokenColorsGradationsTotal,
		TokenMin:        s.TokenColorsMin,
		TokenMax:        s.TokenColorsMax,
		TokenSaturation: s.TokenColorsSaturation,
		TokenLightness:  s.TokenColorsLightness,

		DarkColors:     s.WorkbenchColorsTotal,
		DarkGradations: s.WorkbenchColorsGradationsTotal,
		DarkMin:        s.WorkbenchColorsMin,
		DarkMax:        s.WorkbenchColorsMax,
		DarkSaturation: s.WorkbenchColorsSaturation,
		DarkLightness:  s.WorkbenchColorsLightness,

		DarkBaseColors:    run.DarkBases,
		DarkBaseColorName: s.WorkbenchBaseColorName,
	}
}

// complementGroups returns the members of all that used does not
// contain, keeping the order of all.
func complementGroups(all, used []string) []string {
	seen := make(map[string]bool, len(used))
	for _, group := range used {
		seen[group] = true
	}
	out := make([]string, 0, len(all))
	for _, group := range all {
		if !seen[group] {
			out = append(out, group)
		}
	}
	return out
}

// writeReports writes the shared palette and group reports.
func (g *generator) writeReports(art *runArtifacts) error {
	all := g.doc.AllGroups()
	unused := complementGroups(all, art.usedGroups)

	resolvedPath := filepath.Join(g.outDir, "resolved-template.json")
	if err := os.WriteFile(resolvedPath, append(art.resolved, '\n'), 0o644); err != nil {
		return fmt.Errorf("write resolved template: %w", err)
	}

	reports := []struct {
		name string
		data any
	}{
		{"random-palette.json", art.palette},
		{"selected-ui-palette.json", art.selectedUI},
		{"selected-token-palette.json", art.selectedTokens},
		{"used-groups.json", art.usedGroups},
		{"all-groups.json", all},
		{"unused-groups.json", unused},
	}
	for _, r := range reports {
		if err := writeJSONFile(filepath.Join(g.outDir, r.name), r.data); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONFile(path string, data any) error {
	encoded, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/devtools"
	"smz3/pkg/game/hints"
	"smz3/pkg/game/reach"
	"smz3/pkg/game/regions"
	"smz3/pkg/game/renderer"
	"smz3/pkg/game/seed"
	"smz3/pkg/game/world"
)

// --- Global Command Variables ---
var (
	configPath string
	seedFlag   string
	verbose    bool
	localeDir  string
	language   string

	outputFormat string
	outputPath   string
	spoilerDir   string
	spoilerHTML  bool

	haveItems string
	relevant  bool

	logger *slog.Logger
	cfg    config.Config

	rootCmd = &cobra.Command{
		Use:   "smz3",
		Short: "Item randomizer for the Super Metroid and A Link to the Past combo",
		Long: `smz3 shuffles the items of both games across one shared world and
guarantees that every generated seed can be completed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(verbose)
			initGotext(localeDir, language)
			renderer.Init()

			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				loaded.Seed = seedFlag
			}
			cfg = loaded
			return nil
		},
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a seed and write its assignment",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	explainCmd = &cobra.Command{
		Use:   "explain [location]",
		Short: "Explain which missing items would open a location",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplain,
	}

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Check the world logic for unreachable locations and cycles",
		Args:  cobra.NoArgs,
		RunE:  runValidate,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (SMZ3_* environment variables override it)")
	rootCmd.PersistentFlags().StringVarP(&seedFlag, "seed", "s", "", "seed text or number; empty draws a random seed")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&localeDir, "locales", "locales", "directory holding the translations")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "en_GB", "language of the output")

	generateCmd.Flags().StringVarP(&outputFormat, "format", "f", string(seed.FormatYAML), "output format: yaml or json")
	generateCmd.Flags().StringVarP(&outputPath, "out", "o", "", "write the seed data to this file instead of stdout")
	generateCmd.Flags().StringVar(&spoilerDir, "spoiler", "", "write spoiler.txt into this directory")
	generateCmd.Flags().BoolVar(&spoilerHTML, "html", false, "also write an HTML playthrough next to the spoiler")

	explainCmd.Flags().StringVar(&haveItems, "have", "", "comma separated items already owned")
	explainCmd.Flags().BoolVar(&relevant, "relevant", false, "judge the location the way a tracker does, before rewards are known")

	rootCmd.AddCommand(generateCmd, explainCmd, validateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reg := prometheus.NewRegistry()
	gen := seed.New(
		seed.WithLogger(logger),
		seed.WithMetrics(seed.NewMetrics(reg)),
	)

	data, err := gen.Generate(cmd.Context(), cfg)
	logMetrics(reg)
	if err != nil {
		return err
	}

	if outputPath == "" {
		if err := seed.Write(os.Stdout, data, seed.Format(outputFormat)); err != nil {
			return err
		}
	} else {
		if err := writeSeedFile(outputPath, data, seed.Format(outputFormat)); err != nil {
			return err
		}
		// Stdout is free for the summary.
		renderer.RenderSeed(data)
	}

	if spoilerDir != "" {
		path, err := devtools.DumpSpoilerToFile(data, spoilerDir)
		if err != nil {
			return fmt.Errorf("write spoiler: %w", err)
		}
		renderer.ShowMessage(fmt.Sprintf(gotext.Get("CLI_SPOILER_WRITTEN"), path))
		if spoilerHTML {
			path, err := devtools.SaveSpoilerHTML(data, spoilerDir)
			if err != nil {
				return fmt.Errorf("write spoiler html: %w", err)
			}
			renderer.ShowMessage(fmt.Sprintf(gotext.Get("CLI_SPOILER_WRITTEN"), path))
		}
	}
	return nil
}

// writeSeedFile writes data to path. A failed flush or close is reported.
func writeSeedFile(path string, data *seed.SeedData, format seed.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := seed.Write(f, data, format); err != nil {
		return err
	}
	return f.Sync()
}

// logMetrics writes the generation counters at debug level.
func logMetrics(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("gather metrics", slog.Any("err", err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				logger.Debug("metric", slog.String("name", mf.GetName()), slog.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				logger.Debug("metric", slog.String("name", mf.GetName()), slog.Float64("sum", m.GetHistogram().GetSampleSum()))
			}
		}
	}
}

// buildWorld builds the unfilled world for the first player of cfg.
func buildWorld() (*world.World, error) {
	value, _, err := cfg.SeedValue()
	if err != nil {
		return nil, err
	}
	own := cfg
	return regions.Build(&own, 0, own.PlayerNames()[0], rand.New(rand.NewSource(value)))
}

// parseItems turns a comma separated item list into a Progression.
func parseItems(w *world.World, list string) (*progression.Progression, error) {
	p := w.NewProgression()
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t, err := item.Parse(name)
		if err != nil {
			return nil, err
		}
		p.Add(t)
	}
	return p, nil
}

func runExplain(cmd *cobra.Command, args []string) error {
	w, err := buildWorld()
	if err != nil {
		return err
	}
	found := devtools.FindLocations(w, args[0])
	switch len(found) {
	case 0:
		return fmt.Errorf(gotext.Get("CLI_NO_LOCATION"), args[0])
	case 1:
	default:
		renderer.ShowMessage(fmt.Sprintf(gotext.Get("CLI_AMBIGUOUS_LOCATION"), args[0], len(found)))
		for _, l := range found {
			renderer.ShowMessage(renderer.FormatText("  %d LOC{%s}", l.ID, l.Name))
		}
		return nil
	}

	p, err := parseItems(w, haveItems)
	if err != nil {
		return err
	}
	mode := hints.Strict
	if relevant {
		mode = hints.Relevant
	}
	text, err := hints.Explain(cmd.Context(), w, found[0], p, mode)
	if err != nil {
		return err
	}
	renderer.ShowMessage(text)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	w, err := buildWorld()
	if err != nil {
		return err
	}
	if err := reach.Validate(w); err != nil {
		return err
	}
	renderer.ShowMessage(fmt.Sprintf(gotext.Get("CLI_VALIDATE_OK"), len(w.Locations)))
	return nil
}

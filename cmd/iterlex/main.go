// Command iterlex runs the iterated-learning analysis pipeline over a trial
// CSV: n-gram entropy, transitional-probability segmentation, and Zipfian
// rank-frequency diagnostics, exported as flat CSV tables and PNG plots.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/iterlex/analysis"
	"github.com/katalvlaran/iterlex/corpus"
	"github.com/katalvlaran/iterlex/plotx"
)

// runConfig carries every knob of one pipeline invocation. YAML fields feed
// the --config file; flags override whatever the file set.
type runConfig struct {
	Input      string  `yaml:"input"`
	Out        string  `yaml:"out"`
	Order      int     `yaml:"order"`
	Ratio      float64 `yaml:"ratio"`
	Percentile float64 `yaml:"percentile"`
	Baseline   int     `yaml:"baseline"`
	Plots      bool    `yaml:"plots"`
}

// defaultConfig mirrors analysis.DefaultOptions plus output defaults.
func defaultConfig() runConfig {
	opts := analysis.DefaultOptions()
	return runConfig{
		Out:        "out",
		Order:      opts.Order,
		Ratio:      opts.Ratio,
		Percentile: opts.Percentile,
		Baseline:   opts.BaselineGeneration,
		Plots:      true,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "iterlex",
		Short:         "Iterated-learning segmentation & Zipf analysis",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cfg := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline over a trial CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := loadConfig(configPath, &cfg); err != nil {
					return err
				}
				// Re-apply flags so they win over the file.
				applyFlagOverrides(cmd, &cfg)
			}
			if cfg.Input == "" {
				return fmt.Errorf("no input CSV: set --input or the config file's input field")
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Input, "input", cfg.Input, "trial CSV (columns: chain, generation, string, error)")
	cmd.Flags().StringVar(&cfg.Out, "out", cfg.Out, "output directory for tables and plots")
	cmd.Flags().IntVar(&cfg.Order, "order", cfg.Order, "n-gram order (≥2)")
	cmd.Flags().Float64Var(&cfg.Ratio, "ratio", cfg.Ratio, "fixed cut ratio in (0,1); 0 calibrates from the baseline")
	cmd.Flags().Float64Var(&cfg.Percentile, "percentile", cfg.Percentile, "calibration percentile in (0,1)")
	cmd.Flags().IntVar(&cfg.Baseline, "baseline", cfg.Baseline, "baseline generation for calibration")
	cmd.Flags().BoolVar(&cfg.Plots, "plots", cfg.Plots, "render PNG plots alongside the tables")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file; flags override its values")
	return cmd
}

// loadConfig overlays a YAML file onto cfg.
func loadConfig(path string, cfg *runConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyFlagOverrides re-reads every explicitly set flag into cfg, so the
// command line beats the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *runConfig) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input, _ = flags.GetString("input")
	}
	if flags.Changed("out") {
		cfg.Out, _ = flags.GetString("out")
	}
	if flags.Changed("order") {
		cfg.Order, _ = flags.GetInt("order")
	}
	if flags.Changed("ratio") {
		cfg.Ratio, _ = flags.GetFloat64("ratio")
	}
	if flags.Changed("percentile") {
		cfg.Percentile, _ = flags.GetFloat64("percentile")
	}
	if flags.Changed("baseline") {
		cfg.Baseline, _ = flags.GetInt("baseline")
	}
	if flags.Changed("plots") {
		cfg.Plots, _ = flags.GetBool("plots")
	}
}

// run is the one-shot batch: load, analyze, export, plot. Any failure ends
// the run; there is nothing to retry.
func run(cfg runConfig) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	c, err := corpus.Load(f)
	f.Close()
	if err != nil {
		return err
	}
	log.Info("corpus loaded", "trials", c.Len(), "groups", len(c.Keys()))

	report, err := analysis.Run(c, analysis.Options{
		Order:              cfg.Order,
		Ratio:              cfg.Ratio,
		Percentile:         cfg.Percentile,
		BaselineGeneration: cfg.Baseline,
	})
	if err != nil {
		return err
	}
	log.Info("pipeline done",
		"ratio", report.Ratio,
		"entropy_rows", len(report.Entropy),
		"tp_rows", len(report.Transitions),
		"words", len(report.WordLengths))

	if err := analysis.WriteTables(cfg.Out, report); err != nil {
		return err
	}
	log.Info("tables written", "dir", cfg.Out)

	if !cfg.Plots {
		return nil
	}
	if err := renderPlots(cfg.Out, report); err != nil {
		return err
	}
	log.Info("plots written", "dir", cfg.Out)
	return nil
}

// renderPlots writes the standard plot set next to the tables.
func renderPlots(dir string, report *analysis.Report) error {
	for _, level := range []string{analysis.LevelChar, analysis.LevelWord} {
		path := filepath.Join(dir, "entropy_"+level+".png")
		if err := plotx.EntropyByGeneration(report.Entropy, level, path); err != nil {
			return err
		}
	}
	if err := plotx.TPByGeneration(report.Transitions, filepath.Join(dir, "transitions.png")); err != nil {
		return err
	}

	// One word-level rank-frequency scatter per group.
	seen := map[string]bool{}
	for _, row := range report.RankFrequency {
		if row.Level != analysis.LevelWord {
			continue
		}
		name := fmt.Sprintf("zipf_%s_g%02d.png", row.Chain, row.Generation)
		if seen[name] {
			continue
		}
		seen[name] = true
		if err := plotx.RankFrequency(report.RankFrequency, row.Chain, row.Generation, analysis.LevelWord, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

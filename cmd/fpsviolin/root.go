// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nvgx/fpsviolin/config"
	"github.com/nvgx/fpsviolin/display"
	"github.com/nvgx/fpsviolin/sample"
	"github.com/nvgx/fpsviolin/violin"
)

// A presenter shows a rendered chart. It returns once the viewer is
// done with it.
type presenter func(title string, img image.Image)

func showChart(title string, img image.Image) {
	display.Show(title, img)
}

type options struct {
	configPath string
	source     string
	seed       int64
	unit       string
	title      string
	verbose    bool
}

func newRootCommand(logger *log.Logger, show presenter) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "fpsviolin [flags] [label=path ...]",
		Short: "Chart frame-rate samples of rendering backends as violin plots",
		Long: `Chart frame-rate samples of rendering backends as violin plots.

With no arguments, charts synthetic samples (seed 19680801, standard
deviations 6 through 9). Otherwise charts one violin per sample file,
in argument order. Arguments may be "label=path" to name the violin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logger.SetLevel(log.DebugLevel)
			}
			cfg, err := opts.config(cmd, args)
			if err != nil {
				return err
			}
			return run(cfg, logger, show)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "read settings from TOML `file`")
	f.StringVar(&opts.source, "source", config.ModeSynthetic, "sample `source`: synthetic or file")
	f.Int64Var(&opts.seed, "seed", sample.DefaultSeed, "`seed` for synthetic samples")
	f.StringVar(&opts.unit, "unit", sample.FPS.String(), "`unit` of sample files: fps, s or ms per frame")
	f.StringVar(&opts.title, "title", violin.DefaultTitle, "chart `title`")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every sample set")
	return cmd
}

// config layers the config file, the flags that were set, and the
// file arguments over the defaults.
func (opts *options) config(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		if flags.Changed("source") && opts.source != config.ModeFile {
			return nil, fmt.Errorf("sample files given with --source %s", opts.source)
		}
		cfg.Source.Mode = config.ModeFile
		cfg.Source.Files = args
		// Files name their own violins.
		cfg.Chart.Labels = nil
	} else if flags.Changed("source") {
		cfg.Source.Mode = opts.source
	}
	if flags.Changed("seed") {
		cfg.Source.Seed = opts.seed
	}
	if flags.Changed("unit") {
		cfg.Source.Unit = opts.unit
	}
	if flags.Changed("title") {
		cfg.Chart.Title = opts.title
	}
	return cfg, nil
}

func run(cfg *config.Config, logger *log.Logger, show presenter) error {
	src, err := cfg.NewSource()
	if err != nil {
		return err
	}

	logger.Info("reading samples", "source", cfg.Source.Mode)
	sets, err := src.Sets()
	if err != nil {
		return err
	}
	for i, s := range sets {
		st := s.Stats()
		logger.Debug("sample set", "x", i+1, "name", s.Name, "n", st.N, "min", st.Min, "max", st.Max)
	}

	fig := cfg.Figure(sets)
	p, err := violin.Build(fig)
	if err != nil {
		return err
	}
	img := violin.Image(p, fig)

	logger.Info("showing chart", "title", fig.Title, "violins", len(sets))
	show(fig.Title, img)
	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wolfeidau/webbundle/internal/bundler"
	"github.com/wolfeidau/webbundle/internal/descriptor"
	"github.com/wolfeidau/webbundle/internal/logger"
)

type BuildCmd struct {
	Dir         string `help:"web UI source directory" default:"." env:"WEBBUNDLE_DIR"`
	Production  bool   `short:"p" help:"build minified production bundles" default:"false"`
	Watch       bool   `help:"rebuild bundles when sources change" default:"false" env:"WEBBUNDLE_WATCH"`
	Color       bool   `help:"colourise console log output" default:"false" env:"WEBBUNDLE_COLOR"`
	Metafile    string `help:"path to write the esbuild metafile" default:"" env:"WEBBUNDLE_METAFILE"`
	NoSourceMap bool   `help:"disable source maps for development builds" default:"false"`
}

func (c *BuildCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug, c.Color)
	ctx = log.WithContext(ctx)

	desc := descriptor.New(c.Dir, modeArgs(globals.Args, c.Production))

	log.Info().
		Str("version", globals.Version).
		Str("mode", string(desc.Mode)).
		Str("output", desc.Output.Dir).
		Msg("Starting build")

	cfg := bundler.DefaultConfig()
	cfg.MetafilePath = c.Metafile
	cfg.SourceMap = !c.NoSourceMap

	pipeline := bundler.New(desc, cfg)

	if !c.Watch {
		if err := pipeline.Build(ctx); err != nil {
			return fmt.Errorf("failed to build bundles: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := pipeline.Watch(ctx); err != nil {
		return fmt.Errorf("failed to watch bundles: %w", err)
	}
	return nil
}

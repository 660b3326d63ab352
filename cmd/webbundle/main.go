package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/wolfeidau/webbundle/cmd/webbundle/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Debug   bool `help:"Enable debug mode." env:"WEBBUNDLE_DEBUG"`
		Version kong.VersionFlag
		Build   commands.BuildCmd `cmd:"" default:"withargs" help:"Build the web UI bundles"`
		Print   commands.PrintCmd `cmd:"" help:"Print the build descriptor"`
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version, Args: os.Args[1:]})
	cmd.FatalIfErrorf(err)
}

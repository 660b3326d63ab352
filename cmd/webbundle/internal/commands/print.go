package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wolfeidau/webbundle/internal/descriptor"
	"gopkg.in/yaml.v3"
)

type PrintCmd struct {
	Dir        string `help:"web UI source directory" default:"." env:"WEBBUNDLE_DIR"`
	Production bool   `short:"p" help:"print the production descriptor" default:"false"`
	Format     string `help:"output format" default:"yaml" enum:"yaml,json"`

	out io.Writer `kong:"-"`
}

func (c *PrintCmd) Run(ctx context.Context, globals *Globals) error {
	desc := descriptor.New(c.Dir, modeArgs(globals.Args, c.Production))

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(desc); err != nil {
			return fmt.Errorf("failed to encode descriptor: %w", err)
		}
	default:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(desc); err != nil {
			return fmt.Errorf("failed to encode descriptor: %w", err)
		}
		return enc.Close()
	}

	return nil
}

package commands

import (
	"slices"

	"github.com/wolfeidau/webbundle/internal/descriptor"
)

type Globals struct {
	Debug   bool
	Version string
	// Raw process arguments, the build mode is read from these
	Args []string
}

// modeArgs returns the arguments the descriptor reads its mode from.
// --production is the long spelling of the -p token.
func modeArgs(args []string, production bool) []string {
	if production && !slices.Contains(args, descriptor.ProductionFlag) {
		return append(slices.Clone(args), descriptor.ProductionFlag)
	}
	return args
}

package bundler

import (
	"sync"

	"github.com/wolfeidau/webbundle/internal/descriptor"
)

// BuildMetadata is the subset of the esbuild metafile the pipeline reads.
type BuildMetadata struct {
	Outputs map[string]OutputInfo `json:"outputs"`
}

type OutputInfo struct {
	EntryPoint string       `json:"entryPoint"`
	Bytes      int64        `json:"bytes"`
	Imports    []ImportInfo `json:"imports"`
}

type ImportInfo struct {
	Path string `json:"path"`
}

// Artifact is a bundle written by the last build.
type Artifact struct {
	Name  string
	Path  string
	Bytes int64
}

// Pipeline runs esbuild for a build descriptor and keeps the metadata of the
// most recent build.
type Pipeline struct {
	desc     *descriptor.Descriptor
	config   Config
	metadata *BuildMetadata
	mu       sync.RWMutex
}

// New creates a new pipeline for the descriptor
func New(desc *descriptor.Descriptor, config Config) *Pipeline {
	return &Pipeline{
		desc:   desc,
		config: config,
	}
}

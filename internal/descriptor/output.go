package descriptor

import (
	"path/filepath"
	"strings"
)

// NamePlaceholder is replaced by the bundle name in the filename template.
const NamePlaceholder = "[name]"

type OutputSpec struct {
	// Directory the bundles are written to
	Dir string `json:"dir" yaml:"dir"`
	// Filename template, e.g. "[name].js"
	FilenameTemplate string `json:"filename" yaml:"filename"`
}

// Filename returns the output filename for the named bundle.
func (o OutputSpec) Filename(name string) string {
	return strings.ReplaceAll(o.FilenameTemplate, NamePlaceholder, name)
}

// Path returns the full output path for the named bundle.
func (o OutputSpec) Path(name string) string {
	return filepath.Join(o.Dir, o.Filename(name))
}

package descriptor

import (
	"path/filepath"
	"regexp"
	"slices"
)

// Mode selects how the bundler optimises output.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// ProductionFlag is the argument token which switches a build to production mode.
const ProductionFlag = "-p"

// UnresolvedExtension marks "try the import exactly as written" in the
// resolution extension list.
const UnresolvedExtension = "*"

// entryNames are the browser bundles built from the web UI sources.
var entryNames = []string{"index", "query", "plan", "embedded_plan", "stage", "worker"}

// Descriptor declares what the bundler builds and how. It is built once by New
// and is read-only afterwards.
type Descriptor struct {
	Dir                  string            `json:"dir" yaml:"dir"`
	EntryPoints          map[string]string `json:"entryPoints" yaml:"entryPoints"`
	Mode                 Mode              `json:"mode" yaml:"mode"`
	TransformRules       []TransformRule   `json:"transformRules" yaml:"transformRules"`
	ResolutionExtensions []string          `json:"resolutionExtensions" yaml:"resolutionExtensions"`
	Output               OutputSpec        `json:"output" yaml:"output"`
}

// ModeFromArgs returns production if the production flag appears anywhere in
// args, otherwise development.
func ModeFromArgs(args []string) Mode {
	if slices.Contains(args, ProductionFlag) {
		return ModeProduction
	}
	return ModeDevelopment
}

// New creates the descriptor for the web UI sources in dir, taking the mode
// from the process arguments.
func New(dir string, args []string) *Descriptor {
	dir = filepath.Clean(dir)

	entryPoints := make(map[string]string, len(entryNames))
	for _, name := range entryNames {
		entryPoints[name] = filepath.Join(dir, name+".jsx")
	}

	return &Descriptor{
		Dir:         dir,
		EntryPoints: entryPoints,
		Mode:        ModeFromArgs(args),
		TransformRules: []TransformRule{
			{
				Test:        Pattern{regexp.MustCompile(`\.(js|jsx)$`)},
				Exclude:     Pattern{regexp.MustCompile(`node_modules`)},
				Transformer: TransformerJSX,
			},
		},
		ResolutionExtensions: []string{UnresolvedExtension, ".js", ".jsx"},
		Output: OutputSpec{
			Dir:              filepath.Join(dir, "..", "dist"),
			FilenameTemplate: NamePlaceholder + ".js",
		},
	}
}

// IsProduction reports whether the descriptor was built in production mode.
func (d *Descriptor) IsProduction() bool {
	return d.Mode == ModeProduction
}

// Names returns the bundle names in sorted order.
func (d *Descriptor) Names() []string {
	names := make([]string, 0, len(d.EntryPoints))
	for name := range d.EntryPoints {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TransformerFor returns the transformer of the first rule matching path.
func (d *Descriptor) TransformerFor(path string) (Transformer, bool) {
	for _, rule := range d.TransformRules {
		if rule.Matches(path) {
			return rule.Transformer, true
		}
	}
	return "", false
}

// Extensions returns the concrete resolution suffixes, without the sentinel.
func (d *Descriptor) Extensions() []string {
	exts := make([]string, 0, len(d.ResolutionExtensions))
	for _, ext := range d.ResolutionExtensions {
		if ext == UnresolvedExtension {
			continue
		}
		exts = append(exts, ext)
	}
	return exts
}

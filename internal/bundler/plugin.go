package bundler

import (
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/wolfeidau/webbundle/internal/descriptor"
)

// scriptFilter selects the files the transform rules are consulted for.
const scriptFilter = `\.(js|jsx)$`

var loaders = map[descriptor.Transformer]api.Loader{
	descriptor.TransformerJSX: api.LoaderJSX,
}

// transformPlugin applies the descriptor's transform rules. Files a rule
// matches are loaded with the rule's transformer, everything else in the
// script family is passed through as plain JavaScript.
func transformPlugin(desc *descriptor.Descriptor) api.Plugin {
	return api.Plugin{
		Name: "transform-rules",
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: scriptFilter, Namespace: "file"}, func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				data, err := os.ReadFile(args.Path)
				if err != nil {
					return api.OnLoadResult{}, err
				}
				contents := string(data)

				return api.OnLoadResult{
					Contents:   &contents,
					ResolveDir: filepath.Dir(args.Path),
					Loader:     loaderFor(desc, args.Path),
				}, nil
			})
		},
	}
}

func loaderFor(desc *descriptor.Descriptor, path string) api.Loader {
	tr, ok := desc.TransformerFor(path)
	if !ok {
		return api.LoaderJS
	}
	if loader, ok := loaders[tr]; ok {
		return loader
	}
	return api.LoaderJS
}

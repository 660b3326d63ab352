package bundler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/rs/zerolog"
)

// Options translates the descriptor into esbuild build options.
func (p *Pipeline) Options() api.BuildOptions {
	production := p.desc.IsProduction()

	entryPoints := make([]api.EntryPoint, 0, len(p.desc.EntryPoints))
	for _, name := range p.desc.Names() {
		entryPoints = append(entryPoints, api.EntryPoint{
			InputPath:  absPath(p.desc.EntryPoints[name]),
			OutputPath: name,
		})
	}

	return api.BuildOptions{
		EntryPointsAdvanced: entryPoints,
		AbsWorkingDir:       absPath(p.desc.Dir),
		Outdir:              absPath(p.desc.Output.Dir),
		EntryNames:          strings.TrimSuffix(p.desc.Output.FilenameTemplate, ".js"),
		Bundle:              true,
		Write:               true,
		Platform:            api.PlatformBrowser,
		Format:              api.FormatIIFE,
		JSX:                 api.JSXTransform,
		ResolveExtensions:   p.desc.Extensions(),
		Define: map[string]string{
			"process.env.NODE_ENV": fmt.Sprintf("%q", p.desc.Mode),
		},
		MinifyWhitespace:  production,
		MinifyIdentifiers: production,
		MinifySyntax:      production,
		TreeShaking:       api.TreeShakingTrue,
		Sourcemap:         cond(!production && p.config.SourceMap, api.SourceMapLinked, api.SourceMapNone),
		Metafile:          true,
		LogLevel:          api.LogLevelSilent,
		Plugins:           []api.Plugin{transformPlugin(p.desc)},
	}
}

// Build runs esbuild once and loads the resulting metadata
func (p *Pipeline) Build(ctx context.Context) error {
	log := zerolog.Ctx(ctx)

	log.Info().Str("mode", string(p.desc.Mode)).Strs("entrypoints", p.desc.Names()).Msg("Building bundles")

	result := api.Build(p.Options())

	return p.complete(log, &result)
}

// Watch builds the bundles and rebuilds them whenever a source changes, until
// ctx is cancelled.
func (p *Pipeline) Watch(ctx context.Context) error {
	log := zerolog.Ctx(ctx)

	opts := p.Options()
	opts.Plugins = append(opts.Plugins, api.Plugin{
		Name: "rebuild-report",
		Setup: func(build api.PluginBuild) {
			build.OnEnd(func(result *api.BuildResult) (api.OnEndResult, error) {
				if err := p.complete(log, result); err != nil {
					log.Warn().Err(err).Msg("Rebuild failed")
				}
				return api.OnEndResult{}, nil
			})
		},
	})

	buildCtx, ctxErr := api.Context(opts)
	if ctxErr != nil {
		logMessages(log, ctxErr.Errors)
		return errors.New("esbuild context failed with errors")
	}
	defer buildCtx.Dispose()

	log.Info().Str("mode", string(p.desc.Mode)).Str("dir", p.desc.Dir).Msg("Watching for changes")

	if err := buildCtx.Watch(api.WatchOptions{}); err != nil {
		return fmt.Errorf("failed to start watch: %w", err)
	}

	<-ctx.Done()

	log.Info().Msg("Stopped watching")
	return nil
}

// Artifacts returns the bundles written by the last successful build
func (p *Pipeline) Artifacts() ([]Artifact, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.metadata == nil {
		return nil, errors.New("bundles not built yet, call Build() first")
	}

	workDir := absPath(p.desc.Dir)

	artifacts := make([]Artifact, 0, len(p.desc.EntryPoints))
	for _, name := range p.desc.Names() {
		path := absPath(p.desc.Output.Path(name))

		rel, err := filepath.Rel(workDir, path)
		if err != nil {
			return nil, err
		}

		info, ok := p.metadata.Outputs[filepath.ToSlash(rel)]
		if !ok {
			return nil, fmt.Errorf("no output for bundle %q", name)
		}

		artifacts = append(artifacts, Artifact{Name: name, Path: path, Bytes: info.Bytes})
	}

	return artifacts, nil
}

func (p *Pipeline) complete(log *zerolog.Logger, result *api.BuildResult) error {
	for _, msg := range result.Warnings {
		log.Warn().Str("warning", formatMessage(msg)).Msg("Build warning")
	}

	if len(result.Errors) > 0 {
		logMessages(log, result.Errors)
		return fmt.Errorf("esbuild failed with %d errors", len(result.Errors))
	}

	for _, file := range result.OutputFiles {
		log.Debug().Str("file", file.Path).Msg("Built file")
	}

	if p.config.MetafilePath != "" {
		if err := os.WriteFile(p.config.MetafilePath, []byte(result.Metafile), 0600); err != nil {
			return err
		}
	}

	var metadata BuildMetadata
	if err := json.Unmarshal([]byte(result.Metafile), &metadata); err != nil {
		return err
	}

	p.mu.Lock()
	p.metadata = &metadata
	p.mu.Unlock()

	artifacts, err := p.Artifacts()
	if err != nil {
		return err
	}

	for _, a := range artifacts {
		log.Info().Str("bundle", a.Name).Str("file", a.Path).Int64("bytes", a.Bytes).Msg("Built bundle")
	}

	return nil
}

func logMessages(log *zerolog.Logger, msgs []api.Message) {
	for _, msg := range msgs {
		log.Error().Str("error", formatMessage(msg)).Msg("Build error")
	}
}

func formatMessage(msg api.Message) string {
	if msg.Location == nil {
		return msg.Text
	}
	return fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func cond[T any](condition bool, trueVal, falseVal T) T {
	if condition {
		return trueVal
	}
	return falseVal
}

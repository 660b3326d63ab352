package bundler

type Config struct {
	// Where to write the esbuild metafile, empty to skip writing it
	MetafilePath string
	// Whether development builds emit linked source maps
	SourceMap bool
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		SourceMap: true,
	}
}

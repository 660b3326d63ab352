package descriptor

import (
	"path/filepath"
	"regexp"
)

// Transformer names the transpiler applied to files matched by a rule.
type Transformer string

// TransformerJSX transpiles JSX syntax down to plain JavaScript.
const TransformerJSX Transformer = "jsx"

// Pattern is a path matcher which renders as its source expression.
type Pattern struct {
	*regexp.Regexp
}

// MatchString reports whether path matches; the zero Pattern matches nothing.
func (p Pattern) MatchString(path string) bool {
	if p.Regexp == nil {
		return false
	}
	return p.Regexp.MatchString(filepath.ToSlash(path))
}

func (p Pattern) MarshalText() ([]byte, error) {
	if p.Regexp == nil {
		return nil, nil
	}
	return []byte(p.String()), nil
}

// TransformRule selects files for a transformer. Exclude takes precedence
// over Test.
type TransformRule struct {
	Test        Pattern     `json:"test" yaml:"test"`
	Exclude     Pattern     `json:"exclude" yaml:"exclude"`
	Transformer Transformer `json:"transformer" yaml:"transformer"`
}

// Matches reports whether the rule applies to path.
func (r TransformRule) Matches(path string) bool {
	return r.Test.MatchString(path) && !r.Exclude.MatchString(path)
}

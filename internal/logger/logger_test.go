package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		color    bool
		expected zerolog.Level
	}{
		{name: "default", expected: zerolog.InfoLevel},
		{name: "debug", debug: true, expected: zerolog.DebugLevel},
		{name: "debug with color", debug: true, color: true, expected: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := Setup(tt.debug, tt.color)
			require.Equal(t, tt.expected, log.GetLevel())
		})
	}
}

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "info", level: "info", expected: zerolog.InfoLevel},
		{name: "warn", level: "warn", expected: zerolog.WarnLevel},
		{name: "error", level: "error", expected: zerolog.ErrorLevel},
		{name: "mixed case", level: "WARN", expected: zerolog.WarnLevel},
		{name: "unknown falls back to info", level: "verbose", expected: zerolog.InfoLevel},
		{name: "empty falls back to info", level: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestInit_PrettyOutput(t *testing.T) {
	Init("info", true)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestWithContext(t *testing.T) {
	Init("info", false)

	// Field-carrying child loggers must not disturb the global logger
	child := WithContext(map[string]interface{}{
		"cart_id":  "01JCART0000000000000000001",
		"quantity": 3,
	})
	child.Info().Msg("context fields attached")

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/ebar/internal/document"
	"github.com/jacoelho/ebar/internal/output"
)

// clearEBAREnv isolates tests from the ambient environment.
func clearEBAREnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvFormat, EnvOutput, EnvDebug} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEBAREnv(t)

	c := Load()

	assert.Equal(t, "auto", c.Format)
	assert.Equal(t, "text", c.Output)
	assert.False(t, c.Debug)
	require.NoError(t, c.Validate())
	assert.Equal(t, document.FormatAuto, c.InputFormat())
	assert.Equal(t, output.FormatText, c.OutputFormat())
	assert.Equal(t, slog.LevelWarn, c.LogLevel())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEBAREnv(t)
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvOutput, "json")
	t.Setenv(EnvDebug, "true")

	c := Load()

	assert.Equal(t, document.FormatYAML, c.InputFormat())
	assert.Equal(t, output.FormatJSON, c.OutputFormat())
	assert.True(t, c.Debug)
	assert.Equal(t, slog.LevelDebug, c.LogLevel())
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	clearEBAREnv(t)
	t.Setenv(EnvFormat, "toml")
	t.Setenv(EnvOutput, "html")
	t.Setenv(EnvDebug, "sometimes")

	c := Load()

	assert.Equal(t, "auto", c.Format)
	assert.Equal(t, "text", c.Output)
	assert.False(t, c.Debug)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "valid", config: Config{Format: "json", Output: "yaml"}},
		{name: "empty means defaults", config: Config{}},
		{name: "bad format", config: Config{Format: "xml", Output: "text"}, wantErr: ErrInvalidFormat},
		{name: "bad output", config: Config{Format: "auto", Output: "csv"}, wantErr: ErrInvalidOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSearchOptions_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, SearchOptions{File: "doc.json"}.Validate())
	require.NoError(t, SearchOptions{File: "doc.json", Path: "a.b"}.Validate())
	require.NoError(t, SearchOptions{File: "doc.json", JSONPath: "$.a"}.Validate())
	require.ErrorIs(t, SearchOptions{}.Validate(), ErrNoDocument)
	require.ErrorIs(t, SearchOptions{File: "doc.json", Path: "a", JSONPath: "$.a"}.Validate(), ErrConflictingQueries)
}

func TestResolveOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      ResolveOptions
		wantErr   error
		wantQuery string
	}{
		{
			name:      "target",
			opts:      ResolveOptions{File: "f", Target: "1", HasTarget: true},
			wantQuery: "1",
		},
		{
			name:      "empty target is allowed",
			opts:      ResolveOptions{File: "f", HasTarget: true},
			wantQuery: "",
		},
		{
			name:      "regex",
			opts:      ResolveOptions{File: "f", Regex: "l+o", HasRegex: true},
			wantQuery: "l+o",
		},
		{
			name:    "both",
			opts:    ResolveOptions{File: "f", HasTarget: true, HasRegex: true},
			wantErr: ErrConflictingQueries,
		},
		{
			name:    "neither",
			opts:    ResolveOptions{File: "f"},
			wantErr: ErrNoQuery,
		},
		{
			name:    "no file",
			opts:    ResolveOptions{HasTarget: true},
			wantErr: ErrNoDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, tt.opts.Query())
		})
	}
}

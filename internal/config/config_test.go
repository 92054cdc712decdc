package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, flags *pflag.FlagSet, paths ...string) (*Config, error) {
	t.Helper()
	if len(paths) == 0 {
		paths = []string{t.TempDir()}
	}
	v, err := NewViper(flags, paths...)
	require.NoError(t, err)
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.False(t, cfg.NoStore)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "easy", cfg.Level)
	assert.Equal(t, "standard_mixed", cfg.ChallengeType)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MATHFORGE_LEVEL", "hard")
	t.Setenv("MATHFORGE_LOG_FORMAT", "JSON")
	t.Setenv("MATHFORGE_DB", "/tmp/mf.db")
	t.Setenv("MATHFORGE_CHALLENGE_TYPE", "brain_teaser")

	cfg, err := load(t, nil)
	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.Level)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/mf.db", cfg.DBPath)
	assert.Equal(t, "brain_teaser", cfg.ChallengeType)
}

func TestLoad_FlagsBeatEnv(t *testing.T) {
	t.Setenv("MATHFORGE_LEVEL", "hard")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("level", "easy", "")
	flags.Bool("no-store", false, "")
	require.NoError(t, flags.Parse([]string{"--level", "expert", "--no-store"}))

	cfg, err := load(t, flags)
	require.NoError(t, err)
	assert.Equal(t, "expert", cfg.Level)
	assert.True(t, cfg.NoStore)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "level: medium\nlog-level: debug\nchallenge-type: speed_round\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mathforge.yaml"), []byte(content), 0o644))

	cfg, err := load(t, nil, dir)
	require.NoError(t, err)
	assert.Equal(t, "medium", cfg.Level)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "speed_round", cfg.ChallengeType)
}

func TestNewViper_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mathforge.yaml"), []byte("level: [unclosed"), 0o644))

	_, err := NewViper(nil, dir)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		env   string
		value string
	}{
		{"MATHFORGE_LEVEL", "legendary"},
		{"MATHFORGE_LOG_LEVEL", "verbose"},
		{"MATHFORGE_LOG_FORMAT", "xml"},
		{"MATHFORGE_CHALLENGE_TYPE", "mystery_tour"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := load(t, nil)
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown", "key", "value")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)

	buf.Reset()
	text := NewLogger(&Config{LogLevel: "debug", LogFormat: "text"}, &buf)
	text.Debug("details")
	assert.Contains(t, buf.String(), "msg=details")
}

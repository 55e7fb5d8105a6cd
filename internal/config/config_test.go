package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{".txt"}, cfg.Input.Extensions)
	assert.Equal(t, DefaultPipeline(), cfg.Pipeline)
	assert.Equal(t, 500, cfg.Preview.Length)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ParsesPipeline(t *testing.T) {
	path := writeFile(t, t.TempDir(), "corpus.yaml", `
input:
  extensions: [".md"]
  documents: ["inline one", "inline two"]
pipeline:
  - name: to_lower
  - name: remove_words
    words: [foo, bar]
    case_insensitive: true
  - name: stem
    algorithm: snowball
preview:
  length: 80
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".md"}, cfg.Input.Extensions)
	assert.Equal(t, []any{"inline one", "inline two"}, cfg.Input.Documents)
	require.Len(t, cfg.Pipeline, 3)
	assert.Equal(t, "to_lower", cfg.Pipeline[0].Name)
	assert.Equal(t, []string{"foo", "bar"}, cfg.Pipeline[1].Words)
	assert.True(t, cfg.Pipeline[1].CaseInsensitive)
	assert.Equal(t, "snowball", cfg.Pipeline[2].Algorithm)
	assert.Equal(t, 80, cfg.Preview.Length)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EmptyPipelineIsKept(t *testing.T) {
	path := writeFile(t, t.TempDir(), "c.yaml", "pipeline: []\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Pipeline)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "pipeline: [\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "log:\n  format: xml\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	path := writeFile(t, t.TempDir(), "c.yaml", "log:\n  level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingFileHonoursEnvLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadDefault_WritesDefaultsAndHonoursEnvLogLevel(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(EnvLogLevel, "error")

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "textcorpus", "config.yaml"), path)
	assert.Equal(t, "error", cfg.Log.Level)

	t.Setenv(EnvLogLevel, "")
	saved, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", saved.Log.Level)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := defaultConfig()
	want.Pipeline = append(want.Pipeline, StepConfig{Name: "stem", Algorithm: "porter"})

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.Pipeline, got.Pipeline)
}

func TestInputConfig_HasExtension(t *testing.T) {
	in := InputConfig{Extensions: []string{".txt", ".MD"}}
	assert.True(t, in.HasExtension("a/b.TXT"))
	assert.True(t, in.HasExtension("notes.md"))
	assert.False(t, in.HasExtension("image.png"))
}

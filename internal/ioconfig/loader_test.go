package ioconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/internal/ioconfig"
	"github.com/gnames/gnlang/pkg/config"
	"github.com/gnames/gnlang/pkg/errcode"
	"github.com/gnames/gnlang/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectYAML = `sources:
  corpus: data/trigrams.json
  ignore:
    Cyrillic: [tuk, kaz]
output:
  package: langs
  docs:
    - path: docs/LANGS.md
      table: scripts
identifiers:
  policy: always
`

func TestLoadProjectFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, config.ProjectConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(projectYAML), 0644))

	res, err := ioconfig.Load("", root)
	require.NoError(t, err)
	assert.Equal(t, "file", res.Source)
	assert.Equal(t, path, res.SourcePath)

	cfg := config.New()
	cfg.Update(res.Config.ToOptions())
	assert.Equal(t, "data/trigrams.json", cfg.Sources.Corpus)
	assert.Equal(t, "misc/supported_languages.csv", cfg.Sources.Registry)
	assert.Equal(t, "langs", cfg.Output.Package)
	assert.Equal(t, "always", cfg.Identifiers.Policy)
	assert.Equal(t,
		[]config.DocConfig{{Path: "docs/LANGS.md", Table: "scripts"}},
		cfg.Output.Docs)

	// viper lower-cases map keys
	assert.Equal(t, []string{"tuk", "kaz"}, cfg.Sources.Ignore["cyrillic"])
}

func TestLoadEmptyCollections(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, config.ProjectConfigFile)
	yml := "sources:\n  ignore: {}\noutput:\n  docs: []\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	res, err := ioconfig.Load("", root)
	require.NoError(t, err)
	assert.NotNil(t, res.Config.Sources.Ignore)
	assert.NotNil(t, res.Config.Output.Docs)

	cfg := config.New()
	require.NotEmpty(t, cfg.Sources.Ignore)
	require.NotEmpty(t, cfg.Output.Docs)
	cfg.Update(res.Config.ToOptions())
	assert.Empty(t, cfg.Sources.Ignore)
	assert.Empty(t, cfg.Output.Docs)

	// omitted collections keep defaults
	require.NoError(t, os.WriteFile(path, []byte("output:\n  package: x\n"), 0644))
	res, err = ioconfig.Load("", root)
	require.NoError(t, err)
	cfg = config.New()
	cfg.Update(res.Config.ToOptions())
	assert.Equal(t, config.New().Sources.Ignore, cfg.Sources.Ignore)
	assert.Equal(t, config.New().Output.Docs, cfg.Output.Docs)
}

func TestLoadEnv(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, config.ProjectConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(projectYAML), 0644))
	t.Setenv("GNLANG_OUTPUT_PACKAGE", "fromenv")
	t.Setenv("GNLANG_LOG_LEVEL", "debug")

	res, err := ioconfig.Load("", root)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", res.Config.Output.Package)
	assert.Equal(t, "debug", res.Config.Log.Level)
}

func TestLoadDefaults(t *testing.T) {
	res, err := ioconfig.Load("", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, res.SourcePath)
	assert.Empty(t, res.Config.ToOptions())

	t.Setenv("GNLANG_FORMATTER_COMMAND", "gofmt")
	res, err = ioconfig.Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "defaults+env", res.Source)
	assert.Equal(t, "gofmt", res.Config.Formatter.Command)
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(templates.ConfigYAML), 0644))

	res, err := ioconfig.Load(path, ".")
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update(res.Config.ToOptions())
	def := config.New()
	assert.Equal(t, def.Output, cfg.Output)
	assert.Equal(t, def.Log, cfg.Log)
	assert.Equal(t, []string{"tuk"}, cfg.Sources.Ignore["cyrillic"])
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("output: [unclosed"), 0644))

	tests := []struct {
		msg  string
		path string
		code gn.ErrorCode
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), errcode.ConfigFileNotFoundError},
		{"malformed", bad, errcode.ReadConfigError},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			_, err := ioconfig.Load(v.path, dir)
			var gnErr *gn.Error
			require.True(t, errors.As(err, &gnErr))
			assert.Equal(t, v.code, gnErr.Code)
		})
	}
}

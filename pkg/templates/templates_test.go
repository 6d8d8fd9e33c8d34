package templates_test

import (
	"testing"
	"text/template"

	"github.com/gnames/gnlang/pkg/config"
	"github.com/gnames/gnlang/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigYAMLMatchesDefaults(t *testing.T) {
	var cfg config.Config
	err := yaml.Unmarshal([]byte(templates.ConfigYAML), &cfg)
	require.NoError(t, err)

	def := config.New()
	assert.Equal(t, def.Sources, cfg.Sources)
	assert.Equal(t, def.Output, cfg.Output)
	assert.Equal(t, def.Identifiers, cfg.Identifiers)
	assert.Equal(t, def.Formatter, cfg.Formatter)
	assert.Equal(t, def.Log, cfg.Log)
}

func TestLangGoParses(t *testing.T) {
	assert.Contains(t, templates.LangGo, "Code generated by gnlang. DO NOT EDIT.")
	_, err := template.New("lang").Parse(templates.LangGo)
	assert.NoError(t, err)
}

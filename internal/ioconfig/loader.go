// Package ioconfig loads gnlang configuration from files and environment.
// This is an impure package that handles file system operations.
package ioconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnlang/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables recognized by gnlang.
const EnvPrefix = "GNLANG"

// LoadResult contains the loaded configuration and metadata about the source.
type LoadResult struct {
	// Config holds only values found in the file or environment. It is
	// meant to be applied to config.New() via ToOptions.
	Config *config.Config

	// SourcePath is the path to config file used, or empty if none.
	SourcePath string

	// Source is "file", "defaults", or "defaults+env".
	Source string
}

// Load reads configuration from a YAML file and environment variables.
// If configPath is empty, gnlang.yaml in rootDir is used when it exists.
// An explicit configPath that does not exist is an error.
func Load(configPath, rootDir string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	initEnvVars(v)

	if configPath == "" {
		path := filepath.Join(rootDir, config.ProjectConfigFile)
		if _, err := os.Stat(path); err == nil {
			configPath = path
		}
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, ConfigFileNotFoundError(configPath, err)
	}

	res := LoadResult{Source: "defaults"}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, ReadConfigError(configPath, err)
		}
		res.Source = "file"
		res.SourcePath = v.ConfigFileUsed()
	} else if hasEnvVars() {
		res.Source = "defaults+env"
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ReadConfigError(configPath, err)
	}
	keepEmpty(v, &cfg)
	res.Config = &cfg

	return &res, nil
}

// keepEmpty marks collections that are explicitly set to empty values in
// the file, so they clear the defaults instead of being skipped.
func keepEmpty(v *viper.Viper, cfg *config.Config) {
	if v.IsSet("sources.ignore") && cfg.Sources.Ignore == nil {
		cfg.Sources.Ignore = make(map[string][]string)
	}
	if v.IsSet("output.docs") && cfg.Output.Docs == nil {
		cfg.Output.Docs = make([]config.DocConfig, 0)
	}
}

// initEnvVars binds environment variables explicitly, so it is clear which
// of them are allowed. They match scalar fields of config.ToOptions().
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Sources
	_ = v.BindEnv("sources.registry")
	_ = v.BindEnv("sources.corpus")
	_ = v.BindEnv("sources.alphabets")
	_ = v.BindEnv("sources.delimiter")

	// Output
	_ = v.BindEnv("output.source")
	_ = v.BindEnv("output.package")
	_ = v.BindEnv("output.alphabets")
	_ = v.BindEnv("output.sqlite")

	// Generation
	_ = v.BindEnv("identifiers.policy")
	_ = v.BindEnv("formatter.command")

	// Log
	_ = v.BindEnv("log.level")
	_ = v.BindEnv("log.format")
	_ = v.BindEnv("log.destination")
}

// hasEnvVars checks if any GNLANG_* environment variables are set.
func hasEnvVars() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix+"_") {
			return true
		}
	}
	return false
}

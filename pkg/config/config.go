// Package config provides configuration management for gnlang.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > gnlang.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in gnlang.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, gnlang.yaml, and env vars):
//   - Sources: registry, corpus, alphabets, ignore, delimiter
//   - Output: source, package, alphabets, sqlite, docs
//   - Identifiers: policy
//   - Formatter: command
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - RootDir, HomeDir (set once at startup)
//   - DryRun (generate command)
//
// # Environment Variables
//
// Use GNLANG_ prefix with underscores for nesting:
//
//	GNLANG_SOURCES_REGISTRY=misc/supported_languages.csv
//	GNLANG_OUTPUT_SOURCE=lang/lang_gen.go
//	GNLANG_IDENTIFIERS_POLICY=on-collision
//	GNLANG_LOG_LEVEL=info
package config

import (
	"path/filepath"
)

// Config represents the complete gnlang configuration.
type Config struct {
	// Sources describes where raw linguistic data is read from.
	Sources SourcesConfig `mapstructure:"sources" yaml:"sources"`

	// Output describes generated artifacts.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Identifiers controls how profile identifiers are assigned.
	Identifiers IdentifiersConfig `mapstructure:"identifiers" yaml:"identifiers"`

	// Formatter is the post-processing step for generated source.
	Formatter FormatterConfig `mapstructure:"formatter" yaml:"formatter"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// RootDir is the directory relative paths are resolved against.
	// Defaults to the current working directory.
	RootDir string `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`

	// DryRun runs the whole pipeline without writing any artifact.
	DryRun bool `mapstructure:"-" yaml:"-"`
}

// SourcesConfig contains locations of input data.
type SourcesConfig struct {
	// Registry is a CSV file with supported languages. Recognized columns
	// are code, eng_name, name and native_speakers.
	Registry string `mapstructure:"registry" yaml:"registry"`

	// Corpus is a JSON file mapping script -> language code -> trigrams
	// joined by Delimiter.
	Corpus string `mapstructure:"corpus" yaml:"corpus"`

	// Alphabets is a YAML file with raw alphabets. Empty value disables
	// alphabet processing.
	Alphabets string `mapstructure:"alphabets" yaml:"alphabets"`

	// Ignore maps a script to language codes which are excluded from that
	// script's corpus. Script names are matched case-insensitively.
	Ignore map[string][]string `mapstructure:"ignore" yaml:"ignore"`

	// Delimiter separates trigrams in the corpus.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// OutputConfig contains locations and settings of generated artifacts.
type OutputConfig struct {
	// Source is the generated Go file with languages and trigram tables.
	Source string `mapstructure:"source" yaml:"source"`

	// Package is the Go package name of the generated source.
	Package string `mapstructure:"package" yaml:"package"`

	// Alphabets is the normalized alphabets YAML file.
	Alphabets string `mapstructure:"alphabets" yaml:"alphabets"`

	// SQLite is an optional SQLite snapshot of all profiles.
	// Empty value disables the snapshot.
	SQLite string `mapstructure:"sqlite" yaml:"sqlite"`

	// Docs are documents with tables that are kept in sync.
	Docs []DocConfig `mapstructure:"docs" yaml:"docs"`
}

// DocConfig points to a document with a generated table inside.
type DocConfig struct {
	// Path to the document.
	Path string `mapstructure:"path" yaml:"path"`

	// Table is the kind of the table: 'languages' or 'scripts'.
	Table string `mapstructure:"table" yaml:"table"`
}

// IdentifiersConfig contains settings of identifier assignment.
type IdentifiersConfig struct {
	// Policy is 'on-collision' (script is added only to codes that appear
	// under several scripts) or 'always' (every identifier gets a script).
	Policy string `mapstructure:"policy" yaml:"policy"`
}

// FormatterConfig contains settings of the generated source formatter.
type FormatterConfig struct {
	// Command is an external formatter command line that reads source from
	// STDIN and writes the result to STDOUT. When empty, go/format is used.
	Command string `mapstructure:"command" yaml:"command"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Sources: SourcesConfig{
			Registry:  filepath.Join("misc", "supported_languages.csv"),
			Corpus:    filepath.Join("misc", "data.json"),
			Alphabets: filepath.Join("misc", "alphabets", "raw.yml"),
			Ignore: map[string][]string{
				// Turkmen is conventionally written in Latin script.
				"Cyrillic": {"tuk"},
			},
			Delimiter: "|",
		},
		Output: OutputConfig{
			Source:    filepath.Join("lang", "lang_gen.go"),
			Package:   "lang",
			Alphabets: filepath.Join("misc", "alphabets", "alphabets.yml"),
			Docs: []DocConfig{
				{Path: "README.md", Table: "languages"},
			},
		},
		Identifiers: IdentifiersConfig{
			Policy: "on-collision",
		},
		Log: LogConfig{
			Format:      "text",
			Level:       "info",
			Destination: "stderr",
		},
		RootDir: ".",
	}

	return res
}

// Path resolves a path from the config against RootDir.
// Absolute paths are returned unchanged.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.RootDir, p)
}

package config

import (
	"fmt"
	"go/token"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for gnlang.yaml.
// Empty strings are skipped. Empty but non-nil Ignore and Docs are kept,
// they clear the defaults.
// Excludes runtime-only fields (RootDir, HomeDir, DryRun).
// Used for round-tripping gnlang.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	s = c.Sources.Registry
	if s != "" {
		res = append(res, OptSourcesRegistry(s))
	}
	s = c.Sources.Corpus
	if s != "" {
		res = append(res, OptSourcesCorpus(s))
	}
	s = c.Sources.Alphabets
	if s != "" {
		res = append(res, OptSourcesAlphabets(s))
	}
	if c.Sources.Ignore != nil {
		res = append(res, OptSourcesIgnore(c.Sources.Ignore))
	}
	s = c.Sources.Delimiter
	if s != "" {
		res = append(res, OptSourcesDelimiter(s))
	}

	s = c.Output.Source
	if s != "" {
		res = append(res, OptOutputSource(s))
	}
	s = c.Output.Package
	if s != "" {
		res = append(res, OptOutputPackage(s))
	}
	s = c.Output.Alphabets
	if s != "" {
		res = append(res, OptOutputAlphabets(s))
	}
	s = c.Output.SQLite
	if s != "" {
		res = append(res, OptOutputSQLite(s))
	}
	if c.Output.Docs != nil {
		res = append(res, OptOutputDocs(c.Output.Docs))
	}

	s = c.Identifiers.Policy
	if s != "" {
		res = append(res, OptIdentifiersPolicy(s))
	}

	s = c.Formatter.Command
	if s != "" {
		res = append(res, OptFormatterCommand(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidIdent(name, s string) bool {
	res := token.IsIdentifier(s)
	if !res {
		gn.Warn("<em>%s</em> '%s' is not a valid Go identifier, ignoring",
			name, s)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Identifiers.Policy": {"on-collision": s, "always": s},
		"Output.Docs.Table":  {"languages": s, "scripts": s},
		"Log.Level":          {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":         {"json": s, "text": s, "tint": s},
		"Log.Destination":    {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}

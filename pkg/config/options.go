package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSourcesRegistry sets the path to the language registry CSV file.
func OptSourcesRegistry(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sources Registry", s) {
			c.Sources.Registry = s
		}
	}
}

// OptSourcesCorpus sets the path to the trigram corpus JSON file.
func OptSourcesCorpus(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sources Corpus", s) {
			c.Sources.Corpus = s
		}
	}
}

// OptSourcesAlphabets sets the path to the raw alphabets YAML file.
// Use "-" to disable alphabet processing.
func OptSourcesAlphabets(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if s == "-" {
			c.Sources.Alphabets = ""
			return
		}
		if isValidString("Sources Alphabets", s) {
			c.Sources.Alphabets = s
		}
	}
}

// OptSourcesIgnore replaces the ignore-list. Codes are lower-cased,
// empty script names and codes are dropped.
func OptSourcesIgnore(m map[string][]string) Option {
	return func(c *Config) {
		res := make(map[string][]string, len(m))
		for script, codes := range m {
			script = strings.TrimSpace(script)
			if !isValidString("Sources Ignore script", script) {
				continue
			}
			for _, code := range codes {
				code = strings.ToLower(strings.TrimSpace(code))
				if isValidString("Sources Ignore code", code) {
					res[script] = append(res[script], code)
				}
			}
		}
		c.Sources.Ignore = res
	}
}

// OptSourcesDelimiter sets the delimiter of trigrams in the corpus.
// The delimiter must not be empty.
func OptSourcesDelimiter(s string) Option {
	return func(c *Config) {
		if isValidString("Sources Delimiter", s) {
			c.Sources.Delimiter = s
		}
	}
}

// OptOutputSource sets the path of the generated Go source.
func OptOutputSource(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Source", s) {
			c.Output.Source = s
		}
	}
}

// OptOutputPackage sets the package name of the generated Go source.
func OptOutputPackage(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidIdent("Output Package", s) {
			c.Output.Package = s
		}
	}
}

// OptOutputAlphabets sets the path of the normalized alphabets YAML file.
func OptOutputAlphabets(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Alphabets", s) {
			c.Output.Alphabets = s
		}
	}
}

// OptOutputSQLite sets the path of the SQLite snapshot.
// Use "-" to disable the snapshot.
func OptOutputSQLite(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if s == "-" {
			c.Output.SQLite = ""
			return
		}
		if isValidString("Output SQLite", s) {
			c.Output.SQLite = s
		}
	}
}

// OptOutputDocs replaces the list of synchronized documents.
// Documents with empty path or unknown table kind are ignored.
func OptOutputDocs(docs []DocConfig) Option {
	return func(c *Config) {
		res := make([]DocConfig, 0, len(docs))
		for _, d := range docs {
			d.Path = strings.TrimSpace(d.Path)
			d.Table = strings.ToLower(strings.TrimSpace(d.Table))
			if !isValidString("Output Docs path", d.Path) {
				continue
			}
			if !isValidEnum("Output.Docs.Table", d.Table) {
				continue
			}
			res = append(res, d)
		}
		c.Output.Docs = res
	}
}

// OptIdentifiersPolicy sets the identifier assignment policy.
// Valid values: "on-collision", "always".
func OptIdentifiersPolicy(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Identifiers.Policy", s) {
			c.Identifiers.Policy = s
		}
	}
}

// OptFormatterCommand sets an external formatter command line.
// Empty string switches back to the built-in formatter.
func OptFormatterCommand(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Formatter.Command = s
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptRootDir sets the directory relative paths are resolved against.
// Runtime-only field - not in ToOptions().
func OptRootDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Root Directory", s) {
			c.RootDir = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

// OptDryRun makes generate skip writing artifacts.
// Runtime-only field - not in ToOptions().
func OptDryRun(b bool) Option {
	return func(c *Config) {
		c.DryRun = b
	}
}

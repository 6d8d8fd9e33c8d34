// Package iotesting provides shared test utilities: source data fixtures
// written to a temporary project directory.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlang/pkg/config"
	"github.com/gnames/gnlang/pkg/langmodel"
	"github.com/stretchr/testify/require"
)

// Readme is a document with a languages table to be replaced.
const Readme = `# Languages

Supported languages:

| Language | ISO 639-3 | Enum |
| -------- | --------- | ---- |
| Old      | old       | Old  |

See also LICENSE.
`

// Registry is the language registry of DefaultFixture.
const Registry = `code,eng_name,name,native_speakers
eng,English,English,379
rus,Russian,Русский,154
srp,Serbian,Српски,9
tuk,Turkmen,Türkmençe,6.7
`

// Alphabets is the raw alphabets YAML of DefaultFixture.
const Alphabets = `latin_based:
  base: "A b C d"
  srp: "Č ć Đ"
  eng: ""
others:
  rus: "А б В г Ё"
`

// Trigrams returns n distinct trigrams that start with prefix.
func Trigrams(prefix string, n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = fmt.Sprintf("%s%c%c", prefix, 'a'+i/26%26, 'a'+i%26)
	}
	return res
}

// Fixture is source data of a test project.
type Fixture struct {
	// Registry is CSV content.
	Registry string

	// Corpus maps script -> code -> trigrams.
	Corpus map[string]map[string][]string

	// Alphabets is raw alphabets YAML, empty means no file.
	Alphabets string

	// Readme is README.md content, empty means no file.
	Readme string
}

// DefaultFixture covers a single-script language (eng), a language
// written in two scripts (srp), an ignore-listed pair (Cyrillic/tuk) and a
// code absent from the registry (qqq).
func DefaultFixture() *Fixture {
	return &Fixture{
		Registry: Registry,
		Corpus: map[string]map[string][]string{
			"Latin": {
				"eng": Trigrams("e", langmodel.TrigramCount),
				"srp": Trigrams("s", langmodel.TrigramCount),
				"tuk": Trigrams("t", langmodel.TrigramCount),
				"qqq": Trigrams("q", langmodel.TrigramCount),
			},
			"Cyrillic": {
				"rus": Trigrams("р", langmodel.TrigramCount),
				"srp": Trigrams("с", langmodel.TrigramCount),
				"tuk": Trigrams("т", langmodel.TrigramCount),
			},
		},
		Alphabets: Alphabets,
		Readme:    Readme,
	}
}

// CorpusJSON encodes corpus entries the way the corpus file stores them.
func CorpusJSON(t *testing.T, corpus map[string]map[string][]string) []byte {
	t.Helper()
	raw := make(map[string]map[string]string, len(corpus))
	for script, langs := range corpus {
		raw[script] = make(map[string]string, len(langs))
		for code, tt := range langs {
			raw[script][code] = strings.Join(tt, "|")
		}
	}
	enc := gnfmt.GNjson{}
	res, err := enc.Encode(raw)
	require.NoError(t, err)
	return res
}

// Write creates source files of the fixture in root at paths from the
// default configuration.
func (f *Fixture) Write(t *testing.T, root string) {
	t.Helper()
	cfg := config.New()

	WriteFile(t, root, cfg.Sources.Registry, []byte(f.Registry))
	WriteFile(t, root, cfg.Sources.Corpus, CorpusJSON(t, f.Corpus))
	if f.Alphabets != "" {
		WriteFile(t, root, cfg.Sources.Alphabets, []byte(f.Alphabets))
	}
	if f.Readme != "" {
		WriteFile(t, root, "README.md", []byte(f.Readme))
	}
}

// WriteFile writes content to root/path creating parent directories.
func WriteFile(t *testing.T, root, path string, content []byte) {
	t.Helper()
	path = filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
}

// Config returns the default configuration with RootDir set to root.
func Config(root string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptRootDir(root)})
	return cfg
}

// Package iocorpus reads the trigram corpus: a JSON object that maps
// scripts to language codes, and codes to trigrams joined by a delimiter.
//
//	{"Latin": {"eng": " th|the|he |...", ...}, "Cyrillic": {...}}
//
// Trigrams are ordered by descending frequency.
package iocorpus

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlang/internal/iofs"
	"github.com/gnames/gnlang/pkg/langmodel"
)

// DefaultDelimiter separates trigrams in the corpus.
const DefaultDelimiter = "|"

type rawCorpus map[string]map[string]string

// LoadFile reads the corpus from a JSON file.
func LoadFile(
	path string,
	ignore langmodel.Ignore,
	delim string,
) (*langmodel.Corpus, error) {
	data, err := iofs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(data, path, ignore, delim)
}

// Load reads the corpus from JSON data. Pairs from the ignore-list are
// dropped and recorded in Corpus.Ignored. Every other entry must have
// exactly langmodel.TrigramCount trigrams.
func Load(
	r io.Reader,
	ignore langmodel.Ignore,
	delim string,
) (*langmodel.Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ParseCorpusError("corpus", err)
	}
	return decode(data, "corpus", ignore, delim)
}

func decode(
	data []byte,
	source string,
	ignore langmodel.Ignore,
	delim string,
) (*langmodel.Corpus, error) {
	if delim == "" {
		delim = DefaultDelimiter
	}

	var raw rawCorpus
	enc := gnfmt.GNjson{}
	if err := enc.Decode(data, &raw); err != nil {
		return nil, ParseCorpusError(source, err)
	}

	res := langmodel.NewCorpus()
	for _, script := range slices.Sorted(maps.Keys(raw)) {
		langs := raw[script]
		for _, code := range slices.Sorted(maps.Keys(langs)) {
			k := langmodel.Key{Script: script, Code: code}
			if ignore.Has(k) {
				slog.Debug("Ignoring corpus entry", "script", script, "code", code)
				res.Ignored = append(res.Ignored, k)
				continue
			}

			trigrams := strings.Split(langs[code], delim)
			if len(trigrams) != langmodel.TrigramCount {
				return nil, langmodel.TrigramCountError(code, len(trigrams))
			}
			res.Entries[k] = trigrams
		}
	}

	slog.Debug("Corpus loaded",
		"source", source,
		"entries", len(res.Entries),
		"ignored", len(res.Ignored),
	)
	return res, nil
}

// Package langmodel builds the canonical list of language profiles out of a
// language registry and a per-script trigram corpus.
//
// This is a pure package: it does not read or write files. Loaders live in
// internal/ioregistry and internal/iocorpus, renderers in pkg/render.
package langmodel

import (
	"cmp"
	"slices"
	"strings"
)

// TrigramCount is the exact number of trigrams in every profile.
const TrigramCount = 300

// Metadata is the identity record of a language from the registry.
type Metadata struct {
	// Code is a 3-letter lowercase ISO 639-3 code.
	Code string

	// EngName is the English name of the language.
	EngName string

	// Name is the native name of the language. Defaults to EngName.
	Name string

	// NativeSpeakers is an optional informational number of speakers.
	NativeSpeakers *float64
}

// Key identifies a trigram list within a corpus.
type Key struct {
	Script string
	Code   string
}

// String returns "script/code" form of the key.
func (k Key) String() string {
	return k.Script + "/" + k.Code
}

// compareKeys orders keys by script, then by code.
func compareKeys(a, b Key) int {
	if c := strings.Compare(a.Script, b.Script); c != 0 {
		return c
	}
	return strings.Compare(a.Code, b.Code)
}

// Corpus contains ranked trigram lists of languages grouped by script.
type Corpus struct {
	// Entries maps script/code pairs to trigrams ordered by descending
	// frequency.
	Entries map[Key][]string

	// Ignored contains pairs that were present in the source but excluded
	// by the ignore-list.
	Ignored []Key
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{Entries: make(map[Key][]string)}
}

// Keys returns corpus keys sorted by script and code.
func (c *Corpus) Keys() []Key {
	res := make([]Key, 0, len(c.Entries))
	for k := range c.Entries {
		res = append(res, k)
	}
	slices.SortFunc(res, compareKeys)
	return res
}

// Ignore maps scripts to language codes excluded from those scripts.
// Scripts are compared case-insensitively.
type Ignore map[string][]string

// Has returns true if the script/code pair is excluded.
func (ig Ignore) Has(k Key) bool {
	for script, codes := range ig {
		if !strings.EqualFold(script, k.Script) {
			continue
		}
		if slices.Contains(codes, k.Code) {
			return true
		}
	}
	return false
}

// Profile is a canonical language profile, the unit of every generated
// artifact.
type Profile struct {
	// ID is unique across all profiles. It equals Code unless the code
	// needs script qualification.
	ID string

	Code           string
	EngName        string
	Name           string
	NativeSpeakers *float64

	// Script is the writing system of the trigram list.
	Script string

	// Trigrams has exactly TrigramCount elements.
	Trigrams []string

	// Alphabet is the normalized alphabet of the language, if known.
	Alphabet string
}

// SkipReason explains why a corpus entry did not become a profile.
type SkipReason int

const (
	// SkipUnknownCode means the code is absent from the registry.
	SkipUnknownCode SkipReason = iota
	// SkipIgnored means the pair is in the ignore-list.
	SkipIgnored
)

// String returns a human readable reason.
func (r SkipReason) String() string {
	switch r {
	case SkipUnknownCode:
		return "code is not in the registry"
	case SkipIgnored:
		return "excluded by the ignore-list"
	default:
		return "unknown"
	}
}

// Skipped is a corpus entry that was dropped from the model.
type Skipped struct {
	Key    Key
	Reason SkipReason
}

// Model is the result of a build.
type Model struct {
	// Profiles are sorted by ID.
	Profiles []Profile

	// Collisions are codes that appear under more than one script.
	Collisions []string

	// Skipped are dropped corpus entries, sorted by script and code.
	Skipped []Skipped
}

// ScriptGroup contains profiles that share a script.
type ScriptGroup struct {
	Script   string
	Profiles []Profile
}

// Groups collects profiles by script. Scripts with fewer than minSize
// profiles are left out. Groups are sorted by script name, profiles keep
// their original order.
func Groups(profiles []Profile, minSize int) []ScriptGroup {
	idx := make(map[string]int)
	var res []ScriptGroup
	for _, p := range profiles {
		i, ok := idx[p.Script]
		if !ok {
			i = len(res)
			idx[p.Script] = i
			res = append(res, ScriptGroup{Script: p.Script})
		}
		res[i].Profiles = append(res[i].Profiles, p)
	}

	res = slices.DeleteFunc(res, func(g ScriptGroup) bool {
		return len(g.Profiles) < minSize
	})
	slices.SortFunc(res, func(a, b ScriptGroup) int {
		return cmp.Compare(a.Script, b.Script)
	})
	return res
}

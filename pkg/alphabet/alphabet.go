// Package alphabet normalizes raw alphabet definitions into canonical
// character sets.
//
// A canonical set is lower-cased, contains no spaces and no duplicates, and
// its characters are sorted by code point. Alphabets of Latin-based
// languages are defined as a shared base plus a language-specific
// extension; they are merged before normalization.
package alphabet

import (
	"slices"
	"strings"
)

// Normalize returns the canonical character set of raw.
// Normalize is idempotent.
func Normalize(raw string) string {
	rs := []rune(strings.ToLower(raw))
	rs = slices.DeleteFunc(rs, func(r rune) bool { return r == ' ' })
	slices.Sort(rs)
	rs = slices.Compact(rs)
	return string(rs)
}

// Merge combines a base set with an extension and normalizes the result.
// The order of arguments does not change the result.
func Merge(base, extension string) string {
	return Normalize(base + extension)
}

// Raw is the layout of raw alphabet data.
type Raw struct {
	// LatinBased maps language codes to extensions of the shared Latin base.
	// The base itself is stored under BaseKey.
	LatinBased map[string]string `yaml:"latin_based"`

	// Others maps language codes to complete alphabets.
	Others map[string]string `yaml:"others"`
}

// BaseKey is the key of the shared base set in Raw.LatinBased.
const BaseKey = "base"

// LatinScript is the script of Latin-based alphabets.
const LatinScript = "Latin"

// Alphabet is a normalized character set of a language.
type Alphabet struct {
	// Code is the language code.
	Code string

	// Script restricts the alphabet to profiles of one script.
	// Empty Script matches any script.
	Script string

	// Chars is the normalized character set.
	Chars string
}

// Matches returns true if the alphabet belongs to a language profile
// with the given code and script.
func (a Alphabet) Matches(code, script string) bool {
	if a.Code != code {
		return false
	}
	return a.Script == "" || strings.EqualFold(a.Script, script)
}

// Build normalizes raw alphabets. Latin-based alphabets are merged with the
// shared base. A code may appear in both groups, then its Latin-based
// alphabet serves Latin profiles and the other one serves the rest.
// The result is sorted by code, script-specific alphabets go first.
func Build(raw Raw) []Alphabet {
	base := raw.LatinBased[BaseKey]
	res := make([]Alphabet, 0, len(raw.LatinBased)+len(raw.Others))

	for code, ext := range raw.LatinBased {
		if code == BaseKey {
			continue
		}
		res = append(res, Alphabet{
			Code:   code,
			Script: LatinScript,
			Chars:  Merge(base, ext),
		})
	}

	for code, chars := range raw.Others {
		res = append(res, Alphabet{Code: code, Chars: Normalize(chars)})
	}

	slices.SortFunc(res, func(a, b Alphabet) int {
		if c := strings.Compare(a.Code, b.Code); c != 0 {
			return c
		}
		// non-empty script first
		return strings.Compare(b.Script, a.Script)
	})
	return res
}

// ToMap converts alphabets to a code -> characters map, the layout of the
// normalized alphabets file. For a code with several alphabets the last
// one wins.
func ToMap(aa []Alphabet) map[string]string {
	res := make(map[string]string, len(aa))
	for _, v := range aa {
		res[v.Code] = v.Chars
	}
	return res
}

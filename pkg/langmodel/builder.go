package langmodel

import (
	"slices"
	"strings"
	"unicode"

	"github.com/gnames/gnlang/pkg/alphabet"
)

// IdentifierPolicy decides when a profile identifier gets its script
// appended to the language code.
type IdentifierPolicy int

const (
	// QualifyOnCollision adds script only to codes that appear under more
	// than one script.
	QualifyOnCollision IdentifierPolicy = iota
	// QualifyAlways adds script to every identifier.
	QualifyAlways
)

// NewIdentifierPolicy converts a config value to IdentifierPolicy.
// Unknown values fall back to QualifyOnCollision.
func NewIdentifierPolicy(s string) IdentifierPolicy {
	if strings.EqualFold(strings.TrimSpace(s), "always") {
		return QualifyAlways
	}
	return QualifyOnCollision
}

// String returns the config value of the policy.
func (p IdentifierPolicy) String() string {
	if p == QualifyAlways {
		return "always"
	}
	return "on-collision"
}

// Builder joins registry metadata with corpus entries.
type Builder struct {
	policy    IdentifierPolicy
	alphabets []alphabet.Alphabet
}

// Option configures a Builder.
type Option func(*Builder)

// OptPolicy sets identifier policy of the builder.
func OptPolicy(p IdentifierPolicy) Option {
	return func(b *Builder) {
		b.policy = p
	}
}

// OptAlphabets attaches normalized alphabets to matching profiles.
func OptAlphabets(aa []alphabet.Alphabet) Option {
	return func(b *Builder) {
		b.alphabets = aa
	}
}

// NewBuilder creates a Builder with QualifyOnCollision policy and no
// alphabets.
func NewBuilder(opts ...Option) *Builder {
	res := &Builder{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Build creates the canonical list of profiles.
//
// Corpus entries with codes missing from metadata are skipped. A code
// found under several scripts produces one profile per script, and
// their identifiers are qualified by script. Build fails without a
// partial result if any trigram list has a wrong size or if two profiles
// share an identifier. Profiles are sorted by identifier.
func (b *Builder) Build(meta []Metadata, corpus *Corpus) (*Model, error) {
	if corpus == nil {
		corpus = NewCorpus()
	}
	res := &Model{}

	index := make(map[string]Metadata, len(meta))
	for _, m := range meta {
		if _, ok := index[m.Code]; ok {
			continue
		}
		index[m.Code] = m
	}

	// first pass: find scripts of every known code
	var keys []Key
	scripts := make(map[string][]string)
	for _, k := range corpus.Keys() {
		if _, ok := index[k.Code]; !ok {
			res.Skipped = append(res.Skipped,
				Skipped{Key: k, Reason: SkipUnknownCode})
			continue
		}
		keys = append(keys, k)
		scripts[k.Code] = append(scripts[k.Code], k.Script)
	}
	for _, k := range corpus.Ignored {
		res.Skipped = append(res.Skipped, Skipped{Key: k, Reason: SkipIgnored})
	}
	slices.SortFunc(res.Skipped, func(a, b Skipped) int {
		return compareKeys(a.Key, b.Key)
	})

	for code, ss := range scripts {
		if len(ss) > 1 {
			res.Collisions = append(res.Collisions, code)
		}
	}
	slices.Sort(res.Collisions)

	// second pass: assign identifiers
	ids := make(map[string]Key, len(keys))
	profiles := make([]Profile, 0, len(keys))
	for _, k := range keys {
		trigrams := corpus.Entries[k]
		if len(trigrams) != TrigramCount {
			return nil, TrigramCountError(k.Code, len(trigrams))
		}

		id := b.identifier(k, len(scripts[k.Code]))
		if prev, ok := ids[id]; ok {
			return nil, DuplicateIdentifierError(id, prev, k)
		}
		ids[id] = k

		m := index[k.Code]
		profiles = append(profiles, Profile{
			ID:             id,
			Code:           m.Code,
			EngName:        m.EngName,
			Name:           m.Name,
			NativeSpeakers: m.NativeSpeakers,
			Script:         k.Script,
			Trigrams:       slices.Clone(trigrams),
			Alphabet:       b.alphabet(k),
		})
	}

	slices.SortFunc(profiles, func(a, b Profile) int {
		return strings.Compare(a.ID, b.ID)
	})
	res.Profiles = profiles
	return res, nil
}

func (b *Builder) identifier(k Key, scriptsNum int) string {
	if b.policy == QualifyOnCollision && scriptsNum == 1 {
		return k.Code
	}
	return k.Code + ScriptSuffix(k.Script)
}

func (b *Builder) alphabet(k Key) string {
	for _, a := range b.alphabets {
		if a.Matches(k.Code, k.Script) {
			return a.Chars
		}
	}
	return ""
}

// ScriptSuffix converts a script label to an identifier suffix by removing
// everything except letters and digits.
func ScriptSuffix(script string) string {
	var sb strings.Builder
	for _, r := range script {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

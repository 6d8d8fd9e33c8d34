// Package gnlang defines the interface of the language data compiler.
package gnlang

import (
	"context"
	"time"

	"github.com/gnames/gnlang/pkg/langmodel"
)

// Generator compiles raw linguistic data into artifacts: the generated Go
// source, documentation tables, normalized alphabets and an optional
// SQLite snapshot. All steps run sequentially and every artifact is
// rendered in memory before anything is written.
type Generator interface {
	// Model loads sources and builds canonical language profiles.
	Model(ctx context.Context) (*langmodel.Model, error)

	// Generate renders all artifacts and writes the ones that changed.
	// In dry-run mode nothing is written.
	Generate(ctx context.Context) (*Summary, error)

	// Check renders artifacts in memory and compares them with files on
	// disk. It returns StaleArtifactError if any of them differs.
	// The SQLite snapshot is not checked.
	Check(ctx context.Context) (*Summary, error)

	// Alphabets normalizes raw alphabets and writes only the normalized
	// alphabets file.
	Alphabets(ctx context.Context) (*Summary, error)
}

// Summary describes the result of a run.
type Summary struct {
	// Profiles is the number of generated language profiles.
	Profiles int

	// Codes is the number of distinct language codes.
	Codes int

	// Scripts is the number of distinct scripts.
	Scripts int

	// Alphabets is the number of normalized alphabets.
	Alphabets int

	// Collisions are codes found under several scripts.
	Collisions []string

	// Skipped are corpus entries left out of the model.
	Skipped []langmodel.Skipped

	// Written are paths of written artifacts. In dry-run mode these are
	// artifacts that would be written.
	Written []string

	// Unchanged are paths of artifacts that already were up to date.
	Unchanged []string

	// Stale are paths of out of date artifacts found by Check.
	Stale []string

	// DryRun is true if nothing was written on purpose.
	DryRun bool

	// Duration of the run.
	Duration time.Duration
}

// NewSummary creates a summary of a model.
func NewSummary(m *langmodel.Model) *Summary {
	res := &Summary{}
	if m == nil {
		return res
	}

	codes := make(map[string]struct{})
	for _, p := range m.Profiles {
		codes[p.Code] = struct{}{}
	}
	res.Profiles = len(m.Profiles)
	res.Codes = len(codes)
	res.Scripts = len(langmodel.Groups(m.Profiles, 0))
	res.Collisions = m.Collisions
	res.Skipped = m.Skipped
	return res
}

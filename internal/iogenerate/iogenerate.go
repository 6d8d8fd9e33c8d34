// Package iogenerate implements gnlang.Generator: the batch pipeline that
// loads sources, builds language profiles, renders artifacts and writes
// them.
package iogenerate

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlang/internal/ioalphabet"
	"github.com/gnames/gnlang/internal/ioartifact"
	"github.com/gnames/gnlang/internal/iocorpus"
	"github.com/gnames/gnlang/internal/iofs"
	"github.com/gnames/gnlang/internal/ioregistry"
	"github.com/gnames/gnlang/internal/iosqlite"
	"github.com/gnames/gnlang/pkg/alphabet"
	"github.com/gnames/gnlang/pkg/config"
	"github.com/gnames/gnlang/pkg/docsync"
	"github.com/gnames/gnlang/pkg/gnlang"
	"github.com/gnames/gnlang/pkg/langmodel"
	"github.com/gnames/gnlang/pkg/render"
)

type generator struct {
	cfg      *config.Config
	fmt      ioartifact.Formatter
	progress bool
}

// Option configures the generator.
type Option func(*generator)

// OptFormatter replaces the formatter created from config.
func OptFormatter(f ioartifact.Formatter) Option {
	return func(g *generator) {
		g.fmt = f
	}
}

// OptProgress enables progress bars.
func OptProgress(b bool) Option {
	return func(g *generator) {
		g.progress = b
	}
}

// New creates a Generator for the given configuration.
func New(cfg *config.Config, opts ...Option) gnlang.Generator {
	res := &generator{
		cfg: cfg,
		fmt: ioartifact.NewFormatter(cfg.Formatter.Command),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// SourcePaths returns resolved paths of all source files of the
// configuration.
func SourcePaths(cfg *config.Config) []string {
	res := []string{
		cfg.Path(cfg.Sources.Registry),
		cfg.Path(cfg.Sources.Corpus),
	}
	if cfg.Sources.Alphabets != "" {
		res = append(res, cfg.Path(cfg.Sources.Alphabets))
	}
	return res
}

// Model implements gnlang.Generator.
func (g *generator) Model(ctx context.Context) (*langmodel.Model, error) {
	m, _, err := g.load(ctx)
	return m, err
}

// Generate implements gnlang.Generator.
func (g *generator) Generate(ctx context.Context) (*gnlang.Summary, error) {
	start := time.Now()
	m, aa, err := g.load(ctx)
	if err != nil {
		return nil, err
	}

	arts, err := g.artifacts(ctx, m, aa)
	if err != nil {
		return nil, err
	}

	res := gnlang.NewSummary(m)
	res.Alphabets = len(aa)
	res.DryRun = g.cfg.DryRun

	if g.cfg.DryRun {
		if err = dryRun(res, arts); err != nil {
			return nil, err
		}
		if g.cfg.Output.SQLite != "" {
			res.Written = append(res.Written, g.cfg.Path(g.cfg.Output.SQLite))
		}
		res.Duration = time.Since(start)
		logSummary("Dry run finished, nothing is written", res)
		return res, nil
	}

	stage := ioartifact.NewStage()
	defer stage.Discard()

	for _, a := range arts {
		if _, err = stage.Add(a); err != nil {
			return nil, err
		}
	}

	if g.cfg.Output.SQLite != "" {
		if err = g.exportSQLite(ctx, stage, m); err != nil {
			return nil, err
		}
	}

	res.Written = stage.Paths()
	res.Unchanged = stage.Unchanged()
	if err = stage.Commit(); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	logSummary("Generation finished", res)
	return res, nil
}

// dryRun fills the summary with artifacts that would be written.
func dryRun(res *gnlang.Summary, arts []ioartifact.Artifact) error {
	stale, err := ioartifact.Stale(arts)
	if err != nil {
		return err
	}
	res.Written = stale
	res.Unchanged = unchanged(arts, stale)
	return nil
}

// Check implements gnlang.Generator.
func (g *generator) Check(ctx context.Context) (*gnlang.Summary, error) {
	start := time.Now()
	m, aa, err := g.load(ctx)
	if err != nil {
		return nil, err
	}

	arts, err := g.artifacts(ctx, m, aa)
	if err != nil {
		return nil, err
	}

	res := gnlang.NewSummary(m)
	res.Alphabets = len(aa)
	res.Stale, err = ioartifact.Stale(arts)
	if err != nil {
		return nil, err
	}
	res.Duration = time.Since(start)

	res.Unchanged = unchanged(arts, res.Stale)
	for _, path := range res.Stale {
		slog.Warn("Artifact is out of date", "path", path)
	}
	if len(res.Stale) > 0 {
		return res, ioartifact.StaleArtifactError(res.Stale[0], len(res.Stale))
	}

	logSummary("Check finished", res)
	return res, nil
}

// Alphabets implements gnlang.Generator.
func (g *generator) Alphabets(ctx context.Context) (*gnlang.Summary, error) {
	start := time.Now()
	res := &gnlang.Summary{DryRun: g.cfg.DryRun}

	aa, err := g.loadAlphabets()
	if err != nil {
		return nil, err
	}
	res.Alphabets = len(aa)

	art, ok, err := g.alphabetsArtifact(aa)
	if err != nil || !ok {
		return res, err
	}

	if g.cfg.DryRun {
		if err = dryRun(res, []ioartifact.Artifact{art}); err != nil {
			return nil, err
		}
	} else {
		stage := ioartifact.NewStage()
		defer stage.Discard()
		if _, err = stage.Add(art); err != nil {
			return nil, err
		}
		res.Written = stage.Paths()
		res.Unchanged = stage.Unchanged()
		if err = stage.Commit(); err != nil {
			return nil, err
		}
	}

	res.Duration = time.Since(start)
	slog.Info("Alphabets normalized",
		"alphabets", humanize.Comma(int64(res.Alphabets)),
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	return res, nil
}

func (g *generator) load(
	ctx context.Context,
) (*langmodel.Model, []alphabet.Alphabet, error) {
	cfg := g.cfg

	meta, err := ioregistry.LoadFile(cfg.Path(cfg.Sources.Registry))
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Registry loaded", "languages", humanize.Comma(int64(len(meta))))

	corpus, err := iocorpus.LoadFile(
		cfg.Path(cfg.Sources.Corpus),
		langmodel.Ignore(cfg.Sources.Ignore),
		cfg.Sources.Delimiter,
	)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Corpus loaded", "entries", humanize.Comma(int64(len(corpus.Entries))))

	aa, err := g.loadAlphabets()
	if err != nil {
		return nil, nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, nil, err
	}

	b := langmodel.NewBuilder(
		langmodel.OptPolicy(langmodel.NewIdentifierPolicy(cfg.Identifiers.Policy)),
		langmodel.OptAlphabets(aa),
	)
	m, err := b.Build(meta, corpus)
	if err != nil {
		return nil, nil, err
	}

	for _, s := range m.Skipped {
		slog.Warn("Corpus entry dropped",
			"script", s.Key.Script,
			"code", s.Key.Code,
			"reason", s.Reason.String(),
		)
	}
	for _, code := range m.Collisions {
		slog.Debug("Code has several scripts", "code", code)
	}

	return m, aa, nil
}

func (g *generator) loadAlphabets() ([]alphabet.Alphabet, error) {
	if g.cfg.Sources.Alphabets == "" {
		return nil, nil
	}
	path := g.cfg.Path(g.cfg.Sources.Alphabets)
	if !iofs.Exists(path) {
		slog.Warn("Alphabets file not found, skipping alphabets", "path", path)
		return nil, nil
	}
	return ioalphabet.LoadFile(path)
}

// artifacts renders every file artifact in memory.
func (g *generator) artifacts(
	ctx context.Context,
	m *langmodel.Model,
	aa []alphabet.Alphabet,
) ([]ioartifact.Artifact, error) {
	cfg := g.cfg

	r, err := render.New(cfg.Output.Package)
	if err != nil {
		return nil, err
	}

	src, err := r.Source(m.Profiles)
	if err != nil {
		return nil, err
	}
	if src, err = g.fmt.Format(ctx, src); err != nil {
		return nil, err
	}
	res := []ioartifact.Artifact{
		{Path: cfg.Path(cfg.Output.Source), Content: src},
	}

	art, ok, err := g.alphabetsArtifact(aa)
	if err != nil {
		return nil, err
	}
	if ok {
		res = append(res, art)
	}

	docs, err := g.docs(r, m.Profiles)
	if err != nil {
		return nil, err
	}
	res = append(res, docs...)

	return res, nil
}

func (g *generator) alphabetsArtifact(
	aa []alphabet.Alphabet,
) (ioartifact.Artifact, bool, error) {
	cfg := g.cfg
	if cfg.Sources.Alphabets == "" || cfg.Output.Alphabets == "" || len(aa) == 0 {
		return ioartifact.Artifact{}, false, nil
	}
	content, err := ioalphabet.Encode(aa)
	if err != nil {
		return ioartifact.Artifact{}, false, err
	}
	art := ioartifact.Artifact{
		Path:    cfg.Path(cfg.Output.Alphabets),
		Content: content,
	}
	return art, true, nil
}

// docs updates documents in memory. Several tables may live in the same
// document, they are applied one after another.
func (g *generator) docs(
	r *render.Renderer,
	profiles []langmodel.Profile,
) ([]ioartifact.Artifact, error) {
	var res []ioartifact.Artifact
	idx := make(map[string]int)

	for _, doc := range g.cfg.Output.Docs {
		path := g.cfg.Path(doc.Path)
		i, ok := idx[path]
		if !ok {
			content, err := iofs.ReadFile(path)
			if err != nil {
				return nil, err
			}
			i = len(res)
			idx[path] = i
			res = append(res, ioartifact.Artifact{Path: path, Content: content})
		}

		marker, table := r.DocTable(doc.Table, profiles)
		content, err := docsync.Sync(res[i].Content, marker, table)
		if err != nil {
			slog.Error("Cannot update document", "path", path, "table", doc.Table)
			return nil, err
		}
		res[i].Content = content
	}
	return res, nil
}

func (g *generator) exportSQLite(
	ctx context.Context,
	stage *ioartifact.Stage,
	m *langmodel.Model,
) error {
	path := g.cfg.Path(g.cfg.Output.SQLite)
	tmp, err := stage.TempPath(path)
	if err != nil {
		return err
	}
	stage.Attach(path, tmp)

	exp := iosqlite.New(iosqlite.OptProgress(g.progress))
	return exp.Export(ctx, tmp, m.Profiles)
}

func logSummary(msg string, s *gnlang.Summary) {
	slog.Info(msg,
		"profiles", humanize.Comma(int64(s.Profiles)),
		"codes", humanize.Comma(int64(s.Codes)),
		"scripts", humanize.Comma(int64(s.Scripts)),
		"collisions", len(s.Collisions),
		"skipped", len(s.Skipped),
		"written", len(s.Written),
		"unchanged", len(s.Unchanged),
		"duration", gnfmt.TimeString(s.Duration.Seconds()),
	)
}

func unchanged(arts []ioartifact.Artifact, stale []string) []string {
	var res []string
	for _, a := range arts {
		if !slices.Contains(stale, a.Path) {
			res = append(res, a.Path)
		}
	}
	return res
}

// Package iosqlite exports language profiles into an SQLite database.
package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	gnlang "github.com/gnames/gnlang/pkg"
	"github.com/gnames/gnlang/pkg/langmodel"
	"github.com/gnames/gnlang/pkg/render"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

const schema = `
CREATE TABLE meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE languages (
	id              TEXT PRIMARY KEY,
	code            TEXT NOT NULL,
	eng_name        TEXT NOT NULL,
	name            TEXT NOT NULL,
	script          TEXT NOT NULL,
	native_speakers REAL,
	alphabet        TEXT
);
CREATE INDEX idx_languages_code ON languages(code);
CREATE INDEX idx_languages_script ON languages(script);

CREATE TABLE trigrams (
	lang_id TEXT NOT NULL REFERENCES languages(id),
	rank    INTEGER NOT NULL,
	trigram TEXT NOT NULL,
	PRIMARY KEY (lang_id, rank)
);
CREATE INDEX idx_trigrams_trigram ON trigrams(trigram);
`

// Exporter writes profiles to SQLite.
type Exporter struct {
	progress bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// OptProgress enables a progress bar.
func OptProgress(b bool) Option {
	return func(e *Exporter) {
		e.progress = b
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	res := &Exporter{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Export writes profiles into a new database at path. The file must not
// exist or be empty. Rank of a trigram starts with 1 for the most
// frequent one.
func (e *Exporter) Export(
	ctx context.Context,
	path string,
	profiles []langmodel.Profile,
) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLiteExportError(path, err)
	}
	defer db.Close()

	if _, err = db.ExecContext(ctx, schema); err != nil {
		return SQLiteExportError(path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return SQLiteExportError(path, err)
	}
	defer tx.Rollback()

	if err = e.insert(ctx, tx, profiles); err != nil {
		return SQLiteExportError(path, err)
	}

	if err = tx.Commit(); err != nil {
		return SQLiteExportError(path, err)
	}

	slog.Info("SQLite snapshot exported",
		"path", path,
		"languages", len(profiles),
	)
	return nil
}

func (e *Exporter) insert(
	ctx context.Context,
	tx *sql.Tx,
	profiles []langmodel.Profile,
) error {
	meta := [][2]string{
		{"content_id", render.ContentID(profiles).String()},
		{"generator_version", gnlang.Version},
		{"trigram_count", fmt.Sprint(langmodel.TrigramCount)},
	}
	for _, m := range meta {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO meta (key, value) VALUES (?, ?)", m[0], m[1],
		); err != nil {
			return err
		}
	}

	langStmt, err := tx.PrepareContext(ctx, `INSERT INTO languages
	(id, code, eng_name, name, script, native_speakers, alphabet)
	VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer langStmt.Close()

	triStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO trigrams (lang_id, rank, trigram) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer triStmt.Close()

	var bar *pb.ProgressBar
	if e.progress {
		bar = pb.Full.Start(len(profiles))
		bar.Set("prefix", "SQLite export: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	for _, p := range profiles {
		var alpha sql.NullString
		if p.Alphabet != "" {
			alpha = sql.NullString{String: p.Alphabet, Valid: true}
		}
		if _, err = langStmt.ExecContext(ctx,
			p.ID, p.Code, p.EngName, p.Name, p.Script, p.NativeSpeakers, alpha,
		); err != nil {
			return fmt.Errorf("language %s: %w", p.ID, err)
		}

		for i, tri := range p.Trigrams {
			if _, err = triStmt.ExecContext(ctx, p.ID, i+1, tri); err != nil {
				return fmt.Errorf("trigram %d of %s: %w", i+1, p.ID, err)
			}
		}

		if bar != nil {
			bar.Increment()
		}
	}
	return nil
}

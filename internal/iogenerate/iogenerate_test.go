package iogenerate_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/internal/iogenerate"
	"github.com/gnames/gnlang/internal/iotesting"
	"github.com/gnames/gnlang/pkg/config"
	"github.com/gnames/gnlang/pkg/errcode"
	"github.com/gnames/gnlang/pkg/langmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type badFormatter struct{}

func (badFormatter) Format(context.Context, []byte) ([]byte, error) {
	return nil, errors.New("formatter is broken")
}

func setup(t *testing.T, f *iotesting.Fixture, opts ...config.Option) (string, *config.Config) {
	t.Helper()
	root := t.TempDir()
	f.Write(t, root)
	cfg := iotesting.Config(root)
	cfg.Update(opts)
	return root, cfg
}

func ids(m *langmodel.Model) []string {
	var res []string
	for _, p := range m.Profiles {
		res = append(res, p.ID)
	}
	return res
}

func read(t *testing.T, root, path string) string {
	t.Helper()
	res, err := os.ReadFile(filepath.Join(root, path))
	require.NoError(t, err)
	return string(res)
}

func TestModel(t *testing.T) {
	_, cfg := setup(t, iotesting.DefaultFixture())
	g := iogenerate.New(cfg)

	m, err := g.Model(context.Background())
	require.NoError(t, err)
	// Cyrillic/tuk is ignore-listed, qqq is not in the registry
	assert.Equal(t,
		[]string{"eng", "rus", "srpCyrillic", "srpLatin", "tuk"}, ids(m))
	assert.Equal(t, []string{"srp"}, m.Collisions)
	assert.Equal(t, []langmodel.Skipped{
		{
			Key:    langmodel.Key{Script: "Cyrillic", Code: "tuk"},
			Reason: langmodel.SkipIgnored,
		},
		{
			Key:    langmodel.Key{Script: "Latin", Code: "qqq"},
			Reason: langmodel.SkipUnknownCode,
		},
	}, m.Skipped)

	alphabets := make(map[string]string)
	for _, p := range m.Profiles {
		alphabets[p.ID] = p.Alphabet
	}
	assert.Equal(t, "abcd", alphabets["eng"])
	assert.Equal(t, "abcdćčđ", alphabets["srpLatin"])
	assert.Equal(t, "абвгё", alphabets["rus"])
}

func TestModelSingleLanguage(t *testing.T) {
	f := &iotesting.Fixture{
		Registry: "code,eng_name\neng,English\n",
		Corpus: map[string]map[string][]string{
			"Latin": {"eng": iotesting.Trigrams("e", langmodel.TrigramCount)},
		},
	}
	_, cfg := setup(t, f)

	m, err := iogenerate.New(cfg).Model(context.Background())
	require.NoError(t, err)
	require.Len(t, m.Profiles, 1)
	assert.Equal(t, "eng", m.Profiles[0].ID)
	assert.Equal(t, "English", m.Profiles[0].Name)
}

func TestModelPolicyAlways(t *testing.T) {
	_, cfg := setup(t, iotesting.DefaultFixture(),
		config.OptIdentifiersPolicy("always"))

	m, err := iogenerate.New(cfg).Model(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"engLatin", "rusCyrillic", "srpCyrillic", "srpLatin", "tukLatin",
	}, ids(m))
}

func TestModelTrigramCount(t *testing.T) {
	f := iotesting.DefaultFixture()
	f.Corpus["Latin"]["xyz"] = iotesting.Trigrams("x", 299)
	_, cfg := setup(t, f)

	_, err := iogenerate.New(cfg).Model(context.Background())
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.TrigramCountError, gnErr.Code)
	assert.Equal(t, "xyz", gnErr.Vars[0])
	assert.Equal(t, 299, gnErr.Vars[1])
}

func TestModelNoAlphabets(t *testing.T) {
	f := iotesting.DefaultFixture()
	f.Alphabets = ""
	_, cfg := setup(t, f)

	m, err := iogenerate.New(cfg).Model(context.Background())
	require.NoError(t, err)
	for _, p := range m.Profiles {
		assert.Empty(t, p.Alphabet, p.ID)
	}
}

func TestGenerate(t *testing.T) {
	root, cfg := setup(t, iotesting.DefaultFixture())
	g := iogenerate.New(cfg)

	s, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, s.Profiles)
	assert.Equal(t, 4, s.Codes)
	assert.Equal(t, 2, s.Scripts)
	assert.Equal(t, 3, s.Alphabets)
	assert.Len(t, s.Skipped, 2)
	assert.Len(t, s.Written, 3)
	assert.Empty(t, s.Unchanged)
	assert.False(t, s.DryRun)

	src := read(t, root, filepath.Join("lang", "lang_gen.go"))
	assert.True(t, strings.HasPrefix(src, "// Code generated by gnlang. DO NOT EDIT."))
	assert.Contains(t, src, "package lang")
	assert.Contains(t, src, "SrpLatin")
	assert.Contains(t, src, "SrpCyrillic")
	assert.NotContains(t, src, "Qqq")

	readme := read(t, root, "README.md")
	assert.Contains(t, readme, "`lang.Eng`")
	assert.Contains(t, readme, "`lang.SrpCyrillic`")
	assert.NotContains(t, readme, "| Old ")
	assert.True(t, strings.HasPrefix(readme, "# Languages\n\nSupported languages:\n\n| Language "))
	assert.True(t, strings.HasSuffix(readme, "|\n\nSee also LICENSE.\n"))

	alphabets := read(t, root, filepath.Join("misc", "alphabets", "alphabets.yml"))
	assert.Equal(t, "eng: abcd\nrus: абвгё\nsrp: abcdćčđ\n", alphabets)
}

func TestGenerateIdempotent(t *testing.T) {
	root, cfg := setup(t, iotesting.DefaultFixture())
	g := iogenerate.New(cfg)
	ctx := context.Background()

	_, err := g.Generate(ctx)
	require.NoError(t, err)
	src := read(t, root, filepath.Join("lang", "lang_gen.go"))
	readme := read(t, root, "README.md")

	s, err := g.Generate(ctx)
	require.NoError(t, err)
	assert.Empty(t, s.Written)
	assert.Len(t, s.Unchanged, 3)
	assert.Equal(t, src, read(t, root, filepath.Join("lang", "lang_gen.go")))
	assert.Equal(t, readme, read(t, root, "README.md"))
}

func TestGenerateDryRun(t *testing.T) {
	root, cfg := setup(t, iotesting.DefaultFixture(),
		config.OptDryRun(true),
		config.OptOutputSQLite("langs.sqlite"),
	)

	s, err := iogenerate.New(cfg).Generate(context.Background())
	require.NoError(t, err)
	assert.True(t, s.DryRun)
	assert.Len(t, s.Written, 4)

	assert.NoDirExists(t, filepath.Join(root, "lang"))
	assert.NoFileExists(t, filepath.Join(root, "langs.sqlite"))
	assert.NoFileExists(t, filepath.Join(root, "misc", "alphabets", "alphabets.yml"))
	assert.Equal(t, iotesting.Readme, read(t, root, "README.md"))
}

func TestGenerateNothingOnFailure(t *testing.T) {
	t.Run("missing marker", func(t *testing.T) {
		f := iotesting.DefaultFixture()
		f.Readme = "# Languages\n\nNo table here.\n"
		root, cfg := setup(t, f)

		_, err := iogenerate.New(cfg).Generate(context.Background())
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr))
		assert.Equal(t, errcode.MarkerNotFoundError, gnErr.Code)

		assert.NoDirExists(t, filepath.Join(root, "lang"))
		assert.NoFileExists(t, filepath.Join(root, "misc", "alphabets", "alphabets.yml"))
		assert.Equal(t, f.Readme, read(t, root, "README.md"))
	})

	t.Run("formatter", func(t *testing.T) {
		root, cfg := setup(t, iotesting.DefaultFixture())
		g := iogenerate.New(cfg, iogenerate.OptFormatter(badFormatter{}))

		_, err := g.Generate(context.Background())
		require.Error(t, err)
		assert.NoDirExists(t, filepath.Join(root, "lang"))
		assert.Equal(t, iotesting.Readme, read(t, root, "README.md"))
	})
}

func TestGenerateSeveralTables(t *testing.T) {
	f := iotesting.DefaultFixture()
	f.Readme = iotesting.Readme + "\n## Scripts\n\n| Script | Languages |\n| - | - |\n"
	root, cfg := setup(t, f, config.OptOutputDocs([]config.DocConfig{
		{Path: "README.md", Table: "languages"},
		{Path: "README.md", Table: "scripts"},
	}))

	_, err := iogenerate.New(cfg).Generate(context.Background())
	require.NoError(t, err)

	readme := read(t, root, "README.md")
	assert.Contains(t, readme, "`lang.Tuk`")
	assert.Contains(t, readme, "| Latin    | English, Serbian, Turkmen |")
	assert.Contains(t, readme, "See also LICENSE.")
}

func TestGenerateSQLite(t *testing.T) {
	root, cfg := setup(t, iotesting.DefaultFixture(),
		config.OptOutputSQLite("langs.sqlite"))

	s, err := iogenerate.New(cfg).Generate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, s.Written, filepath.Join(root, "langs.sqlite"))

	db, err := sql.Open("sqlite", filepath.Join(root, "langs.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT count(*) FROM languages").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	err = db.QueryRow("SELECT count(*) FROM trigrams").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 5*langmodel.TrigramCount, count)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), e.Name())
	}
}

func TestCheck(t *testing.T) {
	root, cfg := setup(t, iotesting.DefaultFixture())
	g := iogenerate.New(cfg)
	ctx := context.Background()

	s, err := g.Check(ctx)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.StaleArtifactError, gnErr.Code)
	assert.Len(t, s.Stale, 3)

	_, err = g.Generate(ctx)
	require.NoError(t, err)

	s, err = g.Check(ctx)
	require.NoError(t, err)
	assert.Empty(t, s.Stale)
	assert.Len(t, s.Unchanged, 3)

	iotesting.WriteFile(t, root, "README.md", []byte(iotesting.Readme))
	s, err = g.Check(ctx)
	require.Error(t, err)
	assert.Equal(t, []string{filepath.Join(root, "README.md")}, s.Stale)
}

func TestAlphabets(t *testing.T) {
	root, cfg := setup(t, iotesting.DefaultFixture())
	g := iogenerate.New(cfg)

	s, err := g.Alphabets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Alphabets)
	assert.Len(t, s.Written, 1)

	assert.FileExists(t, filepath.Join(root, "misc", "alphabets", "alphabets.yml"))
	assert.NoDirExists(t, filepath.Join(root, "lang"))
	assert.Equal(t, iotesting.Readme, read(t, root, "README.md"))
}

func TestSourcePaths(t *testing.T) {
	cfg := iotesting.Config("/data")
	assert.Equal(t, []string{
		filepath.Join("/data", "misc", "supported_languages.csv"),
		filepath.Join("/data", "misc", "data.json"),
		filepath.Join("/data", "misc", "alphabets", "raw.yml"),
	}, iogenerate.SourcePaths(cfg))

	cfg.Update([]config.Option{config.OptSourcesAlphabets("-")})
	assert.Len(t, iogenerate.SourcePaths(cfg), 2)
}

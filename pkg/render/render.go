// Package render projects language profiles into artifacts: the generated
// Go source and markdown documentation tables.
//
// Rendering is deterministic. The same profiles always produce the same
// bytes, which allows to detect stale artifacts by comparison.
package render

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/gnames/gnlang/pkg/langmodel"
	"github.com/gnames/gnlang/pkg/templates"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Kinds of documentation tables.
const (
	TableLanguages = "languages"
	TableScripts   = "scripts"
)

// Markers are line prefixes of header rows of documentation tables.
const (
	LanguagesMarker = "| Language "
	ScriptsMarker   = "| Script "
)

// Renderer creates artifacts for a Go package.
type Renderer struct {
	pkg  string
	tmpl *template.Template
}

// New creates a Renderer for the given Go package name.
func New(pkg string) (*Renderer, error) {
	tmpl, err := template.New("lang").Parse(templates.LangGo)
	if err != nil {
		return nil, RenderError("source template", err)
	}
	return &Renderer{pkg: pkg, tmpl: tmpl}, nil
}

type profileData struct {
	Const    string
	Comment  string
	ID       string
	Code     string
	Name     string
	EngName  string
	Script   string
	Alphabet string
	Trigrams []string
}

type codeData struct {
	Code  string
	Const string
}

type scriptData struct {
	Var    string
	Script string
	Consts []string
}

type sourceData struct {
	Package      string
	ContentID    string
	TrigramCount int
	Profiles     []profileData
	Codes        []codeData
	Scripts      []scriptData
}

// declared are exported names of the generated source that do not depend
// on profiles.
var declared = []string{"TrigramCount", "Lang", "Langs", "FromCode"}

// goNames keeps exported names of the generated source unique.
type goNames map[string]string

func newGoNames() goNames {
	res := make(goNames)
	for _, v := range declared {
		res[v] = "declaration"
	}
	return res
}

func (g goNames) add(name, owner string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%s is not a valid Go name for %s", name, owner)
	}
	if prev, ok := g[name]; ok {
		return fmt.Errorf("duplicate Go name %s for %s and %s", name, prev, owner)
	}
	g[name] = owner
	return nil
}

// comment makes text safe to put into a single line comment.
func comment(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Source renders the Go source with one enum constant per profile and its
// trigram vector in the given order. The result is not formatted.
// Profiles or scripts that would produce invalid or duplicate Go names
// result in an error.
func (r *Renderer) Source(profiles []langmodel.Profile) ([]byte, error) {
	data := sourceData{
		Package:      r.pkg,
		ContentID:    ContentID(profiles).String(),
		TrigramCount: langmodel.TrigramCount,
	}

	names := newGoNames()
	seen := make(map[string]struct{})
	for _, p := range profiles {
		c := GoName(p.ID)
		if err := names.add(c, "profile "+p.ID); err != nil {
			return nil, RenderError("source", err)
		}
		data.Profiles = append(data.Profiles, profileData{
			Const:    c,
			ID:       p.ID,
			Code:     p.Code,
			Comment:  comment(p.Name + " (" + p.EngName + ")"),
			Name:     p.Name,
			EngName:  p.EngName,
			Script:   p.Script,
			Alphabet: p.Alphabet,
			Trigrams: p.Trigrams,
		})
		code := strings.ToLower(p.Code)
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		data.Codes = append(data.Codes, codeData{Code: code, Const: c})
	}

	for _, g := range langmodel.Groups(profiles, 0) {
		sd := scriptData{
			Var:    GoName(langmodel.ScriptSuffix(g.Script)) + "Langs",
			Script: comment(g.Script),
		}
		if err := names.add(sd.Var, "script "+g.Script); err != nil {
			return nil, RenderError("source", err)
		}
		for _, p := range g.Profiles {
			sd.Consts = append(sd.Consts, GoName(p.ID))
		}
		data.Scripts = append(data.Scripts, sd)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, RenderError("source", err)
	}
	return buf.Bytes(), nil
}

// LanguagesTable renders a markdown table with one row per profile.
func (r *Renderer) LanguagesTable(profiles []langmodel.Profile) string {
	t := NewTable("Language", "ISO 639-3", "Enum")
	for _, p := range profiles {
		t.Add(p.EngName, p.Code, "`"+r.pkg+"."+GoName(p.ID)+"`")
	}
	return t.String()
}

// ScriptsTable renders a markdown table of scripts used by more than one
// language.
func (r *Renderer) ScriptsTable(profiles []langmodel.Profile) string {
	t := NewTable("Script", "Languages")
	for _, g := range langmodel.Groups(profiles, 2) {
		names := make([]string, len(g.Profiles))
		for i, p := range g.Profiles {
			names[i] = p.EngName
		}
		t.Add(g.Script, strings.Join(names, ", "))
	}
	return t.String()
}

// DocTable returns the marker and the rendered table of the given kind.
// Unknown kinds fall back to the languages table.
func (r *Renderer) DocTable(
	kind string,
	profiles []langmodel.Profile,
) (marker, table string) {
	if kind == TableScripts {
		return ScriptsMarker, r.ScriptsTable(profiles)
	}
	return LanguagesMarker, r.LanguagesTable(profiles)
}

// ContentID returns UUIDv5 of everything the profiles carry. Datasets with
// the same ContentID are identical.
func ContentID(profiles []langmodel.Profile) uuid.UUID {
	var sb strings.Builder
	for _, p := range profiles {
		fields := []string{
			p.ID, p.Code, p.Name, p.EngName, p.Script, p.Alphabet,
		}
		fields = append(fields, p.Trigrams...)
		sb.WriteString(strings.Join(fields, "\x00"))
		sb.WriteString("\n")
	}
	return gnuuid.New(sb.String())
}

// GoName converts a profile identifier to an exported Go identifier.
func GoName(id string) string {
	r, size := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return id
	}
	return string(unicode.ToUpper(r)) + id[size:]
}

// Package ioalphabet reads raw alphabet definitions and encodes normalized
// alphabets as YAML.
package ioalphabet

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/gnames/gnlang/internal/iofs"
	"github.com/gnames/gnlang/pkg/alphabet"
	"github.com/gnames/gnlang/pkg/render"
	"gopkg.in/yaml.v3"
)

// LoadFile reads raw alphabets from a YAML file.
func LoadFile(path string) ([]alphabet.Alphabet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	return load(f, path)
}

// Load reads raw alphabets YAML and returns normalized alphabets.
// Empty input gives no alphabets.
func Load(r io.Reader) ([]alphabet.Alphabet, error) {
	return load(r, "alphabets")
}

func load(r io.Reader, source string) ([]alphabet.Alphabet, error) {
	var raw alphabet.Raw
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, ParseAlphabetError(source, err)
	}
	return alphabet.Build(raw), nil
}

// Encode renders alphabets as a YAML mapping of codes to characters with
// keys sorted.
func Encode(aa []alphabet.Alphabet) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(alphabet.ToMap(aa)); err != nil {
		return nil, render.RenderError("alphabets", err)
	}
	if err := enc.Close(); err != nil {
		return nil, render.RenderError("alphabets", err)
	}
	return buf.Bytes(), nil
}

// Package ioregistry reads the language registry, a CSV table with
// metadata of supported languages.
//
// Recognized columns are code, eng_name, name and native_speakers, other
// columns are ignored. Rows may have fewer cells than the header.
package ioregistry

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gnames/gnlang/internal/iofs"
	"github.com/gnames/gnlang/pkg/langmodel"
)

// Column names of the registry.
const (
	ColCode           = "code"
	ColEngName        = "eng_name"
	ColName           = "name"
	ColNativeSpeakers = "native_speakers"
)

// LoadFile reads the registry from a CSV file.
func LoadFile(path string) ([]langmodel.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	return load(f, path)
}

// Load reads the registry from CSV data. Records are returned in the
// source order. A row without code is skipped, a row with code but
// without eng_name is an error.
func Load(r io.Reader) ([]langmodel.Metadata, error) {
	return load(r, "registry")
}

func load(r io.Reader, source string) ([]langmodel.Metadata, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty file, header row is required")
		}
		return nil, ParseRegistryError(source, err)
	}

	cols := columns(header)
	if _, ok := cols[ColCode]; !ok {
		return nil, ParseRegistryError(source,
			errors.New("header has no 'code' column"))
	}

	var res []langmodel.Metadata
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ParseRegistryError(source, err)
		}
		row, _ := reader.FieldPos(0)

		code := cell(record, cols, ColCode)
		if code == "" {
			continue
		}

		md := langmodel.Metadata{
			Code:    code,
			EngName: cell(record, cols, ColEngName),
			Name:    cell(record, cols, ColName),
		}
		if md.EngName == "" {
			return nil, MissingFieldError(source, row, ColEngName)
		}
		if md.Name == "" {
			md.Name = md.EngName
		}
		md.NativeSpeakers = speakers(cell(record, cols, ColNativeSpeakers),
			code)

		res = append(res, md)
	}

	return res, nil
}

func columns(header []string) map[string]int {
	res := make(map[string]int, len(header))
	for i, v := range header {
		if i == 0 {
			v = strings.TrimPrefix(v, "\ufeff")
		}
		v = strings.ToLower(strings.TrimSpace(v))
		if _, ok := res[v]; !ok {
			res[v] = i
		}
	}
	return res
}

func cell(record []string, cols map[string]int, col string) string {
	i, ok := cols[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func speakers(s, code string) *float64 {
	if s == "" {
		return nil
	}
	res, err := strconv.ParseFloat(s, 64)
	if err != nil {
		slog.Warn("Cannot parse native speakers number",
			"code", code, "value", s)
		return nil
	}
	return &res
}

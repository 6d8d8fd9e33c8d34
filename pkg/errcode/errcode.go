package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigFileNotFoundError
	ReadConfigError

	// Input errors
	ParseRegistryError
	MissingFieldError
	ParseCorpusError
	ParseAlphabetError

	// Model errors
	TrigramCountError
	DuplicateIdentifierError

	// Artifact errors
	RenderError
	FormatSourceError
	MarkerNotFoundError
	AmbiguousMarkerError
	StaleArtifactError
	SQLiteExportError

	// Watch errors
	WatchError
)

package iocorpus

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// ParseCorpusError is returned when the corpus is not a valid
// script -> code -> trigrams JSON object.
func ParseCorpusError(source string, err error) error {
	msg := `Cannot parse trigram corpus <em>%s</em>

The corpus must be a JSON object {"<script>": {"<code>": "<trigrams>"}}`
	vars := []any{source}
	return &gn.Error{
		Code: errcode.ParseCorpusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse corpus %s: %w", source, err),
	}
}

package langmodel

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// TrigramCountError creates an error for a trigram list which does not
// have exactly TrigramCount elements.
func TrigramCountError(code string, count int) error {
	msg := `Language <em>%s</em> has %d trigrams instead of %d

<em>How to fix:</em>
  1. Regenerate trigrams for the language
  2. Check that trigrams do not contain the delimiter`

	vars := []any{code, count, TrigramCount}

	return &gn.Error{
		Code: errcode.TrigramCountError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("language %s has %d trigrams, instead of %d",
			code, count, TrigramCount),
	}
}

// DuplicateIdentifierError creates an error for two profiles that ended up
// with the same identifier.
func DuplicateIdentifierError(id string, first, second Key) error {
	msg := `Identifier <em>%s</em> is assigned to <em>%s</em> and <em>%s</em>

This is a defect of identifier assignment, please report it.`

	vars := []any{id, first.String(), second.String()}

	return &gn.Error{
		Code: errcode.DuplicateIdentifierError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("duplicate identifier %s for %s and %s",
			id, first, second),
	}
}

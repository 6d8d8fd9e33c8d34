package docsync

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// MarkerNotFoundError creates an error for a document without a table
// that starts with the marker.
func MarkerNotFoundError(marker string) error {
	msg := `Cannot find a table starting with <em>%q</em>

<em>How to fix:</em>
  Add a table with this header row to the document`

	vars := []any{marker}

	return &gn.Error{
		Code: errcode.MarkerNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table marker %q not found", marker),
	}
}

// AmbiguousMarkerError creates an error for a document with several
// tables that start with the marker.
func AmbiguousMarkerError(marker string, count int) error {
	msg := `Found %d tables starting with <em>%q</em>, expected one`

	vars := []any{count, marker}

	return &gn.Error{
		Code: errcode.AmbiguousMarkerError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table marker %q found %d times", marker, count),
	}
}

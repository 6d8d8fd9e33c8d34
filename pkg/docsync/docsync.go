// Package docsync replaces a generated table inside an existing document,
// keeping the rest of the document byte-identical.
package docsync

import (
	"bytes"
	"strings"
)

// Block is a contiguous table inside a document. Start and End are byte
// offsets, End is exclusive.
type Block struct {
	Start int
	End   int
}

// Find locates table blocks that start with a line beginning with marker.
// A block continues while following lines start with '|'.
func Find(doc []byte, marker string) []Block {
	var res []Block
	var cur *Block

	for pos := 0; pos < len(doc); {
		end := bytes.IndexByte(doc[pos:], '\n')
		if end < 0 {
			end = len(doc)
		} else {
			end += pos + 1
		}
		line := doc[pos:end]

		switch {
		case cur != nil && bytes.HasPrefix(line, []byte("|")):
			cur.End = end
		case bytes.HasPrefix(line, []byte(marker)):
			res = append(res, Block{Start: pos, End: end})
			cur = &res[len(res)-1]
		default:
			cur = nil
		}
		pos = end
	}
	return res
}

// Sync replaces the only table block that starts with marker by table.
// It returns MarkerNotFoundError if there is no such block and
// AmbiguousMarkerError if there are several of them. The input is never
// modified.
func Sync(doc []byte, marker, table string) ([]byte, error) {
	blocks := Find(doc, marker)
	switch len(blocks) {
	case 0:
		return nil, MarkerNotFoundError(marker)
	case 1:
	default:
		return nil, AmbiguousMarkerError(marker, len(blocks))
	}

	b := blocks[0]
	if b.End == len(doc) && !bytes.HasSuffix(doc, []byte("\n")) {
		table = strings.TrimSuffix(table, "\n")
	}

	res := make([]byte, 0, len(doc)-(b.End-b.Start)+len(table))
	res = append(res, doc[:b.Start]...)
	res = append(res, table...)
	res = append(res, doc[b.End:]...)
	return res, nil
}

package typeexpr

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorHumanizing renders parse errors of Source with a marker under the
// offending offset.
type ErrorHumanizing struct {
	Source string
	// Max is the number of errors rendered. Zero renders all of them.
	Max int
}

func (h *ErrorHumanizing) Humanize(out io.Writer, err error) {
	var list ErrorList
	if !errors.As(err, &list) {
		fmt.Fprintf(out, "ERROR: %v\n", err)
		return
	}

	for i, e := range list {
		if h.Max > 0 && i == h.Max {
			fmt.Fprintf(out, "(and %d more errors)\n", len(list)-i)
			return
		}
		fmt.Fprintf(out, "%v\n", e)
		if e.Pos.IsValid() {
			h.traceLine(out, int(e.Pos)-1)
		}
	}
}

func (h *ErrorHumanizing) traceLine(out io.Writer, offset int) {
	const linef = "     | "
	if offset > len(h.Source) {
		offset = len(h.Source)
	}

	// only the line holding offset is traced
	start := strings.LastIndexByte(h.Source[:offset], '\n') + 1
	end := strings.IndexByte(h.Source[offset:], '\n')
	if end < 0 {
		end = len(h.Source)
	} else {
		end += offset
	}
	line := strings.TrimSuffix(h.Source[start:end], "\r")

	var marker strings.Builder
	marker.WriteString(strings.Repeat(" ", len(linef)))
	for _, b := range []byte(h.Source[start:offset]) {
		switch b {
		case '\t':
			marker.WriteByte('\t')
		default:
			// continuation bytes of multi byte runes take no column
			if b&0xC0 != 0x80 {
				marker.WriteByte(' ')
			}
		}
	}
	marker.WriteByte('^')

	fmt.Fprintf(out, "%s%s\n%s\n", linef, line, marker.String())
}

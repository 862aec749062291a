// Package stringw writes nested values into a single string builder.
package stringw

import (
	"fmt"
	"io"
	"strings"
)

type StringWriter interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
}

// StringerTo is implemented by values which render themselves into w
// instead of returning intermediate strings.
type StringerTo interface {
	StringTo(w StringWriter)
}

func ToStringW(w StringWriter, v any) {
	switch t := v.(type) {
	case StringerTo:
		t.StringTo(w)
	case fmt.Stringer:
		w.WriteString(t.String())
	case string:
		w.WriteString(t)
	default:
		fmt.Fprint(w, v)
	}
}

func ToString(v any) string {
	var s strings.Builder
	ToStringW(&s, v)
	return s.String()
}

// Join writes the elements of s separated by sep.
func Join[T any](w StringWriter, sep string, s []T) {
	for i, e := range s {
		if i > 0 {
			w.WriteString(sep)
		}
		ToStringW(w, e)
	}
}

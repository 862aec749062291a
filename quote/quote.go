// Package quote quotes and unquotes the string literals of type expressions.
// Only the quote byte and the backslash are escaped; any other backslash
// sequence is kept as written.
package quote

import (
	"strings"
)

type scanner struct {
	src string
	r   byte
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) next() {
	if s.pos >= len(s.src) {
		s.r = 0
		s.pos = len(s.src) + 1
		return
	}
	s.r = s.src[s.pos]
	s.pos++
}

func (s *scanner) eof() bool {
	return s.pos > len(s.src)
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

// Quote wraps s in q, escaping q and backslashes.
func Quote(s string, q byte) string {
	var out strings.Builder
	out.Grow(len(s) + 2)
	out.WriteByte(q)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case q, '\\':
			out.WriteByte('\\')
			out.WriteByte(c)
		default:
			out.WriteByte(c)
		}
	}
	out.WriteByte(q)
	return out.String()
}

// Unquote reads the literal at the start of lit, which begins with its
// quote byte. It returns the value and the number of bytes consumed. ok is
// false when the closing quote is missing; the value then holds everything
// read so far.
func Unquote(lit string) (value string, n int, ok bool) {
	if lit == "" {
		return "", 0, false
	}

	var (
		q    = lit[0]
		scan = newScanner(lit)
		out  strings.Builder
	)

	scan.next()
	for {
		scan.next()
		if scan.eof() {
			return out.String(), len(lit), false
		}
		switch scan.r {
		case q:
			return out.String(), scan.pos, true
		case '\\':
			if next := scan.peek(); next == q || next == '\\' {
				scan.next()
				out.WriteByte(next)
				continue
			}
			out.WriteByte(scan.r)
		default:
			out.WriteByte(scan.r)
		}
	}
}

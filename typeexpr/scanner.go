package typeexpr

import (
	"strconv"
	"unicode/utf8"

	"github.com/gad-lang/clsmeth/quote"
	"github.com/gad-lang/clsmeth/runehelper"
	"github.com/gad-lang/clsmeth/token"
)

// Pos is the 1 based byte offset of a token in the source. The zero value
// is an invalid position.
type Pos int

// NoPos represents an invalid position.
const NoPos Pos = 0

func (p Pos) IsValid() bool { return p != NoPos }

func (p Pos) String() string { return "offset " + strconv.Itoa(int(p)) }

// Token is a scanned token with its literal and position.
type Token struct {
	Token   token.Token
	Literal string
	Pos     Pos
}

// Scanner tokenizes a type expression.
type Scanner struct {
	src    string
	offset int
	errors ErrorList
}

// NewScanner creates a scanner of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Errors returns the errors found so far.
func (s *Scanner) Errors() ErrorList { return s.errors }

func (s *Scanner) error(offset int, msg string) {
	s.errors.Add(Pos(offset+1), msg)
}

func (s *Scanner) peek(n int) byte {
	if s.offset+n < len(s.src) {
		return s.src[s.offset+n]
	}
	return 0
}

func (s *Scanner) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(s.src[s.offset:])
}

// Scan returns the next token. After the end of the source it keeps
// returning EOF.
func (s *Scanner) Scan() (t Token) {
	for s.offset < len(s.src) {
		r, w := s.peekRune()
		if !runehelper.IsSpace(r) {
			break
		}
		s.offset += w
	}

	start := s.offset
	t.Pos = Pos(start + 1)

	if start >= len(s.src) {
		t.Token = token.EOF
		return
	}

	r, w := s.peekRune()
	switch {
	case runehelper.IsIdentifierLetter(r):
		for s.offset < len(s.src) {
			if r, w = s.peekRune(); !runehelper.IsIdentifier(r) {
				break
			}
			s.offset += w
		}
		t.Literal = s.src[start:s.offset]
		t.Token = token.Lookup(t.Literal)
		return
	case runehelper.IsDigit(r) || r == '-' && runehelper.IsDigit(rune(s.peek(1))):
		s.offset++
		for s.offset < len(s.src) && runehelper.IsDigit(rune(s.src[s.offset])) {
			s.offset++
		}
		t.Token = token.Int
		t.Literal = s.src[start:s.offset]
		return
	case r == '\'' || r == '"':
		value, n, ok := quote.Unquote(s.src[start:])
		if !ok {
			s.error(start, "string literal not terminated")
		}
		s.offset += n
		t.Token = token.String
		t.Literal = value
		return
	}

	s.offset += w
	switch r {
	case '?':
		t.Token = token.Question
	case '(':
		t.Token = token.LParen
	case ')':
		t.Token = token.RParen
	case ',':
		t.Token = token.Comma
	case '=':
		if s.peek(0) == '>' {
			s.offset++
			t.Token = token.DoubleArrow
		}
	case ':':
		if s.peek(0) == ':' {
			s.offset++
			t.Token = token.DoubleColon
		}
	case '.':
		if s.peek(0) == '.' && s.peek(1) == '.' {
			s.offset += 2
			t.Token = token.Ellipsis
		}
	}

	t.Literal = s.src[start:s.offset]
	if t.Token == token.Illegal {
		s.error(start, "illegal character "+strconv.Quote(t.Literal))
	}
	return
}

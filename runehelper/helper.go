// Package runehelper classifies the runes of type expressions.
package runehelper

import (
	"unicode"
	"unicode/utf8"
)

func IsLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' ||
		ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

// IsIdentifierLetter reports whether ch may start a type name. Backslashes
// separate namespaces (\HH\Traversable).
func IsIdentifierLetter(ch rune) bool {
	return ch == '\\' || ch == '_' || IsLetter(ch)
}

func IsIdentifier(ch rune) bool {
	return IsIdentifierLetter(ch) || IsDigit(ch)
}

// IsDigit only accepts ASCII digits, as int shape keys do.
func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func IsSpace(ch rune) bool {
	return ch == '\n' || ch == '\r' || IsSingleSpace(ch)
}

func IsSingleSpace(ch rune) bool {
	return ch == ' ' || ch == '\t'
}

// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package token

import "strconv"

var keywords map[string]Token

// Token represents a token of the type expression language.
type Token int

// List of tokens
const (
	Illegal Token = iota
	EOF
	LiteralBegin_
	Ident
	Int
	String
	LiteralEnd_
	OperatorBegin_
	Question    // ?
	DoubleArrow // =>
	DoubleColon // ::
	Ellipsis    // ...
	LParen      // (
	RParen      // )
	Comma       // ,
	OperatorEnd_
	KeyworkBegin_
	Shape
	KeywordEnd_
)

var tokens = [...]string{
	Illegal:     "ILLEGAL",
	EOF:         "EOF",
	Ident:       "IDENT",
	Int:         "INT",
	String:      "STRING",
	Question:    "?",
	DoubleArrow: "=>",
	DoubleColon: "::",
	Ellipsis:    "...",
	LParen:      "(",
	RParen:      ")",
	Comma:       ",",
	Shape:       "shape",
}

func (tok Token) String() string {
	s := ""

	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}

	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}

	return s
}

// IsLiteral returns true if the token is a literal.
func (tok Token) IsLiteral() bool {
	return LiteralBegin_ < tok && tok < LiteralEnd_
}

// IsOperator returns true if the token is an operator.
func (tok Token) IsOperator() bool {
	return OperatorBegin_ < tok && tok < OperatorEnd_
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return KeyworkBegin_ < tok && tok < KeywordEnd_
}

// Is returns true if then token equals one of args.
func (tok Token) Is(other ...Token) bool {
	for _, o := range other {
		if o == tok {
			return true
		}
	}
	return false
}

// Lookup returns corresponding keyword if ident is a keyword.
func Lookup(ident string) Token {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}
	return Ident
}

func init() {
	keywords = make(map[string]Token)
	for i := KeyworkBegin_ + 1; i < KeywordEnd_; i++ {
		keywords[tokens[i]] = i
	}
}

// Package typeexpr parses Hack style type expressions such as
// `shape(K::A => string, ...)` or `?(int, string)` into descriptors.
package typeexpr

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/token"
)

// Consts resolves class constants used as shape keys (K::A).
type Consts interface {
	Const(class, name string) (clsmeth.Object, bool)
}

// ConstsFunc adapts a function to Consts.
type ConstsFunc func(class, name string) (clsmeth.Object, bool)

func (f ConstsFunc) Const(class, name string) (clsmeth.Object, bool) {
	return f(class, name)
}

// ClassConsts resolves constants from the given classes.
func ClassConsts(classes ...*clsmeth.Class) Consts {
	byName := make(map[string]*clsmeth.Class, len(classes))
	for _, c := range classes {
		byName[c.Name()] = c
	}
	return ConstsFunc(func(class, name string) (clsmeth.Object, bool) {
		if c := byName[class]; c != nil {
			return c.Const(name)
		}
		return nil, false
	})
}

// Parse parses src into a descriptor. consts may be nil when the
// expression has no class constant keys.
func Parse(src string, consts Consts) (clsmeth.Descriptor, error) {
	p := &Parser{scanner: NewScanner(src), consts: consts}
	p.next()
	d := p.parseType()
	if !p.failed() && p.tok.Token != token.EOF {
		p.errorExpected("end of type")
	}
	if errs := p.errs(); errs != nil {
		return nil, errs
	}
	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string, consts Consts) clsmeth.Descriptor {
	d, err := Parse(src, consts)
	if err != nil {
		panic(err)
	}
	return d
}

// Parser is a recursive descent parser of type expressions.
type Parser struct {
	scanner *Scanner
	consts  Consts
	tok     Token
	errors  ErrorList
}

func (p *Parser) next() {
	p.tok = p.scanner.Scan()
}

func (p *Parser) errs() error {
	all := append(append(ErrorList{}, p.scanner.Errors()...), p.errors...)
	all.Sort()
	return all.Err()
}

func (p *Parser) error(pos Pos, msg string) {
	p.errors.Add(pos, msg)
}

func (p *Parser) errorExpected(what string) {
	found := p.tok.Token.String()
	if p.tok.Token.IsLiteral() || p.tok.Token.IsKeyword() {
		found = strconv.Quote(p.tok.Literal)
	}
	p.error(p.tok.Pos, "expected "+what+", found "+found)
}

func (p *Parser) failed() bool {
	return len(p.errors) > 0 || len(p.scanner.Errors()) > 0
}

func (p *Parser) expect(tok token.Token) bool {
	if p.tok.Token != tok {
		p.errorExpected("'" + tok.String() + "'")
		return false
	}
	p.next()
	return true
}

func (p *Parser) parseType() clsmeth.Descriptor {
	if p.failed() {
		return nil
	}
	switch p.tok.Token {
	case token.Question:
		p.next()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		return clsmeth.Nullable{Inner: inner}
	case token.LParen:
		return p.parseTuple()
	case token.Shape:
		return p.parseShape()
	case token.Ident:
		name := p.tok.Literal
		p.next()
		return named(name)
	}
	p.errorExpected("type")
	return nil
}

// named maps a type name to its descriptor. Builtin names may be qualified
// as \HH\Name or HH\Name. Unknown names are interfaces, matched nominally
// against object classes, and keep their qualification.
func named(name string) clsmeth.Descriptor {
	base := strings.TrimPrefix(name, `\`)
	if len(base) > 3 && strings.EqualFold(base[:3], `hh\`) {
		base = base[3:]
	}
	switch strings.ToLower(base) {
	case "anyarray":
		return clsmeth.AnyArray{}
	case "mixed":
		return clsmeth.Mixed{}
	case "nonnull":
		return clsmeth.Nonnull{}
	case "traversable":
		return clsmeth.Interface{Name: clsmeth.Traversable}
	case "keyedtraversable":
		return clsmeth.Interface{Name: clsmeth.KeyedTraversable}
	case "container":
		return clsmeth.Interface{Name: clsmeth.Container}
	case "keyedcontainer":
		return clsmeth.Interface{Name: clsmeth.KeyedContainer}
	}
	if k, ok := clsmeth.ScalarKindByName(base); ok {
		return clsmeth.Scalar{Kind: k}
	}
	return clsmeth.Interface{Name: name}
}

func (p *Parser) parseTuple() clsmeth.Descriptor {
	p.next()
	var elems []clsmeth.Descriptor
	for {
		e := p.parseType()
		if e == nil {
			return nil
		}
		elems = append(elems, e)
		if p.tok.Token != token.Comma {
			break
		}
		p.next()
		if p.tok.Token == token.RParen {
			break
		}
	}
	if !p.expect(token.RParen) {
		return nil
	}
	if len(elems) == 1 {
		// (T) is grouping
		return elems[0]
	}
	return clsmeth.MustTuple(elems...)
}

func (p *Parser) parseShape() clsmeth.Descriptor {
	pos := p.tok.Pos
	p.next()
	if !p.expect(token.LParen) {
		return nil
	}

	var (
		fields []clsmeth.ShapeField
		open   bool
	)
	for p.tok.Token != token.RParen {
		if p.tok.Token == token.Ellipsis {
			open = true
			p.next()
			if p.tok.Token == token.Comma {
				p.next()
			}
			break
		}
		f, ok := p.parseField()
		if !ok {
			return nil
		}
		fields = append(fields, f)
		if p.tok.Token != token.Comma {
			break
		}
		p.next()
	}
	if !p.expect(token.RParen) {
		return nil
	}

	s, err := clsmeth.NewShape(open, fields...)
	if err != nil {
		msg := err.Error()
		var e *clsmeth.Error
		if errors.As(err, &e) {
			msg = e.Message
		}
		p.error(pos, msg)
		return nil
	}
	return s
}

func (p *Parser) parseField() (f clsmeth.ShapeField, ok bool) {
	if p.tok.Token == token.Question {
		f.Optional = true
		p.next()
	}
	if f.Key, ok = p.parseKey(); !ok {
		return
	}
	if !p.expect(token.DoubleArrow) {
		return f, false
	}
	if f.Type = p.parseType(); f.Type == nil {
		return f, false
	}
	return f, true
}

func (p *Parser) parseKey() (clsmeth.Object, bool) {
	switch p.tok.Token {
	case token.String:
		key := clsmeth.Str(p.tok.Literal)
		p.next()
		return key, true
	case token.Int:
		v, err := strconv.ParseInt(p.tok.Literal, 10, 64)
		if err != nil {
			p.error(p.tok.Pos, "invalid int key "+p.tok.Literal)
			return nil, false
		}
		p.next()
		return clsmeth.Int(v), true
	case token.Ident:
		class, pos := p.tok.Literal, p.tok.Pos
		p.next()
		if !p.expect(token.DoubleColon) {
			return nil, false
		}
		if p.tok.Token != token.Ident {
			p.errorExpected("constant name")
			return nil, false
		}
		name := p.tok.Literal
		p.next()
		if p.consts != nil {
			if v, ok := p.consts.Const(class, name); ok {
				return v, true
			}
		}
		p.error(pos, "undefined class constant "+class+"::"+name)
		return nil, false
	}
	p.errorExpected("shape key")
	return nil, false
}

// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

import (
	"fmt"
	"strconv"

	"github.com/gad-lang/clsmeth/quote"
	"github.com/gad-lang/clsmeth/stringw"
)

// Descriptor is a type tested by Is and enforced by As. The set of
// descriptors is closed and every descriptor is immutable once built.
type Descriptor interface {
	fmt.Stringer
	descriptor()
}

// Builtin interface names understood by the engine.
const (
	Traversable      = "Traversable"
	KeyedTraversable = "KeyedTraversable"
	Container        = "Container"
	KeyedContainer   = "KeyedContainer"
)

// ScalarKind is the kind of a Scalar descriptor.
type ScalarKind uint8

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarBool
	ScalarFloat
	ScalarDecimal
	ScalarNull
	// ScalarNum matches int, float and decimal.
	ScalarNum
	// ScalarArrayKey matches int and string.
	ScalarArrayKey
)

var scalarKindNames = [...]string{
	ScalarString:   "string",
	ScalarInt:      "int",
	ScalarBool:     "bool",
	ScalarFloat:    "float",
	ScalarDecimal:  "decimal",
	ScalarNull:     "null",
	ScalarNum:      "num",
	ScalarArrayKey: "arraykey",
}

func (k ScalarKind) String() string {
	if int(k) < len(scalarKindNames) {
		return scalarKindNames[k]
	}
	return "scalar(" + strconv.Itoa(int(k)) + ")"
}

// ScalarKindByName returns the kind for a scalar type name.
func ScalarKindByName(name string) (ScalarKind, bool) {
	for k, n := range scalarKindNames {
		if n == name {
			return ScalarKind(k), true
		}
	}
	return 0, false
}

// AnyArray matches every array-like value.
type AnyArray struct{}

// Shape is a structural record. Closed shapes reject keys which are not
// declared; open shapes (shape(..., ...)) accept them.
type Shape struct {
	fields []ShapeField
	Open   bool
}

// ShapeField is a declared shape key.
type ShapeField struct {
	Key      Object
	Optional bool
	Type     Descriptor
}

// Tuple matches sequences of exactly len(Elems) elements.
type Tuple struct {
	elems []Descriptor
}

// Interface is a capability set such as Traversable or Container. Objects
// match it nominally through their class.
type Interface struct {
	Name string
}

// Scalar matches values whose concrete tag is Kind.
type Scalar struct {
	Kind ScalarKind
}

// Nullable matches null or Inner (?T).
type Nullable struct {
	Inner Descriptor
}

// Mixed matches every value.
type Mixed struct{}

// Nonnull matches every value except null.
type Nonnull struct{}

func (AnyArray) descriptor()  {}
func (Shape) descriptor()     {}
func (Tuple) descriptor()     {}
func (Interface) descriptor() {}
func (Scalar) descriptor()    {}
func (Nullable) descriptor()  {}
func (Mixed) descriptor()     {}
func (Nonnull) descriptor()   {}

// NewShape creates a shape. Keys must be int or string values and unique.
func NewShape(open bool, fields ...ShapeField) (Shape, error) {
	seen := make(map[any]struct{}, len(fields))
	for _, f := range fields {
		k, ok := dictKey(f.Key)
		if !ok {
			return Shape{}, ErrType.NewError("shape key must be arraykey, found " + TypeName(f.Key))
		}
		if _, dup := seen[k]; dup {
			return Shape{}, ErrType.NewError("duplicate shape key " + ToCode(f.Key))
		}
		if f.Type == nil {
			return Shape{}, ErrType.NewError("shape key " + ToCode(f.Key) + " has no type")
		}
		seen[k] = struct{}{}
	}
	cp := make([]ShapeField, len(fields))
	copy(cp, fields)
	return Shape{fields: cp, Open: open}, nil
}

// MustShape is like NewShape but panics on error.
func MustShape(open bool, fields ...ShapeField) Shape {
	s, err := NewShape(open, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Field is a shortcut for a required shape field.
func Field(key Object, t Descriptor) ShapeField {
	return ShapeField{Key: key, Type: t}
}

// OptionalField is a shortcut for an optional shape field (?key).
func OptionalField(key Object, t Descriptor) ShapeField {
	return ShapeField{Key: key, Optional: true, Type: t}
}

// Fields returns a copy of the declared fields.
func (s Shape) Fields() []ShapeField {
	cp := make([]ShapeField, len(s.fields))
	copy(cp, s.fields)
	return cp
}

func (s Shape) field(key Object) (ShapeField, bool) {
	for _, f := range s.fields {
		if Same(f.Key, key) {
			return f, true
		}
	}
	return ShapeField{}, false
}

// NewTuple creates a tuple descriptor. A tuple has at least two elements;
// (T) is just T.
func NewTuple(elems ...Descriptor) (Tuple, error) {
	if len(elems) < 2 {
		return Tuple{}, ErrType.NewError("tuple needs at least 2 elements, found " + strconv.Itoa(len(elems)))
	}
	for i, e := range elems {
		if e == nil {
			return Tuple{}, ErrType.NewError("tuple element " + strconv.Itoa(i) + " has no type")
		}
	}
	cp := make([]Descriptor, len(elems))
	copy(cp, elems)
	return Tuple{elems: cp}, nil
}

// MustTuple is like NewTuple but panics on error.
func MustTuple(elems ...Descriptor) Tuple {
	t, err := NewTuple(elems...)
	if err != nil {
		panic(err)
	}
	return t
}

// Elems returns a copy of the element descriptors.
func (t Tuple) Elems() []Descriptor {
	cp := make([]Descriptor, len(t.elems))
	copy(cp, t.elems)
	return cp
}

// Len returns the number of tuple elements.
func (t Tuple) Len() int { return len(t.elems) }

func (AnyArray) String() string { return "AnyArray" }

func (s Shape) String() string { return stringw.ToString(s) }

func (s Shape) StringTo(w stringw.StringWriter) {
	w.WriteString("shape(")
	for i, f := range s.fields {
		if i > 0 {
			w.WriteString(", ")
		}
		if f.Optional {
			w.WriteByte('?')
		}
		w.WriteString(shapeKeyCode(f.Key))
		w.WriteString(" => ")
		stringw.ToStringW(w, f.Type)
	}
	if s.Open {
		if len(s.fields) > 0 {
			w.WriteString(", ")
		}
		w.WriteString("...")
	}
	w.WriteByte(')')
}

func shapeKeyCode(key Object) string {
	if s, ok := key.(Str); ok {
		return quote.Quote(string(s), '\'')
	}
	return key.ToString()
}

func (t Tuple) String() string { return stringw.ToString(t) }

func (t Tuple) StringTo(w stringw.StringWriter) {
	w.WriteByte('(')
	stringw.Join(w, ", ", t.elems)
	w.WriteByte(')')
}

func (n Nullable) String() string { return stringw.ToString(n) }

func (n Nullable) StringTo(w stringw.StringWriter) {
	w.WriteByte('?')
	stringw.ToStringW(w, n.Inner)
}

func (i Interface) String() string { return i.Name }
func (s Scalar) String() string    { return s.Kind.String() }
func (Mixed) String() string       { return "mixed" }
func (Nonnull) String() string     { return "nonnull" }

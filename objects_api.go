// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

// Falser represents an Falser object.
type Falser interface {
	// IsFalsy returns true if value is falsy otherwise false.
	IsFalsy() bool
}

// Object represents a runtime value checked by the engine.
type Object interface {
	Falser

	// Type returns the runtime type of the value.
	Type() ObjectType

	// ToString should return a string of the type's value.
	ToString() string

	// Equal checks loose (content) equality of objects. Use Same for identity.
	Equal(right Object) bool
}

// ObjectType describes the runtime type of an Object.
type ObjectType interface {
	Name() string
	Kind() Kind
}

// Identifier is implemented by objects with reference identity.
type Identifier interface {
	Object
	Identity() ID
}

// IndexGetter wraps the IndexGet method to get index value.
type IndexGetter interface {
	Object
	// IndexGet should take an index Object and return a result Object or an
	// error for indexable objects. If the index is of the wrong type an
	// ErrNotIndexable derived error is returned, if the index is missing an
	// ErrIndexOutOfBounds derived error is returned.
	IndexGet(index Object) (value Object, err error)
}

// LengthGetter wraps the Length method to get the number of elements of an object.
type LengthGetter interface {
	Object
	Length() int
}

// Sequence is an ordered, zero indexed run of values. Arrays and the array
// view of a pair are sequences.
type Sequence interface {
	LengthGetter
	// At returns the element at i. It panics if i is out of range, callers
	// check Length first.
	At(i int) Object
}

// KeyedReader is an associative read access to an object. Keys are returned
// in iteration order.
type KeyedReader interface {
	Object
	Keys() []Object
	Get(key Object) (Object, bool)
}

// Iterabler is an interface for objects that support ordered iteration.
type Iterabler interface {
	Object
	Iterate() Iterator
}

// Iterator iterates key value entries of an Iterabler.
type Iterator interface {
	Next() bool
	Key() Object
	Value() Object
}

// ArrayViewer is implemented by values which are not arrays but can be read
// as one without conversion.
type ArrayViewer interface {
	Object
	ArrayView() Sequence
}

var (
	_ Sequence    = (*Array)(nil)
	_ KeyedReader = (*Array)(nil)
	_ Iterabler   = (*Array)(nil)
	_ Identifier  = (*Array)(nil)
	_ IndexGetter = (*Array)(nil)

	_ KeyedReader = (*Dict)(nil)
	_ Iterabler   = (*Dict)(nil)
	_ Identifier  = (*Dict)(nil)
	_ IndexGetter = (*Dict)(nil)

	_ ArrayViewer = (*Pair)(nil)
	_ Identifier  = (*Pair)(nil)
	_ IndexGetter = (*Pair)(nil)
	_ Iterabler   = (*Pair)(nil)

	_ Identifier = (*Obj)(nil)
)

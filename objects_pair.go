// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

import (
	"github.com/gad-lang/clsmeth/repr"
)

// Pair is the dual-mode class-method pointer. It is an opaque handle with
// its own identity, and under legacy array reads it behaves like the
// two element array [First, Second].
type Pair struct {
	first, second Object
	view          pairView
}

// NewPair creates a dual-mode pair of a and b. Nil arguments become Nil.
func NewPair(a, b Object) *Pair {
	if a == nil {
		a = Nil
	}
	if b == nil {
		b = Nil
	}
	p := &Pair{first: a, second: b}
	p.view.p = p
	return p
}

// NewClsMeth creates the class-method pointer class::method.
func NewClsMeth(class, method string) *Pair {
	return NewPair(Str(class), Str(method))
}

func (o *Pair) First() Object  { return o.first }
func (o *Pair) Second() Object { return o.second }

func (o *Pair) Type() ObjectType { return TClsMeth }

func (o *Pair) Identity() ID { return ID{ref: o} }

func (o *Pair) ToString() string {
	return repr.QuoteTyped(TClsMeth.Name(), o.first.ToString()+"::"+o.second.ToString())
}

// ArrayView returns the non converting array view of the pair. The same
// view is returned on every call.
func (o *Pair) ArrayView() Sequence {
	return &o.view
}

// Index returns the element at i. Only 0 and 1 are valid.
func (o *Pair) Index(i int) (Object, error) {
	switch i {
	case 0:
		return o.first, nil
	case 1:
		return o.second, nil
	}
	return nil, NewIndexOutOfBoundsError(Int(i), 2)
}

// IndexGet implements IndexGetter interface.
func (o *Pair) IndexGet(index Object) (Object, error) {
	return o.view.IndexGet(index)
}

// Iterate implements Iterabler interface.
func (o *Pair) Iterate() Iterator {
	return o.view.Iterate()
}

// Equal implements Object interface. Contents are compared, so a pair equals
// its canonical array although they are never the same.
func (o *Pair) Equal(right Object) bool {
	seq, ok := AsSequence(right)
	if !ok {
		return false
	}
	return sequenceEqual(&o.view, seq)
}

// IsFalsy implements Object interface.
func (o *Pair) IsFalsy() bool { return false }

// pairView reads a pair as the array [first, second]. It shares the identity
// of its pair.
type pairView struct {
	p *Pair
}

var (
	_ Sequence    = (*pairView)(nil)
	_ KeyedReader = (*pairView)(nil)
	_ IndexGetter = (*pairView)(nil)
	_ Iterabler   = (*pairView)(nil)
	_ Identifier  = (*pairView)(nil)
)

func (v *pairView) Type() ObjectType { return TArray }

func (v *pairView) Identity() ID { return v.p.Identity() }

func (v *pairView) ToString() string {
	return ArrayToString(2, v.At)
}

func (v *pairView) Length() int { return 2 }

func (v *pairView) At(i int) Object {
	switch i {
	case 0:
		return v.p.first
	case 1:
		return v.p.second
	}
	panic(NewIndexOutOfBoundsError(Int(i), 2))
}

func (v *pairView) Keys() []Object { return []Object{Int(0), Int(1)} }

func (v *pairView) Get(key Object) (Object, bool) {
	r, err := sequenceIndexGet(v, key)
	return r, err == nil
}

func (v *pairView) IndexGet(index Object) (Object, error) {
	return sequenceIndexGet(v, index)
}

func (v *pairView) Iterate() Iterator {
	return &sequenceIterator{seq: v, i: -1}
}

func (v *pairView) Equal(right Object) bool {
	seq, ok := AsSequence(right)
	if !ok {
		return false
	}
	return sequenceEqual(v, seq)
}

func (v *pairView) IsFalsy() bool { return false }

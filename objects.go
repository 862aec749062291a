// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/gad-lang/clsmeth/repr"
)

// ID is the identity of a value. Two values are the same (===) iff their
// identities are equal. Reference values compare by pointer, scalars by value.
type ID struct {
	ref any
}

type decimalKey string

// IdentityOf returns the identity of any object.
func IdentityOf(o Object) ID {
	switch v := o.(type) {
	case nil:
		return ID{ref: Nil}
	case Identifier:
		return v.Identity()
	case Decimal:
		return ID{ref: decimalKey(v.Value.String())}
	default:
		return ID{ref: o}
	}
}

// Same reports whether a and b are identical (PHP ===).
func Same(a, b Object) bool {
	return IdentityOf(a) == IdentityOf(b)
}

// NilType represents the type of global Nil Object. One should use
// the NilType in type switches only.
type NilType struct{}

// Nil represents nil value.
var Nil = &NilType{}

func (o *NilType) Type() ObjectType { return TNil }

func (o *NilType) ToString() string { return "null" }

// Equal implements Object interface.
func (o *NilType) Equal(right Object) bool {
	_, ok := right.(*NilType)
	return ok
}

// IsFalsy implements Object interface.
func (o *NilType) IsFalsy() bool { return true }

// Bool represents boolean values and implements Object interface.
type Bool bool

var (
	True  = Bool(true)
	False = Bool(false)
)

func (o Bool) Type() ObjectType { return TBool }

func (o Bool) ToString() string {
	if o {
		return "true"
	}
	return "false"
}

// Equal implements Object interface.
func (o Bool) Equal(right Object) bool {
	if v, ok := right.(Bool); ok {
		return o == v
	}
	return false
}

// IsFalsy implements Object interface.
func (o Bool) IsFalsy() bool { return bool(!o) }

// Int represents signed integer values and implements Object interface.
type Int int64

func (o Int) Type() ObjectType { return TInt }

func (o Int) ToString() string {
	return strconv.FormatInt(int64(o), 10)
}

// Equal implements Object interface.
func (o Int) Equal(right Object) bool {
	switch v := right.(type) {
	case Int:
		return o == v
	case Float:
		return Float(o) == v
	case Decimal:
		return decimal.NewFromInt(int64(o)).Equal(v.Value)
	}
	return false
}

// IsFalsy implements Object interface.
func (o Int) IsFalsy() bool { return o == 0 }

// Float represents float values and implements Object interface.
type Float float64

func (o Float) Type() ObjectType { return TFloat }

func (o Float) ToString() string {
	return strconv.FormatFloat(float64(o), 'g', -1, 64)
}

// Equal implements Object interface.
func (o Float) Equal(right Object) bool {
	switch v := right.(type) {
	case Float:
		return o == v
	case Int:
		return o == Float(v)
	case Decimal:
		return decimal.NewFromFloat(float64(o)).Equal(v.Value)
	}
	return false
}

// IsFalsy implements Object interface.
func (o Float) IsFalsy() bool { return o == 0 }

// Decimal represents arbitrary precision decimal values.
type Decimal struct {
	Value decimal.Decimal
}

// NewDecimal parses s into a Decimal.
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, ErrType.NewError("invalid decimal " + strconv.Quote(s))
	}
	return Decimal{Value: d}, nil
}

// MustDecimal is like NewDecimal but panics on error. For literals in tests
// and fixtures only.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (o Decimal) Type() ObjectType { return TDecimal }

func (o Decimal) ToString() string { return o.Value.String() }

// Equal implements Object interface.
func (o Decimal) Equal(right Object) bool {
	switch v := right.(type) {
	case Decimal:
		return o.Value.Equal(v.Value)
	case Int, Float:
		return v.Equal(o)
	}
	return false
}

// IsFalsy implements Object interface.
func (o Decimal) IsFalsy() bool { return o.Value.IsZero() }

// Str represents string values and implements Object interface.
type Str string

func (o Str) Type() ObjectType { return TStr }

func (o Str) ToString() string { return string(o) }

// Equal implements Object interface.
func (o Str) Equal(right Object) bool {
	if v, ok := right.(Str); ok {
		return o == v
	}
	return false
}

// IsFalsy implements Object interface.
func (o Str) IsFalsy() bool { return len(o) == 0 }

// Length returns the byte length of the string.
func (o Str) Length() int { return len(o) }

// Array represents an ordered list of values (a varray). Arrays have
// reference identity: copies are only made by explicit conversions.
type Array struct {
	items []Object
}

// NewArray creates an array holding items. The slice is not copied; nil
// elements are replaced by Nil in place.
func NewArray(items ...Object) *Array {
	for i, v := range items {
		if v == nil {
			items[i] = Nil
		}
	}
	return &Array{items: items}
}

func (o *Array) Type() ObjectType { return TArray }

func (o *Array) ToString() string {
	return ArrayToString(len(o.items), o.At)
}

func (o *Array) Identity() ID { return ID{ref: o} }

// Items returns a copy of the elements.
func (o *Array) Items() []Object {
	cp := make([]Object, len(o.items))
	copy(cp, o.items)
	return cp
}

// Length implements LengthGetter interface.
func (o *Array) Length() int { return len(o.items) }

// At implements Sequence interface.
func (o *Array) At(i int) Object { return o.items[i] }

// IndexGet implements IndexGetter interface.
func (o *Array) IndexGet(index Object) (Object, error) {
	return sequenceIndexGet(o, index)
}

// Keys implements KeyedReader interface.
func (o *Array) Keys() []Object {
	return sequenceKeys(o)
}

// Get implements KeyedReader interface.
func (o *Array) Get(key Object) (Object, bool) {
	v, err := sequenceIndexGet(o, key)
	return v, err == nil
}

// Iterate implements Iterabler interface.
func (o *Array) Iterate() Iterator {
	return &sequenceIterator{seq: o, i: -1}
}

// Equal implements Object interface. An array equals any sequence (including
// the array view of a pair) with equal elements.
func (o *Array) Equal(right Object) bool {
	seq, ok := AsSequence(right)
	if !ok {
		return false
	}
	return sequenceEqual(o, seq)
}

// IsFalsy implements Object interface.
func (o *Array) IsFalsy() bool { return len(o.items) == 0 }

// Dict represents an ordered associative array (a darray). Keys are Int or
// Str values.
type Dict struct {
	keys   []Object
	values []Object
	index  map[any]int
}

// NewDict creates an empty dict.
func NewDict() *Dict {
	return &Dict{index: map[any]int{}}
}

func dictKey(key Object) (any, bool) {
	switch k := key.(type) {
	case Int:
		return int64(k), true
	case Str:
		return string(k), true
	}
	return nil, false
}

// Set sets key to value, keeping the insertion position of existing keys.
// A nil value is stored as Nil.
func (o *Dict) Set(key, value Object) error {
	k, ok := dictKey(key)
	if !ok {
		return NewIndexTypeError("arraykey", TypeName(key))
	}
	if value == nil {
		value = Nil
	}
	if o.index == nil {
		o.index = map[any]int{}
	}
	if i, exists := o.index[k]; exists {
		o.values[i] = value
		return nil
	}
	o.index[k] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
	return nil
}

// MustSet is like Set but panics on an invalid key.
func (o *Dict) MustSet(key, value Object) *Dict {
	if err := o.Set(key, value); err != nil {
		panic(err)
	}
	return o
}

func (o *Dict) Type() ObjectType { return TDict }

func (o *Dict) Identity() ID { return ID{ref: o} }

func (o *Dict) ToString() string {
	var sb = []byte{'{'}
	for i, k := range o.keys {
		if i > 0 {
			sb = append(sb, ", "...)
		}
		sb = append(sb, ToCode(k)...)
		sb = append(sb, ": "...)
		sb = append(sb, ToCode(o.values[i])...)
	}
	sb = append(sb, '}')
	return string(sb)
}

// Length implements LengthGetter interface.
func (o *Dict) Length() int { return len(o.keys) }

// Keys implements KeyedReader interface.
func (o *Dict) Keys() []Object {
	cp := make([]Object, len(o.keys))
	copy(cp, o.keys)
	return cp
}

// Values returns the values in insertion order.
func (o *Dict) Values() []Object {
	cp := make([]Object, len(o.values))
	copy(cp, o.values)
	return cp
}

// Get implements KeyedReader interface.
func (o *Dict) Get(key Object) (Object, bool) {
	k, ok := dictKey(key)
	if !ok {
		return nil, false
	}
	i, ok := o.index[k]
	if !ok {
		return nil, false
	}
	return o.values[i], true
}

// IndexGet implements IndexGetter interface.
func (o *Dict) IndexGet(index Object) (Object, error) {
	if _, ok := dictKey(index); !ok {
		return nil, NewIndexTypeError("arraykey", TypeName(index))
	}
	if v, ok := o.Get(index); ok {
		return v, nil
	}
	return nil, NewIndexOutOfBoundsError(index, len(o.keys))
}

// Iterate implements Iterabler interface.
func (o *Dict) Iterate() Iterator {
	return &dictIterator{d: o, i: -1}
}

// Equal implements Object interface.
func (o *Dict) Equal(right Object) bool {
	v, ok := right.(*Dict)
	if !ok || len(v.keys) != len(o.keys) {
		return false
	}
	for i, k := range o.keys {
		rv, ok := v.Get(k)
		if !ok || !o.values[i].Equal(rv) {
			return false
		}
	}
	return true
}

// IsFalsy implements Object interface.
func (o *Dict) IsFalsy() bool { return len(o.keys) == 0 }

// Obj is an instance of a Class. It is an opaque handle for the engine:
// only its class takes part in type tests.
type Obj struct {
	class *Class
}

func (o *Obj) Type() ObjectType { return o.class }

// Class returns the class of the object.
func (o *Obj) Class() *Class { return o.class }

func (o *Obj) Identity() ID { return ID{ref: o} }

func (o *Obj) ToString() string {
	return repr.QuoteTyped("object", o.class.ClassName)
}

// Equal implements Object interface.
func (o *Obj) Equal(right Object) bool {
	v, ok := right.(*Obj)
	return ok && v == o
}

// IsFalsy implements Object interface.
func (o *Obj) IsFalsy() bool { return false }

type sequenceIterator struct {
	seq Sequence
	i   int
}

func (it *sequenceIterator) Next() bool {
	if it.i+1 >= it.seq.Length() {
		return false
	}
	it.i++
	return true
}

func (it *sequenceIterator) Key() Object   { return Int(it.i) }
func (it *sequenceIterator) Value() Object { return it.seq.At(it.i) }

type dictIterator struct {
	d *Dict
	i int
}

func (it *dictIterator) Next() bool {
	if it.i+1 >= len(it.d.keys) {
		return false
	}
	it.i++
	return true
}

func (it *dictIterator) Key() Object   { return it.d.keys[it.i] }
func (it *dictIterator) Value() Object { return it.d.values[it.i] }

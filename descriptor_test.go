package clsmeth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/gad-lang/clsmeth"
)

func TestDescriptorString(t *testing.T) {
	str := Scalar{Kind: ScalarString}
	for _, tc := range []struct {
		d    Descriptor
		want string
	}{
		{AnyArray{}, "AnyArray"},
		{Mixed{}, "mixed"},
		{Nonnull{}, "nonnull"},
		{Interface{Name: Traversable}, "Traversable"},
		{str, "string"},
		{Scalar{Kind: ScalarArrayKey}, "arraykey"},
		{Nullable{Inner: str}, "?string"},
		{MustTuple(str, str), "(string, string)"},
		{MustShape(true), "shape(...)"},
		{MustShape(false), "shape()"},
		{MustShape(false, Field(Int(0), str), Field(Int(1), str)), "shape(0 => string, 1 => string)"},
		{MustShape(true, OptionalField(Str("it's"), Nullable{Inner: str})), `shape(?'it\'s' => ?string, ...)`},
	} {
		require.Equal(t, tc.want, tc.d.String())
	}
	require.Equal(t, "scalar(42)", ScalarKind(42).String())
}

func TestScalarKindByName(t *testing.T) {
	for _, name := range []string{"string", "int", "bool", "float", "decimal", "null", "num", "arraykey"} {
		k, ok := ScalarKindByName(name)
		require.True(t, ok, name)
		require.Equal(t, name, k.String())
	}
	_, ok := ScalarKindByName("String")
	require.False(t, ok)
}

func TestNewShape(t *testing.T) {
	str := Scalar{Kind: ScalarString}

	_, err := NewShape(false, Field(Float(1), str))
	require.ErrorIs(t, err, ErrType)
	require.Contains(t, err.Error(), "shape key must be arraykey, found float")

	_, err = NewShape(false, Field(Int(0), str), OptionalField(Int(0), str))
	require.ErrorIs(t, err, ErrType)
	require.Contains(t, err.Error(), "duplicate shape key 0")

	_, err = NewShape(false, Field(Str("a"), nil))
	require.ErrorIs(t, err, ErrType)

	// int and string keys never collide
	s, err := NewShape(false, Field(Int(0), str), Field(Str("0"), str))
	require.NoError(t, err)
	require.Len(t, s.Fields(), 2)

	require.Panics(t, func() { MustShape(false, Field(Nil, str)) })
}

func TestNewTuple(t *testing.T) {
	str := Scalar{Kind: ScalarString}

	_, err := NewTuple()
	require.ErrorIs(t, err, ErrType)
	require.Contains(t, err.Error(), "tuple needs at least 2 elements, found 0")

	_, err = NewTuple(str)
	require.ErrorIs(t, err, ErrType)
	require.Contains(t, err.Error(), "found 1")

	_, err = NewTuple(str, nil)
	require.ErrorIs(t, err, ErrType)
	require.Contains(t, err.Error(), "tuple element 1 has no type")

	tup, err := NewTuple(str, Nullable{Inner: str})
	require.NoError(t, err)
	require.Equal(t, "(string, ?string)", tup.String())

	require.Panics(t, func() { MustTuple(str) })
}

func TestDescriptorImmutable(t *testing.T) {
	str := Scalar{Kind: ScalarString}
	fields := []ShapeField{Field(Int(0), str)}
	s := MustShape(false, fields...)
	fields[0].Key = Int(5)
	require.Equal(t, "shape(0 => string)", s.String())
	s.Fields()[0].Key = Int(6)
	require.Equal(t, "shape(0 => string)", s.String())

	elems := []Descriptor{str, str}
	tup := MustTuple(elems...)
	elems[0] = Mixed{}
	require.Equal(t, "(string, string)", tup.String())
	tup.Elems()[1] = Mixed{}
	require.Equal(t, "(string, string)", tup.String())
	require.Equal(t, 2, tup.Len())
}

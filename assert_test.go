package clsmeth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/test_helper"
)

func TestAs(t *testing.T) {
	m := NewClsMeth("Foo", "bar")
	opts := strictOpts()

	test_helper.ExpectAsSame(t, m, "AnyArray", opts)
	test_helper.ExpectAsSame(t, m, "Traversable", opts)
	test_helper.ExpectAsSame(t, m, "Container", opts)
	test_helper.ExpectAsSame(t, m, "(string, string)", opts)
	test_helper.ExpectAsSame(t, m, "?KeyedContainer", opts)
	test_helper.ExpectAsFails(t, m, "shape(K::A => string, K::B => string)", opts)
	test_helper.ExpectAsFails(t, m, "shape(...)", opts)
	test_helper.ExpectAsFails(t, m, "string", opts)
	test_helper.ExpectAsSame(t, m, "shape(...)", structuralOpts())

	a := NewArray(Int(1))
	test_helper.ExpectAsSame(t, a, "AnyArray", opts)
	test_helper.ExpectAsSame(t, Str("x"), "arraykey", opts)
	test_helper.ExpectAsFails(t, Nil, "nonnull", opts)
}

func TestTypeAssertionError(t *testing.T) {
	m := NewClsMeth("Foo", "bar")
	d := MustShape(true)

	_, err := As(m, d)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTypeAssertion))
	require.Equal(t, "TypeAssertionError: Expected shape(...), got clsmeth", err.Error())

	_, err = As(nil, Nonnull{})
	var tae *TypeAssertionError
	require.True(t, errors.As(err, &tae))
	require.Equal(t, Nil, tae.Value)
	require.Equal(t, "TypeAssertionError: Expected nonnull, got null", err.Error())
}

func TestAsPredicate(t *testing.T) {
	m := NewClsMeth("Foo", "bar")
	d := MustTuple(Scalar{Kind: ScalarString}, Scalar{Kind: ScalarString})

	got, err := AsPredicate(m, Compile(d), d)
	require.NoError(t, err)
	require.True(t, Same(m, got))

	d2 := Scalar{Kind: ScalarInt}
	got, err = AsPredicate(m, Compile(d2), d2)
	require.Nil(t, got)
	require.ErrorIs(t, err, ErrTypeAssertion)
	require.Contains(t, err.Error(), "Expected int, got clsmeth")
}

func TestToCanonicalArray(t *testing.T) {
	m := NewClsMeth("Foo", "bar")
	arr, err := ToCanonicalArray(m)
	require.NoError(t, err)
	require.False(t, Same(m, arr))
	require.Equal(t, []Object{Str("Foo"), Str("bar")}, arr.Items())

	again, err := ToCanonicalArray(m)
	require.NoError(t, err)
	require.False(t, Same(arr, again))

	view := m.ArrayView()
	arr, err = ToCanonicalArray(view)
	require.NoError(t, err)
	require.False(t, Same(view, arr))
	require.False(t, Same(m, arr))
	require.Equal(t, []Object{Str("Foo"), Str("bar")}, arr.Items())

	a := NewArray(Int(1))
	same, err := ToCanonicalArray(a)
	require.NoError(t, err)
	require.True(t, Same(a, same))

	d := NewDict().MustSet(Str("x"), Int(1)).MustSet(Str("y"), Int(2))
	arr, err = ToCanonicalArray(d)
	require.NoError(t, err)
	require.Equal(t, []Object{Int(1), Int(2)}, arr.Items())

	_, err = ToCanonicalArray(Str("Foo::bar"))
	require.ErrorIs(t, err, ErrType)
	require.Equal(t, "TypeError: cannot convert string to varray", err.Error())
}

func TestErrors(t *testing.T) {
	err := NewIndexOutOfBoundsError(Int(2), 2)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	require.Equal(t, "IndexOutOfBoundsError: index 2 out of range [0, 2)", err.Error())

	err = NewIndexTypeError("int", "string")
	require.ErrorIs(t, err, ErrNotIndexable)
	require.Equal(t, "NotIndexableError: index type expected int, found string", err.Error())

	require.Equal(t, "error: x", (&Error{Message: "x"}).Error())
	require.True(t, ErrType.IsFalsy())
	require.True(t, ErrType.Equal(ErrType))
	require.False(t, ErrType.Equal(ErrType.NewError("x")))
}

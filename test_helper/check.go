// Package test_helper holds assertions shared by the type test suites.
package test_helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/typeexpr"
)

// CheckOpts configures the checker and the constant resolver of the
// Expect helpers.
type CheckOpts struct {
	Policy ShapePolicy
	Consts typeexpr.Consts
}

func NewCheckOpts() *CheckOpts {
	return &CheckOpts{}
}

func (o *CheckOpts) WithPolicy(p ShapePolicy) *CheckOpts {
	o.Policy = p
	return o
}

func (o *CheckOpts) WithConsts(c typeexpr.Consts) *CheckOpts {
	o.Consts = c
	return o
}

func (o *CheckOpts) checker() Checker {
	if o == nil {
		return Checker{}
	}
	return Checker{Policy: o.Policy}
}

func (o *CheckOpts) parse(t *testing.T, typ string) Descriptor {
	t.Helper()
	var consts typeexpr.Consts
	if o != nil {
		consts = o.Consts
	}
	d, err := typeexpr.Parse(typ, consts)
	require.NoError(t, err, "parse %q", typ)
	return d
}

// ExpectIs checks `v is typ` through both the interpreted checker and the
// compiled predicate.
func ExpectIs(t *testing.T, v Object, typ string, opts *CheckOpts, expected bool) {
	t.Helper()
	d := opts.parse(t, typ)
	c := opts.checker()
	require.Equal(t, expected, c.Is(v, d), "%s is %s", ToCode(v), typ)
	require.Equal(t, expected, c.Compile(d)(v), "compiled: %s is %s", ToCode(v), typ)
}

// ExpectAsSame checks that `v as typ` succeeds and returns v itself.
func ExpectAsSame(t *testing.T, v Object, typ string, opts *CheckOpts) {
	t.Helper()
	got, err := opts.checker().As(v, opts.parse(t, typ))
	require.NoError(t, err)
	require.True(t, Same(v, got), "%s as %s returned a different value", ToCode(v), typ)
}

// ExpectAsFails checks that `v as typ` fails with a TypeAssertionError
// carrying v and the descriptor.
func ExpectAsFails(t *testing.T, v Object, typ string, opts *CheckOpts) {
	t.Helper()
	d := opts.parse(t, typ)
	got, err := opts.checker().As(v, d)
	require.Nil(t, got)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTypeAssertion), "unexpected error %v", err)

	var tae *TypeAssertionError
	require.True(t, errors.As(err, &tae))
	require.True(t, Same(v, tae.Value))
	require.Equal(t, d.String(), tae.Descriptor.String())
}

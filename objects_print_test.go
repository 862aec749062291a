package clsmeth_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/gad-lang/clsmeth"
)

func TestDump(t *testing.T) {
	arr, err := ToCanonicalArray(NewClsMeth("Foo", "bar"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, arr))
	require.Equal(t, `varray(2) {
  [0]=>
  string(3) "Foo"
  [1]=>
  string(3) "bar"
}
`, buf.String())

	require.Equal(t, "NULL\n", DumpString(Nil))
	require.Equal(t, "NULL\n", DumpString(nil))
	require.Equal(t, "bool(true)\n", DumpString(True))
	require.Equal(t, "int(-3)\n", DumpString(Int(-3)))
	require.Equal(t, "float(0.25)\n", DumpString(Float(0.25)))
	require.Equal(t, "decimal(1.5)\n", DumpString(MustDecimal("1.5")))
	require.Equal(t, "clsmeth(Foo::bar)\n", DumpString(NewClsMeth("Foo", "bar")))
	require.Equal(t, "object(C)\n", DumpString(NewClass("C").New()))
	require.Equal(t, "varray(0) {\n}\n", DumpString(NewArray()))
	require.Equal(t, buf.String(), DumpString(NewClsMeth("Foo", "bar").ArrayView()))
}

func TestDumpRawStrings(t *testing.T) {
	d := NewDict().MustSet(Str(`a"b`), Str("x\ny\\"))
	require.Equal(t, "darray(1) {\n  [\"a\"b\"]=>\n  string(4) \"x\ny\\\"\n}\n", DumpString(d))
}

func TestDumpNested(t *testing.T) {
	d := NewDict().
		MustSet(Str("m"), NewArray(Int(1))).
		MustSet(Int(7), Nil)
	require.Equal(t, `darray(2) {
  ["m"]=>
  varray(1) {
    [0]=>
    int(1)
  }
  [7]=>
  NULL
}
`, DumpString(d))
}

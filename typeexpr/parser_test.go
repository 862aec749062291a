package typeexpr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/typeexpr"
)

var consts = typeexpr.ClassConsts(&clsmeth.Class{
	ClassName: "K",
	Consts: map[string]clsmeth.Object{
		"A": clsmeth.Int(0),
		"B": clsmeth.Int(1),
		"S": clsmeth.Str("s"),
		"F": clsmeth.Float(1),
	},
})

func TestParse(t *testing.T) {
	for src, want := range map[string]string{
		"AnyArray":                               "AnyArray",
		"anyarray":                               "AnyArray",
		"mixed":                                  "mixed",
		"nonnull":                                "nonnull",
		"traversable":                            "Traversable",
		"KeyedTraversable":                       "KeyedTraversable",
		"container":                              "Container",
		"KeyedContainer":                         "KeyedContainer",
		"string":                                 "string",
		"arraykey":                               "arraykey",
		"num":                                    "num",
		"?int":                                   "?int",
		"? ? int":                                "??int",
		"\\HH\\Foo":                              `\HH\Foo`,
		"\\HH\\Traversable":                      "Traversable",
		"HH\\KeyedContainer":                     "KeyedContainer",
		"\\hh\\AnyArray":                         "AnyArray",
		"\\HH\\string":                           "string",
		"My_Iface2":                              "My_Iface2",
		"(string)":                               "string",
		"((string, int))":                        "(string, int)",
		"(string, string)":                       "(string, string)",
		"(string, string,)":                      "(string, string)",
		"?(int, ?string)":                        "?(int, ?string)",
		"shape()":                                "shape()",
		"shape(...)":                             "shape(...)",
		"shape(...,)":                            "shape(...)",
		"shape(K::A => string, K::B => string)":  "shape(0 => string, 1 => string)",
		"shape(K::S => int, ...)":                "shape('s' => int, ...)",
		"shape('a' => int, ?\"b\" => ?string,)":  "shape('a' => int, ?'b' => ?string)",
		"shape(-1 => int)":                       "shape(-1 => int)",
		"shape('it\\'s' => int)":                 `shape('it\'s' => int)`,
		"shape('m' => shape(0 => (int, int)))":   "shape('m' => shape(0 => (int, int)))",
		"  shape ( 0=>string , 1 =>string )  ":   "shape(0 => string, 1 => string)",
	} {
		d, err := typeexpr.Parse(src, consts)
		require.NoError(t, err, src)
		require.Equal(t, want, d.String(), src)
	}
}

func TestParseDescriptors(t *testing.T) {
	d := typeexpr.MustParse("shape(K::A => string, ?'x' => mixed, ...)", consts)
	s, ok := d.(clsmeth.Shape)
	require.True(t, ok)
	require.True(t, s.Open)
	fields := s.Fields()
	require.Len(t, fields, 2)
	require.Equal(t, clsmeth.Int(0), fields[0].Key)
	require.False(t, fields[0].Optional)
	require.Equal(t, clsmeth.Scalar{Kind: clsmeth.ScalarString}, fields[0].Type)
	require.Equal(t, clsmeth.Str("x"), fields[1].Key)
	require.True(t, fields[1].Optional)
	require.Equal(t, clsmeth.Mixed{}, fields[1].Type)

	d = typeexpr.MustParse("Foo", nil)
	require.Equal(t, clsmeth.Interface{Name: "Foo"}, d)
	d = typeexpr.MustParse(`\HH\Traversable`, nil)
	require.Equal(t, clsmeth.Interface{Name: clsmeth.Traversable}, d)
	// only builtin names lose the namespace
	d = typeexpr.MustParse(`\HH\Foo`, nil)
	require.Equal(t, clsmeth.Interface{Name: `\HH\Foo`}, d)

	d = typeexpr.MustParse("(string, ?int)", nil)
	tup, ok := d.(clsmeth.Tuple)
	require.True(t, ok)
	require.Equal(t, []clsmeth.Descriptor{
		clsmeth.Scalar{Kind: clsmeth.ScalarString},
		clsmeth.Nullable{Inner: clsmeth.Scalar{Kind: clsmeth.ScalarInt}},
	}, tup.Elems())
}

func TestParseErrors(t *testing.T) {
	for src, want := range map[string]string{
		"":                        "Parse Error: expected type, found EOF\n\tat offset 1",
		"string int":              "Parse Error: expected end of type, found \"int\"\n\tat offset 8",
		"(string":                 "Parse Error: expected ')', found EOF\n\tat offset 8",
		"()":                      "Parse Error: expected type, found )\n\tat offset 2",
		"shape":                   "Parse Error: expected '(', found EOF\n\tat offset 6",
		"shape(K::C => string)":   "Parse Error: undefined class constant K::C\n\tat offset 7",
		"shape(X::A => string)":   "Parse Error: undefined class constant X::A\n\tat offset 7",
		"shape(K::F => string)":   "Parse Error: shape key must be arraykey, found float\n\tat offset 1",
		"shape(0 => int, 0 => string)": "Parse Error: duplicate shape key 0\n\tat offset 1",
		"shape(0 int)":            "Parse Error: expected '=>', found \"int\"\n\tat offset 9",
		"shape(K => int)":         "Parse Error: expected '::', found =>\n\tat offset 9",
		"shape(K:: => int)":       "Parse Error: expected constant name, found =>\n\tat offset 11",
		"shape(string)":           "Parse Error: expected '::', found )\n\tat offset 13",
		"shape(=> int)":           "Parse Error: expected shape key, found =>\n\tat offset 7",
		"shape(... 0 => int)":     "Parse Error: expected ')', found \"0\"\n\tat offset 11",
		"int | string":            "Parse Error: illegal character \"|\"\n\tat offset 5",
		"shape('a => int)":        "Parse Error: string literal not terminated\n\tat offset 7 (and 1 more errors)",
		"shape(99999999999999999999 => int)": "Parse Error: invalid int key 99999999999999999999\n\tat offset 7",
	} {
		_, err := typeexpr.Parse(src, consts)
		require.Error(t, err, src)
		require.Equal(t, want, err.Error(), src)

		var list typeexpr.ErrorList
		require.True(t, errors.As(err, &list), src)
		require.NotZero(t, list.Len(), src)
	}

	require.Panics(t, func() { typeexpr.MustParse("(", nil) })

	// constants need a resolver
	_, err := typeexpr.Parse("shape(K::A => string)", nil)
	require.EqualError(t, err, "Parse Error: undefined class constant K::A\n\tat offset 7")
}

func TestErrorList(t *testing.T) {
	var list typeexpr.ErrorList
	require.NoError(t, list.Err())
	require.Equal(t, "no errors", list.Error())

	list.Add(5, "b")
	list.Add(2, "a")
	list.Add(typeexpr.NoPos, "c")
	list.Sort()
	require.Equal(t, "c", list[0].Msg)
	require.Equal(t, "a", list[1].Msg)
	require.Equal(t, "Parse Error: c (and 2 more errors)", list.Error())
	require.Error(t, list.Err())
}

func TestConstsFunc(t *testing.T) {
	var calls int
	c := typeexpr.ConstsFunc(func(class, name string) (clsmeth.Object, bool) {
		calls++
		if class == "Z" && name == "KEY" {
			return clsmeth.Str("key"), true
		}
		return nil, false
	})
	d, err := typeexpr.Parse("shape(Z::KEY => int)", c)
	require.NoError(t, err)
	require.Equal(t, "shape('key' => int)", d.String())
	require.Equal(t, 1, calls)
}

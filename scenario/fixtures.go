// Package scenario runs the is/as scenarios of the class-method pointer and
// produces a deterministic line oriented report.
package scenario

import (
	"github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/typeexpr"
)

// Fixture classes: K carries the shape key constants, Foo owns the static
// method the pointer refers to.
var (
	ClassK = &clsmeth.Class{
		ClassName: "K",
		Consts: map[string]clsmeth.Object{
			"A": clsmeth.Int(0),
			"B": clsmeth.Int(1),
		},
	}
	ClassFoo = clsmeth.NewClass("Foo")

	// Consts resolves K::A and K::B in type expressions.
	Consts = typeexpr.ClassConsts(ClassK, ClassFoo)
)

// NewMethodPointer returns class_meth(Foo::class, 'bar').
func NewMethodPointer() *clsmeth.Pair {
	return clsmeth.NewClsMeth(ClassFoo.Name(), "bar")
}

// check is one `is` observation and its matching `as` attempt.
type check struct {
	label  string
	typ    string
	index  int // -1 tests $m itself, otherwise $m[index]
	marker string
}

var checks = []check{
	{label: "$m is arraylike: ", typ: "AnyArray", index: -1, marker: "Passed!"},
	{label: "$m is shape(str,str): ", typ: "shape(K::A => string, K::B => string)", index: -1, marker: "shape!"},
	{label: "$m is shape(...): ", typ: "shape(...)", index: -1, marker: "shape!"},
	{label: "$m is Traversable: ", typ: "Traversable", index: -1, marker: "Passed!"},
	{label: "$m is Container: ", typ: "Container", index: -1, marker: "Passed!"},
	{label: "$m is (string,string): ", typ: "(string, string)", index: -1, marker: "Passed!"},
	{label: "$m[0] is string: ", typ: "string", index: 0, marker: "Passed!"},
	{label: "$m[1] is string: ", typ: "string", index: 1, marker: "Passed!"},
}

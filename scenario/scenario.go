package scenario

import (
	"errors"
	"fmt"
	"io"

	"github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/typeexpr"
)

// Env is what a scenario invocation sees: the runtime with the installed
// diagnostic handler and the report writer.
type Env struct {
	RT  *clsmeth.Runtime
	Out io.Writer
}

func (e *Env) printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}

func (e *Env) observe(label string, ok bool) {
	e.printf("%s%s", label, P(ok))
}

// P renders a boolean observation.
func P(b bool) string {
	if b {
		return "True\n"
	}
	return "False\n"
}

// Scenario is a named, repeatable test procedure.
type Scenario struct {
	Name string
	Run  func(e *Env) error
}

// All returns the scenarios in report order.
func All() []Scenario {
	return []Scenario{
		{Name: "is_as_static", Run: isAsStatic},
		{Name: "is_as_dynamic", Run: isAsDynamic},
		{Name: "is_as_shuffle_static", Run: isAsShuffleStatic},
		{Name: "is_as_shuffle_dynamic", Run: isAsShuffleDynamic},
	}
}

// Lookup returns the scenarios with the given names, in the given order.
func Lookup(names ...string) ([]Scenario, error) {
	all := All()
	ret := make([]Scenario, 0, len(names))
next:
	for _, name := range names {
		for _, s := range all {
			if s.Name == name {
				ret = append(ret, s)
				continue next
			}
		}
		return nil, ErrUnknownScenario.NewError(name)
	}
	return ret, nil
}

// ErrUnknownScenario is returned by Lookup.
var ErrUnknownScenario = &clsmeth.Error{Name: "UnknownScenarioError"}

// subject returns the value a check reads: the pointer or one of its
// elements.
func subject(e *Env, m clsmeth.Object, c check) (clsmeth.Object, error) {
	if c.index < 0 {
		return m, nil
	}
	return e.RT.Index(m, clsmeth.Int(c.index))
}

// isAs runs every check twice: first as an `is` observation, then as an
// `as` assertion printing the marker when it fails. Static runs evaluate
// compiled predicates, dynamic runs the interpreted checker.
func isAs(e *Env, m clsmeth.Object, static bool) error {
	descriptors := make([]clsmeth.Descriptor, len(checks))
	for i, c := range checks {
		d, err := typeexpr.Parse(c.typ, Consts)
		if err != nil {
			return err
		}
		descriptors[i] = d
	}

	for i, c := range checks {
		v, err := subject(e, m, c)
		if err != nil {
			return err
		}
		if static {
			e.observe(c.label, e.RT.Compile(descriptors[i])(v))
		} else {
			e.observe(c.label, e.RT.Is(v, descriptors[i]))
		}
	}

	for i, c := range checks {
		v, err := subject(e, m, c)
		if err != nil {
			return err
		}
		if static {
			_, err = clsmeth.AsPredicate(v, e.RT.Compile(descriptors[i]), descriptors[i])
		} else {
			_, err = e.RT.As(v, descriptors[i])
		}
		if err != nil {
			if !errors.Is(err, clsmeth.ErrTypeAssertion) {
				return err
			}
			e.printf("%s\n", c.marker)
		}
	}

	arr, err := e.RT.VArray(m)
	if err != nil {
		e.printf("Passed\n")
		return nil
	}
	return clsmeth.Dump(e.Out, arr)
}

func isAsStatic(e *Env) error {
	return isAs(e, NewMethodPointer(), true)
}

func isAsDynamic(e *Env) error {
	return isAs(e, clsmeth.Launder(NewMethodPointer()), false)
}

func isAsShuffle(e *Env, m clsmeth.Object, guard clsmeth.Descriptor, label string) error {
	if !e.RT.IsLegacyArray(m) {
		e.printf("Failed $m is array!\n")
		return nil
	}

	x, err := e.RT.VArray(m)
	if err != nil {
		return err
	}
	e.observe("$m === varray($m): ", clsmeth.Same(m, x))

	if !e.RT.Is(m, guard) {
		e.printf("Failed $m is %s!\n", guardName(guard))
		return nil
	}
	y, err := e.RT.As(m, clsmeth.Interface{Name: clsmeth.Traversable})
	if err != nil {
		return err
	}
	e.observe(label, clsmeth.Same(m, y))
	return nil
}

func guardName(d clsmeth.Descriptor) string {
	if _, ok := d.(clsmeth.AnyArray); ok {
		return "arraylike"
	}
	return d.String()
}

func isAsShuffleStatic(e *Env) error {
	return isAsShuffle(e, NewMethodPointer(),
		clsmeth.Interface{Name: clsmeth.Traversable},
		"$m === ($m as Traversable): ")
}

func isAsShuffleDynamic(e *Env) error {
	return isAsShuffle(e, clsmeth.Launder(NewMethodPointer()),
		clsmeth.AnyArray{},
		"$m === ($m as arraylike): ")
}

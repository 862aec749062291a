// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

import (
	"strings"
)

// ShapePolicy decides whether list-like values (arrays and dual-mode pairs)
// may satisfy Shape descriptors.
type ShapePolicy uint8

const (
	// ShapeStrict only accepts associative arrays as shapes. A pair is never
	// a shape even though its int keyed view would match.
	ShapeStrict ShapePolicy = iota
	// ShapeStructural reads arrays and pairs as int keyed records.
	ShapeStructural
)

func (p ShapePolicy) String() string {
	switch p {
	case ShapeStrict:
		return "strict"
	case ShapeStructural:
		return "structural"
	}
	return "unknown"
}

// ParseShapePolicy parses "strict" or "structural".
func ParseShapePolicy(s string) (ShapePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ShapeStrict, nil
	case "structural":
		return ShapeStructural, nil
	}
	return 0, ErrType.NewError("unknown shape policy " + s)
}

// Checker evaluates type descriptors against values. The zero value uses
// ShapeStrict.
type Checker struct {
	Policy ShapePolicy
}

// Is reports whether v satisfies d under the default policy.
func Is(v Object, d Descriptor) bool {
	return Checker{}.Is(v, d)
}

// Is reports whether v satisfies d. It never fails and has no side effects;
// an unknown descriptor is never satisfied.
func (c Checker) Is(v Object, d Descriptor) bool {
	if v == nil {
		v = Nil
	}
	switch t := d.(type) {
	case AnyArray:
		return isArrayLike(v)
	case Shape:
		return c.isShape(v, t)
	case Tuple:
		return c.isTuple(v, t)
	case Interface:
		return isInterface(v, t.Name)
	case Scalar:
		return isScalar(v, t.Kind)
	case Nullable:
		return isNull(v) || c.Is(v, t.Inner)
	case Mixed:
		return true
	case Nonnull:
		return !isNull(v)
	}
	return false
}

func isNull(v Object) bool {
	_, ok := v.(*NilType)
	return ok
}

func isArrayLike(v Object) bool {
	switch v.(type) {
	case *Array, *pairView, *Dict, ArrayViewer:
		return true
	}
	return false
}

// record returns the associative reading of v permitted by the policy.
func (c Checker) record(v Object) (KeyedReader, bool) {
	switch t := v.(type) {
	case *Dict:
		return t, true
	case *Array:
		if c.Policy == ShapeStructural {
			return t, true
		}
	case *pairView:
		if c.Policy == ShapeStructural {
			return t, true
		}
	case ArrayViewer:
		if c.Policy == ShapeStructural {
			kr, ok := t.ArrayView().(KeyedReader)
			return kr, ok
		}
	}
	return nil, false
}

func (c Checker) isShape(v Object, s Shape) bool {
	kr, ok := c.record(v)
	if !ok {
		return false
	}
	for _, f := range s.fields {
		val, ok := kr.Get(f.Key)
		if !ok {
			if f.Optional {
				continue
			}
			return false
		}
		if !c.Is(val, f.Type) {
			return false
		}
	}
	if !s.Open {
		for _, k := range kr.Keys() {
			if _, declared := s.field(k); !declared {
				return false
			}
		}
	}
	return true
}

func (c Checker) isTuple(v Object, t Tuple) bool {
	seq, ok := AsSequence(v)
	if !ok || seq.Length() != len(t.elems) {
		return false
	}
	for i, e := range t.elems {
		if !c.Is(seq.At(i), e) {
			return false
		}
	}
	return true
}

// interfaceParents lists the interfaces each known interface extends.
var interfaceParents = map[string][]string{
	"keyedtraversable":  {"traversable"},
	"container":         {"traversable"},
	"keyedcontainer":    {"container", "keyedtraversable"},
	"iterator":          {"traversable"},
	"keyediterator":     {"iterator", "keyedtraversable"},
	"iteratoraggregate": {"traversable"},
}

var containerInterfaces = map[string]bool{
	"traversable":      true,
	"keyedtraversable": true,
	"container":        true,
	"keyedcontainer":   true,
}

// extends reports whether interface have is name or extends it.
func extends(have, name string) bool {
	if have == name {
		return true
	}
	for _, p := range interfaceParents[have] {
		if extends(p, name) {
			return true
		}
	}
	return false
}

func isInterface(v Object, name string) bool {
	name = strings.ToLower(name)
	switch t := v.(type) {
	case *Array, *pairView, *Dict, ArrayViewer:
		return containerInterfaces[name]
	case *Obj:
		return t.class.ImplementsInterface(name)
	}
	return false
}

func isScalar(v Object, k ScalarKind) bool {
	tag := v.Type().Kind()
	switch k {
	case ScalarString:
		return tag == KindStr
	case ScalarInt:
		return tag == KindInt
	case ScalarBool:
		return tag == KindBool
	case ScalarFloat:
		return tag == KindFloat
	case ScalarDecimal:
		return tag == KindDecimal
	case ScalarNull:
		return tag == KindNil
	case ScalarNum:
		return tag == KindInt || tag == KindFloat || tag == KindDecimal
	case ScalarArrayKey:
		return tag == KindInt || tag == KindStr
	}
	return false
}

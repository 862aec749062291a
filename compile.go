package clsmeth

import "strings"

// Predicate is a descriptor compiled into a closure tree.
type Predicate func(v Object) bool

// Compile compiles d once so that repeated tests do not walk the
// descriptor. A compiled predicate agrees with Checker.Is for every value.
func (c Checker) Compile(d Descriptor) Predicate {
	var p Predicate
	switch t := d.(type) {
	case AnyArray:
		p = isArrayLike
	case Shape:
		p = c.compileShape(t)
	case Tuple:
		p = c.compileTuple(t)
	case Interface:
		name := strings.ToLower(t.Name)
		p = func(v Object) bool { return isInterface(v, name) }
	case Scalar:
		kind := t.Kind
		p = func(v Object) bool { return isScalar(v, kind) }
	case Nullable:
		inner := c.Compile(t.Inner)
		p = func(v Object) bool { return isNull(v) || inner(v) }
	case Mixed:
		p = func(Object) bool { return true }
	case Nonnull:
		p = func(v Object) bool { return !isNull(v) }
	default:
		p = func(Object) bool { return false }
	}
	return func(v Object) bool {
		if v == nil {
			v = Nil
		}
		return p(v)
	}
}

// Compile compiles d under the default policy.
func Compile(d Descriptor) Predicate {
	return Checker{}.Compile(d)
}

type compiledField struct {
	key      Object
	optional bool
	test     Predicate
}

func (c Checker) compileShape(s Shape) Predicate {
	var (
		fields   = make([]compiledField, len(s.fields))
		declared = make(map[any]struct{}, len(s.fields))
		open     = s.Open
	)
	for i, f := range s.fields {
		fields[i] = compiledField{key: f.Key, optional: f.Optional, test: c.Compile(f.Type)}
		k, _ := dictKey(f.Key)
		declared[k] = struct{}{}
	}
	return func(v Object) bool {
		kr, ok := c.record(v)
		if !ok {
			return false
		}
		for _, f := range fields {
			val, ok := kr.Get(f.key)
			if !ok {
				if f.optional {
					continue
				}
				return false
			}
			if !f.test(val) {
				return false
			}
		}
		if !open {
			for _, key := range kr.Keys() {
				k, _ := dictKey(key)
				if _, ok := declared[k]; !ok {
					return false
				}
			}
		}
		return true
	}
}

func (c Checker) compileTuple(t Tuple) Predicate {
	elems := make([]Predicate, len(t.elems))
	for i, e := range t.elems {
		elems[i] = c.Compile(e)
	}
	return func(v Object) bool {
		seq, ok := AsSequence(v)
		if !ok || seq.Length() != len(elems) {
			return false
		}
		for i, test := range elems {
			if !test(seq.At(i)) {
				return false
			}
		}
		return true
	}
}

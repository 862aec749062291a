package clsmeth

import (
	"fmt"
	"strings"
)

// Kind is the concrete tag of a runtime value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindDecimal
	KindStr
	KindArray
	KindDict
	KindClsMeth
	KindObject
	KindError
)

var kindNames = [...]string{
	KindNil:     "null",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindDecimal: "decimal",
	KindStr:     "string",
	KindArray:   "varray",
	KindDict:    "darray",
	KindClsMeth: "clsmeth",
	KindObject:  "object",
	KindError:   "error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsScalar reports whether the kind is a scalar tag.
func (k Kind) IsScalar() bool {
	switch k {
	case KindBool, KindInt, KindFloat, KindDecimal, KindStr:
		return true
	}
	return false
}

// BuiltinType represents the type of builtin values.
type BuiltinType struct {
	kind Kind
}

func (t *BuiltinType) Name() string { return t.kind.String() }
func (t *BuiltinType) Kind() Kind   { return t.kind }
func (t *BuiltinType) String() string {
	return t.Name()
}

var (
	TNil     ObjectType = &BuiltinType{KindNil}
	TBool    ObjectType = &BuiltinType{KindBool}
	TInt     ObjectType = &BuiltinType{KindInt}
	TFloat   ObjectType = &BuiltinType{KindFloat}
	TDecimal ObjectType = &BuiltinType{KindDecimal}
	TStr     ObjectType = &BuiltinType{KindStr}
	TArray   ObjectType = &BuiltinType{KindArray}
	TDict    ObjectType = &BuiltinType{KindDict}
	TClsMeth ObjectType = &BuiltinType{KindClsMeth}
	TError   ObjectType = &BuiltinType{KindError}
)

// Class is the nominal type of Obj values. A class implements the interfaces
// listed in Implements and everything its parent implements.
type Class struct {
	ClassName  string
	Parent     *Class
	Implements []string
	Consts     map[string]Object
}

var _ ObjectType = (*Class)(nil)

// NewClass creates a class implementing the given interface names.
func NewClass(name string, implements ...string) *Class {
	return &Class{ClassName: name, Implements: implements}
}

func (c *Class) Name() string { return c.ClassName }
func (c *Class) Kind() Kind   { return KindObject }

func (c *Class) String() string {
	if len(c.Implements) == 0 {
		return c.ClassName
	}
	return c.ClassName + " implements " + strings.Join(c.Implements, ", ")
}

// IsChildOf reports whether c is p or inherits from it.
func (c *Class) IsChildOf(p *Class) bool {
	for t := c; t != nil; t = t.Parent {
		if t == p {
			return true
		}
	}
	return false
}

// ImplementsInterface reports whether the class or any ancestor declares
// the interface or one extending it. Names are compared case-insensitively
// as in Hack.
func (c *Class) ImplementsInterface(name string) bool {
	name = strings.ToLower(name)
	for t := c; t != nil; t = t.Parent {
		for _, n := range t.Implements {
			if extends(strings.ToLower(n), name) {
				return true
			}
		}
	}
	return false
}

// Const returns a class constant, looking up the parent chain.
func (c *Class) Const(name string) (Object, bool) {
	for t := c; t != nil; t = t.Parent {
		if v, ok := t.Consts[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// New creates an instance of the class.
func (c *Class) New() *Obj {
	return &Obj{class: c}
}

// TypeName returns the runtime type name of the object, nil safe.
func TypeName(o Object) string {
	if o == nil {
		return TNil.Name()
	}
	return o.Type().Name()
}

package clsmeth

import (
	"strconv"
	"strings"
)

// ToCode returns the source like representation of o: strings are quoted.
func ToCode(o Object) string {
	switch v := o.(type) {
	case nil:
		return Nil.ToString()
	case Str:
		return strconv.Quote(v.ToString())
	default:
		return v.ToString()
	}
}

func ArrayToString(len int, get func(i int) Object) string {
	var (
		sb   strings.Builder
		last = len - 1
	)

	sb.WriteString("[")

	for i := 0; i <= last; i++ {
		sb.WriteString(ToCode(get(i)))
		if i != last {
			sb.WriteString(", ")
		}
	}

	sb.WriteString("]")
	return sb.String()
}

// AsSequence returns the ordered positional view of o: arrays and array
// views are returned as is, pairs through their array view. Other values are
// not sequences.
func AsSequence(o Object) (Sequence, bool) {
	switch v := o.(type) {
	case *Array:
		return v, true
	case *pairView:
		return v, true
	case ArrayViewer:
		return v.ArrayView(), true
	}
	return nil, false
}

func sequenceIndexGet(seq Sequence, index Object) (Object, error) {
	v, ok := index.(Int)
	if !ok {
		return nil, NewIndexTypeError("int", TypeName(index))
	}
	if v < 0 || int64(v) >= int64(seq.Length()) {
		return nil, NewIndexOutOfBoundsError(index, seq.Length())
	}
	return seq.At(int(v)), nil
}

func sequenceKeys(seq Sequence) []Object {
	keys := make([]Object, seq.Length())
	for i := range keys {
		keys[i] = Int(i)
	}
	return keys
}

func sequenceEqual(a, b Sequence) bool {
	if a.Length() != b.Length() {
		return false
	}
	for i := 0; i < a.Length(); i++ {
		if !a.At(i).Equal(b.At(i)) {
			return false
		}
	}
	return true
}

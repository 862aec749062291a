// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

// ToCanonicalArray converts v to an ordered array. Arrays are returned as
// is. Pairs, their array views and dicts are copied into a fresh array, so
// the result is never the same as the source.
func ToCanonicalArray(v Object) (*Array, error) {
	switch t := v.(type) {
	case *Array:
		return t, nil
	case *Dict:
		return NewArray(t.Values()...), nil
	case *pairView:
		return copySequence(t), nil
	case ArrayViewer:
		return copySequence(t.ArrayView()), nil
	}
	return nil, ErrType.NewError("cannot convert " + TypeName(v) + " to varray")
}

func copySequence(seq Sequence) *Array {
	items := make([]Object, seq.Length())
	for i := range items {
		items[i] = seq.At(i)
	}
	return NewArray(items...)
}

// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

func MustToObject(v any) (ret Object) {
	var err error
	if ret, err = ToObject(v); err != nil {
		panic(err)
	}
	return
}

// ToObject converts a Go value to an Object. Slices become arrays, string
// keyed maps become dicts with sorted keys.
func ToObject(v any) (ret Object, err error) {
	switch v := v.(type) {
	case nil:
		ret = Nil
	case Object:
		ret = v
	case string:
		ret = Str(v)
	case bool:
		ret = Bool(v)
	case int:
		ret = Int(v)
	case int64:
		ret = Int(v)
	case int32:
		ret = Int(v)
	case int16:
		ret = Int(v)
	case int8:
		ret = Int(v)
	case uint8:
		ret = Int(v)
	case uint16:
		ret = Int(v)
	case uint32:
		ret = Int(v)
	case float64:
		ret = Float(v)
	case float32:
		ret = Float(v)
	case decimal.Decimal:
		ret = Decimal{Value: v}
	case []Object:
		items := make([]Object, len(v))
		copy(items, v)
		ret = NewArray(items...)
	case []any:
		items := make([]Object, len(v))
		for i, e := range v {
			if items[i], err = ToObject(e); err != nil {
				return nil, err
			}
		}
		ret = NewArray(items...)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		d := NewDict()
		for _, k := range keys {
			var e Object
			if e, err = ToObject(v[k]); err != nil {
				return nil, err
			}
			d.MustSet(Str(k), e)
		}
		ret = d
	default:
		err = ErrType.NewError(fmt.Sprintf("unsupported Go value %T", v))
	}
	return
}

// ToInterface converts an Object to a Go value. Pairs become two element
// slices, the legacy array reading.
func ToInterface(o Object) (ret any) {
	switch o := o.(type) {
	case nil, *NilType:
		ret = nil
	case Int:
		ret = int64(o)
	case Str:
		ret = string(o)
	case Float:
		ret = float64(o)
	case Bool:
		ret = bool(o)
	case Decimal:
		ret = o.Value
	case *Array:
		arr := make([]any, o.Length())
		for i := range arr {
			arr[i] = ToInterface(o.At(i))
		}
		ret = arr
	case *Pair:
		ret = []any{ToInterface(o.first), ToInterface(o.second)}
	case *pairView:
		ret = []any{ToInterface(o.p.first), ToInterface(o.p.second)}
	case *Dict:
		m := make(map[any]any, o.Length())
		for i, k := range o.keys {
			m[ToInterface(k)] = ToInterface(o.values[i])
		}
		ret = m
	default:
		ret = o
	}
	return
}

// Launder hides the static type of v from the caller, forcing dynamic
// evaluation paths. It returns v itself.
//
//go:noinline
func Launder(v Object) Object {
	return v
}

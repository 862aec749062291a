// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

// As returns v itself if it satisfies d under the default policy, otherwise
// a *TypeAssertionError.
func As(v Object, d Descriptor) (Object, error) {
	return Checker{}.As(v, d)
}

// As returns v itself, never a copy, if it satisfies d. Otherwise it returns
// a *TypeAssertionError which wraps ErrTypeAssertion.
func (c Checker) As(v Object, d Descriptor) (Object, error) {
	if v == nil {
		v = Nil
	}
	if !c.Is(v, d) {
		return nil, &TypeAssertionError{Value: v, Descriptor: d}
	}
	return v, nil
}

// AsPredicate enforces a compiled predicate the same way As enforces a
// descriptor. d is only used for the error.
func AsPredicate(v Object, p Predicate, d Descriptor) (Object, error) {
	if v == nil {
		v = Nil
	}
	if !p(v) {
		return nil, &TypeAssertionError{Value: v, Descriptor: d}
	}
	return v, nil
}

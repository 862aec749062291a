// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

import (
	"fmt"
	"strings"
)

var (
	// ErrIndexOutOfBounds is an error where a given index is out of the
	// bounds.
	ErrIndexOutOfBounds = &Error{Name: "IndexOutOfBoundsError"}

	// ErrNotIndexable means an object is not indexable or the index has the
	// wrong type.
	ErrNotIndexable = &Error{Name: "NotIndexableError"}

	// ErrType represents a type error.
	ErrType = &Error{Name: "TypeError"}

	// ErrTypeAssertion is the cause of every TypeAssertionError.
	ErrTypeAssertion = &Error{Name: "TypeAssertionError"}
)

// Error represents Error Object and implements error and Object interfaces.
type Error struct {
	Name    string
	Message string
	Cause   error
}

var _ Object = (*Error)(nil)

func (o *Error) Unwrap() error {
	return o.Cause
}

func (o *Error) Type() ObjectType {
	return TError
}

func (o *Error) ToString() string {
	return o.Error()
}

// Copy returns a shallow copy of the error.
func (o *Error) Copy() *Error {
	return &Error{
		Name:    o.Name,
		Message: o.Message,
		Cause:   o.Cause,
	}
}

// Error implements error interface.
func (o *Error) Error() string {
	name := o.Name
	if name == "" {
		name = "error"
	}
	return fmt.Sprintf("%s: %s", name, o.Message)
}

// Equal implements Object interface.
func (o *Error) Equal(right Object) bool {
	if v, ok := right.(*Error); ok {
		return v == o
	}
	return false
}

// IsFalsy implements Object interface.
func (o *Error) IsFalsy() bool { return true }

// NewError creates a new Error and sets original Error as its cause which can be unwrapped.
func (o *Error) NewError(messages ...string) *Error {
	cp := o.Copy()
	cp.Message = strings.Join(messages, " ")
	cp.Cause = o
	return cp
}

// NewIndexTypeError creates a new Error from ErrNotIndexable.
func NewIndexTypeError(expectType, foundType string) *Error {
	return ErrNotIndexable.NewError(
		"index type expected " + expectType + ", found " + foundType,
	)
}

// NewIndexOutOfBoundsError creates a new Error from ErrIndexOutOfBounds.
func NewIndexOutOfBoundsError(index Object, length int) *Error {
	return ErrIndexOutOfBounds.NewError(
		fmt.Sprintf("index %s out of range [0, %d)", ToCode(index), length),
	)
}

// TypeAssertionError is returned by As when the value does not satisfy the
// descriptor. It is always recoverable.
type TypeAssertionError struct {
	Value      Object
	Descriptor Descriptor
}

func (e *TypeAssertionError) Error() string {
	return fmt.Sprintf("%s: Expected %s, got %s",
		ErrTypeAssertion.Name, e.Descriptor, TypeName(e.Value))
}

func (e *TypeAssertionError) Unwrap() error {
	return ErrTypeAssertion
}

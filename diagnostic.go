// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

import "fmt"

// Errno is the level of a runtime diagnostic, numbered like the
// interpreter's E_* constants.
type Errno int

const (
	EWarning    Errno = 2
	ENotice     Errno = 8
	EUserNotice Errno = 1024
	EDeprecated Errno = 8192
)

func (e Errno) String() string {
	switch e {
	case EWarning:
		return "warning"
	case ENotice:
		return "notice"
	case EUserNotice:
		return "user notice"
	case EDeprecated:
		return "deprecated"
	}
	return fmt.Sprintf("errno(%d)", int(e))
}

// Diagnostic is a non fatal runtime diagnostic. It never stops execution.
type Diagnostic struct {
	Errno   Errno
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("[%d]: %s", int(d.Errno), d.Message)
}

// Diagnostic messages raised by legacy array operations on pairs.
const (
	MsgClsMethToVArray = "Implicit clsmeth to varray conversion"
	MsgIsArrayClsMeth  = "is_array() called on clsmeth"
)

// DiagnosticHandler receives diagnostics. It returns true when the
// diagnostic was handled, false to fall back to the default handling.
type DiagnosticHandler interface {
	HandleDiagnostic(d *Diagnostic) bool
}

// DiagnosticHandlerFunc adapts a function to DiagnosticHandler.
type DiagnosticHandlerFunc func(d *Diagnostic) bool

func (f DiagnosticHandlerFunc) HandleDiagnostic(d *Diagnostic) bool {
	return f(d)
}

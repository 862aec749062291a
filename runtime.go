// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package clsmeth

import (
	"github.com/rs/zerolog"
)

// Runtime is the evaluation context of the interpreter level builtins. The
// diagnostic handler is injected here, there is no process wide hook.
type Runtime struct {
	Checker Checker
	Handler DiagnosticHandler
	Logger  zerolog.Logger
}

type RuntimeOption func(rt *Runtime)

func RuntimeWithPolicy(p ShapePolicy) RuntimeOption {
	return func(rt *Runtime) {
		rt.Checker.Policy = p
	}
}

func RuntimeWithHandler(h DiagnosticHandler) RuntimeOption {
	return func(rt *Runtime) {
		rt.Handler = h
	}
}

func RuntimeWithLogger(l zerolog.Logger) RuntimeOption {
	return func(rt *Runtime) {
		rt.Logger = l
	}
}

// NewRuntime creates a runtime with the strict shape policy, no handler and
// a disabled logger unless overridden by opts.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	rt := &Runtime{Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Raise delivers a diagnostic to the handler. Unhandled diagnostics are
// logged and execution continues. It returns whether the handler took it.
func (rt *Runtime) Raise(errno Errno, msg string) bool {
	d := &Diagnostic{Errno: errno, Message: msg}
	if rt.Handler != nil && rt.Handler.HandleDiagnostic(d) {
		return true
	}
	rt.Logger.Warn().
		Int("errno", int(errno)).
		Str("severity", errno.String()).
		Msg(msg)
	return false
}

// Is is the `is` operator.
func (rt *Runtime) Is(v Object, d Descriptor) bool {
	return rt.Checker.Is(v, d)
}

// As is the `as` operator.
func (rt *Runtime) As(v Object, d Descriptor) (Object, error) {
	return rt.Checker.As(v, d)
}

// Compile compiles d with the runtime's policy.
func (rt *Runtime) Compile(d Descriptor) Predicate {
	return rt.Checker.Compile(d)
}

// Index is the array read v[index].
func (rt *Runtime) Index(v, index Object) (Object, error) {
	if g, ok := v.(IndexGetter); ok {
		return g.IndexGet(index)
	}
	return nil, ErrNotIndexable.NewError(TypeName(v))
}

// VArray is the varray() builtin. Converting a pair raises a notice.
func (rt *Runtime) VArray(v Object) (*Array, error) {
	if _, ok := v.(ArrayViewer); ok {
		rt.Raise(ENotice, MsgClsMethToVArray)
	}
	return ToCanonicalArray(v)
}

// IsLegacyArray is the is_array() builtin. Pairs pass as arrays with a
// notice.
func (rt *Runtime) IsLegacyArray(v Object) bool {
	switch v.(type) {
	case *Array, *pairView, *Dict:
		return true
	case ArrayViewer:
		rt.Raise(ENotice, MsgIsArrayClsMeth)
		return true
	}
	return false
}

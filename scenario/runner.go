package scenario

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/rs/zerolog"

	"github.com/gad-lang/clsmeth"
)

// DefaultRepeat is the number of invocations of each scenario.
const DefaultRepeat = 3

// Runner installs the diagnostic handler, invokes each scenario Repeat
// times and checks that every invocation printed the same output.
type Runner struct {
	Scenarios []Scenario
	Repeat    int
	Policy    clsmeth.ShapePolicy
	Logger    zerolog.Logger
}

// NewRunner creates a runner of all scenarios with the default repeat count.
func NewRunner() *Runner {
	return &Runner{
		Scenarios: All(),
		Repeat:    DefaultRepeat,
		Logger:    zerolog.Nop(),
	}
}

// Drift is an invocation whose output differs from the first invocation of
// the same scenario.
type Drift struct {
	Scenario   string
	Invocation int
	Diff       string
}

// Result summarizes a run.
type Result struct {
	Invocations int
	Diagnostics int
	Bytes       int64
	Drifts      []Drift
}

// HandlerLine formats a handled diagnostic as a report line.
func HandlerLine(d *clsmeth.Diagnostic) string {
	return fmt.Sprintf("handle_error(): [%d]: %s\n", int(d.Errno), d.Message)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Run writes the report to w. Scenario failures abort the run with an
// error; diagnostics and assertion failures never do.
func (r *Runner) Run(w io.Writer) (*Result, error) {
	repeat := r.Repeat
	if repeat <= 0 {
		repeat = DefaultRepeat
	}

	var (
		res = &Result{}
		out = &countingWriter{w: w}
		cur bytes.Buffer
	)

	handler := clsmeth.DiagnosticHandlerFunc(func(d *clsmeth.Diagnostic) bool {
		res.Diagnostics++
		cur.WriteString(HandlerLine(d))
		return true
	})

	rt := clsmeth.NewRuntime(
		clsmeth.RuntimeWithPolicy(r.Policy),
		clsmeth.RuntimeWithHandler(handler),
		clsmeth.RuntimeWithLogger(r.Logger),
	)
	env := &Env{RT: rt, Out: &cur}

	for _, s := range r.Scenarios {
		var first string
		for i := 1; i <= repeat; i++ {
			cur.Reset()
			r.Logger.Debug().Str("scenario", s.Name).Int("invocation", i).Msg("invoke")
			if err := s.Run(env); err != nil {
				return res, fmt.Errorf("scenario %s invocation %d: %w", s.Name, i, err)
			}
			res.Invocations++

			got := cur.String()
			if i == 1 {
				first = got
			} else if got != first {
				diff := unifiedDiff(s.Name, i, first, got)
				res.Drifts = append(res.Drifts, Drift{Scenario: s.Name, Invocation: i, Diff: diff})
				r.Logger.Error().Str("scenario", s.Name).Int("invocation", i).Msg("output drift\n" + diff)
			}

			if _, err := io.WriteString(out, got); err != nil {
				return res, err
			}
		}
	}

	res.Bytes = out.n
	return res, nil
}

func unifiedDiff(name string, invocation int, a, b string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: name + "#1",
		ToFile:   fmt.Sprintf("%s#%d", name, invocation),
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

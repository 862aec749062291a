package main

import (
	"fmt"
	"strings"

	"github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/scenario"
	"github.com/gad-lang/clsmeth/typeexpr"
)

func (a *app) runtime() *clsmeth.Runtime {
	policy, _ := a.cfg.ShapePolicy()
	return clsmeth.NewRuntime(
		clsmeth.RuntimeWithPolicy(policy),
		clsmeth.RuntimeWithLogger(a.log),
		clsmeth.RuntimeWithHandler(clsmeth.DiagnosticHandlerFunc(func(d *clsmeth.Diagnostic) bool {
			fmt.Fprint(a.stdout, scenario.HandlerLine(d))
			return true
		})),
	)
}

// checkLine tests the method pointer against src and formats the outcome.
func (a *app) checkLine(rt *clsmeth.Runtime, m clsmeth.Object, src string) (string, error) {
	d, err := typeexpr.Parse(src, scenario.Consts)
	if err != nil {
		return "", err
	}
	line := fmt.Sprintf("$m is %s: %s", d, a.colorizeBool(rt.Is(m, d)))
	if _, err = rt.As(m, d); err != nil {
		line += "\n  as: " + a.colorizeError(err.Error())
	} else {
		line += "\n  as: ok"
	}
	return line, nil
}

// parseError prints a type expression error with the offending offset
// marked.
func (a *app) parseError(src string, err error) {
	var sb strings.Builder
	h := &typeexpr.ErrorHumanizing{Source: src, Max: 3}
	h.Humanize(&sb, err)
	fmt.Fprint(a.stderr, a.colorizeError(sb.String()))
}

func (a *app) check(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.stderr, "check: missing type expression")
		return 2
	}
	var (
		rt     = a.runtime()
		m      = scenario.NewMethodPointer()
		status = 0
	)
	for _, src := range args {
		line, err := a.checkLine(rt, m, src)
		if err != nil {
			a.parseError(src, err)
			status = 1
			continue
		}
		fmt.Fprintln(a.stdout, line)
	}
	return status
}

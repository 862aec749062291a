package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/scenario"
)

const (
	historyFile = ".clsmeth_history"
	prompt      = "is> "
	replHelp    = `Type a type expression to test $m = class_meth(Foo::class, 'bar').
:dump prints varray($m), :policy strict|structural switches the shape policy,
:quit exits.`
)

func (a *app) repl() int {
	fmt.Fprintln(a.stdout, replHelp)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var (
		rt = a.runtime()
		m  = scenario.NewMethodPointer()
	)
	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if !errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(a.stdout)
			}
			return 0
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			if a.replCommand(rt, m, line) {
				return 0
			}
			continue
		}

		out, err := a.checkLine(rt, m, line)
		if err != nil {
			a.parseError(line, err)
			continue
		}
		fmt.Fprintln(a.stdout, out)
	}
}

// replCommand runs a colon command and reports whether the loop must stop.
func (a *app) replCommand(rt *clsmeth.Runtime, m clsmeth.Object, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":dump":
		arr, err := rt.VArray(m)
		if err != nil {
			fmt.Fprintln(a.stderr, a.colorizeError(err.Error()))
			return false
		}
		_ = clsmeth.Dump(a.stdout, arr)
	case ":policy":
		if len(fields) != 2 {
			fmt.Fprintf(a.stdout, "policy %s\n", rt.Checker.Policy)
			return false
		}
		p, err := clsmeth.ParseShapePolicy(fields[1])
		if err != nil {
			fmt.Fprintln(a.stderr, a.colorizeError(err.Error()))
			return false
		}
		rt.Checker.Policy = p
		fmt.Fprintf(a.stdout, "policy %s\n", p)
	default:
		fmt.Fprintln(a.stdout, replHelp)
	}
	return false
}

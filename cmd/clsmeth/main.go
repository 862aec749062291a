// Command clsmeth runs the is/as scenarios of the class-method pointer and
// offers tools to explore type tests interactively.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/gad-lang/clsmeth/internal/config"
)

const usage = `usage: clsmeth <command> [flags] [args]

commands:
  run       run the scenarios and print the report
  describe  print the tree of a type expression
  check     test the class-method pointer against type expressions
  repl      read type expressions interactively
`

type stringList []string

func (l *stringList) String() string     { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error { *l = append(*l, v); return nil }

type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	log    zerolog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cmd, args := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFlag    = fs.String("config", "", "YAML configuration file")
		repeatFlag    = fs.Int("repeat", 0, "invocations of each scenario")
		policyFlag    = fs.String("policy", "", "shape policy: strict or structural")
		logLevelFlag  = fs.String("log-level", "", "log level")
		colorFlag     = fs.Bool("color", false, "colorize check and repl output")
		scenarioFlags stringList
	)
	fs.Var(&scenarioFlags, "scenario", "scenario to run, repeatable")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if *repeatFlag != 0 {
		cfg.Repeat = *repeatFlag
	}
	if *policyFlag != "" {
		cfg.Policy = *policyFlag
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
	}
	if *colorFlag {
		cfg.Color = true
	}
	if len(scenarioFlags) > 0 {
		cfg.Scenarios = scenarioFlags
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	level, _ := cfg.Level()
	consoleWriter := zerolog.ConsoleWriter{
		Out:     stderr,
		NoColor: !cfg.Color,
	}
	a := &app{
		stdout: stdout,
		stderr: stderr,
		cfg:    cfg,
		log:    zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger(),
	}

	switch cmd {
	case "run":
		return a.runScenarios()
	case "describe":
		return a.describe(fs.Args())
	case "check":
		return a.check(fs.Args())
	case "repl":
		return a.repl()
	}
	fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
	return 2
}

func (a *app) runScenarios() int {
	runner, err := a.cfg.Runner(a.log)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return 2
	}

	res, err := runner.Run(a.stdout)
	if err != nil {
		a.log.Error().Err(err).Msg("run failed")
	}

	fmt.Fprintf(a.stderr, "%s invocations, %s diagnostics, %s report, %d drifts\n",
		humanize.Comma(int64(res.Invocations)),
		humanize.Comma(int64(res.Diagnostics)),
		humanize.Bytes(uint64(res.Bytes)),
		len(res.Drifts))

	// diagnostics, drifts and failed assertions never change the exit status
	return 0
}

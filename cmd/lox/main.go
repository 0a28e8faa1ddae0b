package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/lox"
)

// Exit codes follow sysexits.h.
const (
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
)

var cli struct {
	Script  string `arg:"" optional:"" type:"path" help:"Script to evaluate. Without one, read expressions from a prompt."`
	Tokens  bool   `help:"Print scanned tokens."`
	AST     bool   `name:"ast" help:"Print parse trees."`
	Repr    bool   `help:"Dump parse trees as Go values."`
	History string `type:"path" default:"~/.lox_history" env:"LOX_HISTORY" help:"Prompt history file. Empty disables history."`
}

var red = color.New(color.FgRed)

func main() {
	log.SetFlags(0)
	parser, err := kong.New(&cli,
		kong.Name("lox"),
		kong.Description("Evaluate Lox expressions."),
	)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(exitUsage)
	}
	r := runner{
		out:    os.Stdout,
		errs:   os.Stderr,
		tokens: cli.Tokens,
		ast:    cli.AST,
		repr:   cli.Repr,
	}
	if cli.Script != "" {
		os.Exit(r.file(cli.Script))
	}
	r.prompt(cli.History)
}

// runner runs sources through the pipeline and prints results.
type runner struct {
	out, errs io.Writer
	// tokens, ast, and repr select intermediate results to print.
	tokens, ast, repr bool
}

// run evaluates one source and prints its value. Errors are returned
// unprinted.
func (r *runner) run(src string) error {
	var errs *multierror.Error
	toks := lox.Scan(strings.NewReader(src), func(err *lox.LexError) {
		errs = multierror.Append(errs, err)
	})
	if r.tokens {
		for _, tok := range toks {
			fmt.Fprintln(r.out, tok)
		}
	}
	if errs != nil {
		errs.ErrorFormat = joinLines
		return errs
	}
	e, err := lox.Parse(toks)
	if err != nil {
		return err
	}
	if r.ast {
		fmt.Fprintln(r.out, e)
	}
	if r.repr {
		fmt.Fprintln(r.out, repr.String(e, repr.Indent("\t")))
	}
	v, err := lox.Eval(e)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, v)
	return nil
}

// file evaluates a script and returns the process exit code.
func (r *runner) file(name string) int {
	src, err := os.ReadFile(name)
	if err != nil {
		log.Print(errors.Wrap(err, "lox"))
		return exitIOErr
	}
	if err := r.run(string(src)); err != nil {
		red.Fprintln(r.errs, err)
		return exitCode(err)
	}
	return 0
}

// lineReader is a source of prompt lines. *liner.State implements it.
type lineReader interface {
	Prompt(prompt string) (string, error)
}

// prompt evaluates one line at a time from the terminal until EOF.
func (r *runner) prompt(history string) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if history != "" {
		if f, err := os.Open(history); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	r.loop(ln, ln.AppendHistory)
	if history != "" {
		if err := saveHistory(ln, history); err != nil {
			log.Print(err)
		}
	}
}

// loop evaluates lines from lines until it returns an error. Errors from
// evaluation are printed and do not end the loop. Each non-blank line is
// passed to remember before it is run.
func (r *runner) loop(lines lineReader, remember func(string)) {
	for {
		line, err := lines.Prompt("> ")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			if err != io.EOF {
				log.Print(errors.Wrap(err, "reading prompt"))
			}
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		remember(line)
		if err := r.run(line); err != nil {
			red.Fprintln(r.errs, err)
		}
	}
}

func saveHistory(ln *liner.State, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "saving history")
	}
	if _, err := ln.WriteHistory(f); err != nil {
		f.Close()
		return errors.Wrap(err, "saving history")
	}
	return errors.Wrap(f.Close(), "saving history")
}

// exitCode maps a pipeline error to an exit code.
func exitCode(err error) int {
	var rerr *lox.RuntimeError
	if errors.As(err, &rerr) {
		return exitSoftware
	}
	return exitDataErr
}

// joinLines formats scan diagnostics one per line.
func joinLines(errs []error) string {
	s := make([]string, len(errs))
	for i, err := range errs {
		s[i] = err.Error()
	}
	return strings.Join(s, "\n")
}

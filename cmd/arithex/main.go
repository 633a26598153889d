package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/arithex/expr"
	"github.com/npillmayer/arithex/expr/fp"
	"github.com/npillmayer/arithex/runtime"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() prints the sample expressions and their simplification, and then
// starts an interactive CLI, where users may inspect and evaluate samples.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	batch := flag.Bool("batch", false, "Print all samples and exit")
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{
		samples: makeSamples(expr.MinimalFactory{}),
	}
	intp.printAll()
	if *batch {
		return
	}
	//
	// set up REPL
	pterm.Info.Println("Welcome to the arithex sandbox")
	repl, err := readline.New("arithex> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setTraceLevel sets the level for the global tracer and for the tracers of
// the arithex packages.
func setTraceLevel(level tracing.TraceLevel) {
	tracer().SetTraceLevel(level)
	for _, key := range []string{"arithex.expr", "arithex.fp", "arithex.runtime"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// Intp is our interpreter object
type Intp struct {
	samples []sample
	repl    *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(strings.Fields(line))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute executes a single command, given as a list of words.
func (intp *Intp) Execute(args []string) (bool, error) {
	cmd := args[0]
	switch cmd {
	case "quit", "q":
		return true, nil
	case "help", "?":
		intp.help()
		return false, nil
	case "list", "l":
		intp.printAll()
		return false, nil
	}
	if _, err := strconv.Atoi(cmd); err == nil { // shortcut for 'simplify N'
		args, cmd = []string{"simplify", cmd}, "simplify"
	}
	if len(args) < 2 {
		return false, fmt.Errorf("command '%s' needs a sample number", cmd)
	}
	s, err := intp.sample(args[1])
	if err != nil {
		return false, err
	}
	switch cmd {
	case "simplify", "s":
		intp.print(s)
	case "tree", "t":
		return false, intp.tree(s)
	case "eval", "e":
		return false, intp.eval(s, args[2:])
	default:
		return false, fmt.Errorf("unknown command '%s'", cmd)
	}
	return false, nil
}

func (intp *Intp) help() {
	pterm.Println("Commands:")
	pterm.Println("  list              list all samples and their simplification")
	pterm.Println("  simplify N | N    simplify sample N")
	pterm.Println("  tree N            display sample N and its simplification as trees")
	pterm.Println("  eval N x=1 y=2    evaluate sample N and its simplification")
	pterm.Println("  quit              leave the sandbox")
}

func (intp *Intp) sample(arg string) (sample, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(intp.samples) {
		return sample{}, fmt.Errorf("no sample '%s', choose 1…%d", arg, len(intp.samples))
	}
	return intp.samples[n-1], nil
}

func (intp *Intp) printAll() {
	for i, s := range intp.samples {
		pterm.Printf("%2d  %s\n", i+1, s.title)
		intp.print(s)
	}
}

// print writes the original and the simplified rendering of a sample.
func (intp *Intp) print(s sample) {
	simple, err := s.e.Simplify()
	if err != nil {
		pterm.Error.Printf("%s  ⇒  %v\n", s.e.PrettyPrint(), err)
		return
	}
	pterm.Info.Printf("%s  ⇒  %s\n", s.e.PrettyPrint(), simple.PrettyPrint())
}

func (intp *Intp) tree(s sample) error {
	pterm.Println(s.title)
	pterm.DefaultTree.WithRoot(treeFrom(s.e)).Render()
	simple, err := s.e.Simplify()
	if err != nil {
		return err
	}
	pterm.Println("simplified")
	pterm.DefaultTree.WithRoot(treeFrom(simple)).Render()
	return nil
}

// eval evaluates a sample and its simplification with variable bindings of
// the form name=value.
func (intp *Intp) eval(s sample, binds []string) error {
	rt := runtime.NewRuntimeEnvironment()
	for _, b := range binds {
		name, value, ok := strings.Cut(b, "=")
		if !ok {
			return fmt.Errorf("binding '%s' is not of the form name=value", b)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("binding '%s': %v", b, err)
		}
		if rt.Bind(name, v) == nil {
			return fmt.Errorf("binding '%s' has no variable name", b)
		}
	}
	pterm.Info.Printf("with %s\n", bindings(rt.ScopeTree.Current()))
	v, err := rt.Evaluate(s.e)
	if err != nil {
		return err
	}
	pterm.Info.Printf("%s = %s\n", s.e.PrettyPrint(), expr.FormatNumber(v))
	simple, err := s.e.Simplify()
	if err != nil {
		return err
	}
	if v, err = rt.Evaluate(simple); err != nil {
		return err
	}
	pterm.Info.Printf("%s = %s\n", simple.PrettyPrint(), expr.FormatNumber(v))
	return nil
}

// bindings lists the variable bindings of a scope, ordered by name.
func bindings(sc *runtime.Scope) string {
	if sc.Tags().Size() == 0 {
		return "no bindings"
	}
	tags := treemap.NewWithStringComparator()
	sc.Tags().Each(func(name string, tag *runtime.Tag) {
		tags.Put(name, tag)
	})
	var b strings.Builder
	it := tags.Iterator()
	for it.Next() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		tag := it.Value().(*runtime.Tag)
		fmt.Fprintf(&b, "%s=%s", tag.Name(), expr.FormatNumber(tag.Value))
	}
	return b.String()
}

// treeFrom creates a pterm tree from a top-down walk of an expression.
func treeFrom(e expr.Expression) pterm.TreeNode {
	var ll pterm.LeveledList
	for node, T := fp.Traverse(e, fp.TopDownDir).First(); !T.Done(); node = T.Next() {
		ll = append(ll, pterm.LeveledListItem{
			Level: node.Level,
			Text:  nodeLabel(node.Node),
		})
	}
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return pterm.NewTreeFromLeveledList(ll)
}

func nodeLabel(e expr.Expression) string {
	if e.Kind().IsLeaf() {
		return e.PrettyPrint()
	}
	return fmt.Sprintf("%s  (%s)", e.Kind().Operator(), e.Kind())
}

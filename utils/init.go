package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	task       string
	symbols    string
	reals      string
	assume     string
	file       string
	format     string
	out        string
	relational bool
	noColorize bool
	verbose    bool
	visualize  bool
}

const (
	_REDUCE = iota
	_INTERVALS
	_ROOTS
	_CASE_SPLIT
	_BATCH
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"reduce",
	"Reduce a system of inequalities to a relational formula (one inequality per argument)",
}, {
	"intervals",
	"Solve a univariate polynomial system and print the raw interval set",
}, {
	"roots",
	"Print the distinct real roots of a polynomial together with their multiplicities",
}, {
	"case-split",
	"Print the absolute value case split of an expression",
}, {
	"batch",
	"Reduce every system listed in the YAML file given by -file",
}}

var opts = &options{}

type optInterface struct{}

type taskInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

// SetNoColorize toggles colorization outside of flag parsing (tests, library users).
func (optInterface) SetNoColorize(b bool) {
	opts.noColorize = b
}

func (optInterface) Symbols() []string {
	return splitList(opts.symbols)
}
func (optInterface) Reals() []string {
	return splitList(opts.reals)
}
func (optInterface) Assume() []string {
	return splitList(opts.assume)
}
func (optInterface) File() string {
	return opts.file
}
func (optInterface) OutputFormat() string {
	return opts.format
}
func (optInterface) Out() string {
	return opts.out
}
func (optInterface) Relational() bool {
	return opts.relational
}
func (optInterface) Verbose() bool {
	return opts.verbose
}
func (optInterface) Visualize() bool {
	return opts.visualize
}
func (optInterface) Task() taskInterface {
	return taskInterface{}
}
func (taskInterface) IsReduce() bool {
	return opts.task == task[_REDUCE].flag
}
func (taskInterface) IsIntervals() bool {
	return opts.task == task[_INTERVALS].flag
}
func (taskInterface) IsRoots() bool {
	return opts.task == task[_ROOTS].flag
}
func (taskInterface) IsCaseSplit() bool {
	return opts.task == task[_CASE_SPLIT].flag
}
func (taskInterface) IsBatch() bool {
	return opts.task == task[_BATCH].flag
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"

	flag.StringVar(&(opts.task), "task", task[_REDUCE].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.StringVar(&(opts.symbols), "symbols", "", "comma separated list of symbols to solve for.\n"+
		"- With exactly one symbol and one linear inequality, the inequality is isolated directly.")
	flag.StringVar(&(opts.reals), "real", "", "comma separated list of symbols declared real")
	flag.StringVar(&(opts.assume), "assume", "", "comma separated list of assumption predicates, e. g. 'Q.real(x),Q.positive(y)'")
	flag.StringVar(&(opts.file), "file", "", "YAML file with inequality systems (used by -task batch)")
	flag.StringVar(&(opts.format), "format", "svg", "output file format for -visualize [svg | png | jpg | ...]")
	flag.StringVar(&(opts.out), "out", "", "output file name (without extension) for -visualize")
	flag.BoolVar(&(opts.relational), "relational", true, "print solutions as relational formulas instead of interval sets")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
	flag.BoolVar(&(opts.visualize), "visualize", false, "render the case split tree with graphviz")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}

	if !validTask {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}

	if Opts().Task().IsBatch() && opts.file == "" {
		log.Fatalln("-task batch requires -file")
	}
	if Opts().Task().IsIntervals() {
		opts.relational = false
	}
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}

func splitList(s string) (res []string) {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return
}

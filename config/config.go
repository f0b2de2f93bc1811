// Package config parses command-line flags into a package-level options
// singleton, accessed through read-only getters rather than exported
// fields.
package config

import (
	"flag"
	"log"
	"time"
)

type Task string

const (
	TaskSolve Task = "solve"
	TaskDot   Task = "dot"
	TaskCheck Task = "check"
)

type options struct {
	program       string
	task          string
	timeout       time.Duration
	latticeBudget int
	noColorize    bool
	verbose       bool
	shard         bool
}

var opts *options

// Parse populates the options singleton from the given argument list
// (typically os.Args[1:]). It must be called exactly once before Opts is
// used.
func Parse(args []string) {
	fs := flag.NewFlagSet("fixlog", flag.ExitOnError)

	o := &options{}
	fs.StringVar(&o.program, "program", "", "path to the YAML program to load")
	fs.StringVar(&o.task, "task", string(TaskSolve), "task to run: solve, dot, or check")
	fs.DurationVar(&o.timeout, "timeout", 0, "overall evaluation timeout (0 disables)")
	fs.IntVar(&o.latticeBudget, "lattice-budget", 100000, "max recursive lattice operations before aborting")
	fs.BoolVar(&o.noColorize, "no-colorize", false, "disable colorized diagnostic output")
	fs.BoolVar(&o.verbose, "verbose", false, "enable verbose progress logging")
	fs.BoolVar(&o.shard, "shard", false, "partition predicates and solve shards concurrently")

	fs.Parse(args)

	log.SetFlags(0)
	opts = o
}

// Opts returns the parsed options singleton. Fails fast if Parse has not
// been called.
func Opts() *options {
	if opts == nil {
		log.Fatal("config.Opts() called before config.Parse()")
	}
	return opts
}

func (o *options) Program() string       { return o.program }
func (o *options) Task() Task            { return Task(o.task) }
func (o *options) Timeout() time.Duration { return o.timeout }
func (o *options) LatticeBudget() int    { return o.latticeBudget }
func (o *options) NoColorize() bool      { return o.noColorize }
func (o *options) Verbose() bool         { return o.verbose }
func (o *options) Shard() bool           { return o.shard }

// Minlen and Nodesep are fixed graphviz layout defaults for dependency-graph
// rendering; fixlog only renders one kind of graph, so these are constants
// rather than flags.
func (o *options) Minlen() int      { return 1 }
func (o *options) Nodesep() float64 { return 0.25 }

// OnVerbose runs do only when -verbose was set, gating expensive
// diagnostic printing behind the flag.
func (o *options) OnVerbose(do func()) {
	if o.verbose {
		do()
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cs-au-dk/fixlog/config"
	"github.com/cs-au-dk/fixlog/diag"
	"github.com/cs-au-dk/fixlog/eval"
	"github.com/cs-au-dk/fixlog/lattice"
	"github.com/cs-au-dk/fixlog/program"
	"github.com/cs-au-dk/fixlog/symtab"
	"github.com/cs-au-dk/fixlog/term"
	"github.com/cs-au-dk/fixlog/utils/dot"
	"github.com/cs-au-dk/fixlog/utils/graph"
)

// runPipeline reads the program named by -program, loads it, and dispatches
// on -task: "solve" runs the fixpoint and prints a report, "dot" renders the
// predicate dependency graph, "check" only loads and runs the lattice-law
// sampler over every PartialFunction symbol whose leq and join are both
// Code-backed.
func runPipeline() error {
	opts := config.Opts()
	if opts.NoColorize() {
		diag.NoColorize = true
	}
	if opts.Program() == "" {
		return fmt.Errorf("missing -program")
	}

	data, err := os.ReadFile(opts.Program())
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.Program(), err)
	}

	p, err := program.ParseText(data)
	if err != nil {
		return err
	}

	log.Println("loading program...")
	loaded, err := program.Load(p)
	if err != nil {
		diag.Report(os.Stderr, err)
		return err
	}
	log.Printf("loaded %d symbols, %d clauses, %d facts\n",
		loaded.Table.Len(), len(loaded.Index.Clauses()), len(loaded.Facts))

	switch opts.Task() {
	case config.TaskCheck:
		return runCheck(loaded)
	case config.TaskDot:
		return runDot(loaded)
	default:
		return runSolve(loaded)
	}
}

func runSolve(loaded *program.Loaded) error {
	opts := config.Opts()
	evalOpts := eval.Options{LatticeBudget: opts.LatticeBudget(), Timeout: opts.Timeout()}

	var result eval.Result
	if opts.Shard() {
		log.Println("solving (sharded)...")
		result = eval.SolveParallel(context.Background(), loaded, evalOpts)
	} else {
		log.Println("solving...")
		result = eval.Solve(context.Background(), loaded, evalOpts)
	}

	if result.Outcome == eval.OutcomeError {
		diag.Report(os.Stderr, result.Err)
		return result.Err
	}

	fmt.Println(renderReport(loaded.Table, result))
	return nil
}

func runCheck(loaded *program.Loaded) error {
	query := func(sym *symtab.Symbol, inputs []term.Value) (term.Value, bool, error) {
		return nil, false, fmt.Errorf("check task does not evaluate clause-defined lattices")
	}
	rt := lattice.NewRuntime(loaded.Table, query)
	for id, fn := range loaded.Code {
		rt = rt.WithCode(loaded.Table.ByID(id), fn)
	}

	var anyViolations bool
	for _, sym := range loaded.Table.All() {
		if sym.Interpretation != symtab.PartialFunction || !rt.HasCode(sym.LeqSymbol) || !rt.HasCode(sym.JoinSymbol) {
			continue
		}
		violations := lattice.CheckSymbolLaws(rt, sym, sampleValuesFor(sym))
		for _, v := range violations {
			anyViolations = true
			fmt.Printf("%s: %s\n", sym.Name, v)
		}
	}
	if !anyViolations {
		fmt.Println("no lattice law violations found among sampled keys")
	}
	return nil
}

// sampleValuesFor returns the sample points for the lattice-law sampler:
// the symbol's declared bottom value alone, or nil when it has none. No
// derived values are sampled.
func sampleValuesFor(sym *symtab.Symbol) []term.Value {
	if sym.LatticeBottom == nil {
		return nil
	}
	return []term.Value{sym.LatticeBottom}
}

func runDot(loaded *program.Loaded) error {
	cfg := &graph.VisualizationConfig[*symtab.Symbol]{
		NodeAttrs: func(sym *symtab.Symbol) (string, dot.DotAttrs) {
			return sym.String(), dot.DotAttrs{"label": sym.Name}
		},
	}
	dg := loaded.Index.DependencyGraph().ToDotGraph(loaded.Table.All(), cfg)
	path, err := dg.RenderTo("fixlog-deps", "svg")
	if err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}

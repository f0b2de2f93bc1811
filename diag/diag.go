// Package diag renders program.LoadError and eval.EvalError values as
// structured, human-readable diagnostics, colorized through a table of
// SprintFuncs gated by a "no colorize" switch.
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cs-au-dk/fixlog/eval"
	"github.com/cs-au-dk/fixlog/program"
	"github.com/fatih/color"
)

// NoColorize disables colorized output regardless of terminal
// capabilities; set from -no-colorize or when NO_COLOR is present in the
// environment.
var NoColorize = os.Getenv("NO_COLOR") != ""

func canColorize(col func(...interface{}) string) func(...interface{}) string {
	if NoColorize {
		return fmt.Sprint
	}
	return col
}

var colorize = struct {
	Kind   func(...interface{}) string
	Symbol func(...interface{}) string
	Detail func(...interface{}) string
}{
	Kind: func(is ...interface{}) string {
		return canColorize(color.New(color.FgHiRed, color.Bold).SprintFunc())(is...)
	},
	Symbol: func(is ...interface{}) string {
		return canColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Detail: func(is ...interface{}) string {
		return canColorize(color.New(color.FgHiWhite, color.Faint).SprintFunc())(is...)
	},
}

// Report writes a colorized rendering of err to w. It recognizes
// program.LoadError and eval.EvalError, falling back to err.Error() for
// anything else.
func Report(w io.Writer, err error) {
	var loadErr *program.LoadError
	var evalErr *eval.EvalError

	switch {
	case errors.As(err, &loadErr):
		fmt.Fprintf(w, "%s %s: %s (%s)\n",
			colorize.Kind("load error"), colorize.Kind(loadErr.Kind),
			colorize.Symbol(loadErr.Symbol), colorize.Detail(loadErr.Detail))
	case errors.As(err, &evalErr):
		name := "?"
		if evalErr.Symbol != nil {
			name = evalErr.Symbol.Name
		}
		fmt.Fprintf(w, "%s %s: %s at clause position %d (%s)\n",
			colorize.Kind("eval error"), colorize.Kind(evalErr.Kind),
			colorize.Symbol(name), evalErr.ClausePos, colorize.Detail(evalErr.Detail))
	default:
		fmt.Fprintf(w, "%s %s\n", colorize.Kind("error"), err.Error())
	}
}

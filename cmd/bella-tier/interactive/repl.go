// Package interactive provides the bella-tier interactive prompt.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/bella-notify/bella-go/cmd/bella-tier/commands"
	"github.com/bella-notify/bella-go/pkg/log"
)

// REPL reads values from the terminal and admits each through a gate.
type REPL struct {
	gate commands.Admitter
	rl   *readline.Instance
}

// New creates a REPL bound to the terminal.
func New(gate commands.Admitter) (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tier> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &REPL{gate: gate, rl: rl}, nil
}

// Stdout returns a writer that coordinates with the readline input.
func (r *REPL) Stdout() io.Writer {
	return r.rl.Stdout()
}

// Run reads lines until EOF, "quit" or ctx is done.
func (r *REPL) Run(ctx context.Context) {
	defer r.rl.Close()

	printHelp(r.rl.Stdout())

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return
		}

		if !Eval(r.gate, line, r.rl.Stdout()) {
			return
		}
	}
}

// Eval handles one input line and reports whether the loop should continue.
func Eval(gate commands.Admitter, line string, w io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "help", "?":
		printHelp(w)
	case "tiers":
		if err := commands.RunTiers(w); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	case "quit", "exit", "q":
		fmt.Fprintln(w, "Exiting...")
		return false
	default:
		for _, f := range fields {
			out, _ := commands.CheckOne(gate, log.SourceCLI, f)
			fmt.Fprintln(w, out)
		}
	}
	return true
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `
Commands:
  <ms> [<ms>...]   - Admit raw magnitudes (e.g. 1000 1500)
  <preset>         - Resolve a configured preset
  tiers            - List sanctioned tiers
  help             - Show this help
  quit             - Exit`)
}

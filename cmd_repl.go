package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"eos/compiler"
	"eos/reporter"
	"eos/value"
	"eos/vm"
)

// replCmd is an interactive read-eval-print loop. Grounded on the
// teacher's main.go/cmd_repl.go bufio-based loop, evolved to read lines
// through chzyer/readline for history and line editing instead. Each
// line is compiled into a fresh Chunk and run independently -- a compile
// error on one line can't corrupt the VM's state for the next.
type replCmd struct {
	debug bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive read-eval-print loop" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive session. Type an expression and press Enter to
  see its result; "exit" or EOF (Ctrl-D) quits.
`
}

func (r *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.debug, "debug", false, "dump each compiled chunk's disassembly to stderr before running it")
}

func (r *replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New("eos> ")
	if err != nil {
		fmt.Println("💥 failed to start the line reader:", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	rep := reporter.NewStd()
	interner := value.NewInterner()
	machine := vm.New(rep)
	machine.Debug = r.debug

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return subcommands.ExitSuccess
			}
			return subcommands.ExitSuccess
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return subcommands.ExitSuccess
		}

		chnk, err := compiler.Compile(line, rep, interner)
		if err != nil {
			continue
		}
		if err := machine.Run(chnk); err != nil {
			continue
		}
		if top, ok := machine.Top(); ok {
			rep.Print(top)
		}
	}
}

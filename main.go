// Command eos is the process entry point: a small subcommand CLI wrapping
// the compile/run pipeline (compiler, chunk, vm) in the lexer/compiler/vm
// packages. Grounded on the muhtutorials-vm example's main.go subcommand
// registration shape (not the teacher; see DESIGN.md), since the teacher's own main.go never wired its
// cmd_*.go files into github.com/google/subcommands.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&replCmd{}, "")
	subcommands.Register(&emitCmd{}, "")
	subcommands.Register(&disasmCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

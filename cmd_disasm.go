package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// disasmCmd is reserved. Persisting bytecode to disk and later
// disassembling it independently of a compile is an explicit non-goal
// (see SPEC_FULL.md §1/§6: "Persisted state: none. Chunks are
// ephemeral."); use `emit`, which compiles and disassembles in one step.
type disasmCmd struct{}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "(reserved) disassemble a persisted bytecode file" }
func (*disasmCmd) Usage() string {
	return `disasm <file>:
  Not supported: EOS does not persist bytecode across runs. Use "emit"
  to compile a source file and print its disassembly in one step.
`
}

func (*disasmCmd) SetFlags(*flag.FlagSet) {}

func (*disasmCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "💥 disasm: bytecode is never persisted across runs; use \"emit\" instead")
	return subcommands.ExitUsageError
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"eos/chunk"
	"eos/compiler"
	"eos/reporter"
	"eos/value"
)

// emitCmd compiles a file without running it and dumps the resulting
// chunk's disassembly. Grounded on the teacher's cmd_emit_bytecode.go /
// ASTCompiler.DiassembleBytecode, minus the hex bytecode file it also
// wrote: EOS never persists bytecode across runs (see cmd_disasm.go).
type emitCmd struct {
	out string
}

func (*emitCmd) Name() string     { return "emit" }
func (*emitCmd) Synopsis() string { return "compile a source file and print its bytecode disassembly" }
func (*emitCmd) Usage() string {
	return `emit <file>:
  Compile <file> without running it, printing the disassembled bytecode.
`
}

func (cmd *emitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.out, "out", "", "write the disassembly to this path instead of stdout")
}

func (cmd *emitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "💥 file not provided\n")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	rep := reporter.NewStd()
	chnk, err := compiler.Compile(string(data), rep, value.NewInterner())
	if err != nil {
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if cmd.out != "" {
		f, err := os.Create(cmd.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 failed to create output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		chunk.Disassemble(chnk, filepath.Base(args[0]), f)
		return subcommands.ExitSuccess
	}

	chunk.Disassemble(chnk, filepath.Base(args[0]), out)
	return subcommands.ExitSuccess
}

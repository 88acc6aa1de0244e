package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"eos/compiler"
	"eos/reporter"
	"eos/value"
	"eos/vm"
)

type runCmd struct {
	debug bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "compile and execute an EOS source file" }
func (*runCmd) Usage() string {
	return `run <file>:
  Compile and execute the expression in <file>, printing its result.
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.debug, "debug", false, "dump the compiled chunk's disassembly to stderr before running it")
}

func (r *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	machine := vm.New(rep)
	machine.Debug = r.debug
	if err := machine.Run(chnk); err != nil {
		return subcommands.ExitFailure
	}
	if top, ok := machine.Top(); ok {
		rep.Print(top)
	}
	return subcommands.ExitSuccess
}

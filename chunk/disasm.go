package chunk

import (
	"fmt"
	"io"
)

// Disassemble writes a human-readable dump of c to w, one line per
// instruction, in the style of the original source's print_chunk: each
// line shows the byte offset and opcode name, and Constant lines also
// show the decoded value. This is a debugging aid only (the emit
// subcommand's output), not a bytecode format -- EOS does not persist
// bytecode across runs.
func Disassemble(c *Chunk, name string, w io.Writer) {
	fmt.Fprintf(w, "=== %s ===\n", name)

	index := 0
	for {
		op, line, ok := c.ReadOpcode(index)
		if !ok {
			return
		}

		switch op {
		case Constant:
			valueIndex := index + InstructionSize
			v, _, valueOK := c.ReadValue(valueIndex)
			if !valueOK {
				fmt.Fprintf(w, "%06d line %-4d %-10s <unreadable>\n", index, line, op)
				return
			}
			fmt.Fprintf(w, "%06d line %-4d %-10s %s\n", index, line, op, v)
			index = valueIndex + ConstantIndexSize
		default:
			fmt.Fprintf(w, "%06d line %-4d %-10s\n", index, line, op)
			index += InstructionSize
		}
	}
}

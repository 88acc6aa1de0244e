// Package vm implements the stack-based bytecode interpreter: a fetch,
// decode, dispatch loop over a chunk.Chunk's packed instruction records.
package vm

import (
	"fmt"
	"strings"

	"eos/chunk"
	"eos/reporter"
	"eos/value"
)

// VM executes one chunk.Chunk at a time. It is reusable across runs: Run
// resets the operand stack but keeps the VM's configuration (reporter,
// debug flag) in place, mirroring the original source's single long-lived
// VM instance reused across REPL lines.
type VM struct {
	reporter reporter.Reporter
	stack    stack
	// Debug, when set, dumps a disassembly of the chunk to the reporter
	// before executing it.
	Debug bool
}

// New returns a VM that reports through rep.
func New(rep reporter.Reporter) *VM {
	return &VM{reporter: rep, stack: newStack()}
}

// Run executes c from its first instruction to the end of its used bytes,
// dispatching each opcode in turn. It returns on the first runtime error,
// having already reported it through the VM's reporter.
func (vm *VM) Run(c *chunk.Chunk) error {
	vm.stack = newStack()
	if vm.Debug {
		var buf strings.Builder
		chunk.Disassemble(c, "chunk", &buf)
		vm.reporter.DebugDump(buf.String())
	}

	ptr := 0
	for ptr < c.Size() {
		op, line, ok := c.ReadOpcode(ptr)
		if !ok {
			return vm.fail(line, "corrupt bytecode: instruction record truncated")
		}

		switch op {
		case chunk.Return:
			ptr += chunk.InstructionSize

		case chunk.Constant:
			payloadOffset := ptr + chunk.InstructionSize
			v, _, ok := c.ReadValue(payloadOffset)
			if !ok {
				return vm.fail(line, "corrupt bytecode: missing constant payload")
			}
			vm.stack.push(v)
			ptr = payloadOffset + chunk.ConstantIndexSize

		case chunk.Negate:
			operand, ok := vm.stack.pop()
			if !ok {
				return vm.fail(line, "stack underflow")
			}
			result, err := value.Negate(operand)
			if err != nil {
				return vm.fail(line, err.Error())
			}
			vm.stack.push(result)
			ptr += chunk.InstructionSize

		case chunk.Print:
			operand, ok := vm.stack.pop()
			if !ok {
				return vm.fail(line, "stack underflow")
			}
			vm.reporter.Print(operand)
			ptr += chunk.InstructionSize

		case chunk.Equal:
			right, left, ok := vm.popPair()
			if !ok {
				return vm.fail(line, "stack underflow")
			}
			vm.stack.push(value.Boolean(value.Equal(left, right)))
			ptr += chunk.InstructionSize

		case chunk.Greater:
			right, left, ok := vm.popPair()
			if !ok {
				return vm.fail(line, "stack underflow")
			}
			result, err := value.Greater(left, right)
			if err != nil {
				return vm.fail(line, err.Error())
			}
			vm.stack.push(value.Boolean(result))
			ptr += chunk.InstructionSize

		case chunk.Less:
			right, left, ok := vm.popPair()
			if !ok {
				return vm.fail(line, "stack underflow")
			}
			result, err := value.Less(left, right)
			if err != nil {
				return vm.fail(line, err.Error())
			}
			vm.stack.push(value.Boolean(result))
			ptr += chunk.InstructionSize

		case chunk.Add:
			right, left, ok := vm.popPair()
			if !ok {
				return vm.fail(line, "stack underflow")
			}
			result, err := value.Add(left, right)
			if err != nil {
				return vm.fail(line, err.Error())
			}
			vm.stack.push(result)
			ptr += chunk.InstructionSize

		case chunk.Subtract:
			right, left, ok := vm.popPair()
			if !ok {
				return vm.fail(line, "stack underflow")
			}
			result, err := value.Sub(left, right)
			if err != nil {
				return vm.fail(line, err.Error())
			}
			vm.stack.push(result)
			ptr += chunk.InstructionSize

		case chunk.Multiply:
			right, left, ok := vm.popPair()
			if !ok {
				return vm.fail(line, "stack underflow")
			}
			result, err := value.Mul(left, right)
			if err != nil {
				return vm.fail(line, err.Error())
			}
			vm.stack.push(result)
			ptr += chunk.InstructionSize

		case chunk.Divide:
			right, left, ok := vm.popPair()
			if !ok {
				return vm.fail(line, "stack underflow")
			}
			result, err := value.Div(left, right)
			if err != nil {
				return vm.fail(line, err.Error())
			}
			vm.stack.push(result)
			ptr += chunk.InstructionSize

		default:
			return vm.fail(line, fmt.Sprintf("unknown opcode %v", op))
		}
	}
	return nil
}

// Top returns the value left on top of the evaluation stack, normally the
// single result of the one expression a chunk compiles to. ok is false if
// nothing was ever pushed, or everything pushed has since been popped
// (e.g. by a Print opcode reached via a hand-built chunk).
func (vm *VM) Top() (value.Value, bool) {
	return vm.stack.peek()
}

// popPair pops the right operand, then the left -- the order every binary
// opcode was compiled assuming (see compiler.binary), since the left
// operand was pushed first and therefore sits deeper in the stack.
func (vm *VM) popPair() (right, left value.Value, ok bool) {
	right, ok = vm.stack.pop()
	if !ok {
		return value.Value{}, value.Value{}, false
	}
	left, ok = vm.stack.pop()
	if !ok {
		return value.Value{}, value.Value{}, false
	}
	return right, left, true
}

func (vm *VM) fail(line int32, message string) error {
	vm.reporter.ReportRuntimeError(line, message)
	return RuntimeError{Line: line, Message: message}
}

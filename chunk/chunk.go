// Package chunk implements the packed bytecode buffer shared by the
// compiler (which appends to it) and the VM (which reads it back
// positionally). It stores two interleaved kinds of fixed-width records:
//
//	[[opcode_tag][line]]                         -- a plain instruction
//	[[Constant tag][line]][constant index]       -- a Constant instruction
//
// A Constant record's line field is, by construction, the line
// immediately preceding its payload -- this mirrors the original source's
// memory layout (where the payload was the Value itself, inline) without
// needing unsafe pointer arithmetic: the payload here is a 4-byte index
// into a side table of Values, as described in SPEC_FULL.md §9.
package chunk

import (
	"encoding/binary"

	"eos/value"
)

const (
	// OpcodeSize is the width in bytes of an opcode tag.
	OpcodeSize = 1
	// LineSize is the width in bytes of a record's line field.
	LineSize = 4
	// InstructionSize is the width of a plain (non-Constant) record.
	InstructionSize = OpcodeSize + LineSize
	// ConstantIndexSize is the width of a Constant record's payload: an
	// index into the Chunk's side table of Values.
	ConstantIndexSize = 4
)

// DefaultCapacity is the initial byte capacity of a new Chunk, matching
// the original source's DEFAULT_STACK_CAPACITY reused here as a generic
// "reasonably sized buffer" default.
const DefaultCapacity = 1024

// Chunk is a growable, byte-addressed instruction buffer.
type Chunk struct {
	data     []byte
	size     int
	capacity int
	values   []value.Value
}

// New returns an empty Chunk with the default initial capacity.
func New() *Chunk { return NewWithCapacity(DefaultCapacity) }

// NewWithCapacity returns an empty Chunk with the given initial byte
// capacity.
func NewWithCapacity(capacity int) *Chunk {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Chunk{data: make([]byte, capacity), capacity: capacity}
}

// Size returns the number of used bytes.
func (c *Chunk) Size() int { return c.size }

// AppendOpcode writes a plain instruction record and returns the byte
// offset it was written at.
func (c *Chunk) AppendOpcode(op OpCode, line int32) int {
	for c.size+InstructionSize >= c.capacity {
		c.resize()
	}

	offset := c.size
	c.data[offset] = byte(op)
	binary.BigEndian.PutUint32(c.data[offset+OpcodeSize:], uint32(line))
	c.size += InstructionSize
	return offset
}

// AppendValue writes a Constant instruction record: first the Constant
// opcode record (so the line field precedes the payload, per the package
// doc), then the 4-byte index of v in the Chunk's value table. Returns the
// byte offset of the payload (suitable for a later ReadValue call).
func (c *Chunk) AppendValue(v value.Value, line int32) int {
	c.AppendOpcode(Constant, line)

	for c.size+ConstantIndexSize > c.capacity {
		c.resize()
	}

	index := uint32(len(c.values))
	c.values = append(c.values, v)

	payloadOffset := c.size
	binary.BigEndian.PutUint32(c.data[payloadOffset:], index)
	c.size += ConstantIndexSize
	return payloadOffset
}

// ReadOpcode reads the instruction record starting at byte index. ok is
// false when the record would extend past the used portion of the
// buffer.
func (c *Chunk) ReadOpcode(index int) (op OpCode, line int32, ok bool) {
	if index < 0 || index+InstructionSize > c.size {
		return 0, 0, false
	}
	op = OpCode(c.data[index])
	line = int32(binary.BigEndian.Uint32(c.data[index+OpcodeSize:]))
	return op, line, true
}

// ReadValue reads the Value payload starting at byte index, along with the
// line field stored immediately before it (the line of the Constant
// opcode record that precedes this payload).
//
// The original source's equivalent bounds check used `>=`, which made the
// chunk's very last value unreadable. This uses strict `>`, fixing that
// off-by-one (SPEC_FULL.md §9 Open Question 2).
func (c *Chunk) ReadValue(index int) (v value.Value, line int32, ok bool) {
	if index < LineSize || index+ConstantIndexSize > c.size {
		return value.Value{}, 0, false
	}
	constantIndex := binary.BigEndian.Uint32(c.data[index:])
	line = int32(binary.BigEndian.Uint32(c.data[index-LineSize:]))
	if int(constantIndex) >= len(c.values) {
		return value.Value{}, 0, false
	}
	return c.values[constantIndex], line, true
}

// Reset clears the chunk for reuse without reallocating its backing
// buffer. compiler.Compile does not call it: it always starts from a new
// Chunk.
func (c *Chunk) Reset() {
	c.size = 0
	c.values = c.values[:0]
}

// resize doubles the chunk's capacity, preserving all previously written
// bytes at their original offsets.
func (c *Chunk) resize() {
	newCapacity := c.capacity * 2
	newData := make([]byte, newCapacity)
	copy(newData, c.data[:c.size])
	c.data = newData
	c.capacity = newCapacity
}

package chunk

import (
	"bytes"
	"testing"

	"eos/value"
)

func TestRoundTripOpcodesAndValues(t *testing.T) {
	c := New()
	c.AppendOpcode(Return, 1)
	valueOffset := c.AppendValue(value.Integer(42), 2)
	c.AppendOpcode(Add, 3)

	op, line, ok := c.ReadOpcode(0)
	if !ok || op != Return || line != 1 {
		t.Fatalf("ReadOpcode(0) = %v, %v, %v; want Return, 1, true", op, line, ok)
	}

	v, line, ok := c.ReadValue(valueOffset)
	if !ok || v.Kind != value.KindInteger || v.Int() != 42 || line != 2 {
		t.Fatalf("ReadValue(%d) = %v, %v, %v; want Integer(42), 2, true", valueOffset, v, line, ok)
	}

	lastOpOffset := valueOffset + ConstantIndexSize
	op, line, ok = c.ReadOpcode(lastOpOffset)
	if !ok || op != Add || line != 3 {
		t.Fatalf("ReadOpcode(%d) = %v, %v, %v; want Add, 3, true", lastOpOffset, op, line, ok)
	}

	if lastOpOffset+InstructionSize != c.Size() {
		t.Errorf("cursor after reading every record = %d, want %d", lastOpOffset+InstructionSize, c.Size())
	}
}

func TestReadValueLastValueIsReadable(t *testing.T) {
	// Regression test for the fixed off-by-one: the original source's
	// `>=` bounds check made the chunk's last value unreadable.
	c := New()
	offset := c.AppendValue(value.Integer(7), 1)

	v, _, ok := c.ReadValue(offset)
	if !ok {
		t.Fatal("ReadValue on the chunk's only (and therefore last) value should succeed")
	}
	if v.Int() != 7 {
		t.Errorf("ReadValue() = %v, want Integer(7)", v)
	}
}

func TestReadPastEndFails(t *testing.T) {
	c := New()
	c.AppendOpcode(Return, 1)

	if _, _, ok := c.ReadOpcode(c.Size()); ok {
		t.Error("ReadOpcode past size should fail")
	}
	if _, _, ok := c.ReadValue(c.Size()); ok {
		t.Error("ReadValue past size should fail")
	}
}

func TestGrowthPreservesEarlierRecords(t *testing.T) {
	c := NewWithCapacity(InstructionSize) // forces a resize on the second append
	c.AppendOpcode(Return, 1)
	c.AppendOpcode(Negate, 2)

	op, line, ok := c.ReadOpcode(0)
	if !ok || op != Return || line != 1 {
		t.Errorf("first record corrupted after growth: got %v, %v, %v", op, line, ok)
	}
	op, line, ok = c.ReadOpcode(InstructionSize)
	if !ok || op != Negate || line != 2 {
		t.Errorf("second record wrong after growth: got %v, %v, %v", op, line, ok)
	}
}

func TestResetAllowsReuse(t *testing.T) {
	c := New()
	c.AppendValue(value.Integer(1), 1)
	c.Reset()
	if c.Size() != 0 {
		t.Fatalf("Size() after Reset = %d, want 0", c.Size())
	}
	offset := c.AppendValue(value.Integer(2), 1)
	v, _, ok := c.ReadValue(offset)
	if !ok || v.Int() != 2 {
		t.Errorf("value after Reset+append = %v, want Integer(2)", v)
	}
}

func TestDisassembleShowsConstantPayload(t *testing.T) {
	c := New()
	c.AppendValue(value.Integer(5), 1)
	c.AppendOpcode(Print, 1)
	c.AppendOpcode(Return, 1)

	var buf bytes.Buffer
	Disassemble(c, "test", &buf)

	out := buf.String()
	for _, want := range []string{"Constant", "5", "Print", "Return"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("disassembly missing %q, got:\n%s", want, out)
		}
	}
}

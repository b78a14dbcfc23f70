// This file is part of this software.

package syscon

import "testing"

func TestBlockReadsBackLastWrite(t *testing.T) {
	b := NewBlock()
	b.Write32(0x08, 0xDEADBEEF)

	if got := b.Read32(0x08); got != 0xDEADBEEF {
		t.Errorf("Read32(0x08) = %#x, want 0xDEADBEEF", got)
	}
}

func TestBlockUnwrittenOffsetIsZero(t *testing.T) {
	b := NewBlock()
	if got := b.Read32(0x40); got != 0 {
		t.Errorf("Read32(0x40) = %#x, want 0", got)
	}
}

func TestBlockOffsetIsWordAligned(t *testing.T) {
	b := NewBlock()
	b.Write32(0x08, 0x12345678)

	if got := b.Read32(0x0B); got != 0x12345678 {
		t.Errorf("Read32(0x0B) = %#x, want 0x12345678 (aligned down to 0x08)", got)
	}
}

func TestProcIDReportsConfiguredValue(t *testing.T) {
	p := NewProcID(1)
	if got := p.Read32(0); got != 1 {
		t.Errorf("ProcID.Read32(0) = %d, want 1", got)
	}
}

func TestProcIDIsReadOnly(t *testing.T) {
	p := NewProcID(0)
	p.Write32(0, 99) // must not panic or change the reported ID
	if got := p.Read32(0); got != 0 {
		t.Errorf("ProcID.Read32(0) after write = %d, want 0", got)
	}
}

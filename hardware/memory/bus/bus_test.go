// This file is part of this software.

package bus

import "testing"

type wordRegister struct {
	val uint32
}

func (w *wordRegister) Read32(offset uint32) uint32  { return w.val }
func (w *wordRegister) Write32(offset uint32, v uint32) { w.val = v }

func TestUnmappedReadReturnsZero(t *testing.T) {
	b, err := NewBus(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Read(0x1234, Word); got != 0 {
		t.Errorf("unmapped read = %#x, want 0", got)
	}
}

func TestUnmappedWriteIsDropped(t *testing.T) {
	b, err := NewBus(nil)
	if err != nil {
		t.Fatal(err)
	}
	// must not panic
	b.Write(0x1234, Word, 0xFFFFFFFF)
}

func TestOverlapRejected(t *testing.T) {
	r1 := &wordRegister{}
	r2 := &wordRegister{}
	_, err := NewBus([]Region{
		{Name: "a", Base: 0x1000, Length: 0x100, Handler: r1},
		{Name: "b", Base: 0x1080, Length: 0x100, Handler: r2},
	})
	if err == nil {
		t.Fatal("expected overlap error, got nil")
	}
}

func TestByteWidthFoldsThroughWord(t *testing.T) {
	reg := &wordRegister{}
	b, err := NewBus([]Region{{Name: "reg", Base: 0x1000, Length: 0x10, Handler: reg}})
	if err != nil {
		t.Fatal(err)
	}
	b.Write(0x1000, Word, 0x11223344)
	if got := b.Read(0x1000, Byte); got != 0x44 {
		t.Errorf("low byte = %#x, want 0x44", got)
	}
	if got := b.Read(0x1003, Byte); got != 0x11 {
		t.Errorf("high byte = %#x, want 0x11", got)
	}
}

func TestDebugReadWrite(t *testing.T) {
	reg := &wordRegister{}
	b, err := NewBus([]Region{{Name: "reg", Base: 0x2000, Length: 0x10, Handler: reg}})
	if err != nil {
		t.Fatal(err)
	}
	b.DebugWrite(0x2000, 0x7A)
	if got := b.DebugRead(0x2000); got != 0x7A {
		t.Errorf("DebugRead = %#x, want 0x7A", got)
	}
}

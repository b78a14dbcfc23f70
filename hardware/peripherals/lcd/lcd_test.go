// This file is part of this software.

package lcd

import (
	"testing"

	"github.com/Davidslv/zigpod-sub010/hardware/memory/bus"
)

type capturingSink struct {
	frame []uint16
}

func (s *capturingSink) Publish(frame []uint16) { s.frame = frame }

// fakeBlockReader stands in for the bus during bridge block-transfer tests;
// it returns the 16-bit value stored for each address, and zero elsewhere.
type fakeBlockReader struct {
	values map[uint32]uint16
}

func (f *fakeBlockReader) Read(addr uint32, width bus.Width) uint32 {
	return uint32(f.values[addr])
}

func TestMainPathStreamsAndCommitsRedFill(t *testing.T) {
	l := New()
	sink := &capturingSink{}
	l.SetSink(sink)

	l.Write32(RegMainAddr, 0)
	for i := 0; i < Width*Height; i++ {
		l.Write32(RegMainData, 0xF800) // RGB565 red
	}
	l.Write32(RegMainCommit, 0)

	if sink.frame == nil {
		t.Fatal("commit did not publish a frame")
	}
	for i, px := range sink.frame {
		if px != 0xF800 {
			t.Fatalf("pixel %d = %#04x, want 0xF800", i, px)
		}
	}
}

func TestMainCursorAutoIncrementsAndIsReadable(t *testing.T) {
	l := New()
	l.Write32(RegMainAddr, 10)
	l.Write32(RegMainData, 0x1234)
	l.Write32(RegMainData, 0x5678)

	if got := l.Read32(RegMainAddr); got != 12 {
		t.Errorf("main cursor after two writes = %d, want 12", got)
	}
}

func TestWriteBeyondFramebufferIsTolerated(t *testing.T) {
	l := New()
	l.Write32(RegMainAddr, uint32(Width*Height))
	l.Write32(RegMainData, 0xFFFF) // must not panic; cursor is out of range
}

func TestBridgePathWritesSameBuffer(t *testing.T) {
	l := New()
	sink := &capturingSink{}
	l.SetSink(sink)
	b := NewBridge(l)

	b.Write32(RegBridgeAddr, 0)
	b.Write32(RegBridgeData, 0x07E0) // RGB565 green
	b.Write32(RegBridgeCommit, 0)

	if sink.frame[0] != 0x07E0 {
		t.Errorf("bridge-path pixel 0 = %#04x, want 0x07E0", sink.frame[0])
	}
}

func TestBridgeBlockTransferReadsThroughMemory(t *testing.T) {
	l := New()
	reader := &fakeBlockReader{values: map[uint32]uint16{
		0x1000: 0x001F,
		0x1002: 0x001F,
		0x1004: 0x001F,
	}}
	l.SetMemory(reader)
	b := NewBridge(l)

	b.Write32(RegBridgeAddr, 0)
	b.Write32(RegBridgeBlockSrc, 0x1000)
	b.Write32(RegBridgeBlockLen, 3)
	b.Write32(RegBridgeBlockGo, 0)

	for i := 0; i < 3; i++ {
		if l.buf[i] != 0x001F {
			t.Errorf("buf[%d] = %#04x, want 0x001F", i, l.buf[i])
		}
	}
	if got := b.Read32(RegBridgeAddr); got != 3 {
		t.Errorf("bridge cursor after block transfer = %d, want 3", got)
	}
}

func TestBridgeBlockTransferWithNoMemoryIsNoOp(t *testing.T) {
	l := New()
	b := NewBridge(l)
	b.Write32(RegBridgeBlockLen, 4)
	b.Write32(RegBridgeBlockGo, 0) // no SetMemory call; must not panic
}

// This file is part of this software.

package dma

import (
	"testing"

	"github.com/Davidslv/zigpod-sub010/hardware/memory/bus"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/intc"
)

type flatMem struct {
	data [1024]byte
}

func (m *flatMem) Read(addr uint32, width bus.Width) uint32 { return uint32(m.data[addr]) }
func (m *flatMem) Write(addr uint32, width bus.Width, val uint32) { m.data[addr] = byte(val) }

func TestChannelTransferCompletesAtCommit(t *testing.T) {
	mem := &flatMem{}
	for i := 0; i < 16; i++ {
		mem.data[i] = byte(0x10 + i)
	}
	ic := intc.New()
	ic.Write32(intc.RegCPUIntEn, 1<<intc.DMA)
	d := New(mem, ic)

	d.Write32(offSource, 0)
	d.Write32(offDest, 100)
	d.Write32(offCount, 16)
	d.Write32(offConfig, cfgSrcIncrement|cfgDstIncrement)
	d.Write32(offControl, ctrlStart)

	for i := 0; i < 16; i++ {
		if got, want := mem.data[100+i], byte(0x10+i); got != want {
			t.Errorf("dest[%d] = %#x, want %#x", i, got, want)
		}
	}
	if !ic.IRQAsserted() {
		t.Error("DMA completion did not assert an interrupt")
	}
}

func TestNonIncrementingSourceRepeatsOneByte(t *testing.T) {
	mem := &flatMem{}
	mem.data[0] = 0x42
	d := New(mem, intc.New())

	d.Write32(offSource, 0)
	d.Write32(offDest, 200)
	d.Write32(offCount, 4)
	d.Write32(offConfig, cfgDstIncrement) // source does not increment
	d.Write32(offControl, ctrlStart)

	for i := 0; i < 4; i++ {
		if mem.data[200+i] != 0x42 {
			t.Errorf("dest[%d] = %#x, want 0x42", i, mem.data[200+i])
		}
	}
}

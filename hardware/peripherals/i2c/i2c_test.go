// This file is part of this software.

package i2c

import (
	"testing"

	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/intc"
)

func TestPMUIDByteAlwaysReadsAtRegisterZero(t *testing.T) {
	ic := intc.New()
	c := New(ic)
	pmu := NewPMU()
	c.AttachSlave(PMUAddress, pmu)

	c.Write32(RegAddr, PMUAddress)
	c.Write32(RegData, 0) // cursor = 0
	c.Write32(RegControl, ctrlStart|(1<<ctrlByteCountShift))

	if got := c.Read32(RegData); got != pmuIDByte {
		t.Errorf("PMU register 0 = %#x, want %#x", got, pmuIDByte)
	}
}

func TestCodecRegisterWriteThenRead(t *testing.T) {
	ic := intc.New()
	c := New(ic)
	codec := NewCodec()
	c.AttachSlave(CodecAddress, codec)

	c.Write32(RegAddr, CodecAddress)
	c.Write32(RegData, 5)    // byte 1: cursor
	c.Write32(RegData, 0x7A) // byte 2: value
	c.Write32(RegControl, ctrlStart|(2<<ctrlByteCountShift))

	c.Write32(RegAddr, CodecAddress)
	c.Write32(RegData, 5)
	c.Write32(RegControl, ctrlStart|(1<<ctrlByteCountShift))

	if got := c.Read32(RegData); got != 0x7A {
		t.Errorf("codec register 5 = %#x, want 0x7A", got)
	}
	if got := codec.Register(5); got != 0x7A {
		t.Errorf("codec.Register(5) = %#x, want 0x7A", got)
	}
}

func TestUnknownSlaveTransferCompletesWithoutCrashing(t *testing.T) {
	ic := intc.New()
	c := New(ic)
	c.Write32(RegAddr, 0x77) // nothing attached here
	c.Write32(RegData, 0)
	c.Write32(RegControl, ctrlStart|(1<<ctrlByteCountShift))

	if got := c.Read32(RegStatus); got&statusDone == 0 {
		t.Error("status DONE not set after transfer to unknown slave")
	}
}

// This file is part of this software.

package machine

import (
	"path/filepath"
	"testing"

	"github.com/Davidslv/zigpod-sub010/config"
	"github.com/Davidslv/zigpod-sub010/hardware/instance"
	"github.com/Davidslv/zigpod-sub010/hardware/memory/bus"
	"github.com/Davidslv/zigpod-sub010/hardware/memory/memorymap"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/ata"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/intc"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/lcd"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/timer"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	ins, err := instance.New("machine-test", filepath.Join(t.TempDir(), "prefs.txt"))
	if err != nil {
		t.Fatalf("instance.New: %v", err)
	}
	cfg := config.Default()
	cfg.EntryPC = memorymap.IRAMOrigin
	m, err := New(ins, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// TestPipelineOffsetThroughWiredMachine pins spec §8's universal invariant
// end to end: firmware loaded into IRAM and run through the full wired
// Machine observes r15 as its own address plus 8.
func TestPipelineOffsetThroughWiredMachine(t *testing.T) {
	m := newTestMachine(t)

	// MOV R0, PC at IRAM+0; MOV R1, PC at IRAM+4.
	img := []byte{
		0x0F, 0x00, 0xA0, 0xE1,
		0x0F, 0x10, 0xA0, 0xE1,
	}
	if err := m.LoadFirmware(memorymap.IRAMOrigin, img); err != nil {
		t.Fatalf("LoadFirmware: %v", err)
	}

	m.Run(2)

	if got := m.CPU.GPR(0); got != memorymap.IRAMOrigin+8 {
		t.Errorf("R0 = %#x, want %#x", got, memorymap.IRAMOrigin+8)
	}
	if got := m.CPU.GPR(1); got != memorymap.IRAMOrigin+12 {
		t.Errorf("R1 = %#x, want %#x", got, memorymap.IRAMOrigin+12)
	}
}

// TestTimerInterruptRoundTripThroughWiredMachine drives the timer and
// interrupt controller purely through bus register writes, the way
// firmware would, and confirms the controller asserts an IRQ once the
// down-counter reaches zero.
func TestTimerInterruptRoundTripThroughWiredMachine(t *testing.T) {
	m := newTestMachine(t)

	timerBase := uint32(memorymap.CoreSoCOrigin + memorymap.TimerBase)
	intcBase := uint32(memorymap.CoreSoCOrigin + memorymap.InterruptCtrlBase)

	m.Bus.Write(intcBase+intc.RegCPUIntEn, bus.Word, 1<<intc.Timer1)
	m.Bus.Write(timerBase+timer.RegTimer1Reload, bus.Word, 0)
	m.Bus.Write(timerBase+timer.RegTimer1Ctrl, bus.Word, 1) // enable

	for i := 0; i < 4 && !m.Intc.IRQAsserted(); i++ {
		m.Tick()
	}

	if !m.Intc.IRQAsserted() {
		t.Fatal("timer did not assert an interrupt within a reasonable number of ticks")
	}
}

// TestATAIdentifyThroughWiredBus issues an IDENTIFY DEVICE command the way
// firmware would — through the raw task-file registers at their bus
// address — and checks the returned page reports a sane capacity field.
func TestATAIdentifyThroughWiredBus(t *testing.T) {
	m := newTestMachine(t)

	m.Bus.Write(memorymap.ATAOrigin+ata.RegStatusCmd, bus.Word, 0xEC) // IDENTIFY DEVICE

	words := make([]uint16, 256)
	for i := range words {
		words[i] = uint16(m.Bus.Read(memorymap.ATAOrigin+ata.RegData, bus.Half))
	}

	capacity := uint32(words[60]) | uint32(words[61])<<16
	if capacity == 0 {
		t.Error("IDENTIFY capacity field is zero")
	}
}

// TestLCDFillAndCommitThroughWiredBus pins spec §8 scenario 5: streaming a
// solid-red fill through the main LCD path and committing publishes a
// uniformly 0xF800 framebuffer.
func TestLCDFillAndCommitThroughWiredBus(t *testing.T) {
	m := newTestMachine(t)

	type sink struct{ frame []uint16 }
	var s sink
	m.LCD.SetSink(publishFunc(func(frame []uint16) { s.frame = frame }))

	m.Bus.Write(memorymap.LCDMainOrigin+lcd.RegMainAddr, bus.Word, 0)
	for i := 0; i < lcd.Width*lcd.Height; i++ {
		m.Bus.Write(memorymap.LCDMainOrigin+lcd.RegMainData, bus.Half, 0xF800)
	}
	m.Bus.Write(memorymap.LCDMainOrigin+lcd.RegMainCommit, bus.Word, 0)

	if s.frame == nil {
		t.Fatal("commit through the wired bus did not publish a frame")
	}
	for i, px := range s.frame {
		if px != 0xF800 {
			t.Fatalf("pixel %d = %#04x, want 0xF800", i, px)
		}
	}
}

// publishFunc adapts a function literal to lcd.Sink for tests.
type publishFunc func(frame []uint16)

func (f publishFunc) Publish(frame []uint16) { f(frame) }

// TestMailboxThroughWiredBus exercises the mailbox region at its real
// address: a write sets bits, and reading clears them.
func TestMailboxThroughWiredBus(t *testing.T) {
	m := newTestMachine(t)

	mailboxAddr := uint32(memorymap.CoreSoCOrigin + memorymap.MailboxCPUOffset)
	m.Bus.Write(mailboxAddr, bus.Word, 0x5)

	if got := m.Bus.Read(mailboxAddr, bus.Word); got != 0x5 {
		t.Fatalf("mailbox read = %#x, want 0x5", got)
	}
	if got := m.Bus.Read(mailboxAddr, bus.Word); got != 0 {
		t.Errorf("mailbox second read = %#x, want 0 (read-clears)", got)
	}
}

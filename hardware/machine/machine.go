// This file is part of this software.

// Package machine wires the CPU, bus, RAM regions and peripherals into one
// runnable SoC instance, and drives the per-instruction orchestrator loop
// described in spec §4.10.
package machine

import (
	"github.com/Davidslv/zigpod-sub010/config"
	"github.com/Davidslv/zigpod-sub010/hardware/audio"
	"github.com/Davidslv/zigpod-sub010/hardware/cpu"
	"github.com/Davidslv/zigpod-sub010/hardware/disk"
	"github.com/Davidslv/zigpod-sub010/hardware/instance"
	"github.com/Davidslv/zigpod-sub010/hardware/input"
	"github.com/Davidslv/zigpod-sub010/hardware/memory/bus"
	"github.com/Davidslv/zigpod-sub010/hardware/memory/memorymap"
	"github.com/Davidslv/zigpod-sub010/hardware/memory/ram"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/ata"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/clickwheel"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/dma"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/gpio"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/i2c"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/intc"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/lcd"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/mailbox"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/syscon"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/timer"
	"github.com/Davidslv/zigpod-sub010/internal/faults"
)

// busMemory adapts *bus.Bus to the narrow cpu.Memory interface, translating
// between the two packages' independently defined Width types (kept
// separate so the cpu package carries no dependency on the concrete bus
// implementation; see hardware/cpu/memory.go).
type busMemory struct {
	b *bus.Bus
}

func (m busMemory) Read(addr uint32, width cpu.Width) uint32 {
	return m.b.Read(addr, bus.Width(width))
}

func (m busMemory) Write(addr uint32, width cpu.Width, val uint32) {
	m.b.Write(addr, bus.Width(width), val)
}

// Machine is one fully wired PP5020/PP5021C emulation instance.
type Machine struct {
	Instance *instance.Instance
	Config   config.Config

	CPU  *cpu.CPU
	Bus  *bus.Bus
	Intc *intc.Controller

	SDRAM *ram.RAM
	IRAM  *ram.RAM
	boot  *ram.RAM

	Timers     *timer.Timers
	ATA        *ata.Controller
	LCD        *lcd.LCD
	I2C        *i2c.Controller
	GPIO       *gpio.GPIO
	DMA        *dma.DMA
	ClickWheel *clickwheel.ClickWheel
	Mailbox    *mailbox.Mailbox
	I2S        *audio.I2S
	Input      *input.Source

	Disk *disk.Image

	running bool
}

// New builds a Machine from cfg, validating it first (spec §7: invalid
// configuration is a host-setup failure, reported rather than panicked).
func New(ins *instance.Instance, cfg config.Config) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{Instance: ins, Config: cfg}

	m.SDRAM = ram.NewMirrored("sdram", int(cfg.SDRAMBytes), memorymap.SDRAMMemtop-memorymap.SDRAMOrigin+1)
	m.IRAM = ram.New("iram", memorymap.IRAMSize)
	m.boot = ram.New("bootrom", memorymap.BootROMMemtop-memorymap.BootROMOrigin+1)

	m.Intc = intc.New()
	if cfg.ProtectTimer1 {
		m.Intc.ProtectBit(intc.Timer1)
	}
	m.Timers = timer.New(m.Intc)

	var img *disk.Image
	var err error
	if cfg.DiskPath != "" {
		img, err = disk.Open(cfg.DiskPath)
		if err != nil {
			return nil, err
		}
	} else {
		img = disk.NewMemory(65536)
	}
	m.Disk = img
	m.ATA = ata.New(img, m.Intc)

	m.LCD = lcd.New()
	lcdBridge := lcd.NewBridge(m.LCD)

	codec := i2c.NewCodec()
	pmu := i2c.NewPMU()
	m.I2C = i2c.New(m.Intc)
	m.I2C.AttachSlave(i2c.PMUAddress, pmu)
	m.I2C.AttachSlave(i2c.CodecAddress, codec)

	m.GPIO = gpio.New()
	m.ClickWheel = clickwheel.New()
	m.Mailbox = mailbox.New()
	m.I2S = audio.New(codec)
	m.Input = input.NewSource()
	m.DMA = dma.New(nil, m.Intc) // given the bus by DMA2Wire once it exists

	procID := syscon.NewProcID(0)
	sysCtrl := syscon.NewBlock()
	cacheCtrl := syscon.NewBlock()
	deviceInit := syscon.NewBlock()
	gpo32 := syscon.NewBlock()

	regions := []bus.Region{
		{Name: "bootrom", Base: memorymap.BootROMOrigin, Length: memorymap.BootROMMemtop - memorymap.BootROMOrigin + 1, Handler: m.boot},
		{Name: "sdram", Base: memorymap.SDRAMOrigin, Length: memorymap.SDRAMMemtop - memorymap.SDRAMOrigin + 1, Handler: m.SDRAM},
		{Name: "lcd-main", Base: memorymap.LCDMainOrigin, Length: memorymap.LCDMainMemtop - memorymap.LCDMainOrigin + 1, Handler: m.LCD},
		{Name: "iram", Base: memorymap.IRAMOrigin, Length: memorymap.IRAMSize, Handler: m.IRAM},

		{Name: "proc-id", Base: memorymap.CoreSoCOrigin + memorymap.ProcIDOffset, Length: 0x1000, Handler: procID},
		{Name: "mailbox", Base: memorymap.CoreSoCOrigin + memorymap.MailboxCPUOffset, Length: 0x20, Handler: m.Mailbox},
		{Name: "intc", Base: memorymap.CoreSoCOrigin + memorymap.InterruptCtrlBase, Length: 0x1000, Handler: m.Intc},
		{Name: "timer", Base: memorymap.CoreSoCOrigin + memorymap.TimerBase, Length: 0x1000, Handler: m.Timers},
		{Name: "syscon", Base: memorymap.CoreSoCOrigin + memorymap.SystemControlBase, Length: 0x1000, Handler: sysCtrl},
		{Name: "cachecon", Base: memorymap.CoreSoCOrigin + memorymap.CacheControlBase, Length: 0x1000, Handler: cacheCtrl},
		{Name: "dma", Base: memorymap.CoreSoCOrigin + memorymap.DMABase, Length: 0x1000, Handler: m.DMA},
		{Name: "gpio", Base: memorymap.CoreSoCOrigin + memorymap.GPIOBase, Length: NumPorts(), Handler: m.GPIO},

		{Name: "device-init", Base: memorymap.DeviceOrigin + memorymap.DeviceInitBase, Length: 0x100, Handler: deviceInit},
		{Name: "gpo32", Base: memorymap.DeviceOrigin + memorymap.GPO32Base, Length: 0x100, Handler: gpo32},
		{Name: "i2s", Base: memorymap.DeviceOrigin + memorymap.I2SBase, Length: 0x100, Handler: m.I2S},
		{Name: "i2c", Base: memorymap.DeviceOrigin + memorymap.I2CBase, Length: 0x100, Handler: m.I2C},
		{Name: "clickwheel", Base: memorymap.DeviceOrigin + memorymap.ClickWheelBase, Length: 0x100, Handler: m.ClickWheel},
		{Name: "lcd-bridge", Base: memorymap.DeviceOrigin + memorymap.LCDBridgeBase, Length: 0x100, Handler: lcdBridge},

		{Name: "ata", Base: memorymap.ATAOrigin, Length: memorymap.ATAMemtop - memorymap.ATAOrigin + 1, Handler: m.ATA},
	}

	b, err := bus.NewBus(regions)
	if err != nil {
		return nil, err
	}
	m.Bus = b
	m.LCD.SetMemory(m.Bus)
	m.DMA2Wire()

	m.CPU = cpu.New(busMemory{b}, m.Intc, cpu.Config{ResetPC: cfg.EntryPC})

	return m, nil
}

// DMA2Wire reconstructs the DMA controller in place now that the bus exists,
// since the DMA channel transfer engine needs to read/write through the same
// bus its channels' source/destination addresses describe. The bus region
// keeps the same *dma.DMA, so it sees the rebuilt controller.
func (m *Machine) DMA2Wire() {
	*m.DMA = *dma.New(m.Bus, m.Intc)
}

// NumPorts sizes the GPIO bus region to cover all twelve ports.
func NumPorts() uint32 {
	return gpio.NumPorts * 0x10
}

// LoadFirmware installs img at loadAddr into SDRAM or IRAM, whichever
// region contains loadAddr, and returns an error if neither does (spec §6:
// "Loaded by writing bytes into SDRAM or IRAM").
func (m *Machine) LoadFirmware(loadAddr uint32, img []byte) error {
	switch {
	case memorymap.Within(loadAddr, memorymap.SDRAMOrigin, memorymap.SDRAMMemtop):
		m.SDRAM.LoadBytes(loadAddr-memorymap.SDRAMOrigin, img)
	case memorymap.Within(loadAddr, memorymap.IRAMOrigin, memorymap.IRAMMemtop):
		m.IRAM.LoadBytes(loadAddr-memorymap.IRAMOrigin, img)
	case memorymap.Within(loadAddr, memorymap.BootROMOrigin, memorymap.BootROMMemtop):
		m.boot.LoadBytes(loadAddr-memorymap.BootROMOrigin, img)
	default:
		return faults.New(faults.InvalidConfiguration, "machine: load address %#08x is outside SDRAM/IRAM/boot ROM", loadAddr)
	}
	return nil
}

// Tick runs exactly one orchestrator step: fetch/execute one CPU
// instruction, advance time-driven peripherals, drain queued input (spec
// §4.10, §5). Returns false if the CPU is halted and nothing executed.
func (m *Machine) Tick() bool {
	ok := m.CPU.Step()
	m.Timers.Tick()
	m.I2S.Tick()
	m.Input.Drain(m.ClickWheel)
	return ok
}

// Run drives Tick in a loop until instructions is exhausted or the CPU
// halts, whichever comes first. Used by scenario tests and any front-end
// that wants free-running execution without its own loop.
func (m *Machine) Run(instructions uint64) {
	for i := uint64(0); i < instructions; i++ {
		if !m.Tick() {
			return
		}
	}
}

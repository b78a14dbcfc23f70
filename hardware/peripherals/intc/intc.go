// This file is part of this software.

// Package intc implements the interrupt controller: the register file that
// couples peripheral-asserted interrupt lines to the CPU's IRQ/FIQ inputs
// (spec §4.3).
package intc

import "github.com/Davidslv/zigpod-sub010/internal/logger"

// Known interrupt IDs (spec §4.3). Others are reserved/unused by this
// model but the bit layout supports the full 0..31 range.
const (
	Timer1       = 0
	Timer2       = 1
	Mailbox      = 4
	I2S          = 10
	Serial0      = 12
	Serial1      = 13
	I2C          = 14
	IDE          = 23
	DMA          = 26
	HighPriority = 30
)

// Register offsets from the peripheral base (spec §4.3).
const (
	RegCPUIntStat    = 0x00
	RegIntStat       = 0x10
	RegIntForcedSet  = 0x18
	RegIntForcedClr  = 0x1C
	RegCPUIntEnStat  = 0x20
	RegCPUIntEn      = 0x24
	RegCPUIntDis     = 0x28
	RegCPUFIQEn      = 0x40
	RegHiIntStat     = 0x100
	RegHiIntEn       = 0x104
	RegHiIntClr      = 0x108
)

// Controller is the interrupt controller register file. Peripherals call
// Assert/Clear directly; the bus routes register-file reads/writes to the
// Read32/Write32 methods.
type Controller struct {
	rawPending uint32
	forced     uint32
	cpuEnable  uint32
	cpuFIQEn   uint32

	hiPending uint32
	hiEnable  uint32

	// protectedMask holds bits that CPU_INT_DIS must not clear, implementing
	// the "protect Timer1" workaround (spec §9): a host-side setup policy,
	// not a hardware register.
	protectedMask uint32
}

// New creates a controller with all enables clear (spec §3).
func New() *Controller {
	return &Controller{}
}

// ProtectBit adds id to the protected mask: CPU_INT_DIS writes will no
// longer be able to clear it. This is an emulator setup API (spec §9), not
// exercised by firmware.
func (c *Controller) ProtectBit(id uint) {
	c.protectedMask |= 1 << id
}

// Assert sets raw_pending[id]. Peripherals call this when they want to
// signal an interrupt condition.
func (c *Controller) Assert(id uint) {
	c.rawPending |= 1 << id
	logger.Logf("INTC", "assert id=%d raw=%#x", id, c.rawPending)
}

// Clear clears raw_pending[id].
func (c *Controller) Clear(id uint) {
	c.rawPending &^= 1 << id
}

func (c *Controller) effectivePending() uint32 {
	return (c.rawPending | c.forced) & c.cpuEnable
}

// IRQAsserted implements cpu.InterruptLines: everything in the effective
// pending set not masked into FIQ, plus the HighPriority bit if any
// high-priority source is pending-and-enabled.
func (c *Controller) IRQAsserted() bool {
	eff := c.effectivePending() &^ c.cpuFIQEn
	if c.hiPending&c.hiEnable != 0 {
		eff |= 1 << HighPriority
	}
	return eff != 0
}

// FIQAsserted implements cpu.InterruptLines.
func (c *Controller) FIQAsserted() bool {
	return c.effectivePending()&c.cpuFIQEn != 0
}

// Read32 implements bus.Handler.
func (c *Controller) Read32(offset uint32) uint32 {
	switch offset {
	case RegCPUIntStat:
		eff := c.effectivePending() &^ c.cpuFIQEn
		if c.hiPending&c.hiEnable != 0 {
			eff |= 1 << HighPriority
		}
		return eff
	case RegIntStat:
		return c.rawPending | c.forced
	case RegCPUIntEnStat:
		return c.cpuEnable
	case RegCPUFIQEn:
		return c.cpuFIQEn
	case RegHiIntStat:
		return c.hiPending
	default:
		return 0
	}
}

// Write32 implements bus.Handler, dispatching to each register's access
// convention (spec §4.3: a mix of W1C, W1S, and plain R/W).
func (c *Controller) Write32(offset uint32, val uint32) {
	switch offset {
	case RegCPUIntStat:
		c.rawPending &^= val // W1C on raw
	case RegIntForcedSet:
		c.forced |= val
	case RegIntForcedClr:
		c.forced &^= val
	case RegCPUIntEn:
		c.cpuEnable |= val
	case RegCPUIntDis:
		c.cpuEnable &^= val &^ c.protectedMask
	case RegCPUFIQEn:
		c.cpuFIQEn = val
	case RegHiIntStat:
		c.hiPending &^= val
	case RegHiIntEn:
		c.hiEnable |= val
	case RegHiIntClr:
		c.hiEnable &^= val
	}
}

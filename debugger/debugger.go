// This file is part of this software.

// Package debugger implements the hook surface spec §6 exposes to a remote
// debugger front-end: register/memory access, single-step, breakpoints,
// halt/resume. It never interprets wire protocol bytes; that is explicitly
// out of scope (spec §1 Non-goals) and left to whatever transport a
// front-end layers on top.
package debugger

import (
	"github.com/Davidslv/zigpod-sub010/hardware/cpu"
	"github.com/Davidslv/zigpod-sub010/hardware/machine"
	"github.com/Davidslv/zigpod-sub010/internal/faults"
	"github.com/Davidslv/zigpod-sub010/internal/logger"
)

// MaxBreakpoints bounds concurrent breakpoints (spec §6: "at most 16
// concurrent").
const MaxBreakpoints = 16

// RegCPSR and RegSPSR are the register-number aliases the hook surface
// uses above the sixteen GPRs (spec §6: "16 for CPSR, 17 for SPSR").
const (
	RegCPSR = 16
	RegSPSR = 17
)

// Debugger wraps a Machine with the register/memory/breakpoint hook
// surface. It holds no state of its own beyond the breakpoint set; halt
// state lives on the CPU itself so a front-end and the orchestrator agree
// on whether the core is running.
type Debugger struct {
	m *machine.Machine

	breakpoints map[uint32]bool
}

// New attaches a Debugger to m.
func New(m *machine.Machine) *Debugger {
	return &Debugger{m: m, breakpoints: make(map[uint32]bool)}
}

// ReadRegister reads GPR n (0-15), CPSR (16) or SPSR (17). Reading SPSR in
// a mode without one (User, System) returns zero.
func (d *Debugger) ReadRegister(n uint32) uint32 {
	switch n {
	case RegCPSR:
		return uint32(d.m.CPU.CPSR())
	case RegSPSR:
		p, ok := d.m.CPU.SPSR()
		if !ok {
			return 0
		}
		return uint32(p)
	default:
		if n > 15 {
			return 0
		}
		return d.m.CPU.GPR(n)
	}
}

// WriteRegister writes GPR n, CPSR or SPSR. Writing SPSR in a mode without
// one is a no-op (delegated to CPU.SetSPSR).
func (d *Debugger) WriteRegister(n uint32, val uint32) {
	switch n {
	case RegCPSR:
		d.m.CPU.SetCPSR(cpu.PSR(val))
	case RegSPSR:
		d.m.CPU.SetSPSR(cpu.PSR(val))
	default:
		if n > 15 {
			return
		}
		d.m.CPU.SetGPR(n, val)
	}
}

// ReadByte reads one byte from the bus at addr (spec §6: "read/write memory
// byte at address").
func (d *Debugger) ReadByte(addr uint32) uint8 {
	return d.m.Bus.DebugRead(addr)
}

// WriteByte writes one byte to the bus at addr.
func (d *Debugger) WriteByte(addr uint32, val uint8) {
	d.m.Bus.DebugWrite(addr, val)
}

// SetBreakpoint installs a breakpoint at addr, failing once MaxBreakpoints
// is reached (spec §6: "at most 16 concurrent").
func (d *Debugger) SetBreakpoint(addr uint32) error {
	if d.breakpoints[addr] {
		return nil
	}
	if len(d.breakpoints) >= MaxBreakpoints {
		return faults.New(faults.BreakpointTableFull, "debugger: at most %d breakpoints may be active", MaxBreakpoints)
	}
	d.breakpoints[addr] = true
	return nil
}

// ClearBreakpoint removes a breakpoint at addr, if any.
func (d *Debugger) ClearBreakpoint(addr uint32) {
	delete(d.breakpoints, addr)
}

// AtBreakpoint reports whether the CPU's current PC has an active
// breakpoint (spec §2: "Breakpoints are checked before each fetch").
func (d *Debugger) AtBreakpoint() bool {
	return d.breakpoints[d.m.CPU.PC()]
}

// Halt stops the CPU.
func (d *Debugger) Halt() { d.m.CPU.Halt() }

// Resume clears a previous Halt.
func (d *Debugger) Resume() { d.m.CPU.Resume() }

// Halted reports whether the CPU is currently stopped.
func (d *Debugger) Halted() bool { return d.m.CPU.Halted() }

// StepInstruction resumes the CPU for exactly one instruction, then halts
// it again, implementing the hook surface's single-step operation without
// disturbing any breakpoint the orchestrator would otherwise have honored.
func (d *Debugger) StepInstruction() {
	wasHalted := d.m.CPU.Halted()
	d.m.CPU.Resume()
	if !d.m.Tick() {
		logger.Logf("debugger", "step requested but CPU did not execute")
	}
	if wasHalted {
		d.m.CPU.Halt()
	}
}

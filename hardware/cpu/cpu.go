// This file is part of this software.

// Package cpu implements an instruction-accurate interpreter for the
// ARM7TDMI core (ARMv4T profile: 32-bit ARM plus 16-bit Thumb) as used by
// the PP5020/PP5021C SoC. See spec §4.1 for the architectural contract
// this package implements.
package cpu

// InterruptLines is the CPU's view of the interrupt controller: whether
// the IRQ and FIQ inputs are currently asserted. The controller recomputes
// these after every instruction (spec §4.3); the CPU only samples them at
// instruction boundaries (spec §4.1).
type InterruptLines interface {
	IRQAsserted() bool
	FIQAsserted() bool
}

// CPU is the ARM7TDMI interpreter. It owns no peripheral state; it reads
// and writes everything through Memory and samples interrupt lines through
// InterruptLines.
type CPU struct {
	regs registerFile

	// pc is the address of the instruction about to be fetched. Unlike the
	// architectural r15, which always appears 8 (ARM) or 4 (Thumb) bytes
	// ahead to an executing instruction, pc here is kept "logical": reads of
	// r15 by an instruction add the pipeline offset on the fly (see
	// readReg), and writes to r15 set pc directly with no offset applied on
	// the next fetch (spec §9).
	pc uint32

	mem Memory
	irq InterruptLines

	// branched is set by any instruction that alters the flow of execution
	// (successful branch, PC write, exception entry). When it is set, Step()
	// leaves pc as the instruction handler left it; otherwise Step()
	// advances pc past the instruction just executed.
	branched bool

	// halted is true while the CPU is stopped by the debugger hook surface.
	halted bool

	// instructionCount is a free-running counter of instructions retired,
	// independent of cycles; read through InstructionCount by the CPU and
	// debugger tests.
	instructionCount uint64
}

// Config configures CPU reset behaviour (spec §6: "initial entry point").
type Config struct {
	ResetPC uint32
}

// New creates a CPU wired to mem for memory access and irq for interrupt
// sampling, reset per spec §3: "The CPU resets to ARM mode, Supervisor,
// both IRQ and FIQ masked, PC at the configured reset vector."
func New(mem Memory, irq InterruptLines, cfg Config) *CPU {
	c := &CPU{mem: mem, irq: irq}
	c.Reset(cfg.ResetPC)
	return c
}

// Reset restores the CPU to its power-on state with PC at resetPC.
func (c *CPU) Reset(resetPC uint32) {
	c.regs.reset()
	c.pc = resetPC
	c.branched = false
	c.halted = false
}

// pcOffset is the architectural pipeline offset: +8 in ARM state, +4 in
// Thumb state (spec §4.1, §9).
func (c *CPU) pcOffset() uint32 {
	if c.regs.cpsr.T() {
		return 4
	}
	return 8
}

func (c *CPU) instructionSize() uint32 {
	if c.regs.cpsr.T() {
		return 2
	}
	return 4
}

// readReg returns the value of register n as an executing instruction
// would observe it, applying the pipeline offset for r15.
func (c *CPU) readReg(n uint32) uint32 {
	if n == 15 {
		return c.pc + c.pcOffset()
	}
	return c.regs.r[n]
}

// writeReg sets register n. Writing r15 flushes the pipeline: pc is set
// directly to val (no offset), and the next fetch comes from there.
func (c *CPU) writeReg(n uint32, val uint32) {
	if n == 15 {
		c.pc = val
		c.branched = true
		return
	}
	c.regs.r[n] = val
}

// CPSR returns the current program status register.
func (c *CPU) CPSR() PSR { return c.regs.cpsr }

// SetCPSR installs a full CPSR value, performing the atomic bank swap if
// the mode field changed.
func (c *CPU) SetCPSR(p PSR) {
	if p.Mode() != c.regs.cpsr.Mode() {
		c.regs.switchMode(p.Mode())
	}
	c.regs.cpsr = p
}

// PC returns the logical program counter (the address of the next
// instruction to be fetched), i.e. without the pipeline offset. This is
// what the debugger hook surface and scenario tests reason about.
func (c *CPU) PC() uint32 { return c.pc }

// SetPC sets the logical program counter directly, used by the debugger
// hook surface and by firmware loading to set the initial entry point.
func (c *CPU) SetPC(addr uint32) { c.pc = addr }

// GPR reads general register n (0..15) exactly as the debugger hook
// surface exposes it: r15 here is the logical PC, not the pipeline-offset
// value an executing instruction would see.
func (c *CPU) GPR(n uint32) uint32 {
	if n == 15 {
		return c.pc
	}
	return c.regs.r[n]
}

// SetGPR writes general register n (0..15) from the debugger hook surface.
func (c *CPU) SetGPR(n uint32, val uint32) {
	if n == 15 {
		c.pc = val
		return
	}
	c.regs.r[n] = val
}

// SPSR returns the saved PSR of the current mode, and false if the current
// mode (User or System) has no SPSR.
func (c *CPU) SPSR() (PSR, bool) {
	if !c.regs.mode().hasSPSR() {
		return 0, false
	}
	return *c.regs.spsrForCurrentMode(), true
}

// SetSPSR writes the SPSR of the current mode; it is a no-op in User/System
// mode.
func (c *CPU) SetSPSR(p PSR) {
	if !c.regs.mode().hasSPSR() {
		return
	}
	*c.regs.spsrForCurrentMode() = p
}

// Halted reports whether the debugger hook surface has stopped the CPU.
func (c *CPU) Halted() bool { return c.halted }

// Halt stops instruction execution until Resume is called.
func (c *CPU) Halt() { c.halted = true }

// Resume clears a previous Halt.
func (c *CPU) Resume() { c.halted = false }

// InstructionCount returns the number of instructions retired since reset.
func (c *CPU) InstructionCount() uint64 { return c.instructionCount }

// Step fetches, decodes and executes exactly one instruction, then samples
// the interrupt lines and takes an exception if one is pending and
// unmasked (spec §4.10: the orchestrator's per-instruction tick). It
// returns false if the CPU is halted and nothing was executed.
func (c *CPU) Step() bool {
	if c.halted {
		return false
	}

	c.branched = false
	fetchPC := c.pc

	if c.regs.cpsr.T() {
		opcode := uint16(c.mem.Read(fetchPC, Half))
		c.executeThumb(opcode)
	} else {
		opcode := c.mem.Read(fetchPC, Word)
		c.executeARM(opcode)
	}

	if !c.branched {
		c.pc = fetchPC + c.instructionSize()
	}

	c.instructionCount++

	c.sampleInterrupts()

	return true
}

// sampleInterrupts implements spec §4.1/§4.3: FIQ has priority over IRQ;
// each is taken only when its CPSR mask bit is clear and the controller's
// corresponding line is asserted.
func (c *CPU) sampleInterrupts() {
	if c.irq == nil {
		return
	}
	if !c.regs.cpsr.F() && c.irq.FIQAsserted() {
		c.enterException(excFIQ)
		return
	}
	if !c.regs.cpsr.I() && c.irq.IRQAsserted() {
		c.enterException(excIRQ)
	}
}

// This file is part of this software.

package cpu

// exception identifies one of the seven ARM exception types (spec §4.1).
type exception int

const (
	excReset exception = iota
	excUndefined
	excSWI
	excPrefetchAbort
	excDataAbort
	excIRQ
	excFIQ
)

type exceptionInfo struct {
	vector   uint32
	mode     Mode
	pcOffset uint32 // added to the return address saved in r14_mode
	setF     bool   // whether entry also sets CPSR.F
}

// excUndefined/excSWI carry no static pcOffset here: both are raised from
// inside executeARM/executeThumb, before Step() advances c.pc past the
// trapping instruction, so the offset needed to make the saved r14_mode
// point at the next instruction is that instruction's own width (4 for
// ARM, 2 for Thumb) — see enterException.
var exceptionTable = map[exception]exceptionInfo{
	excReset:         {vector: 0x00, mode: ModeSupervisor, pcOffset: 0, setF: true},
	excUndefined:     {vector: 0x04, mode: ModeUndefined, pcOffset: 0, setF: false},
	excSWI:           {vector: 0x08, mode: ModeSupervisor, pcOffset: 0, setF: false},
	excPrefetchAbort: {vector: 0x0C, mode: ModeAbort, pcOffset: 4, setF: false},
	excDataAbort:     {vector: 0x10, mode: ModeAbort, pcOffset: 8, setF: false},
	excIRQ:           {vector: 0x18, mode: ModeIRQ, pcOffset: 4, setF: false},
	excFIQ:           {vector: 0x1C, mode: ModeFIQ, pcOffset: 4, setF: true},
}

// enterException performs the fixed exception-entry sequence from spec
// §4.1: save the adjusted return address into the target mode's r14, copy
// CPSR into that mode's SPSR, switch mode, force ARM state, set I (and F
// for Reset/FIQ), then jump to the vector. Every step happens atomically
// from the interpreter loop's point of view — no instruction boundary is
// observable in the middle of it.
func (c *CPU) enterException(exc exception) {
	info := exceptionTable[exc]

	pcOffset := info.pcOffset
	if exc == excUndefined || exc == excSWI {
		// c.pc still equals the trapping instruction's own address at this
		// point (Step hasn't advanced it yet); the offset to land on the
		// next instruction is that instruction's width.
		pcOffset = c.instructionSize()
	}

	// the return address is the address of the instruction that WOULD be
	// fetched next (c.pc, which already reflects any branch just taken),
	// adjusted by the exception-specific offset named in spec §4.1's
	// vector table ("PC adjusted by the exception-specific offset").
	returnAddr := c.pc + pcOffset

	savedCPSR := c.regs.cpsr

	c.regs.switchMode(info.mode)
	c.regs.r[14] = returnAddr
	*c.regs.spsrForCurrentModeAfterSwitch(info.mode) = savedCPSR

	newCPSR := savedCPSR.withMode(info.mode).withT(false).withI(true)
	if info.setF {
		newCPSR = newCPSR.withF(true)
	}
	c.regs.cpsr = newCPSR

	c.pc = info.vector
	c.branched = true
}

// spsrForCurrentModeAfterSwitch is spsrForCurrentMode but takes the mode
// explicitly, for use during exception entry where regs.cpsr has not yet
// been updated to the new mode (switchMode only moves registers, it
// doesn't touch cpsr).
func (rf *registerFile) spsrForCurrentModeAfterSwitch(m Mode) *PSR {
	return &rf.spsr[bankIndex(m)]
}

// RaiseUndefined enters the Undefined Instruction exception. Called by the
// decoder when an opcode does not match any known encoding (spec §4.1,
// §7: "firmware bugs manifest as firmware behavior, never as host
// exceptions").
func (c *CPU) RaiseUndefined() { c.enterException(excUndefined) }

// RaiseSWI enters the Software Interrupt exception.
func (c *CPU) RaiseSWI() { c.enterException(excSWI) }

// RaisePrefetchAbort enters the Prefetch Abort exception.
func (c *CPU) RaisePrefetchAbort() { c.enterException(excPrefetchAbort) }

// RaiseDataAbort enters the Data Abort exception.
func (c *CPU) RaiseDataAbort() { c.enterException(excDataAbort) }

// This file is part of this software.

package cpu

// Mode is one of the seven ARM7TDMy processor modes, encoded exactly as
// the architecture encodes the low 5 bits of CPSR (spec §3).
type Mode uint32

const (
	ModeUser       Mode = 0b10000
	ModeFIQ        Mode = 0b10001
	ModeIRQ        Mode = 0b10010
	ModeSupervisor Mode = 0b10011
	ModeAbort      Mode = 0b10111
	ModeUndefined  Mode = 0b11011
	ModeSystem     Mode = 0b11111
)

func (m Mode) String() string {
	switch m {
	case ModeUser:
		return "USR"
	case ModeFIQ:
		return "FIQ"
	case ModeIRQ:
		return "IRQ"
	case ModeSupervisor:
		return "SVC"
	case ModeAbort:
		return "ABT"
	case ModeUndefined:
		return "UND"
	case ModeSystem:
		return "SYS"
	}
	return "???"
}

// hasSPSR reports whether mode has its own saved program status register.
// User and System modes run with interrupts/exceptions always disabled for
// entry purposes and never own an SPSR.
func (m Mode) hasSPSR() bool {
	return m != ModeUser && m != ModeSystem
}

// bankIndex maps a privileged mode to an index into the SPSR/r13/r14 bank
// arrays. User and System share the same (non-FIQ) r13/r14 bank, which is
// index 0.
func bankIndex(m Mode) int {
	switch m {
	case ModeFIQ:
		return 1
	case ModeIRQ:
		return 2
	case ModeSupervisor:
		return 3
	case ModeAbort:
		return 4
	case ModeUndefined:
		return 5
	default:
		return 0 // User, System
	}
}

const numBanks = 6

// PSR is a CPSR or SPSR value: condition flags, interrupt masks, the T
// (Thumb) state bit, and the mode field (spec §3).
type PSR uint32

const (
	psrN = 1 << 31
	psrZ = 1 << 30
	psrC = 1 << 29
	psrV = 1 << 28
	psrI = 1 << 7
	psrF = 1 << 6
	psrT = 1 << 5
	psrModeMask = 0x1F
)

func (p PSR) N() bool { return p&psrN != 0 }
func (p PSR) Z() bool { return p&psrZ != 0 }
func (p PSR) C() bool { return p&psrC != 0 }
func (p PSR) V() bool { return p&psrV != 0 }
func (p PSR) I() bool { return p&psrI != 0 }
func (p PSR) F() bool { return p&psrF != 0 }
func (p PSR) T() bool { return p&psrT != 0 }
func (p PSR) Mode() Mode { return Mode(uint32(p) & psrModeMask) }

func (p PSR) setFlag(mask uint32, v bool) PSR {
	if v {
		return p | PSR(mask)
	}
	return p &^ PSR(mask)
}

func (p PSR) withN(v bool) PSR { return p.setFlag(psrN, v) }
func (p PSR) withZ(v bool) PSR { return p.setFlag(psrZ, v) }
func (p PSR) withC(v bool) PSR { return p.setFlag(psrC, v) }
func (p PSR) withV(v bool) PSR { return p.setFlag(psrV, v) }
func (p PSR) withI(v bool) PSR { return p.setFlag(psrI, v) }
func (p PSR) withF(v bool) PSR { return p.setFlag(psrF, v) }
func (p PSR) withT(v bool) PSR { return p.setFlag(psrT, v) }

func (p PSR) withMode(m Mode) PSR {
	return PSR(uint32(p)&^psrModeMask) | PSR(m)
}

func (p PSR) NZCV() (n, z, c, v bool) {
	return p.N(), p.Z(), p.C(), p.V()
}

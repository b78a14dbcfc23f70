// This file is part of this software.

package cpu

// registerFile holds the sixteen general registers as currently visible
// (the "active" bank), plus the banked copies for every mode. Spec §9
// calls for exactly this shape: "represent all seven modes' banked
// registers as one array indexed by (mode, slot)... mode switches update
// an active-bank pointer".
type registerFile struct {
	r [16]uint32

	// bankedR13/bankedR14 are indexed by bankIndex(mode); User and System
	// share index 0.
	bankedR13 [numBanks]uint32
	bankedR14 [numBanks]uint32

	// bankedFIQ holds r8-r12 while in FIQ mode; bankedOther holds r8-r12
	// for every other mode (they share one copy, per the architecture).
	bankedFIQ   [5]uint32
	bankedOther [5]uint32

	// spsr is indexed by bankIndex(mode); User/System have none (index 0 is
	// unused/ignored for those modes).
	spsr [numBanks]PSR

	cpsr PSR
}

func (rf *registerFile) mode() Mode {
	return rf.cpsr.Mode()
}

// switchMode banks out r13/r14 (and r8-r12 for FIQ) of the current mode and
// banks in the target mode's copies. It does not touch CPSR itself; callers
// set rf.cpsr separately (see setMode / exception entry) so the mode bits
// and the register swap always happen together.
func (rf *registerFile) switchMode(newMode Mode) {
	oldMode := rf.mode()
	if oldMode == newMode {
		return
	}

	oldBank := bankIndex(oldMode)
	rf.bankedR13[oldBank] = rf.r[13]
	rf.bankedR14[oldBank] = rf.r[14]
	if oldMode == ModeFIQ {
		copy(rf.bankedFIQ[:], rf.r[8:13])
	} else {
		copy(rf.bankedOther[:], rf.r[8:13])
	}

	newBank := bankIndex(newMode)
	rf.r[13] = rf.bankedR13[newBank]
	rf.r[14] = rf.bankedR14[newBank]
	if newMode == ModeFIQ {
		copy(rf.r[8:13], rf.bankedFIQ[:])
	} else {
		copy(rf.r[8:13], rf.bankedOther[:])
	}
}

// setMode performs the atomic "swap banked register set" required whenever
// CPSR's mode field changes, whether from a data-processing write to CPSR,
// an MSR-equivalent, or exception entry/return.
func (rf *registerFile) setMode(newMode Mode) {
	rf.switchMode(newMode)
	rf.cpsr = rf.cpsr.withMode(newMode)
}

// spsrForCurrentMode returns a pointer to the SPSR of the active mode. In
// User or System mode, where no SPSR exists, it returns the unused index-0
// slot; callers guard with cpsr.Mode().hasSPSR() first.
func (rf *registerFile) spsrForCurrentMode() *PSR {
	return &rf.spsr[bankIndex(rf.mode())]
}

func (rf *registerFile) reset() {
	*rf = registerFile{}
	rf.cpsr = PSR(ModeSupervisor).withI(true).withF(true)
}

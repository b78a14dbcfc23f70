// This file is part of this software.

// Package faults implements the curated-error convention used by host-setup
// and debugger-protocol code paths.
//
// Firmware-visible faults (undefined instruction, SWI, data/prefetch abort,
// unaligned access under a strict policy) are deliberately NOT represented
// here: those are delivered through the CPU's exception-entry path and never
// surface as a Go error. Peripheral-internal faults (e.g. an out-of-range
// ATA LBA) are surfaced through device register state (the ERR bit), not by
// returning an error from the bus. Only host-setup failures and debugger
// protocol errors use this package.
package faults

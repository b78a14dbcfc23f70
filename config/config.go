// This file is part of this software.

// Package config defines the startup configuration accepted by the
// emulator core (spec §6: "SDRAM size, initial entry point, whether to
// install a 'protect timer1' policy, initial keypad state") and wires it
// through the typed preferences layer so a front-end can persist and
// reload a user's choices.
package config

import (
	"fmt"

	"github.com/Davidslv/zigpod-sub010/hardware/memory/memorymap"
	"github.com/Davidslv/zigpod-sub010/internal/faults"
	"github.com/Davidslv/zigpod-sub010/internal/prefs"
)

// Config is the full set of startup knobs for one Machine instance.
type Config struct {
	// SDRAMBytes is 32 or 64 MiB (spec §4.2).
	SDRAMBytes uint32
	// EntryPC is the CPU's reset program counter.
	EntryPC uint32
	// ProtectTimer1 installs the "protect Timer1" interrupt-controller
	// workaround described in spec §9.
	ProtectTimer1 bool
	// InitialKeypad seeds the click wheel/button state before firmware has
	// produced its own.
	InitialKeypad uint32
	// AudioSampleRate is the I2S peripheral's steady production rate in Hz
	// (spec §6: "44.1 kHz (configurable)").
	AudioSampleRate int
	// DiskPath is the backing file for the ATA disk image; empty means a
	// scratch image in a temporary file.
	DiskPath string
	// BootROMPath is the optional boot ROM image; empty means the boot ROM
	// region reads as zero (spec §4.2).
	BootROMPath string
}

// Default returns the configuration this emulator boots with absent any
// persisted preferences: 32 MiB SDRAM, entry point at the start of IRAM
// (the common bare-metal/Rockbox bootstrap target), Timer1 protected,
// 44.1kHz audio.
func Default() Config {
	return Config{
		SDRAMBytes:      memorymap.SDRAM32MiB,
		EntryPC:         memorymap.IRAMOrigin,
		ProtectTimer1:   true,
		InitialKeypad:   0,
		AudioSampleRate: 44100,
	}
}

// Validate reports host-setup failures (spec §7) in the configuration
// before any hardware is constructed.
func (c Config) Validate() error {
	if c.SDRAMBytes != memorymap.SDRAM32MiB && c.SDRAMBytes != memorymap.SDRAM64MiB {
		return faults.New(faults.InvalidSDRAMSize, "config: SDRAM size must be 32 or 64 MiB, got %d", c.SDRAMBytes)
	}
	if c.AudioSampleRate <= 0 {
		return faults.New(faults.InvalidConfiguration, "config: audio sample rate must be positive, got %d", c.AudioSampleRate)
	}
	return nil
}

// Store associates a Config with a prefs.Disk so a front-end can persist
// and reload it across runs, mirroring the teacher's pattern of a
// preferences struct whose fields are all backed by prefs values.
type Store struct {
	disk *prefs.Disk

	sdramMiB      prefs.Int
	entryPC       prefs.Int
	protectTimer1 prefs.Bool
	initialKeypad prefs.Int
	sampleRate    prefs.Int
	diskPath      prefs.String
	bootROMPath   prefs.String
}

// NewStore registers every Config field as a named preference on disk.
// Values are left at Default() until Load is called.
func NewStore(disk *prefs.Disk) (*Store, error) {
	s := &Store{disk: disk}
	d := Default()

	s.sdramMiB.Set(int(d.SDRAMBytes / (1024 * 1024)))
	s.entryPC.Set(int(d.EntryPC))
	s.protectTimer1.Set(d.ProtectTimer1)
	s.initialKeypad.Set(int(d.InitialKeypad))
	s.sampleRate.Set(d.AudioSampleRate)
	s.diskPath.Set("")
	s.bootROMPath.Set("")

	adds := []error{
		s.disk.Add("sdram_mib", &s.sdramMiB),
		s.disk.Add("entry_pc", &s.entryPC),
		s.disk.Add("protect_timer1", &s.protectTimer1),
		s.disk.Add("initial_keypad", &s.initialKeypad),
		s.disk.Add("audio_sample_rate", &s.sampleRate),
		s.disk.Add("disk_path", &s.diskPath),
		s.disk.Add("boot_rom_path", &s.bootROMPath),
	}
	for _, err := range adds {
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return s, nil
}

// Config materializes the current preference values into a Config.
func (s *Store) Config() Config {
	return Config{
		SDRAMBytes:      uint32(s.sdramMiB.Get()) * 1024 * 1024,
		EntryPC:         uint32(s.entryPC.Get()),
		ProtectTimer1:   s.protectTimer1.Get(),
		InitialKeypad:   uint32(s.initialKeypad.Get()),
		AudioSampleRate: s.sampleRate.Get(),
		DiskPath:        s.diskPath.Get(),
		BootROMPath:     s.bootROMPath.Get(),
	}
}

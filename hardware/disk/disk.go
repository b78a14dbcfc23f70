// This file is part of this software.

// Package disk implements the flat sector-addressable backing store used
// by the ATA/IDE peripheral (spec §3, §6).
package disk

import (
	"fmt"
	"os"

	"github.com/Davidslv/zigpod-sub010/internal/faults"
)

// SectorSize is fixed, as specified (spec §6).
const SectorSize = 512

// Image is a flat array of fixed-size sectors, optionally backed by a host
// file opened at construction time.
type Image struct {
	file    *os.File
	sectors int64
}

// Open opens path as a disk image backing store. This is a host-setup
// operation (spec §7): failures are returned, never panics.
func Open(path string) (*Image, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, faults.New(faults.DiskImageCannotOpen, "disk: open %q: %v", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, faults.New(faults.DiskImageCannotOpen, "disk: stat %q: %v", path, err)
	}
	return &Image{file: f, sectors: info.Size() / SectorSize}, nil
}

// NewMemory creates a zero-filled scratch disk image of the given sector
// count, backed by a new temporary host file, useful for tests and for
// running without a caller-supplied image file.
func NewMemory(sectors int64) *Image {
	f, err := os.CreateTemp("", "zigpod-disk-*.img")
	if err != nil {
		panic(fmt.Sprintf("disk: creating scratch image: %v", err))
	}
	if err := f.Truncate(sectors * SectorSize); err != nil {
		panic(fmt.Sprintf("disk: sizing scratch image: %v", err))
	}
	return &Image{file: f, sectors: sectors}
}

// Sectors returns the total sector count.
func (img *Image) Sectors() int64 {
	return img.sectors
}

// ReadSector reads sector lba into buf, which must be at least SectorSize
// bytes. An out-of-range lba zero-fills buf and returns false, matching
// spec §4.10's "invalid disk LBA returns all-zero sector data" policy.
func (img *Image) ReadSector(lba int64, buf []byte) bool {
	for i := range buf[:SectorSize] {
		buf[i] = 0
	}
	if lba < 0 || lba >= img.sectors {
		return false
	}
	_, err := img.file.ReadAt(buf[:SectorSize], lba*SectorSize)
	return err == nil
}

// WriteSector commits buf (at least SectorSize bytes) to sector lba. An
// out-of-range lba is a no-op returning false.
func (img *Image) WriteSector(lba int64, buf []byte) bool {
	if lba < 0 || lba >= img.sectors {
		return false
	}
	_, err := img.file.WriteAt(buf[:SectorSize], lba*SectorSize)
	return err == nil
}

// Close releases the backing file.
func (img *Image) Close() error {
	return img.file.Close()
}

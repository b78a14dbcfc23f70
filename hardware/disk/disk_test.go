// This file is part of this software.

package disk

import (
	"bytes"
	"testing"
)

func TestSectorRoundTrip(t *testing.T) {
	img := NewMemory(16)
	defer img.Close()

	want := bytes.Repeat([]byte{0xAB}, SectorSize)
	if !img.WriteSector(3, want) {
		t.Fatal("WriteSector returned false for an in-range LBA")
	}

	got := make([]byte, SectorSize)
	if !img.ReadSector(3, got) {
		t.Fatal("ReadSector returned false for an in-range LBA")
	}
	if !bytes.Equal(got, want) {
		t.Error("round-tripped sector does not match what was written")
	}
}

func TestOutOfRangeLBAZeroFillsAndFails(t *testing.T) {
	img := NewMemory(4)
	defer img.Close()

	buf := bytes.Repeat([]byte{0xFF}, SectorSize)
	if img.ReadSector(99, buf) {
		t.Error("ReadSector on out-of-range LBA returned true, want false")
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %#x after out-of-range read, want 0", i, b)
		}
	}

	if img.WriteSector(-1, buf) {
		t.Error("WriteSector on negative LBA returned true, want false")
	}
}

func TestSectorsReportsCount(t *testing.T) {
	img := NewMemory(128)
	defer img.Close()
	if got := img.Sectors(); got != 128 {
		t.Errorf("Sectors() = %d, want 128", got)
	}
}

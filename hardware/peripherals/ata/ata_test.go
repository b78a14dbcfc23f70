// This file is part of this software.

package ata

import (
	"testing"

	"github.com/Davidslv/zigpod-sub010/hardware/disk"
	"github.com/Davidslv/zigpod-sub010/hardware/peripherals/intc"
)

func writeSector(t *testing.T, c *Controller, lba uint32, pattern uint16) {
	t.Helper()
	c.Write32(RegSectorCount, 1)
	c.Write32(RegLBALow, lba&0xFF)
	c.Write32(RegLBAMid, 0)
	c.Write32(RegLBAHigh, 0)
	c.Write32(RegDevice, 0)
	c.Write32(RegStatusCmd, cmdWriteSectors)

	for i := 0; i < 256; i++ {
		c.Write16(RegData, pattern+uint16(i))
	}
}

func readSector(t *testing.T, c *Controller, lba uint32) []uint16 {
	t.Helper()
	c.Write32(RegSectorCount, 1)
	c.Write32(RegLBALow, lba&0xFF)
	c.Write32(RegLBAMid, 0)
	c.Write32(RegLBAHigh, 0)
	c.Write32(RegDevice, 0)
	c.Write32(RegStatusCmd, cmdReadSectors)

	words := make([]uint16, 256)
	for i := range words {
		words[i] = c.Read16(RegData)
	}
	return words
}

func TestWriteThenReadSectorRoundTrip(t *testing.T) {
	img := disk.NewMemory(16)
	defer img.Close()
	ic := intc.New()
	c := New(img, ic)

	writeSector(t, c, 5, 0x1000)
	if c.status&statusERR != 0 {
		t.Fatal("ERR set after write sector")
	}

	got := readSector(t, c, 5)
	for i, w := range got {
		want := uint16(0x1000 + i)
		if w != want {
			t.Fatalf("word %d = %#x, want %#x", i, w, want)
		}
	}
}

func TestIdentifyReportsModelAndCapacity(t *testing.T) {
	img := disk.NewMemory(1000)
	defer img.Close()
	ic := intc.New()
	c := New(img, ic)

	c.Write32(RegStatusCmd, cmdIdentify)
	words := make([]uint16, 256)
	for i := range words {
		words[i] = c.Read16(RegData)
	}

	capacity := uint32(words[60]) | uint32(words[61])<<16
	if capacity != 1000 {
		t.Errorf("LBA28 capacity = %d, want 1000", capacity)
	}

	var model []byte
	for i := 27; i <= 46; i++ {
		model = append(model, byte(words[i]>>8), byte(words[i]))
	}
	if len(model) == 0 {
		t.Fatal("empty model string")
	}
}

func TestReadSectorCompletionClearsDRQAndAssertsIRQ(t *testing.T) {
	img := disk.NewMemory(16)
	defer img.Close()
	ic := intc.New()
	ic.Write32(intc.RegCPUIntEn, 1<<intc.IDE)
	c := New(img, ic)

	writeSector(t, c, 5, 0x2000)
	ic.Write32(intc.RegCPUIntStat, 1<<intc.IDE) // clear the write command's own completion interrupt

	c.Write32(RegSectorCount, 1)
	c.Write32(RegLBALow, 5)
	c.Write32(RegLBAMid, 0)
	c.Write32(RegLBAHigh, 0)
	c.Write32(RegDevice, 0)
	c.Write32(RegStatusCmd, cmdReadSectors)

	for i := 0; i < 255; i++ {
		c.Read16(RegData)
		if c.status&statusDRQ == 0 {
			t.Fatalf("DRQ cleared after word %d, want it to stay set until word 256", i)
		}
		if ic.IRQAsserted() {
			t.Fatalf("IDE interrupt asserted after word %d, before the transfer completed", i)
		}
	}

	// The 256th and final word of the sector.
	c.Read16(RegData)

	if c.status&statusDRQ != 0 {
		t.Error("DRQ still set after the full sector was read")
	}
	if !ic.IRQAsserted() {
		t.Error("IDE interrupt not asserted after the sector's final word was read")
	}
}

func TestMultiSectorReadAdvancesLBABetweenSectors(t *testing.T) {
	img := disk.NewMemory(16)
	defer img.Close()
	ic := intc.New()
	c := New(img, ic)

	writeSector(t, c, 5, 0x1000)
	writeSector(t, c, 6, 0x2000)

	c.Write32(RegSectorCount, 2)
	c.Write32(RegLBALow, 5)
	c.Write32(RegLBAMid, 0)
	c.Write32(RegLBAHigh, 0)
	c.Write32(RegDevice, 0)
	c.Write32(RegStatusCmd, cmdReadSectors)

	for i := 0; i < 256; i++ {
		if got, want := c.Read16(RegData), uint16(0x1000+i); got != want {
			t.Fatalf("sector 1 word %d = %#x, want %#x", i, got, want)
		}
	}
	if c.status&statusDRQ == 0 {
		t.Fatal("DRQ cleared between sectors of a multi-sector read")
	}
	for i := 0; i < 256; i++ {
		if got, want := c.Read16(RegData), uint16(0x2000+i); got != want {
			t.Fatalf("sector 2 word %d = %#x, want %#x", i, got, want)
		}
	}
	if c.status&statusDRQ != 0 {
		t.Error("DRQ still set after the final sector of a multi-sector read")
	}
}

func TestInvalidLBASetsErrorStatus(t *testing.T) {
	img := disk.NewMemory(4)
	defer img.Close()
	ic := intc.New()
	c := New(img, ic)

	c.Write32(RegSectorCount, 1)
	c.Write32(RegLBALow, 200)
	c.Write32(RegStatusCmd, cmdReadSectors)

	if c.status&statusERR == 0 {
		t.Error("out-of-range LBA read did not set ERR")
	}
}

// This file is part of this software.

package ata

import "github.com/Davidslv/zigpod-sub010/hardware/disk"

// fillIdentify writes a synthetic IDENTIFY DEVICE page into buf (spec
// §4.5): a model string, serial, firmware revision, LBA28/LBA48 capacity
// words, and the capability flags firmware checks before trusting 48-bit
// addressing.
func fillIdentify(buf []byte, img *disk.Image) {
	for i := range buf {
		buf[i] = 0
	}

	var sectors int64
	if img != nil {
		sectors = img.Sectors()
	}

	putWord := func(idx int, v uint16) {
		buf[idx*2] = byte(v)
		buf[idx*2+1] = byte(v >> 8)
	}

	// word 0: general configuration, bit 15 clear = ATA device, not removable.
	putWord(0, 0x0040)

	// words 10-19: serial number, ASCII, byte-swapped per-word as ATA requires.
	putSwappedString(buf, 10, 20, "ZP0010000000000000")
	// words 23-26: firmware revision.
	putSwappedString(buf, 23, 8, "1.00")
	// words 27-46: model number.
	putSwappedString(buf, 27, 40, "zigpod emulated disk")

	// word 49: capabilities — bit 9 = LBA supported.
	putWord(49, 1<<9)

	// words 60-61: total addressable sectors, LBA28.
	lba28 := sectors
	if lba28 > 0x0FFFFFFF {
		lba28 = 0x0FFFFFFF
	}
	putWord(60, uint16(lba28))
	putWord(61, uint16(lba28>>16))

	// word 83: command set supported — bit 10 = 48-bit LBA supported.
	putWord(83, 1<<10)
	// word 86: command set/feature enabled — mirror bit 10 to say it's active.
	putWord(86, 1<<10)

	// words 100-103: total addressable sectors, LBA48.
	putWord(100, uint16(sectors))
	putWord(101, uint16(sectors>>16))
	putWord(102, uint16(sectors>>32))
	putWord(103, uint16(sectors>>48))
}

// putSwappedString writes s left-justified and space-padded into byteLen
// bytes (byteLen/2 words) starting at word wordOffset, with each pair of
// bytes byte-swapped as
// ATA string fields require.
func putSwappedString(buf []byte, wordOffset, byteLen int, s string) {
	padded := make([]byte, byteLen)
	for i := range padded {
		padded[i] = ' '
	}
	copy(padded, s)
	for i := 0; i < byteLen; i += 2 {
		idx := wordOffset*2 + i
		if idx+1 >= len(buf) {
			break
		}
		buf[idx] = padded[i+1]
		buf[idx+1] = padded[i]
	}
}

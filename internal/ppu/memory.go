package ppu

import (
	"log"

	"gones/internal/cartridge"
)

// chrBus is the subset of cartridge.Mapper the PPU needs for pattern-table
// access.
type chrBus interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, value uint8)
}

// vram holds the PPU's own 16KiB address space (spec.md §3 "PPU memory"):
// pattern tables live on the cartridge, nametables are 2KiB of on-PPU RAM
// mirrored per the cartridge's mirroring mode, and palette RAM is 32 bytes
// with the background-color mirrors folded in.
type vram struct {
	chr       chrBus
	mirror    cartridge.Mirror
	nametable [0x800]uint8
	palette   [32]uint8

	logger *log.Logger
}

func newVRAM(chr chrBus, mirror cartridge.Mirror) *vram {
	v := &vram{chr: chr, mirror: mirror}
	return v
}

// nametableIndex folds a $2000-$2FFF address into the physical 2KiB
// nametable RAM per the cartridge's mirroring mode (spec.md §4.4).
func (v *vram) nametableIndex(addr uint16) uint16 {
	addr &= 0x0FFF
	table := (addr >> 10) & 0x03
	offset := addr & 0x03FF
	switch v.mirror {
	case cartridge.MirrorVertical:
		if table == 1 || table == 3 {
			return 0x400 + offset
		}
		return offset
	case cartridge.MirrorFourScreen:
		// Not supported (spec.md §4.4): fold into the 2KiB space anyway
		// rather than indexing out of bounds.
		return (uint16(table)%2)*0x400 + offset
	default: // horizontal
		if table >= 2 {
			return 0x400 + offset
		}
		return offset
	}
}

func (v *vram) paletteIndex(addr uint16) uint16 {
	idx := (addr - 0x3F00) & 0x1F
	if idx == 0x10 || idx == 0x14 || idx == 0x18 || idx == 0x1C {
		idx &= 0x0F
	}
	return idx
}

// Read reads the PPU's own address space. Address bit 14 is always
// forced to zero (spec.md §3): $4000+ wraps to $0000+.
func (v *vram) Read(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return v.chr.ReadCHR(addr)
	case addr < 0x3F00:
		return v.nametable[v.nametableIndex(addr)]
	default:
		return v.palette[v.paletteIndex(addr)]
	}
}

// Write writes the PPU's own address space. Writes to $3000-$3EFF are
// forbidden per spec.md §3 and silently dropped (IgnorableWarning, §7).
func (v *vram) Write(addr uint16, value uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		v.chr.WriteCHR(addr, value)
	case addr < 0x3000:
		v.nametable[v.nametableIndex(addr)] = value
	case addr < 0x3F00:
		// forbidden range, dropped
		if v.logger != nil {
			v.logger.Printf("ignored write to forbidden VRAM range $%04X", addr)
		}
	default:
		v.palette[v.paletteIndex(addr)] = value
	}
}

// Package ppu implements the NES Picture Processing Unit: the dot-accurate
// background/sprite raster and the scroll-register dance it shares with
// CPU writes, per spec.md §4.4.
package ppu

import (
	"log"

	"gones/internal/cartridge"
)

const (
	dotsPerScanline    = 341
	scanlinesPerFrame  = 262
	visibleScanlines   = 240
	postRenderScanline = 240
	vblankStartLine    = 241
	preRenderLine      = 261
)

// PPU emulates the NES's 2C02 picture processor.
type PPU struct {
	ctrl   uint8 // $2000
	mask   uint8 // $2001
	status uint8 // $2002 (bits 7 vblank, 6 sprite-0 hit, 5 sprite overflow)
	oamAddr uint8

	v uint16 // current VRAM address (15 bits)
	t uint16 // temporary/latched VRAM address (15 bits)
	x uint8  // fine X scroll (3 bits)
	w bool   // write toggle

	readBuffer uint8

	oam [256]uint8

	mem *vram

	scanline int
	dot      int
	oddFrame bool

	nmiPending bool
	nmiLine    bool // previous state of (status.vblank && ctrl.nmiEnable), for edge detection

	frameBuffer [256 * 240 * 3]uint8
	frameReady  bool

	secondaryOAM   [8]spriteSlot
	spriteCount    int
	sprite0OnLine  bool
}

type spriteSlot struct {
	y, tile, attr, x uint8
	index            int
}

// New creates a PPU wired to a cartridge's CHR memory and mirroring mode.
func New(chr chrBus, mirror cartridge.Mirror) *PPU {
	return &PPU{
		mem:      newVRAM(chr, mirror),
		scanline: preRenderLine,
	}
}

// Reset returns the PPU to its power-up state.
func (p *PPU) Reset() {
	chr, mirror, logger := p.mem.chr, p.mem.mirror, p.mem.logger
	mem := newVRAM(chr, mirror)
	mem.logger = logger
	*p = PPU{mem: mem, scanline: preRenderLine}
}

// SetLogger wires a debug-level logger for the PPU's own IgnorableWarning
// path (writes to the forbidden $3000-$3EFF VRAM range, spec.md §7/
// SPEC_FULL.md §4.4). A nil logger (the default) disables this logging.
func (p *PPU) SetLogger(logger *log.Logger) { p.mem.logger = logger }

func (p *PPU) backgroundEnabled() bool { return p.mask&0x08 != 0 }
func (p *PPU) spritesEnabled() bool    { return p.mask&0x10 != 0 }
func (p *PPU) renderingEnabled() bool  { return p.backgroundEnabled() || p.spritesEnabled() }

// ReadRegister handles a CPU read of one of $2000-$2007.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr & 0x2007 {
	case 0x2002:
		v := p.status
		p.status &^= 0x80
		p.w = false
		return v
	case 0x2004:
		return p.oam[p.oamAddr]
	case 0x2007:
		return p.readData()
	default:
		return 0 // write-only register: open bus (spec.md §7 IgnorableWarning)
	}
}

// WriteRegister handles a CPU write of one of $2000-$2007.
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	switch addr & 0x2007 {
	case 0x2000:
		p.ctrl = value
		p.t = (p.t &^ 0x0C00) | (uint16(value&0x03) << 10)
	case 0x2001:
		p.mask = value
	case 0x2002:
		// read-only, write dropped
	case 0x2003:
		p.oamAddr = value
	case 0x2004:
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case 0x2005:
		p.writeScroll(value)
	case 0x2006:
		p.writeAddr(value)
	case 0x2007:
		p.writeData(value)
	}
}

func (p *PPU) writeScroll(value uint8) {
	if !p.w {
		p.t = (p.t &^ 0x001F) | uint16(value>>3)
		p.x = value & 0x07
	} else {
		p.t = (p.t &^ 0x73E0) | (uint16(value&0x07) << 12) | (uint16(value&0xF8) << 2)
	}
	p.w = !p.w
}

func (p *PPU) writeAddr(value uint8) {
	if !p.w {
		p.t = (p.t & 0x00FF) | (uint16(value&0x3F) << 8) // bit 14 forced to zero (spec.md §3)
	} else {
		p.t = (p.t & 0xFF00) | uint16(value)
		p.v = p.t
	}
	p.w = !p.w
}

func (p *PPU) vramIncrement() uint16 {
	if p.ctrl&0x04 != 0 {
		return 32
	}
	return 1
}

func (p *PPU) readData() uint8 {
	addr := p.v & 0x3FFF
	var ret uint8
	if addr >= 0x3F00 {
		ret = p.mem.Read(addr)
		p.readBuffer = p.mem.Read(addr - 0x1000) // nametable mirror underneath palette, as real hardware buffers
	} else {
		ret = p.readBuffer
		p.readBuffer = p.mem.Read(addr)
	}
	p.v += p.vramIncrement()
	return ret
}

func (p *PPU) writeData(value uint8) {
	p.mem.Write(p.v&0x3FFF, value)
	p.v += p.vramIncrement()
}

// WriteOAMByte writes OAM directly, used by the Bus's OAM-DMA copy.
func (p *PPU) WriteOAMByte(offset uint8, value uint8) { p.oam[offset] = value }

// PollNMI reports and clears a pending rising-edge NMI.
func (p *PPU) PollNMI() bool {
	pending := p.nmiPending
	p.nmiPending = false
	return pending
}

// TakeFrame reports whether a new frame has completed since the last call,
// returning the frame buffer if so.
func (p *PPU) TakeFrame() ([]uint8, bool) {
	if !p.frameReady {
		return nil, false
	}
	p.frameReady = false
	return p.frameBuffer[:], true
}

// FrameRGB returns the current frame buffer without consuming the
// frame-ready signal (256*240*3 bytes, RGB8).
func (p *PPU) FrameRGB() []uint8 { return p.frameBuffer[:] }

// Scanline reports the current scanline (0-261), for tests and debug UIs.
func (p *PPU) Scanline() int { return p.scanline }

// Dot reports the current dot within the scanline (0-340).
func (p *PPU) Dot() int { return p.dot }

// Tick advances the PPU by one dot and then processes that dot, so
// Scanline and Dot report the dot most recently processed.
func (p *PPU) Tick() {
	p.dot++
	if p.dot >= dotsPerScanline {
		p.dot = 0
		p.scanline++
		if p.scanline >= scanlinesPerFrame {
			p.scanline = 0
			p.oddFrame = !p.oddFrame
		}
	}

	if p.scanline == 0 && p.dot == 0 && p.oddFrame && p.renderingEnabled() {
		p.dot = 1 // skip dot 0 of scanline 0 on odd frames while rendering
	}

	p.processDot()

	p.updateNMILine()
}

func (p *PPU) updateNMILine() {
	line := p.status&0x80 != 0 && p.ctrl&0x80 != 0
	if line && !p.nmiLine {
		p.nmiPending = true
	}
	p.nmiLine = line
}

func (p *PPU) processDot() {
	switch {
	case p.scanline == vblankStartLine && p.dot == 1:
		p.status |= 0x80
		p.frameReady = true
	case p.scanline == preRenderLine && p.dot == 1:
		p.status &^= 0xE0 // clear vblank, sprite-0 hit, sprite overflow
	}

	if p.scanline < visibleScanlines {
		if p.dot == 1 && p.spritesEnabled() {
			p.evaluateSprites()
		}
		if p.dot >= 1 && p.dot <= 256 {
			p.renderPixel(p.dot-1, p.scanline)
		}
	}

	if p.scanline < visibleScanlines || p.scanline == preRenderLine {
		p.updateScrollCounters()
	}
}

func (p *PPU) updateScrollCounters() {
	if !p.renderingEnabled() {
		return
	}
	if (p.dot >= 1 && p.dot <= 256 && p.dot%8 == 0) || (p.dot >= 328 && p.dot <= 336 && p.dot%8 == 0) {
		p.incrementCoarseX()
	}
	if p.dot == 256 {
		p.incrementCoarseY()
	}
	if p.dot == 257 {
		p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
	}
	if p.scanline == preRenderLine && p.dot >= 280 && p.dot <= 304 {
		p.v = (p.v &^ 0x7BE0) | (p.t & 0x7BE0)
	}
}

func (p *PPU) incrementCoarseX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementCoarseY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	coarseY := (p.v & 0x03E0) >> 5
	switch coarseY {
	case 29:
		coarseY = 0
		p.v ^= 0x0800
	case 31:
		coarseY = 0
	default:
		coarseY++
	}
	p.v = (p.v &^ 0x03E0) | (coarseY << 5)
}

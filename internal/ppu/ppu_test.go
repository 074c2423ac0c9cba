package ppu

import (
	"testing"

	"gones/internal/cartridge"
)

type fakeCHR struct{ mem [0x2000]uint8 }

func (f *fakeCHR) ReadCHR(addr uint16) uint8     { return f.mem[addr&0x1FFF] }
func (f *fakeCHR) WriteCHR(addr uint16, v uint8) { f.mem[addr&0x1FFF] = v }

func newTestPPU() *PPU {
	return New(&fakeCHR{}, cartridge.MirrorHorizontal)
}

func TestStatusReadClearsVBlankAndWriteToggle(t *testing.T) {
	p := newTestPPU()
	p.status = 0x80
	p.w = true
	got := p.ReadRegister(0x2002)
	if got&0x80 == 0 {
		t.Fatal("status read should report vblank bit before clearing it")
	}
	if p.status&0x80 != 0 {
		t.Error("reading $2002 should clear vblank")
	}
	if p.w {
		t.Error("reading $2002 should clear the write toggle")
	}
}

func TestAddrWritePairForcesBit14Zero(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(0x2006, 0x3F) // high byte, top bits masked to 0x3F
	p.WriteRegister(0x2006, 0xFF)
	if p.v&0x4000 != 0 {
		t.Errorf("v = %#x, bit 14 should always be zero", p.v)
	}
	if p.v != 0x3FFF {
		t.Errorf("v = %#x, want 0x3FFF", p.v)
	}
}

func TestScrollWritePairSetsCoarseAndFineX(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(0x2005, 0x7D) // coarse X = 15, fine X = 5
	if p.x != 5 {
		t.Errorf("fine X = %d, want 5", p.x)
	}
	if p.t&0x001F != 15 {
		t.Errorf("t coarse X = %d, want 15", p.t&0x001F)
	}
	p.WriteRegister(0x2005, 0x5E) // coarse Y = 11, fine Y = 6
	if (p.t>>12)&0x07 != 6 {
		t.Errorf("t fine Y = %d, want 6", (p.t>>12)&0x07)
	}
}

func TestVBlankSetAtScanline241Dot1WithNMI(t *testing.T) {
	p := newTestPPU()
	p.ctrl = 0x80 // NMI enable
	// advance to scanline 241, dot 1
	for p.scanline != vblankStartLine || p.dot != 1 {
		p.Tick()
	}
	if p.status&0x80 == 0 {
		t.Fatal("expected vblank flag set at scanline 241 dot 1")
	}
	if !p.PollNMI() {
		t.Error("expected NMI pending after vblank start with NMI enabled")
	}
}

func TestPreRenderClearsStatusFlags(t *testing.T) {
	p := newTestPPU()
	p.status = 0xE0
	for p.scanline != preRenderLine || p.dot != 1 {
		p.Tick()
	}
	if p.status&0xE0 != 0 {
		t.Errorf("status = %#x, want vblank/sprite0/overflow cleared", p.status)
	}
}

func TestVRAMIncrementRespectsControlBit2(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2000, 0x04) // vertical increment
	p.WriteRegister(0x2007, 0x11)
	if p.v != 0x2000+32 {
		t.Errorf("v = %#x, want %#x", p.v, 0x2000+32)
	}
}

func TestOAMDataReadWrite(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(0x2003, 0x05)
	p.WriteRegister(0x2004, 0x99)
	p.oamAddr = 0x05
	if got := p.ReadRegister(0x2004); got != 0x99 {
		t.Errorf("OAM[5] = %#x, want 0x99", got)
	}
}

func TestSpriteEvaluationDelaysOneScanline(t *testing.T) {
	p := newTestPPU()
	p.oam[0] = 10 // sprite Y=10
	p.oam[1] = 0
	p.oam[2] = 0
	p.oam[3] = 0

	p.scanline = 10
	p.evaluateSprites()
	if p.spriteCount != 0 {
		t.Errorf("spriteCount = %d at scanline 10, want 0 (sprite Y=10 first appears at scanline 11)", p.spriteCount)
	}

	p.scanline = 11
	p.evaluateSprites()
	if p.spriteCount != 1 {
		t.Errorf("spriteCount = %d at scanline 11, want 1", p.spriteCount)
	}
}

func TestSpritePixelUsesFirstRowOnScanlineAfterY(t *testing.T) {
	p := newTestPPU()
	p.mask = 0x1C // show background+sprites, no left-edge clipping
	p.mem.Write(0x0000, 0xFF)
	p.oam[0] = 20 // sprite Y=20
	p.oam[1] = 0  // tile 0, pattern table 0
	p.oam[2] = 0
	p.oam[3] = 5 // sprite X=5

	p.scanline = 21 // first visible row of a sprite with Y=20
	p.evaluateSprites()
	_, opaque, _, _ := p.spritePixel(5)
	if !opaque {
		t.Fatal("expected an opaque sprite pixel on the sprite's first rendered scanline (Y+1)")
	}
}

func TestFrameReadyAtVBlank(t *testing.T) {
	p := newTestPPU()
	for p.scanline != vblankStartLine || p.dot != 1 {
		p.Tick()
	}
	_, ok := p.TakeFrame()
	if !ok {
		t.Fatal("expected a frame to be ready at vblank start")
	}
	if _, ok := p.TakeFrame(); ok {
		t.Error("TakeFrame should not report ready twice without a new frame")
	}
}

package machine

import (
	"testing"

	"gones/internal/cartridge"
)

func buildNROM(prgPages, chrPages int, resetVector uint16) []uint8 {
	header := []uint8{'N', 'E', 'S', 0x1A, uint8(prgPages), uint8(chrPages), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]uint8, prgPages*16384)
	prg[len(prg)-4] = uint8(resetVector)
	prg[len(prg)-3] = uint8(resetVector >> 8)
	chr := make([]uint8, chrPages*8192)
	data := append(header, prg...)
	data = append(data, chr...)
	return data
}

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	data := buildNROM(2, 1, 0x8000)
	cart, err := cartridge.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, err := New(cart, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewResetsPCFromVector(t *testing.T) {
	m := newTestMachine(t)
	if m.CPU.PC != 0x8000 {
		t.Errorf("PC = %#x, want 0x8000", m.CPU.PC)
	}
}

func TestStepAdvancesPPUThreeTimesCPUCycles(t *testing.T) {
	m := newTestMachine(t)
	m.Bus.Write8(0x0000, 0xEA) // NOP, 2 cycles, in RAM (PRG-ROM writes are dropped)
	m.CPU.PC = 0x0000
	startScanline, startDot := m.PPU.Scanline(), m.PPU.Dot()
	m.Step()
	gotDots := dotsDelta(startScanline, startDot, m.PPU.Scanline(), m.PPU.Dot())
	if gotDots != 6 {
		t.Errorf("PPU advanced %d dots for a 2-cycle NOP, want 6", gotDots)
	}
}

func dotsDelta(sl0, d0, sl1, d1 int) int {
	return (sl1-sl0)*341 + (d1 - d0)
}

func TestUnsupportedMapperRejectedAtConstruction(t *testing.T) {
	header := []uint8{'N', 'E', 'S', 0x1A, 1, 1, 0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0} // mapper 1
	data := append(header, make([]uint8, 16384+8192)...)
	cart, err := cartridge.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := New(cart, nil); err == nil {
		t.Error("expected New to reject a cartridge with an unsupported mapper")
	}
}

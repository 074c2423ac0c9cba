package cpu

import "testing"

// flatBus is a minimal 64KiB RAM bus satisfying cpu.Bus for unit tests.
type flatBus struct {
	ram       [0x10000]uint8
	nmi, irq  bool
	tickCalls int
	cycles    int
}

func (b *flatBus) Read8(addr uint16) uint8          { return b.ram[addr] }
func (b *flatBus) Write8(addr uint16, v uint8)      { b.ram[addr] = v }
func (b *flatBus) Tick(cycles int)                  { b.tickCalls++; b.cycles += cycles }
func (b *flatBus) PollNMI() bool                    { v := b.nmi; b.nmi = false; return v }
func (b *flatBus) PollIRQ() bool                    { return b.irq }

func newTestCPU(program []uint8, at uint16) (*CPU, *flatBus) {
	bus := &flatBus{}
	copy(bus.ram[at:], program)
	bus.ram[resetVector] = uint8(at)
	bus.ram[resetVector+1] = uint8(at >> 8)
	c := New()
	c.Reset(bus)
	return c, bus
}

func TestLDAImmediateSetsAccumulatorAndFlags(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xA9, 0x00}, 0x8000)
	c.Step(bus)
	if c.A != 0 || !c.Z || c.N {
		t.Fatalf("A=%#x Z=%v N=%v, want A=0 Z=true N=false", c.A, c.Z, c.N)
	}
}

func TestINXWrapsAndSetsZero(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xE8}, 0x8000)
	c.X = 0xFF
	c.Step(bus)
	if c.X != 0 || !c.Z {
		t.Fatalf("X=%#x Z=%v, want X=0 Z=true", c.X, c.Z)
	}
}

func TestINXSetsNegative(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xE8}, 0x8000)
	c.X = 0x7F
	c.Step(bus)
	if c.X != 0x80 || !c.N {
		t.Fatalf("X=%#x N=%v, want X=0x80 N=true", c.X, c.N)
	}
}

func TestStoreThenLoadRoundTrip(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xA9, 0x42, 0x85, 0x10, 0xA5, 0x10}, 0x8000)
	c.Step(bus) // LDA #$42
	c.Step(bus) // STA $10
	c.Step(bus) // LDA $10
	if c.A != 0x42 {
		t.Fatalf("A=%#x, want 0x42", c.A)
	}
}

func TestIndirectJMPPageBoundaryBug(t *testing.T) {
	c, bus := newTestCPU([]uint8{0x6C, 0xFF, 0x02}, 0x8000)
	bus.ram[0x02FF] = 0x00
	bus.ram[0x0200] = 0x80 // bug: high byte from start of same page, not 0x0300
	bus.ram[0x0300] = 0xFF
	c.Step(bus)
	if c.PC != 0x8000 {
		t.Fatalf("PC=%#x, want 0x8000 (page-wrap bug)", c.PC)
	}
}

func TestPHPPLPRoundTripPreservesFlagsExceptBandUnused(t *testing.T) {
	c, bus := newTestCPU([]uint8{0x08, 0x28}, 0x8000)
	c.C, c.Z, c.V, c.N = true, false, true, true
	c.Step(bus) // PHP
	c.C, c.Z, c.V, c.N = false, true, false, false
	c.Step(bus) // PLP
	if !c.C || c.Z || !c.V || !c.N {
		t.Fatalf("flags after PLP = C=%v Z=%v V=%v N=%v, want true false true true", c.C, c.Z, c.V, c.N)
	}
}

func TestNMITakesTwoCyclesAndLoadsVector(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xEA}, 0x8000)
	bus.ram[nmiVector] = 0x00
	bus.ram[nmiVector+1] = 0x90
	bus.nmi = true
	cycles := c.Step(bus)
	if cycles != interruptServiceCycles {
		t.Errorf("cycles = %d, want %d", cycles, interruptServiceCycles)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC = %#x, want 0x9000", c.PC)
	}
	if !c.I {
		t.Error("interrupt-disable should be set after NMI service")
	}
}

func TestIRQIgnoredWhenInterruptDisableSet(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xEA}, 0x8000)
	c.I = true
	bus.irq = true
	c.Step(bus)
	if c.PC != 0x8001 {
		t.Errorf("PC = %#x, want 0x8001 (IRQ should be masked)", c.PC)
	}
}

func TestHaltOpcodeSticksTrap(t *testing.T) {
	c, bus := newTestCPU([]uint8{0x02, 0xA9, 0x01}, 0x8000)
	c.Step(bus)
	if !c.Halted {
		t.Fatal("expected Halted after executing a HLT-class opcode")
	}
	pcBefore := c.PC
	c.Step(bus)
	if c.PC != pcBefore {
		t.Error("a halted CPU must not advance PC on further Step calls")
	}
}

func TestPageCrossAddsCycleOnIndexedRead(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xBD, 0xFF, 0x00}, 0x8000) // LDA $00FF,X
	c.X = 1                                                  // crosses into page 1
	bus.ram[0x0100] = 0x55
	cycles := c.Step(bus)
	if cycles != 5 {
		t.Errorf("cycles = %d, want 5 (4 base + 1 page-cross)", cycles)
	}
	if c.A != 0x55 {
		t.Errorf("A = %#x, want 0x55", c.A)
	}
}

func TestANCSetsCarryFromBit7(t *testing.T) {
	c, bus := newTestCPU([]uint8{0x0B, 0x80}, 0x8000) // ANC #$80
	c.A = 0xFF
	c.Step(bus)
	if c.A != 0x80 || !c.C || !c.N {
		t.Fatalf("A=%#x C=%v N=%v, want A=0x80 C=true N=true", c.A, c.C, c.N)
	}
}

func TestALRAndsThenShiftsRight(t *testing.T) {
	c, bus := newTestCPU([]uint8{0x4B, 0x03}, 0x8000) // ALR #$03
	c.A = 0x03
	c.Step(bus)
	if c.A != 0x01 || !c.C {
		t.Fatalf("A=%#x C=%v, want A=0x01 C=true (bit0 of 0x03 into carry)", c.A, c.C)
	}
}

func TestLASMasksOperandWithStackPointer(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xBB, 0x00, 0x01}, 0x8000) // LAS $0100,Y
	c.Y = 0
	c.SP = 0x0F
	bus.ram[0x0100] = 0xFF
	c.Step(bus)
	if c.A != 0x0F || c.X != 0x0F || c.SP != 0x0F {
		t.Fatalf("A=%#x X=%#x SP=%#x, want all 0x0f", c.A, c.X, c.SP)
	}
}

func TestSHXStoresXMaskedWithAddressHighPlusOne(t *testing.T) {
	c, bus := newTestCPU([]uint8{0x9E, 0x00, 0x04}, 0x8000) // SHX $0400,Y
	c.X = 0xFF
	c.Y = 0x00
	c.Step(bus)
	if got := bus.ram[0x0400]; got != 0x05 {
		t.Errorf("mem[0x0400] = %#x, want 0x05 (X & (0x04+1))", got)
	}
}

func TestUnstableOpcodesAreNotRegisteredAsTraps(t *testing.T) {
	for _, op := range []uint8{0x0B, 0x2B, 0x4B, 0x6B, 0x8B, 0x9B, 0x9C, 0x9E, 0x9F, 0x93, 0xAB, 0xBB} {
		c := New()
		if c.instructions[op] == nil {
			t.Errorf("opcode %#x has no table entry and would Trap", op)
		}
	}
}

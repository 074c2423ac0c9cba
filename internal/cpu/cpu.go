// Package cpu implements the 6502-family CPU used by the console core:
// a 256-entry opcode decode table covering the official instruction set
// plus the documented illegal opcodes.
package cpu

// AddressingMode identifies how an instruction's operand address is formed.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

const (
	stackBase = 0x0100

	nFlagMask  = 0x80
	vFlagMask  = 0x40
	unusedMask = 0x20
	bFlagMask  = 0x10
	dFlagMask  = 0x08
	iFlagMask  = 0x04
	zFlagMask  = 0x02
	cFlagMask  = 0x01

	zeroPageMask = 0xFF
	pageMask     = 0xFF00

	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE

	// interruptServiceCycles is the cycle cost charged for NMI/IRQ service
	// (spec's core model, not the 7-cycle figure of real silicon).
	interruptServiceCycles = 2
)

// Instruction is one entry of the opcode decode table.
type Instruction struct {
	Name   string
	Opcode uint8
	Bytes  uint8
	Cycles uint8
	Mode   AddressingMode
}

// Bus is everything the CPU needs from its bus: memory access, the
// cross-component clock, and the two polled interrupt lines.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, value uint8)
	Tick(cpuCycles int)
	PollNMI() bool
	PollIRQ() bool
}

// CPU is the 6502-family register file and decode engine.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16

	C bool // Carry
	Z bool // Zero
	I bool // Interrupt disable
	D bool // Decimal (accepted, no arithmetic effect)
	B bool // Break
	V bool // Overflow
	N bool // Negative

	cycles uint64

	instructions [256]*Instruction

	// Halted is set by a Trap condition (an unusable opcode); the CPU
	// refuses to step further once true.
	Halted bool
}

// Cycles reports the total CPU cycles executed since construction or reset.
func (cpu *CPU) Cycles() uint64 { return cpu.cycles }

// New creates a CPU with its opcode table populated. The register file
// starts zeroed apart from SP (0xFD); call Reset to bring it to power-up
// state against a bus.
func New() *CPU {
	cpu := &CPU{SP: 0xFD}
	cpu.initInstructions()
	return cpu
}

// Reset performs the 6502 reset sequence: registers to power-up values,
// PC loaded from the reset vector.
func (cpu *CPU) Reset(bus Bus) {
	cpu.A, cpu.X, cpu.Y = 0, 0, 0
	cpu.SP = 0xFD
	cpu.C, cpu.Z, cpu.D, cpu.V, cpu.N = false, false, false, false, false
	cpu.I = true
	cpu.B = true
	cpu.Halted = false
	cpu.cycles = 0

	low := uint16(bus.Read8(resetVector))
	high := uint16(bus.Read8(resetVector + 1))
	cpu.PC = (high << 8) | low
}

// Step services any pending interrupt, then executes one instruction,
// reports its cycle cost to the bus, and returns that cost.
func (cpu *CPU) Step(bus Bus) uint8 {
	if cpu.Halted {
		return 0
	}

	if bus.PollNMI() {
		cpu.serviceInterrupt(bus, nmiVector)
		cpu.cycles += interruptServiceCycles
		bus.Tick(interruptServiceCycles)
		return interruptServiceCycles
	}
	if bus.PollIRQ() && !cpu.I {
		cpu.serviceInterrupt(bus, irqVector)
		cpu.cycles += interruptServiceCycles
		bus.Tick(interruptServiceCycles)
		return interruptServiceCycles
	}

	opcode := bus.Read8(cpu.PC)
	instruction := cpu.instructions[opcode]

	if instruction == nil || isHaltOpcode(opcode) {
		cpu.Halted = true
		cpu.cycles += 2
		bus.Tick(2)
		return 2
	}

	address, pageCrossed := cpu.operandAddress(bus, instruction.Mode)
	extraCycles := cpu.execute(bus, opcode, address, pageCrossed)

	if pageCrossed {
		extraCycles += pageCrossPenalty(opcode)
	}

	total := instruction.Cycles + extraCycles
	cpu.cycles += uint64(total)
	bus.Tick(int(total))
	return total
}

// serviceInterrupt pushes PC and status (break cleared, unused set),
// sets the interrupt-disable flag, and loads PC from the given vector.
func (cpu *CPU) serviceInterrupt(bus Bus, vector uint16) {
	cpu.pushWord(bus, cpu.PC)
	status := (cpu.statusByte() &^ bFlagMask) | unusedMask
	cpu.push(bus, status)
	cpu.I = true
	low := uint16(bus.Read8(vector))
	high := uint16(bus.Read8(vector + 1))
	cpu.PC = (high << 8) | low
}

func pageCrossPenalty(opcode uint8) uint8 {
	switch opcode {
	case 0x9D, 0x99, 0x91: // store instructions: no penalty (write always costs the extra cycle already)
		return 0
	case 0xBD, 0xB9, 0xB1, 0xBE, 0xBC, 0x7D, 0x79, 0x71, 0x3D, 0x39, 0x31, 0x1D, 0x19, 0x11, 0x5D, 0x59, 0x51, 0xDD, 0xD9, 0xD1:
		return 1
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return 1
	case 0xBF, 0xB3, 0xD3, 0xD7, 0xDF, 0xF3, 0xF7, 0xFF, 0x13, 0x17, 0x1F, 0x33, 0x37, 0x3F, 0x53, 0x57, 0x5F, 0x73, 0x77, 0x7F:
		return 1
	case 0xBB: // LAS
		return 1
	default:
		return 0
	}
}

func isHaltOpcode(opcode uint8) bool {
	switch opcode {
	case 0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2:
		return true
	default:
		return false
	}
}

// operandAddress returns the effective address for the given addressing
// mode, advancing PC past the instruction's operand bytes, and reports
// whether an indexed access crossed a page boundary.
func (cpu *CPU) operandAddress(bus Bus, mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		cpu.PC++
		return 0, false

	case Immediate:
		addr := cpu.PC + 1
		cpu.PC += 2
		return addr, false

	case ZeroPage:
		addr := uint16(bus.Read8(cpu.PC + 1))
		cpu.PC += 2
		return addr, false

	case ZeroPageX:
		base := bus.Read8(cpu.PC + 1)
		addr := uint16((base + cpu.X) & zeroPageMask)
		cpu.PC += 2
		return addr, false

	case ZeroPageY:
		base := bus.Read8(cpu.PC + 1)
		addr := uint16((base + cpu.Y) & zeroPageMask)
		cpu.PC += 2
		return addr, false

	case Relative:
		offset := int8(bus.Read8(cpu.PC + 1))
		oldPC := cpu.PC + 2
		newPC := uint16(int32(oldPC) + int32(offset))
		cpu.PC = oldPC
		return newPC, (oldPC & pageMask) != (newPC & pageMask)

	case Absolute:
		low := uint16(bus.Read8(cpu.PC + 1))
		high := uint16(bus.Read8(cpu.PC + 2))
		cpu.PC += 3
		return (high << 8) | low, false

	case AbsoluteX:
		low := uint16(bus.Read8(cpu.PC + 1))
		high := uint16(bus.Read8(cpu.PC + 2))
		base := (high << 8) | low
		addr := base + uint16(cpu.X)
		cpu.PC += 3
		return addr, (base & pageMask) != (addr & pageMask)

	case AbsoluteY:
		low := uint16(bus.Read8(cpu.PC + 1))
		high := uint16(bus.Read8(cpu.PC + 2))
		base := (high << 8) | low
		addr := base + uint16(cpu.Y)
		cpu.PC += 3
		return addr, (base & pageMask) != (addr & pageMask)

	case Indirect: // JMP only, carries the page-boundary fetch bug
		lowPtr := uint16(bus.Read8(cpu.PC + 1))
		highPtr := uint16(bus.Read8(cpu.PC + 2))
		ptr := (highPtr << 8) | lowPtr
		var addr uint16
		if ptr&zeroPageMask == zeroPageMask {
			low := uint16(bus.Read8(ptr))
			high := uint16(bus.Read8(ptr & pageMask))
			addr = (high << 8) | low
		} else {
			low := uint16(bus.Read8(ptr))
			high := uint16(bus.Read8(ptr + 1))
			addr = (high << 8) | low
		}
		cpu.PC += 3
		return addr, false

	case IndexedIndirect:
		base := bus.Read8(cpu.PC + 1)
		ptr := (base + cpu.X) & zeroPageMask
		low := uint16(bus.Read8(uint16(ptr)))
		high := uint16(bus.Read8(uint16((ptr + 1) & zeroPageMask)))
		cpu.PC += 2
		return (high << 8) | low, false

	case IndirectIndexed:
		ptr := uint16(bus.Read8(cpu.PC + 1))
		low := uint16(bus.Read8(ptr))
		high := uint16(bus.Read8((ptr + 1) & zeroPageMask))
		base := (high << 8) | low
		addr := base + uint16(cpu.Y)
		cpu.PC += 2
		return addr, (base & pageMask) != (addr & pageMask)

	default:
		return 0, false
	}
}

func (cpu *CPU) push(bus Bus, value uint8) {
	bus.Write8(stackBase+uint16(cpu.SP), value)
	cpu.SP--
}

func (cpu *CPU) pop(bus Bus) uint8 {
	cpu.SP++
	return bus.Read8(stackBase + uint16(cpu.SP))
}

func (cpu *CPU) pushWord(bus Bus, value uint16) {
	cpu.push(bus, uint8(value>>8))
	cpu.push(bus, uint8(value&0xFF))
}

func (cpu *CPU) popWord(bus Bus) uint16 {
	low := uint16(cpu.pop(bus))
	high := uint16(cpu.pop(bus))
	return (high << 8) | low
}

func (cpu *CPU) setZN(value uint8) {
	cpu.Z = value == 0
	cpu.N = value&nFlagMask != 0
}

// statusByte packs the flags into the conventional NV-BDIZC layout.
func (cpu *CPU) statusByte() uint8 {
	var s uint8
	if cpu.N {
		s |= nFlagMask
	}
	if cpu.V {
		s |= vFlagMask
	}
	s |= unusedMask
	if cpu.B {
		s |= bFlagMask
	}
	if cpu.D {
		s |= dFlagMask
	}
	if cpu.I {
		s |= iFlagMask
	}
	if cpu.Z {
		s |= zFlagMask
	}
	if cpu.C {
		s |= cFlagMask
	}
	return s
}

// StatusByte exposes the packed status register (used by tests and by
// PHP's operand).
func (cpu *CPU) StatusByte() uint8 { return cpu.statusByte() }

func (cpu *CPU) setStatusByte(status uint8) {
	cpu.N = status&nFlagMask != 0
	cpu.V = status&vFlagMask != 0
	cpu.B = status&bFlagMask != 0
	cpu.D = status&dFlagMask != 0
	cpu.I = status&iFlagMask != 0
	cpu.Z = status&zFlagMask != 0
	cpu.C = status&cFlagMask != 0
}

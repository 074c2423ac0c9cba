// Package bus implements the shared address space connecting the CPU to
// RAM, the cartridge, the PPU's register ports, the APU's register ports,
// and the controller ports, plus the cross-component clocking and
// OAM-DMA stall contract that ties them together (spec.md §4.2).
package bus

import (
	"log"

	"gones/internal/cartridge"
)

// ppuPorts is the subset of the PPU the Bus needs: register access and
// the direct OAM write used by OAM-DMA.
type ppuPorts interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, value uint8)
	WriteOAMByte(offset uint8, value uint8)
	Tick()
	PollNMI() bool
}

// apuPorts is the subset of the APU the Bus needs.
type apuPorts interface {
	WriteRegister(addr uint16, value uint8)
	ReadStatus() uint8
	Step()
	TakeSamples() []float32
	PollIRQ() bool
}

// controllerPort is the subset of a controller the Bus needs.
type controllerPort interface {
	WriteStrobe(value uint8)
	Read() uint8
}

// Bus owns CPU-visible RAM and routes reads/writes across the cartridge,
// PPU registers, APU registers, and controller ports. It does not own the
// CPU: per spec.md's redesign note, a sibling Machine drives both.
type Bus struct {
	ram [0x0800]uint8

	cart *cartridge.Cartridge
	ppu  ppuPorts
	apu  apuPorts
	pad1 controllerPort

	dmaCyclesRemaining int
	cpuCycleParity     uint8

	logger *log.Logger
}

// New creates a Bus wired to the given components. There are no setters
// for ppu/apu/pad1, so all of them must be non-nil here.
func New(cart *cartridge.Cartridge, ppu ppuPorts, apu apuPorts, pad1 controllerPort) *Bus {
	return &Bus{cart: cart, ppu: ppu, apu: apu, pad1: pad1}
}

// SetLogger wires a debug-level logger for the Bus's IgnorableWarning
// paths (spec.md §7, SPEC_FULL.md §4.2): PRG-ROM write attempts and
// write-only APU register reads. A nil logger (the default) disables
// this logging entirely rather than writing to a discard sink.
func (b *Bus) SetLogger(logger *log.Logger) { b.logger = logger }

func (b *Bus) logIgnorable(format string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}

// Read8 reads one byte of CPU address space (spec.md §3 memory map).
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		return b.ppu.ReadRegister(0x2000 + addr&0x0007)
	case addr == 0x4015:
		return b.apu.ReadStatus()
	case addr == 0x4016:
		return b.pad1.Read()
	case addr < 0x4018:
		// $4017 (no second controller, spec.md §1 non-goal) and write-only
		// APU registers read as open-bus.
		b.logIgnorable("open-bus read from write-only register $%04X", addr)
		return 0
	case addr >= 0x6000:
		return b.cart.ReadPRG(addr)
	default:
		return 0
	}
}

// Write8 writes one byte of CPU address space.
func (b *Bus) Write8(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = value
	case addr < 0x4000:
		b.ppu.WriteRegister(0x2000+addr&0x0007, value)
	case addr == 0x4014:
		b.startOAMDMA(value)
	case addr == 0x4016:
		b.pad1.WriteStrobe(value)
	case addr < 0x4018:
		b.apu.WriteRegister(addr, value) // includes $4017 frame-counter write
	case addr >= 0x8000:
		b.logIgnorable("ignored write to PRG-ROM at $%04X", addr)
		b.cart.WritePRG(addr, value)
	case addr >= 0x6000:
		b.cart.WritePRG(addr, value)
	}
}

// startOAMDMA performs the 256-byte copy from CPU address space into PPU
// OAM and schedules the CPU stall (spec.md §4.2 OAM-DMA stall contract).
func (b *Bus) startOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(uint8(i), b.Read8(base+uint16(i)))
	}
	if b.cpuCycleParity%2 == 1 {
		b.dmaCyclesRemaining += 514
	} else {
		b.dmaCyclesRemaining += 513
	}
}

// Tick advances the PPU by 3*cpuCycles dots and the APU by cpuCycles
// (spec.md §4.2 cross-component clocking). Audio resampling happens inside
// apu.Step itself, not here.
func (b *Bus) Tick(cpuCycles int) {
	for i := 0; i < cpuCycles; i++ {
		b.ppu.Tick()
		b.ppu.Tick()
		b.ppu.Tick()
		b.apu.Step()
		b.cpuCycleParity++
	}
	if b.dmaCyclesRemaining > 0 {
		b.dmaCyclesRemaining -= cpuCycles
		if b.dmaCyclesRemaining < 0 {
			b.dmaCyclesRemaining = 0
		}
	}
}

// PollNMI reports a pending NMI from the PPU.
func (b *Bus) PollNMI() bool { return b.ppu.PollNMI() }

// PollIRQ reports a pending IRQ from the APU.
func (b *Bus) PollIRQ() bool { return b.apu.PollIRQ() }

// TakeAudioSamples drains the APU's sample buffer.
func (b *Bus) TakeAudioSamples() []float32 { return b.apu.TakeSamples() }

// DMAStallCycles reports how many additional CPU cycles the Machine
// should charge for an in-progress OAM-DMA transfer.
func (b *Bus) DMAStallCycles() int { return b.dmaCyclesRemaining }

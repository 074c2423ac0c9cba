// Package machine assembles the CPU, Bus, PPU, APU, cartridge, and
// controllers into the top-level synchronous emulation loop described in
// spec.md §9: a single struct owning its components as siblings, with no
// back-pointers between them.
package machine

import (
	"gones/internal/apu"
	"gones/internal/bus"
	"gones/internal/cartridge"
	"gones/internal/controller"
	"gones/internal/cpu"
	"gones/internal/ppu"
)

// Presenter receives a completed frame buffer at the PPU's NMI
// rising-edge (spec.md §6 frame callback). Emulated time is not charged
// to this call.
type Presenter interface {
	Present(frame []uint8)
}

// Machine is the top-level emulation: CPU register file, Bus, PPU, APU,
// and controllers as siblings, stepped one CPU instruction at a time.
type Machine struct {
	CPU         *cpu.CPU
	Bus         *bus.Bus
	PPU         *ppu.PPU
	APU         *apu.APU
	Controller1 *controller.Controller

	cart *cartridge.Cartridge

	present    Presenter
	frameCount uint64
}

// New constructs a Machine from a parsed cartridge. Returns an error if
// the cartridge's mapper is unsupported (spec.md §4.1).
func New(cart *cartridge.Cartridge, present Presenter) (*Machine, error) {
	if _, err := cart.Mapper(); err != nil {
		return nil, err
	}

	p := ppu.New(cart, cart.Mirror)
	a := apu.New()
	pad1 := controller.New()
	b := bus.New(cart, p, a, pad1)
	a.AttachBus(b)

	m := &Machine{
		CPU:         cpu.New(),
		Bus:         b,
		PPU:         p,
		APU:         a,
		Controller1: pad1,
		cart:        cart,
		present:     present,
	}
	m.Reset()
	return m, nil
}

// Reset brings the CPU to its power-up state against the Bus.
func (m *Machine) Reset() {
	m.CPU.Reset(m.Bus)
}

// Step executes one CPU instruction (or one DMA-stall cycle if OAM-DMA is
// in progress) and presents a frame if one completed during it.
func (m *Machine) Step() {
	if m.Bus.DMAStallCycles() > 0 {
		m.Bus.Tick(1)
		return
	}

	m.CPU.Step(m.Bus)

	if frame, ok := m.PPU.TakeFrame(); ok {
		m.frameCount++
		if m.present != nil {
			m.present.Present(frame)
		}
	}
}

// Run steps the machine until the given number of frames have completed.
func (m *Machine) Run(frames int) {
	target := m.frameCount + uint64(frames)
	for m.frameCount < target {
		m.Step()
	}
}

// TakeAudioSamples drains the APU's resampled output buffer.
func (m *Machine) TakeAudioSamples() []float32 { return m.Bus.TakeAudioSamples() }

package bus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gones/internal/cartridge"
)

type fakePPU struct {
	regs      [8]uint8
	oam       [256]uint8
	ticks     int
	nmi       bool
	lastWrite uint16
}

func (p *fakePPU) ReadRegister(addr uint16) uint8 { return p.regs[addr&0x07] }
func (p *fakePPU) WriteRegister(addr uint16, v uint8) {
	p.regs[addr&0x07] = v
	p.lastWrite = addr
}
func (p *fakePPU) WriteOAMByte(offset uint8, v uint8) { p.oam[offset] = v }
func (p *fakePPU) Tick()                              { p.ticks++ }
func (p *fakePPU) PollNMI() bool                      { v := p.nmi; p.nmi = false; return v }

type fakeAPU struct {
	steps     int
	status    uint8
	lastWrite uint16
	lastValue uint8
	irq       bool
	samples   []float32
}

func (a *fakeAPU) WriteRegister(addr uint16, v uint8) { a.lastWrite, a.lastValue = addr, v }
func (a *fakeAPU) ReadStatus() uint8                  { return a.status }
func (a *fakeAPU) Step()                              { a.steps++ }
func (a *fakeAPU) TakeSamples() []float32             { return a.samples }
func (a *fakeAPU) PollIRQ() bool                      { return a.irq }

type fakePad struct {
	strobed uint8
	value   uint8
}

func (p *fakePad) WriteStrobe(v uint8) { p.strobed = v }
func (p *fakePad) Read() uint8         { return p.value }

func newTestBus() (*Bus, *fakePPU, *fakeAPU, *fakePad) {
	header := []uint8{'N', 'E', 'S', 0x1A, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	data := append(header, make([]uint8, 2*16384+8192)...)
	cart, err := cartridge.Parse(data)
	if err != nil {
		panic(err)
	}
	p, a, pad1 := &fakePPU{}, &fakeAPU{}, &fakePad{}
	return New(cart, p, a, pad1), p, a, pad1
}

func TestRAMMirroring(t *testing.T) {
	b, _, _, _ := newTestBus()
	b.Write8(0x0000, 0x42)
	require.Equal(t, uint8(0x42), b.Read8(0x0800), "RAM mirror at $0800")
	require.Equal(t, uint8(0x42), b.Read8(0x1800), "RAM mirror at $1800")
}

func TestPPURegisterMirroring(t *testing.T) {
	b, p, _, _ := newTestBus()
	b.Write8(0x2000, 0x80)
	require.Equal(t, uint8(0x80), p.regs[0])
	b.Write8(0x2008, 0x11) // mirrors $2000
	require.Equal(t, uint16(0x2000), p.lastWrite, "write to $2008 should route to $2000")
}

func TestAPURegisterRouting(t *testing.T) {
	b, _, a, _ := newTestBus()
	b.Write8(0x4000, 0x3F)
	require.Equal(t, uint16(0x4000), a.lastWrite)
	require.Equal(t, uint8(0x3F), a.lastValue)

	b.Write8(0x4017, 0x80)
	require.Equal(t, uint16(0x4017), a.lastWrite, "$4017 write should route to APU frame-counter register")
}

func TestControllerStrobeAndRead(t *testing.T) {
	b, _, _, pad1 := newTestBus()
	b.Write8(0x4016, 0x01)
	require.Equal(t, uint8(0x01), pad1.strobed)

	pad1.value = 1
	require.Equal(t, uint8(1), b.Read8(0x4016))
}

func TestOpenBusReadsOnFourthSeventeenthAndWriteOnlyAPURegisters(t *testing.T) {
	b, _, _, _ := newTestBus()
	require.Equal(t, uint8(0), b.Read8(0x4017), "no second controller: $4017 reads as open-bus")
	require.Equal(t, uint8(0), b.Read8(0x4000), "write-only APU register reads as open-bus")
}

func TestOAMDMAStallParityEvenOdd(t *testing.T) {
	b, p, _, _ := newTestBus()
	b.Write8(0x0200, 0xAB)
	b.Write8(0x4014, 0x02) // DMA from page $02 (RAM mirror), parity starts at 0 (even)
	require.Equal(t, 513, b.DMAStallCycles(), "even-cycle OAM-DMA trigger")
	require.Equal(t, uint8(0xAB), p.oam[0], "OAM[0] copied from page $02")

	b2, _, _, _ := newTestBus()
	b2.Tick(1) // advance parity to odd
	b2.Write8(0x4014, 0x03)
	require.Equal(t, 514, b2.DMAStallCycles(), "odd-cycle OAM-DMA trigger")
}

func TestTickAdvancesPPUThreeTimesAndAPUOnce(t *testing.T) {
	b, p, a, _ := newTestBus()
	b.Tick(5)
	require.Equal(t, 15, p.ticks, "PPU should advance 3 dots per CPU cycle")
	require.Equal(t, 5, a.steps, "APU should advance 1 step per CPU cycle")
}

func TestDMAStallCountsDownWithTick(t *testing.T) {
	b, _, _, _ := newTestBus()
	b.Write8(0x4014, 0x02)
	start := b.DMAStallCycles()
	b.Tick(start - 1)
	require.Equal(t, 1, b.DMAStallCycles())
	b.Tick(1)
	require.Equal(t, 0, b.DMAStallCycles())
}

func TestPollNMIAndIRQForwardFromComponents(t *testing.T) {
	b, p, a, _ := newTestBus()
	p.nmi = true
	require.True(t, b.PollNMI(), "PollNMI should report the PPU's pending NMI")
	require.False(t, b.PollNMI(), "PollNMI should clear after being reported once")

	a.irq = true
	require.True(t, b.PollIRQ(), "PollIRQ should report the APU's pending IRQ")
}

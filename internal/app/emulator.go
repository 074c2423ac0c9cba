// Package app provides emulator integration for the main application.
package app

import (
	"fmt"
	"time"

	"gones/internal/machine"
)

// Emulator drives a *machine.Machine at a fixed per-frame cadence and
// tracks basic performance statistics for the host application.
type Emulator struct {
	machine *machine.Machine
	config  *Config

	isRunning bool

	frameCount       uint64
	cycleCount       uint64
	lastResetTime    time.Time
	actualFrameTime  time.Duration
	emulationTime    time.Duration
	averageFrameTime time.Duration

	frameBuffer  []uint32
	audioSamples []float32
}

// NewEmulator creates a new emulator instance driving the given machine.
func NewEmulator(m *machine.Machine, config *Config) *Emulator {
	e := &Emulator{
		machine:      m,
		config:       config,
		frameBuffer:  make([]uint32, 256*240),
		audioSamples: make([]float32, 0, 1024),
	}
	e.Reset()
	return e
}

// Reset clears emulator-side bookkeeping. It does not reset the machine
// itself; the machine is reset by machine.New when LoadROM builds it.
func (e *Emulator) Reset() {
	e.frameCount = 0
	e.cycleCount = 0
	e.lastResetTime = time.Now()
	for i := range e.frameBuffer {
		e.frameBuffer[i] = 0
	}
	e.audioSamples = e.audioSamples[:0]
}

// Start starts the emulator.
func (e *Emulator) Start() { e.isRunning = true }

// Stop stops the emulator.
func (e *Emulator) Stop() { e.isRunning = false }

// Update runs exactly one frame of emulation (driven by Machine.Run, which
// accounts for any OAM-DMA stall already charged by Machine.Step).
func (e *Emulator) Update() error {
	if !e.isRunning {
		return nil
	}

	start := time.Now()
	e.machine.Run(1)
	e.emulationTime = time.Since(start)

	e.frameCount++
	e.cycleCount = e.machine.CPU.Cycles()
	e.copyFrameBuffer()
	e.audioSamples = append(e.audioSamples[:0], e.machine.TakeAudioSamples()...)

	e.actualFrameTime = time.Since(start)
	if e.averageFrameTime == 0 {
		e.averageFrameTime = e.actualFrameTime
	} else {
		e.averageFrameTime = time.Duration(float64(e.averageFrameTime)*0.95 + float64(e.actualFrameTime)*0.05)
	}

	return nil
}

// copyFrameBuffer converts the PPU's packed RGB24 buffer into the uint32
// 0x00RRGGBB format the graphics backends consume.
func (e *Emulator) copyFrameBuffer() {
	rgb := e.machine.PPU.FrameRGB()
	for i := 0; i < len(e.frameBuffer); i++ {
		o := i * 3
		e.frameBuffer[i] = uint32(rgb[o])<<16 | uint32(rgb[o+1])<<8 | uint32(rgb[o+2])
	}
}

// StepFrame executes exactly one frame of emulation regardless of run state.
func (e *Emulator) StepFrame() error {
	if e.machine == nil {
		return fmt.Errorf("machine not initialized")
	}
	e.machine.Run(1)
	e.frameCount++
	e.cycleCount = e.machine.CPU.Cycles()
	e.copyFrameBuffer()
	e.audioSamples = append(e.audioSamples[:0], e.machine.TakeAudioSamples()...)
	return nil
}

// StepInstruction executes one CPU instruction (or DMA-stall cycle).
func (e *Emulator) StepInstruction() error {
	if e.machine == nil {
		return fmt.Errorf("machine not initialized")
	}
	e.machine.Step()
	e.cycleCount = e.machine.CPU.Cycles()
	return nil
}

// GetFrameBuffer returns the current frame buffer.
func (e *Emulator) GetFrameBuffer() []uint32 { return e.frameBuffer }

// GetAudioSamples returns the current audio samples.
func (e *Emulator) GetAudioSamples() []float32 { return e.audioSamples }

// GetFrameCount returns the current frame count.
func (e *Emulator) GetFrameCount() uint64 { return e.frameCount }

// GetCycleCount returns the current CPU cycle count.
func (e *Emulator) GetCycleCount() uint64 { return e.cycleCount }

// GetEmulationTime returns the time spent in emulation for the last frame.
func (e *Emulator) GetEmulationTime() time.Duration { return e.emulationTime }

// GetActualFrameTime returns the actual frame time including rendering.
func (e *Emulator) GetActualFrameTime() time.Duration { return e.actualFrameTime }

// GetAverageFrameTime returns the average frame time.
func (e *Emulator) GetAverageFrameTime() time.Duration { return e.averageFrameTime }

// IsRunning returns whether the emulator is running.
func (e *Emulator) IsRunning() bool { return e.isRunning }

// GetUptime returns the emulator uptime since last reset.
func (e *Emulator) GetUptime() time.Duration { return time.Since(e.lastResetTime) }

// Cleanup releases emulator resources.
func (e *Emulator) Cleanup() error {
	e.Stop()
	e.frameBuffer = nil
	e.audioSamples = nil
	return nil
}

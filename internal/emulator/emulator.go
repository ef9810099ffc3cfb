// Package emulator orchestrates Memory, the Z80 core and the ULA video
// decoder: it advances the CPU a frame's worth of T-states at a time,
// delivers the 50 Hz maskable interrupt at the frame boundary, and
// answers the host's debug-key bindings (system info snapshot, reset,
// border colour).
package emulator

import (
	"github.com/intuitionamiga/spectrum48/internal/memory"
	"github.com/intuitionamiga/spectrum48/internal/video"
	"github.com/intuitionamiga/spectrum48/internal/z80"
)

// CyclesPerFrame is the T-state budget of one 50 Hz Spectrum frame:
// 3.5 MHz / 50 Hz = 69,888 T-states.
const CyclesPerFrame = 69888

// maxInstructionsPerFrame caps the number of Steps in one RunFrame. Every
// Step charges at least 4 T-states, so CyclesPerFrame is reached within
// 17,472 Steps and the cap is a backstop only.
const maxInstructionsPerFrame = 200000

// interruptDataBus is the value the Spectrum ULA drives onto the data
// bus during an IM 2 interrupt acknowledge cycle.
const interruptDataBus = 0xFF

// Emulator owns the three leaf components and drives them together.
type Emulator struct {
	Memory *memory.Memory
	CPU    *z80.CPU
	Video  *video.ULA

	frameCount uint64
}

// New constructs an Emulator with rom loaded as the bottom 16 KiB and
// RAM zeroed.
func New(rom []byte) *Emulator {
	mem := memory.New(rom)
	return &Emulator{
		Memory: mem,
		CPU:    z80.New(mem),
		Video:  video.New(),
	}
}

// Step executes exactly one CPU instruction and returns the T-states
// it consumed.
func (e *Emulator) Step() int {
	return e.CPU.Step()
}

// RunFrame advances the CPU until CyclesPerFrame T-states have elapsed
// or the CPU halts, then delivers the maskable interrupt and advances
// the video chip's flash timer. It returns the rendered framebuffer
// for this frame.
func (e *Emulator) RunFrame() []byte {
	cycles := 0
	for instr := 0; cycles < CyclesPerFrame && instr < maxInstructionsPerFrame; instr++ {
		cycles += e.Step()
		if e.CPU.Halted {
			break
		}
	}

	e.CPU.Interrupt(interruptDataBus)
	e.frameCount++
	e.Video.Advance()

	return e.Video.Render(e.Memory)
}

// Reset clears the CPU back to its power-on state and wipes the
// screen, matching the F5 debug binding.
func (e *Emulator) Reset() {
	e.CPU.Reset()
	e.Memory.ClearScreen()
}

// SetBorder latches a new border colour (0-7), matching the 1-8 debug
// bindings.
func (e *Emulator) SetBorder(color uint8) {
	e.Video.SetBorder(color)
}

// Info is the system-info snapshot printed on the F1 debug binding.
type Info struct {
	PC, SP         uint16
	AF, BC, DE, HL uint16
	IX, IY         uint16
	IM             z80.InterruptMode
	IFF1, IFF2     bool
	Halted         bool
	Border         uint8
	FrameCount     uint64
}

// Snapshot captures the current machine state for display.
func (e *Emulator) Snapshot() Info {
	c := e.CPU
	return Info{
		PC:         c.PC,
		SP:         c.SP,
		AF:         c.AF(),
		BC:         c.BC(),
		DE:         c.DE(),
		HL:         c.HL(),
		IX:         c.IX(),
		IY:         c.IY(),
		IM:         c.IM,
		IFF1:       c.IFF1,
		IFF2:       c.IFF2,
		Halted:     c.Halted,
		Border:     e.Video.Border(),
		FrameCount: e.frameCount,
	}
}

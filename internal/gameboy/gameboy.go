// Package gameboy wires the CPU, bus, PPU, timer, interrupt
// controller, joypad and serial port together into a runnable
// machine (spec.md §9).
package gameboy

import (
	"fmt"

	"github.com/ashgrove/dmgcore/internal/cartridge"
	"github.com/ashgrove/dmgcore/internal/cpu"
	"github.com/ashgrove/dmgcore/internal/interrupts"
	"github.com/ashgrove/dmgcore/internal/joypad"
	"github.com/ashgrove/dmgcore/internal/mmu"
	"github.com/ashgrove/dmgcore/internal/ppu"
	"github.com/ashgrove/dmgcore/internal/serial"
	"github.com/ashgrove/dmgcore/internal/timer"
	"github.com/ashgrove/dmgcore/pkg/log"
)

// ClockSpeed is the DMG's fixed clock rate in Hz.
const ClockSpeed = 4194304

// CyclesPerFrame is the T-cycle count of one 59.7Hz video frame.
const CyclesPerFrame = 70224

// GameBoy owns every emulated component and drives the main loop.
type GameBoy struct {
	CPU        *cpu.CPU
	Bus        *mmu.Bus
	PPU        *ppu.PPU
	Timer      *timer.Controller
	Interrupts *interrupts.Controller
	Joypad     *joypad.Controller
	Serial     *serial.Controller
	Cartridge  *cartridge.Cartridge

	log log.Logger
}

// Option configures a GameBoy at construction time.
type Option func(*GameBoy)

// WithLogger overrides the default null logger.
func WithLogger(logger log.Logger) Option {
	return func(g *GameBoy) { g.log = logger }
}

// WithSerialSink attaches a serial byte sink (a websocket broadcaster,
// for example) in place of the default, which discards output.
func WithSerialSink(sink serial.Sink) Option {
	return func(g *GameBoy) { g.Serial.AttachSink(sink) }
}

// New loads rom and returns a GameBoy ready to run from its cartridge
// entry point.
func New(rom []byte, opts ...Option) (*GameBoy, error) {
	g := &GameBoy{log: log.NewNull()}
	g.Interrupts = interrupts.NewController()
	g.Serial = serial.NewController(g.Interrupts)

	for _, opt := range opts {
		opt(g)
	}

	cart, err := cartridge.New(rom, g.log)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}

	g.Timer = timer.NewController(g.Interrupts)
	g.Joypad = joypad.NewController(g.Interrupts)
	g.Cartridge = cart
	g.Bus = mmu.New(cart, g.Interrupts, g.Timer, g.Joypad, g.Serial, g.log)
	g.PPU = ppu.New(g.Bus)
	g.CPU = cpu.New(g.Bus, g.Interrupts, g.Timer, g.PPU, g.log)
	g.CPU.Reset()
	// LCDC as the boot ROM leaves it: LCD, BG tile data at 0x8000, BG on.
	g.Bus.Write(0xFF40, 0x91, false)

	return g, nil
}

// Step executes a single CPU instruction (or idle tick) and returns
// the number of T-cycles it consumed.
func (g *GameBoy) Step() int {
	return g.CPU.Step()
}

// RunFrame steps the emulation until the PPU signals that a frame has
// completed, and returns that frame's pixel buffer.
func (g *GameBoy) RunFrame() [ppu.ScreenHeight][ppu.ScreenWidth]uint8 {
	for !g.PPU.FrameReady() {
		g.Step()
	}
	return g.PPU.FrameBuffer()
}

// PressButton and ReleaseButton forward joypad input from the host.
func (g *GameBoy) PressButton(b joypad.Button)   { g.Joypad.Press(b) }
func (g *GameBoy) ReleaseButton(b joypad.Button) { g.Joypad.Release(b) }

// Title returns the cartridge's title, for use in window/log output.
func (g *GameBoy) Title() string { return g.Cartridge.Title() }

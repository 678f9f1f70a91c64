// Package cpu implements the Sharp LR35902: register file, flag
// algebra, the table-dispatched instruction set, interrupt servicing
// and the HALT modes (spec.md §3).
package cpu

import (
	"github.com/ashgrove/dmgcore/internal/interrupts"
	"github.com/ashgrove/dmgcore/pkg/log"
)

// mode tracks CPU states beyond straight-line execution: halted,
// stopped, and the single-instruction delay EI and the HALT bug
// impose before their effect becomes visible.
type mode uint8

const (
	ModeNormal mode = iota
	ModeHalt
	ModeStop
	ModeHaltBug
	ModeHaltDI
	ModeEnableIME
)

// bus is the subset of *mmu.Bus the CPU depends on.
type bus interface {
	Read(addr uint16, observe bool) uint8
	Write(addr uint16, value uint8, observe bool)
	TickDMA()
}

// ticker is ticked once per T-cycle alongside the CPU; *timer.Controller
// and *ppu.PPU both satisfy it.
type ticker interface {
	Tick()
}

// CPU is the Sharp LR35902 core. It owns no memory itself — all
// reads and writes go through bus — and drives the rest of the
// machine's timing: every memory access ticks Timer, DMA and PPU the
// appropriate number of cycles before returning.
type CPU struct {
	PC uint16
	SP uint16
	Registers

	ime bool
	mode mode

	bus   bus
	irq   *interrupts.Controller
	timer ticker
	ppu   ticker

	cycles int

	log log.Logger
}

// New returns a CPU wired to its dependencies. timer and ppu are
// accepted as the narrow ticker interface so this package need not
// import either concrete package.
func New(b bus, irq *interrupts.Controller, timer, ppu ticker, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNull()
	}
	c := &CPU{
		bus:   b,
		irq:   irq,
		timer: timer,
		ppu:   ppu,
		log:   logger,
	}
	c.AF = &RegisterPair{&c.A, &c.F}
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}
	return c
}

// Reset puts the CPU in its post-boot-ROM state: PC at the cartridge
// entry point, registers and flags at their documented DMG power-on
// values.
func (c *CPU) Reset() {
	c.PC = 0x0100
	c.SP = 0xFFFE
	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D
	c.ime = false
	c.mode = ModeNormal
}

// Step executes one instruction (or one idle tick, in HALT/STOP) and
// services a pending interrupt if one is due afterward. It returns
// the number of T-cycles consumed.
func (c *CPU) Step() int {
	before := c.cycles
	switch c.mode {
	case ModeNormal:
		c.runInstruction(c.fetch())
		if c.ime && c.irq.HasPending() {
			c.serviceInterrupt()
		}
	case ModeHalt, ModeStop:
		c.tickCycle()
		if c.irq.HasPending() {
			c.mode = ModeNormal
			if c.ime {
				c.serviceInterrupt()
			}
		}
	case ModeHaltDI:
		c.tickCycle()
		if c.irq.HasPending() {
			c.mode = ModeNormal
		}
	case ModeEnableIME:
		c.ime = true
		c.mode = ModeNormal
		c.runInstruction(c.fetch())
		if c.ime && c.irq.HasPending() {
			c.serviceInterrupt()
		}
	case ModeHaltBug:
		// the HALT bug: the next opcode is fetched but PC fails to
		// advance past it, so it runs a second time.
		opcode := c.fetch()
		c.PC--
		c.mode = ModeNormal
		c.runInstruction(opcode)
		if c.ime && c.irq.HasPending() {
			c.serviceInterrupt()
		}
	}
	return c.cycles - before
}

func (c *CPU) runInstruction(opcode uint8) {
	if opcode == 0xCB {
		InstructionSetCB[c.readOperand()].fn(c)
		return
	}
	InstructionSet[opcode].fn(c)
}

func (c *CPU) serviceInterrupt() {
	vector, ok := c.irq.NextVector()
	if !ok {
		return
	}
	c.tickCycle()
	c.tickCycle()
	c.tickCycle()
	c.writeByte(c.SP-1, uint8(c.PC>>8))
	c.writeByte(c.SP-2, uint8(c.PC))
	c.SP -= 2
	c.ime = false
	c.PC = vector
}

// fetch reads the opcode at PC and advances PC, ticking one M-cycle.
func (c *CPU) fetch() uint8 {
	v := c.readByte(c.PC)
	c.PC++
	return v
}

// readOperand is identical to fetch; the separate name documents
// intent at call sites (operand byte vs. opcode byte).
func (c *CPU) readOperand() uint8 {
	return c.fetch()
}

func (c *CPU) readOperand16() uint16 {
	lo := uint16(c.readOperand())
	hi := uint16(c.readOperand())
	return hi<<8 | lo
}

func (c *CPU) readByte(addr uint16) uint8 {
	c.tickCycle()
	return c.bus.Read(addr, true)
}

func (c *CPU) writeByte(addr uint16, value uint8) {
	c.tickCycle()
	c.bus.Write(addr, value, true)
}

// tick advances Timer, DMA and PPU by one T-cycle.
func (c *CPU) tick() {
	c.bus.TickDMA()
	c.timer.Tick()
	c.ppu.Tick()
	c.cycles++
}

// tickCycle advances one M-cycle (4 T-cycles).
func (c *CPU) tickCycle() {
	c.tick()
	c.tick()
	c.tick()
	c.tick()
}

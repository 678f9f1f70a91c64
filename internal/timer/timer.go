// Package timer implements the Game Boy's free-running divider and
// programmable TIMA counter described in spec.md §4.4.
package timer

import "github.com/ashgrove/dmgcore/internal/interrupts"

// clockPeriods maps TAC bits 1-0 to the number of T-cycles between TIMA
// increments: {00: 1024, 01: 16, 10: 64, 11: 256}.
var clockPeriods = [4]uint16{1024, 16, 64, 256}

// Controller owns DIV, TIMA, TMA and TAC and raises the Timer interrupt
// line on overflow.
type Controller struct {
	div  uint16 // free-running 16-bit divider; DIV is its high byte
	tima uint8
	tma  uint8
	tac  uint8

	irq *interrupts.Controller
}

// NewController returns a Controller wired to irq for overflow requests.
func NewController(irq *interrupts.Controller) *Controller {
	return &Controller{irq: irq}
}

// Tick advances the timer by one T-cycle.
func (c *Controller) Tick() {
	c.div++

	if c.tac&0x04 == 0 {
		return
	}

	period := clockPeriods[c.tac&0x03]
	if c.div%period == 0 {
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.Timer)
		}
	}
}

// ReadDIV returns the upper byte of the internal divider, which
// increments every 256 T-cycles.
func (c *Controller) ReadDIV() uint8 { return uint8(c.div >> 8) }

// WriteDIV resets the divider to zero, regardless of the value written.
func (c *Controller) WriteDIV(uint8) { c.div = 0 }

// ReadTIMA returns the current TIMA counter.
func (c *Controller) ReadTIMA() uint8 { return c.tima }

// WriteTIMA stores a new TIMA value.
func (c *Controller) WriteTIMA(v uint8) { c.tima = v }

// ReadTMA returns the reload value used on TIMA overflow.
func (c *Controller) ReadTMA() uint8 { return c.tma }

// WriteTMA stores the reload value.
func (c *Controller) WriteTMA(v uint8) { c.tma = v }

// ReadTAC returns TAC with its unused upper bits forced high.
func (c *Controller) ReadTAC() uint8 { return c.tac | 0xF8 }

// WriteTAC stores the enable bit and clock-select bits.
func (c *Controller) WriteTAC(v uint8) { c.tac = v & 0x07 }

// Package joypad implements the Game Boy's button matrix: eight
// abstract buttons multiplexed onto four bus-visible bits, selected by
// the JOYP register's two selector bits.
package joypad

import (
	"github.com/ashgrove/dmgcore/internal/interrupts"
	"github.com/ashgrove/dmgcore/pkg/bits"
)

// Button identifies one of the eight physical buttons.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
)

// actionButtons and directionButtons index into a 4-bit row; bit i of
// each row corresponds to the button at actionButtons[i] (or
// directionButtons[i]).
var (
	actionButtons    = [4]Button{ButtonA, ButtonB, ButtonSelect, ButtonStart}
	directionButtons = [4]Button{ButtonRight, ButtonLeft, ButtonUp, ButtonDown}
)

// Controller tracks the pressed/released state of all eight buttons and
// the JOYP selector bits last written by the program.
type Controller struct {
	pressed  [8]bool
	selector uint8 // bits 4-5 of JOYP, as last written

	irq *interrupts.Controller
}

// NewController returns a Controller with every button released and
// both selector rows deselected.
func NewController(irq *interrupts.Controller) *Controller {
	return &Controller{selector: 0x30, irq: irq}
}

// Press marks a button as pressed. A released-to-pressed transition
// raises the Joypad interrupt line, per spec.md §4.5.
func (c *Controller) Press(b Button) {
	if !c.pressed[b] {
		c.irq.Request(interrupts.Joypad)
	}
	c.pressed[b] = true
}

// Release marks a button as released.
func (c *Controller) Release(b Button) {
	c.pressed[b] = false
}

// ReadJOYP composes the stored selector bits with the active-low
// projection of whichever row is currently selected. Bits 6-7 and any
// deselected row's bits always read high.
func (c *Controller) ReadJOYP() uint8 {
	v := c.selector | 0xC0

	var rowBits uint8 = 0x0F
	if c.selector&bits.Set(0, 4) == 0 { // bit 4 low selects direction keys
		rowBits &= c.rowMask(directionButtons)
	}
	if c.selector&bits.Set(0, 5) == 0 { // bit 5 low selects action keys
		rowBits &= c.rowMask(actionButtons)
	}

	return v | rowBits
}

// rowMask returns the active-low 4-bit mask for the given row: a 0 bit
// means the corresponding button is pressed.
func (c *Controller) rowMask(row [4]Button) uint8 {
	var mask uint8 = 0x0F
	for i, b := range row {
		if c.pressed[b] {
			mask = bits.Reset(mask, uint8(i))
		}
	}
	return mask
}

// WriteJOYP stores only the two selector bits (4-5); the lower nibble
// is read-only button state.
func (c *Controller) WriteJOYP(v uint8) {
	c.selector = v & 0x30
}

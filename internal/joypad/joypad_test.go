package joypad

import (
	"testing"

	"github.com/ashgrove/dmgcore/internal/interrupts"
)

func TestReadJOYPSelectsDirectionRow(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	c.WriteJOYP(0x20) // select direction row (bit 4 low)
	c.Press(ButtonUp)

	got := c.ReadJOYP()
	if got&0x04 != 0 { // bit 2 = Up, active low
		t.Fatalf("JOYP = %08b, want Up bit (2) clear", got)
	}
	if got&0x01 == 0 {
		t.Fatalf("JOYP = %08b, want Right bit (0) set (not pressed)", got)
	}
}

func TestReadJOYPSelectsActionRow(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	c.WriteJOYP(0x10) // select action row (bit 5 low)
	c.Press(ButtonA)

	got := c.ReadJOYP()
	if got&0x01 != 0 {
		t.Fatalf("JOYP = %08b, want A bit (0) clear", got)
	}
}

func TestPressEdgeRequestsInterruptOnlyOnce(t *testing.T) {
	irq := interrupts.NewController()
	irq.Enable = 0x1F
	c := NewController(irq)

	c.Press(ButtonStart)
	if !irq.HasPending() {
		t.Fatalf("press did not request joypad interrupt")
	}

	irq.Flag = 0
	c.Press(ButtonStart) // already pressed, no new edge
	if irq.HasPending() {
		t.Fatalf("repeated press while already held requested a second interrupt")
	}
}

func TestReleaseThenPressRequestsAgain(t *testing.T) {
	irq := interrupts.NewController()
	irq.Enable = 0x1F
	c := NewController(irq)

	c.Press(ButtonDown)
	irq.Flag = 0
	c.Release(ButtonDown)
	c.Press(ButtonDown)

	if !irq.HasPending() {
		t.Fatalf("press after release did not request a new interrupt")
	}
}

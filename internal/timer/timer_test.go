package timer

import (
	"testing"

	"github.com/ashgrove/dmgcore/internal/interrupts"
)

func TestDIVIncrementsEvery256TCycles(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)

	for i := 0; i < 255; i++ {
		c.Tick()
	}
	if c.ReadDIV() != 0 {
		t.Fatalf("DIV = %d after 255 ticks, want 0", c.ReadDIV())
	}
	c.Tick()
	if c.ReadDIV() != 1 {
		t.Fatalf("DIV = %d after 256 ticks, want 1", c.ReadDIV())
	}
}

func TestDIVResetsOnWrite(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	for i := 0; i < 1000; i++ {
		c.Tick()
	}
	c.WriteDIV(0xFF)
	if c.ReadDIV() != 0 {
		t.Fatalf("DIV = %d after write, want 0 regardless of written value", c.ReadDIV())
	}
}

func TestTIMAOverflowReloadsFromTMAAndRequestsInterrupt(t *testing.T) {
	irq := interrupts.NewController()
	irq.Enable = 0x1F
	c := NewController(irq)
	c.WriteTMA(0x10)
	c.WriteTAC(0x05) // enabled, clock select 01 -> every 16 T-cycles
	c.WriteTIMA(0xFF)

	for i := 0; i < 16; i++ {
		c.Tick()
	}

	if c.ReadTIMA() != 0x10 {
		t.Fatalf("TIMA = %02X after overflow, want TMA value 10", c.ReadTIMA())
	}
	if !irq.HasPending() {
		t.Fatalf("Timer interrupt not requested on overflow")
	}
}

func TestTIMADisabledByTACDoesNotAdvance(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	c.WriteTAC(0x00) // disabled
	for i := 0; i < 10000; i++ {
		c.Tick()
	}
	if c.ReadTIMA() != 0 {
		t.Fatalf("TIMA = %d, want 0 (timer disabled)", c.ReadTIMA())
	}
}

func TestTACReadForcesUnusedBitsHigh(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	c.WriteTAC(0x07)
	if got := c.ReadTAC(); got&0xF8 != 0xF8 {
		t.Fatalf("TAC upper bits = %05b, want all set", got>>3)
	}
}

// Package serial implements the SB/SC registers and the one-way byte
// sink the host exposes over them (spec.md §4.2, §6).
package serial

import "github.com/ashgrove/dmgcore/internal/interrupts"

// Sink is the host's serial consumer: a one-way byte sink fed whenever
// the program writes SC with bit 7 set.
type Sink interface {
	Send(b byte)
}

// NullSink discards every byte. It is the default when no external
// consumer is attached.
type NullSink struct{}

// Send implements Sink.
func (NullSink) Send(byte) {}

// Controller owns SB and SC and forwards completed transfers to Sink.
type Controller struct {
	sb uint8
	sc uint8

	sink Sink
	irq  *interrupts.Controller
}

// NewController returns a Controller with no sink attached (bytes are
// discarded until AttachSink is called).
func NewController(irq *interrupts.Controller) *Controller {
	return &Controller{irq: irq, sink: NullSink{}}
}

// AttachSink directs future transfers to sink.
func (c *Controller) AttachSink(sink Sink) {
	if sink == nil {
		sink = NullSink{}
	}
	c.sink = sink
}

// ReadSB returns the serial transfer data register.
func (c *Controller) ReadSB() uint8 { return c.sb }

// WriteSB stores the byte to be transmitted on the next SC-triggered
// transfer.
func (c *Controller) WriteSB(v uint8) { c.sb = v }

// ReadSC returns the serial control register with its unused bits
// forced high.
func (c *Controller) ReadSC() uint8 { return c.sc | 0x7E }

// WriteSC stores the control register. Setting bit 7 (transfer start)
// immediately "completes" the transfer — this model has no link-cable
// peer, so the byte is handed to Sink and Serial is requested right
// away rather than after a real shift-clock delay.
func (c *Controller) WriteSC(v uint8) {
	c.sc = v
	if v&0x80 != 0 {
		c.sink.Send(c.sb)
		c.irq.Request(interrupts.Serial)
	}
}

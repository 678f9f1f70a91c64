package cpu

import "fmt"

// rotateLeft rotates value left by one bit. If throughCarry, the
// incoming bit 0 is the current carry flag instead of the outgoing
// bit 7 (RLA/RL vs RLCA/RLC). The returned carry is always the value's
// original bit 7 — the spec's pre-rotate rule, not the post-rotate
// bit 0 a naive "recompute from the result" implementation would read.
func (c *CPU) rotateLeft(value uint8, throughCarry bool) (result uint8, carryOut bool) {
	carryOut = value&0x80 != 0
	bit0 := carryOut
	if throughCarry {
		bit0 = c.isFlagSet(FlagCarry)
	}
	result = value<<1 | b2u8(bit0)
	return result, carryOut
}

// rotateRight is rotateLeft's mirror: the returned carry is always the
// value's original bit 0.
func (c *CPU) rotateRight(value uint8, throughCarry bool) (result uint8, carryOut bool) {
	carryOut = value&0x01 != 0
	bit7 := carryOut
	if throughCarry {
		bit7 = c.isFlagSet(FlagCarry)
	}
	result = value>>1 | b2u8(bit7)<<7
	return result, carryOut
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func init() {
	DefineInstruction(0x07, "RLCA", func(c *CPU) {
		result, carry := c.rotateLeft(c.A, false)
		c.A = result
		c.setFlags(false, false, false, carry)
	})
	DefineInstruction(0x17, "RLA", func(c *CPU) {
		result, carry := c.rotateLeft(c.A, true)
		c.A = result
		c.setFlags(false, false, false, carry)
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU) {
		result, carry := c.rotateRight(c.A, false)
		c.A = result
		c.setFlags(false, false, false, carry)
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU) {
		result, carry := c.rotateRight(c.A, true)
		c.A = result
		c.setFlags(false, false, false, carry)
	})

	rotateOps := []struct {
		base        uint8
		name        string
		left        bool
		throughCarry bool
	}{
		{0x00, "RLC", true, false},
		{0x08, "RRC", false, false},
		{0x10, "RL", true, true},
		{0x18, "RR", false, true},
	}
	for _, op := range rotateOps {
		o := op
		for reg := uint8(0); reg < 8; reg++ {
			r := reg
			DefineInstructionCB(o.base+r, fmt.Sprintf("%s %s", o.name, regNames[r]), func(c *CPU) {
				var result uint8
				var carry bool
				if o.left {
					result, carry = c.rotateLeft(c.get8(r), o.throughCarry)
				} else {
					result, carry = c.rotateRight(c.get8(r), o.throughCarry)
				}
				c.set8(r, result)
				c.setFlags(result == 0, false, false, carry)
			})
		}
	}
}

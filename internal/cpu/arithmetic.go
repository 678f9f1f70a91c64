package cpu

import "fmt"

// add adds b (and, if shouldCarry, the current carry flag) to a and
// sets the flags accordingly.
func (c *CPU) add(a, b uint8, shouldCarry bool) uint8 {
	carryIn := shouldCarry && c.isFlagSet(FlagCarry)
	sum := uint16(a) + uint16(b)
	half := (a & 0xF) + (b & 0xF)
	if carryIn {
		sum++
		half++
	}
	c.setFlags(uint8(sum) == 0, false, half > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub subtracts b (and, if shouldCarry, the current carry flag) from
// a and sets the flags accordingly.
func (c *CPU) sub(a, b uint8, shouldCarry bool) uint8 {
	carryIn := shouldCarry && c.isFlagSet(FlagCarry)
	diff := int16(a) - int16(b)
	half := int16(a&0xF) - int16(b&0xF)
	if carryIn {
		diff--
		half--
	}
	c.setFlags(uint8(diff) == 0, true, half < 0, diff < 0)
	return uint8(diff)
}

func (c *CPU) and(a, b uint8) uint8 {
	result := a & b
	c.setFlags(result == 0, false, true, false)
	return result
}

func (c *CPU) or(a, b uint8) uint8 {
	result := a | b
	c.setFlags(result == 0, false, false, false)
	return result
}

func (c *CPU) xor(a, b uint8) uint8 {
	result := a ^ b
	c.setFlags(result == 0, false, false, false)
	return result
}

func (c *CPU) compare(a, b uint8) {
	c.setFlags(a == b, true, a&0xF < b&0xF, a < b)
}

func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.setFlags(result == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return result
}

func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.setFlags(result == 0, true, value&0xF == 0, c.isFlagSet(FlagCarry))
	return result
}

func (c *CPU) addHL(value uint16) {
	sum := uint32(c.HL.Uint16()) + uint32(value)
	half := (c.HL.Uint16() & 0xFFF) + (value & 0xFFF)
	c.setFlags(c.isFlagSet(FlagZero), false, half > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

func (c *CPU) push(high, low uint8) {
	c.tickCycle()
	c.writeByte(c.SP-1, high)
	c.writeByte(c.SP-2, low)
	c.SP -= 2
}

func (c *CPU) pop() (high, low uint8) {
	low = c.readByte(c.SP)
	high = c.readByte(c.SP + 1)
	c.SP += 2
	return high, low
}

func init() {
	// ADD/ADC/SUB/SBC/AND/XOR/OR/CP A, r — the 8x8 ALU block at
	// 0x80-0xBF, one row per operation.
	ops := []struct {
		base uint8
		name string
		fn   func(c *CPU, value uint8)
	}{
		{0x80, "ADD", func(c *CPU, v uint8) { c.A = c.add(c.A, v, false) }},
		{0x88, "ADC", func(c *CPU, v uint8) { c.A = c.add(c.A, v, true) }},
		{0x90, "SUB", func(c *CPU, v uint8) { c.A = c.sub(c.A, v, false) }},
		{0x98, "SBC", func(c *CPU, v uint8) { c.A = c.sub(c.A, v, true) }},
		{0xA0, "AND", func(c *CPU, v uint8) { c.A = c.and(c.A, v) }},
		{0xA8, "XOR", func(c *CPU, v uint8) { c.A = c.xor(c.A, v) }},
		{0xB0, "OR", func(c *CPU, v uint8) { c.A = c.or(c.A, v) }},
		{0xB8, "CP", func(c *CPU, v uint8) { c.compare(c.A, v) }},
	}
	for _, op := range ops {
		o := op
		for src := uint8(0); src < 8; src++ {
			s := src
			DefineInstruction(o.base+s, fmt.Sprintf("%s A, %s", o.name, regNames[s]), func(c *CPU) {
				o.fn(c, c.get8(s))
			})
		}
	}

	// the same eight operations against an immediate byte.
	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU) { c.A = c.add(c.A, c.readOperand(), false) })
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU) { c.A = c.add(c.A, c.readOperand(), true) })
	DefineInstruction(0xD6, "SUB A, d8", func(c *CPU) { c.A = c.sub(c.A, c.readOperand(), false) })
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU) { c.A = c.sub(c.A, c.readOperand(), true) })
	DefineInstruction(0xE6, "AND A, d8", func(c *CPU) { c.A = c.and(c.A, c.readOperand()) })
	DefineInstruction(0xEE, "XOR A, d8", func(c *CPU) { c.A = c.xor(c.A, c.readOperand()) })
	DefineInstruction(0xF6, "OR A, d8", func(c *CPU) { c.A = c.or(c.A, c.readOperand()) })
	DefineInstruction(0xFE, "CP A, d8", func(c *CPU) { c.compare(c.A, c.readOperand()) })

	// INC/DEC r
	incDec := map[uint8]uint8{0x04: 0, 0x0C: 1, 0x14: 2, 0x1C: 3, 0x24: 4, 0x2C: 5, 0x34: 6, 0x3C: 7}
	for opcode, reg := range incDec {
		op, r := opcode, reg
		DefineInstruction(op, fmt.Sprintf("INC %s", regNames[r]), func(c *CPU) {
			c.set8(r, c.increment(c.get8(r)))
		})
		DefineInstruction(op+1, fmt.Sprintf("DEC %s", regNames[r]), func(c *CPU) {
			c.set8(r, c.decrement(c.get8(r)))
		})
	}

	// 16-bit INC/DEC rr
	DefineInstruction(0x03, "INC BC", func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() + 1); c.tickCycle() })
	DefineInstruction(0x0B, "DEC BC", func(c *CPU) { c.BC.SetUint16(c.BC.Uint16() - 1); c.tickCycle() })
	DefineInstruction(0x13, "INC DE", func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() + 1); c.tickCycle() })
	DefineInstruction(0x1B, "DEC DE", func(c *CPU) { c.DE.SetUint16(c.DE.Uint16() - 1); c.tickCycle() })
	DefineInstruction(0x23, "INC HL", func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() + 1); c.tickCycle() })
	DefineInstruction(0x2B, "DEC HL", func(c *CPU) { c.HL.SetUint16(c.HL.Uint16() - 1); c.tickCycle() })
	DefineInstruction(0x33, "INC SP", func(c *CPU) { c.SP++; c.tickCycle() })
	DefineInstruction(0x3B, "DEC SP", func(c *CPU) { c.SP--; c.tickCycle() })

	DefineInstruction(0x09, "ADD HL, BC", func(c *CPU) { c.addHL(c.BC.Uint16()); c.tickCycle() })
	DefineInstruction(0x19, "ADD HL, DE", func(c *CPU) { c.addHL(c.DE.Uint16()); c.tickCycle() })
	DefineInstruction(0x29, "ADD HL, HL", func(c *CPU) { c.addHL(c.HL.Uint16()); c.tickCycle() })
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU) { c.addHL(c.SP); c.tickCycle() })

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) {
		c.SP = c.addSPOffset()
		c.tickCycle()
		c.tickCycle()
	})

	DefineInstruction(0xC1, "POP BC", func(c *CPU) { c.B, c.C = c.pop() })
	DefineInstruction(0xD1, "POP DE", func(c *CPU) { c.D, c.E = c.pop() })
	DefineInstruction(0xE1, "POP HL", func(c *CPU) { c.H, c.L = c.pop() })
	DefineInstruction(0xF1, "POP AF", func(c *CPU) {
		c.A, c.F = c.pop()
		c.F &= 0xF0
	})
	DefineInstruction(0xC5, "PUSH BC", func(c *CPU) { c.push(c.B, c.C) })
	DefineInstruction(0xD5, "PUSH DE", func(c *CPU) { c.push(c.D, c.E) })
	DefineInstruction(0xE5, "PUSH HL", func(c *CPU) { c.push(c.H, c.L) })
	DefineInstruction(0xF5, "PUSH AF", func(c *CPU) { c.push(c.A, c.F) })
}

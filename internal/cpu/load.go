package cpu

import "fmt"

func init() {
	// LD r, r' — the full 8x8 grid at 0x40-0x7F, less 0x76 (HALT).
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 + dst*8 + src
			if opcode == 0x76 {
				continue
			}
			d, s := dst, src
			DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", regNames[d], regNames[s]), func(c *CPU) {
				c.set8(d, c.get8(s))
			})
		}
	}

	// LD r, d8
	ldImm := map[uint8]uint8{0x06: 0, 0x0E: 1, 0x16: 2, 0x1E: 3, 0x26: 4, 0x2E: 5, 0x36: 6, 0x3E: 7}
	for opcode, reg := range ldImm {
		op, r := opcode, reg
		DefineInstruction(op, fmt.Sprintf("LD %s, d8", regNames[r]), func(c *CPU) {
			c.set8(r, c.readOperand())
		})
	}

	// LD rr, d16
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) { c.BC.SetUint16(c.readOperand16()) })
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) { c.DE.SetUint16(c.readOperand16()) })
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) { c.HL.SetUint16(c.readOperand16()) })
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) { c.SP = c.readOperand16() })

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) })
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) })
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) })
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) })

	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) {
		addr := c.readOperand16()
		c.writeByte(addr, uint8(c.SP))
		c.writeByte(addr+1, uint8(c.SP>>8))
	})

	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) {
		c.A = c.readByte(0xFF00 + uint16(c.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })

	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) { c.writeByte(c.readOperand16(), c.A) })
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) { c.A = c.readByte(c.readOperand16()) })

	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) {
		c.SP = c.HL.Uint16()
		c.tickCycle()
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) {
		c.HL.SetUint16(c.addSPOffset())
		c.tickCycle()
	})
}

// addSPOffset reads a signed 8-bit operand, adds it to SP and sets
// flags the way the real hardware's 16-bit adder does: half-carry and
// carry from the low byte, Z and N always cleared. Callers are
// responsible for ticking the internal cycles their specific opcode
// spends beyond the operand fetch (1 for LD HL,SP+r8, 2 for ADD SP,r8).
func (c *CPU) addSPOffset() uint16 {
	offset := int8(c.readOperand())
	result := int32(c.SP) + int32(offset)

	halfCarry := (c.SP&0xF)+uint16(uint8(offset)&0xF) > 0xF
	carry := (c.SP&0xFF)+uint16(uint8(offset)) > 0xFF
	c.setFlags(false, false, halfCarry, carry)

	return uint16(result)
}

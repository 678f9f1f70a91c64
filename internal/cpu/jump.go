package cpu

import "fmt"

func (c *CPU) jumpRelative(taken bool) {
	offset := int8(c.readOperand())
	if !taken {
		return
	}
	c.PC = uint16(int32(c.PC) + int32(offset))
	c.tickCycle()
}

func (c *CPU) jumpAbsolute(taken bool) {
	addr := c.readOperand16()
	if !taken {
		return
	}
	c.PC = addr
	c.tickCycle()
}

func (c *CPU) call(taken bool) {
	addr := c.readOperand16()
	if !taken {
		return
	}
	c.tickCycle()
	c.writeByte(c.SP-1, uint8(c.PC>>8))
	c.writeByte(c.SP-2, uint8(c.PC))
	c.SP -= 2
	c.PC = addr
}

func (c *CPU) ret(taken bool) {
	if !taken {
		return
	}
	lo := c.readByte(c.SP)
	hi := c.readByte(c.SP + 1)
	c.SP += 2
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.tickCycle()
}

func (c *CPU) rst(addr uint16) {
	c.tickCycle()
	c.writeByte(c.SP-1, uint8(c.PC>>8))
	c.writeByte(c.SP-2, uint8(c.PC))
	c.SP -= 2
	c.PC = addr
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(true) })
	DefineInstruction(0x20, "JR NZ, r8", func(c *CPU) { c.jumpRelative(!c.isFlagSet(FlagZero)) })
	DefineInstruction(0x28, "JR Z, r8", func(c *CPU) { c.jumpRelative(c.isFlagSet(FlagZero)) })
	DefineInstruction(0x30, "JR NC, r8", func(c *CPU) { c.jumpRelative(!c.isFlagSet(FlagCarry)) })
	DefineInstruction(0x38, "JR C, r8", func(c *CPU) { c.jumpRelative(c.isFlagSet(FlagCarry)) })

	DefineInstruction(0xC3, "JP a16", func(c *CPU) { c.jumpAbsolute(true) })
	DefineInstruction(0xC2, "JP NZ, a16", func(c *CPU) { c.jumpAbsolute(!c.isFlagSet(FlagZero)) })
	DefineInstruction(0xCA, "JP Z, a16", func(c *CPU) { c.jumpAbsolute(c.isFlagSet(FlagZero)) })
	DefineInstruction(0xD2, "JP NC, a16", func(c *CPU) { c.jumpAbsolute(!c.isFlagSet(FlagCarry)) })
	DefineInstruction(0xDA, "JP C, a16", func(c *CPU) { c.jumpAbsolute(c.isFlagSet(FlagCarry)) })
	DefineInstruction(0xE9, "JP (HL)", func(c *CPU) { c.PC = c.HL.Uint16() })

	DefineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(true) })
	DefineInstruction(0xC4, "CALL NZ, a16", func(c *CPU) { c.call(!c.isFlagSet(FlagZero)) })
	DefineInstruction(0xCC, "CALL Z, a16", func(c *CPU) { c.call(c.isFlagSet(FlagZero)) })
	DefineInstruction(0xD4, "CALL NC, a16", func(c *CPU) { c.call(!c.isFlagSet(FlagCarry)) })
	DefineInstruction(0xDC, "CALL C, a16", func(c *CPU) { c.call(c.isFlagSet(FlagCarry)) })

	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret(true) })
	DefineInstruction(0xC0, "RET NZ", func(c *CPU) { c.tickCycle(); c.ret(!c.isFlagSet(FlagZero)) })
	DefineInstruction(0xC8, "RET Z", func(c *CPU) { c.tickCycle(); c.ret(c.isFlagSet(FlagZero)) })
	DefineInstruction(0xD0, "RET NC", func(c *CPU) { c.tickCycle(); c.ret(!c.isFlagSet(FlagCarry)) })
	DefineInstruction(0xD8, "RET C", func(c *CPU) { c.tickCycle(); c.ret(c.isFlagSet(FlagCarry)) })
	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		c.ret(true)
		c.ime = true
	})

	for i := uint8(0); i < 8; i++ {
		addr := uint16(i) * 8
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02Xh", addr), func(c *CPU) { c.rst(addr) })
	}
}

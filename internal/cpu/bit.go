package cpu

import "fmt"

func init() {
	for bit := uint8(0); bit < 8; bit++ {
		for reg := uint8(0); reg < 8; reg++ {
			b, r := bit, reg

			DefineInstructionCB(0x40+b*8+r, fmt.Sprintf("BIT %d, %s", b, regNames[r]), func(c *CPU) {
				c.shouldZeroFlag(c.get8(r) & (1 << b))
				c.clearFlag(FlagSubtract)
				c.setFlag(FlagHalfCarry)
			})

			DefineInstructionCB(0x80+b*8+r, fmt.Sprintf("RES %d, %s", b, regNames[r]), func(c *CPU) {
				c.set8(r, c.get8(r)&^(1<<b))
			})

			DefineInstructionCB(0xC0+b*8+r, fmt.Sprintf("SET %d, %s", b, regNames[r]), func(c *CPU) {
				c.set8(r, c.get8(r)|(1<<b))
			})
		}
	}
}

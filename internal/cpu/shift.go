package cpu

import "fmt"

func init() {
	for reg := uint8(0); reg < 8; reg++ {
		r := reg
		DefineInstructionCB(0x20+r, fmt.Sprintf("SLA %s", regNames[r]), func(c *CPU) {
			value := c.get8(r)
			carry := value&0x80 != 0
			result := value << 1
			c.set8(r, result)
			c.setFlags(result == 0, false, false, carry)
		})
		DefineInstructionCB(0x28+r, fmt.Sprintf("SRA %s", regNames[r]), func(c *CPU) {
			value := c.get8(r)
			carry := value&0x01 != 0
			result := value&0x80 | value>>1
			c.set8(r, result)
			c.setFlags(result == 0, false, false, carry)
		})
		DefineInstructionCB(0x38+r, fmt.Sprintf("SRL %s", regNames[r]), func(c *CPU) {
			value := c.get8(r)
			carry := value&0x01 != 0
			result := value >> 1
			c.set8(r, result)
			c.setFlags(result == 0, false, false, carry)
		})
	}
}

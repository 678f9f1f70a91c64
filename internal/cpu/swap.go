package cpu

import "fmt"

func init() {
	for reg := uint8(0); reg < 8; reg++ {
		r := reg
		DefineInstructionCB(0x30+r, fmt.Sprintf("SWAP %s", regNames[r]), func(c *CPU) {
			value := c.get8(r)
			result := value<<4 | value>>4
			c.set8(r, result)
			c.setFlags(result == 0, false, false, false)
		})
	}
}

package cpu

// the standard 3-bit register encoding shared by LD r,r', the 8-bit
// ALU block, and every CB-prefixed opcode: 0-5 are B,C,D,E,H,L, 6 is
// (HL), 7 is A.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (c *CPU) regPointer(code uint8) *Register {
	switch code {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic("cpu: regPointer called with (HL) code")
}

// get8 reads the register or memory operand named by a standard 3-bit
// code, ticking a memory access for code 6 ((HL)).
func (c *CPU) get8(code uint8) uint8 {
	if code == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.regPointer(code)
}

// set8 writes the register or memory operand named by code.
func (c *CPU) set8(code uint8, value uint8) {
	if code == 6 {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.regPointer(code) = value
}

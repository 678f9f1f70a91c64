package cpu

// Instruction is a decoded opcode handler. Handlers read their own
// operands (via readOperand/readOperand16) and tick their own memory
// accesses; they do not receive pre-fetched arguments.
type Instruction struct {
	name string
	fn   func(*CPU)
}

var InstructionSet [256]Instruction
var InstructionSetCB [256]Instruction

// DefineInstruction registers fn as the handler for a primary opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn}
}

// DefineInstructionCB registers fn as the handler for a CB-prefixed
// opcode.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

// disallowedOpcodes have no defined behavior on real hardware; a real
// CPU locks up when it fetches one. We log a warning each time one
// executes and treat it as a NOP rather than emulate the lockup,
// matching the hardware's keep-running-with-garbage posture for
// illegal opcodes.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})

	DefineInstruction(0x10, "STOP", func(c *CPU) {
		c.readOperand() // STOP's second byte, conventionally 0x00
		c.mode = ModeStop
	})

	DefineInstruction(0x76, "HALT", func(c *CPU) {
		switch {
		case c.ime:
			c.mode = ModeHalt
		case c.irq.HasPending():
			c.mode = ModeHaltBug
		default:
			c.mode = ModeHaltDI
		}
	})

	DefineInstruction(0xF3, "DI", func(c *CPU) { c.ime = false })
	DefineInstruction(0xFB, "EI", func(c *CPU) { c.mode = ModeEnableIME })

	DefineInstruction(0x27, "DAA", func(c *CPU) {
		if !c.isFlagSet(FlagSubtract) {
			if c.isFlagSet(FlagCarry) || c.A > 0x99 {
				c.A += 0x60
				c.setFlag(FlagCarry)
			}
			if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
				c.A += 0x06
			}
		} else {
			if c.isFlagSet(FlagCarry) {
				c.A -= 0x60
			}
			if c.isFlagSet(FlagHalfCarry) {
				c.A -= 0x06
			}
		}
		c.shouldZeroFlag(c.A)
		c.clearFlag(FlagHalfCarry)
	})

	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})

	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	for _, opcode := range disallowedOpcodes {
		op := opcode
		DefineInstruction(op, "disallowed", func(c *CPU) {
			c.log.Warnf("cpu: illegal opcode 0x%02X at 0x%04X, ignoring", op, c.PC-1)
		})
	}
}

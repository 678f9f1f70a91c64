package mmu

import "github.com/ashgrove/dmgcore/internal/interrupts"

// ppuRegisters holds the plain-storage LCD registers. LCDC, SCY, SCX,
// LYC, WY, WX, BGP, OBP0 and OBP1 are simple read/write bytes the
// program configures; LY and the mode/coincidence bits of STAT are
// instead set by the PPU itself (LY once per scanline, the mode on each
// mode transition), via the accessor methods below rather than through
// the normal bus write path.
type ppuRegisters struct {
	lcdc uint8
	stat uint8 // bits 0-1 mode, bit 2 coincidence; bits 3-6 interrupt-source enables
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	wy   uint8
	wx   uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
}

// Interrupts exposes the interrupt controller so the PPU can request
// VBlank and STAT interrupts directly, the same way Timer and Joypad
// do.
func (b *Bus) Interrupts() *interrupts.Controller { return b.irq }

// LCDC, SCY, SCX, LYC, WY, WX, BGP, OBP0 and OBP1 expose the plain
// registers to the PPU: it reads LCDC on every dot and the scroll,
// window and palette registers when it renders a scanline.
func (b *Bus) LCDC() uint8 { return b.ppuRegs.lcdc }
func (b *Bus) SCY() uint8  { return b.ppuRegs.scy }
func (b *Bus) SCX() uint8  { return b.ppuRegs.scx }
func (b *Bus) LYC() uint8  { return b.ppuRegs.lyc }
func (b *Bus) WY() uint8   { return b.ppuRegs.wy }
func (b *Bus) WX() uint8   { return b.ppuRegs.wx }
func (b *Bus) BGP() uint8  { return b.ppuRegs.bgp }
func (b *Bus) OBP0() uint8 { return b.ppuRegs.obp0 }
func (b *Bus) OBP1() uint8 { return b.ppuRegs.obp1 }

// LY returns the current scanline, as last set by the PPU.
func (b *Bus) LY() uint8 { return b.ppuRegs.ly }

// SetLY is called by the PPU once per scanline. It does not itself
// raise the LYC coincidence interrupt; SetSTATMode does, since the
// hardware re-evaluates coincidence on every mode transition.
func (b *Bus) SetLY(v uint8) { b.ppuRegs.ly = v }

// StatMode returns the current PPU mode (bits 0-1 of STAT).
func (b *Bus) StatMode() uint8 { return b.ppuRegs.stat & 0x03 }

// SetStatMode updates STAT's mode bits and the LY==LYC coincidence
// bit, and requests a STAT interrupt if the newly entered mode (or
// the coincidence flag) has its corresponding interrupt source
// enabled.
func (b *Bus) SetStatMode(mode uint8) {
	s := &b.ppuRegs
	s.stat = s.stat&0xFC | mode&0x03

	coincidence := s.ly == s.lyc
	if coincidence {
		s.stat |= 1 << 2
	} else {
		s.stat &^= 1 << 2
	}

	fire := false
	switch mode {
	case 0:
		fire = s.stat&(1<<3) != 0
	case 1:
		fire = s.stat&(1<<4) != 0
	case 2:
		fire = s.stat&(1<<5) != 0
	}
	if coincidence && s.stat&(1<<6) != 0 {
		fire = true
	}
	if fire {
		b.irq.Request(interrupts.STAT)
	}
}

func (b *Bus) readStat() uint8 {
	return b.ppuRegs.stat | 0x80
}

func (b *Bus) writeStat(v uint8) {
	// bits 0-2 are hardware-driven, only the interrupt-source enables
	// (bits 3-6) are writable by the program.
	b.ppuRegs.stat = b.ppuRegs.stat&0x07 | v&0x78
}

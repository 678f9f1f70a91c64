package mmu

// readIO and writeIO implement the 0xFF00-0xFF7F register trap table:
// each address either delegates to the owning component (Joypad,
// Serial, Timer, Interrupts) or reads/writes plain storage (PPU
// registers, audio registers).
func (b *Bus) readIO(addr uint16) uint8 {
	if addr >= 0xFF10 && addr <= 0xFF26 {
		return b.audio[addr-0xFF10]
	}
	if addr >= 0xFF30 && addr <= 0xFF3F {
		return b.wave[addr-0xFF30]
	}

	switch addr {
	case 0xFF00:
		return b.joypad.ReadJOYP()
	case 0xFF01:
		return b.serial.ReadSB()
	case 0xFF02:
		return b.serial.ReadSC()
	case 0xFF04:
		return b.timer.ReadDIV()
	case 0xFF05:
		return b.timer.ReadTIMA()
	case 0xFF06:
		return b.timer.ReadTMA()
	case 0xFF07:
		return b.timer.ReadTAC()
	case 0xFF0F:
		return b.irq.ReadIF()
	case 0xFF40:
		return b.ppuRegs.lcdc
	case 0xFF41:
		return b.readStat()
	case 0xFF42:
		return b.ppuRegs.scy
	case 0xFF43:
		return b.ppuRegs.scx
	case 0xFF44:
		return b.ppuRegs.ly
	case 0xFF45:
		return b.ppuRegs.lyc
	case 0xFF46:
		return 0xFF // DMA source register is write-only on hardware
	case 0xFF47:
		return b.ppuRegs.bgp
	case 0xFF48:
		return b.ppuRegs.obp0
	case 0xFF49:
		return b.ppuRegs.obp1
	case 0xFF4A:
		return b.ppuRegs.wy
	case 0xFF4B:
		return b.ppuRegs.wx
	default:
		b.warnUnimplemented(addr)
		return 0xFF
	}
}

// warnUnimplemented logs the first access to an I/O address this Bus
// has no handler for. Hardware leaves such registers reading 0xFF and
// ignoring writes; we additionally log once per address to surface
// unsupported register use during development.
func (b *Bus) warnUnimplemented(addr uint16) {
	if b.unimplementedWarned[addr] {
		return
	}
	b.unimplementedWarned[addr] = true
	b.log.Warnf("mmu: unimplemented I/O register 0xFF%02X", addr&0xFF)
}

func (b *Bus) writeIO(addr uint16, value uint8) {
	if addr >= 0xFF10 && addr <= 0xFF26 {
		b.audio[addr-0xFF10] = value
		return
	}
	if addr >= 0xFF30 && addr <= 0xFF3F {
		b.wave[addr-0xFF30] = value
		return
	}

	switch addr {
	case 0xFF00:
		b.joypad.WriteJOYP(value)
	case 0xFF01:
		b.serial.WriteSB(value)
	case 0xFF02:
		b.serial.WriteSC(value)
	case 0xFF04:
		b.timer.WriteDIV(value)
	case 0xFF05:
		b.timer.WriteTIMA(value)
	case 0xFF06:
		b.timer.WriteTMA(value)
	case 0xFF07:
		b.timer.WriteTAC(value)
	case 0xFF0F:
		b.irq.WriteIF(value)
	case 0xFF40:
		b.ppuRegs.lcdc = value
	case 0xFF41:
		b.writeStat(value)
	case 0xFF42:
		b.ppuRegs.scy = value
	case 0xFF43:
		b.ppuRegs.scx = value
	case 0xFF44:
		// LY is read-only; writes are ignored.
	case 0xFF45:
		b.ppuRegs.lyc = value
	case 0xFF46:
		b.dma.start(value)
	case 0xFF47:
		b.ppuRegs.bgp = value
	case 0xFF48:
		b.ppuRegs.obp0 = value
	case 0xFF49:
		b.ppuRegs.obp1 = value
	case 0xFF4A:
		b.ppuRegs.wy = value
	case 0xFF4B:
		b.ppuRegs.wx = value
	default:
		b.warnUnimplemented(addr)
	}
}

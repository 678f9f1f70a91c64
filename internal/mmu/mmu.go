// Package mmu implements the Game Boy's 64KiB memory bus: region
// routing, the echo-RAM alias, the I/O register trap table, and the
// DMA lockout described in spec.md §4.2.
package mmu

import (
	"github.com/ashgrove/dmgcore/internal/cartridge"
	"github.com/ashgrove/dmgcore/internal/interrupts"
	"github.com/ashgrove/dmgcore/internal/joypad"
	"github.com/ashgrove/dmgcore/internal/ram"
	"github.com/ashgrove/dmgcore/internal/serial"
	"github.com/ashgrove/dmgcore/internal/timer"
	"github.com/ashgrove/dmgcore/pkg/log"
)

// Bus is the single owner of every Game Boy memory region. The CPU and
// PPU hold a back-reference to it rather than owning memory
// themselves, per spec.md §9's "shared mutable bus" design note.
type Bus struct {
	cart *cartridge.Cartridge

	vram [0x2000]byte
	oam  [0xA0]byte
	wram [0x2000]byte // banks 0 and 1, contiguous: 0xC000-0xDFFF
	hram ram.RAM

	irq     *interrupts.Controller
	timer   *timer.Controller
	joypad  *joypad.Controller
	serial  *serial.Controller
	ppuRegs ppuRegisters
	audio   [0x30]byte // NR10-NR52 and unused gaps; storage only, no synthesis
	wave    [0x10]byte // wave pattern RAM, 0xFF30-0xFF3F

	dma dmaState

	log log.Logger

	unimplementedWarned map[uint16]bool
}

// New returns a Bus wired to the given components. Bus does not own
// the PPU directly (the scheduler ticks CPU, Timer, DMA and PPU
// independently), but it does own the registers the PPU reads and
// writes each tick.
func New(cart *cartridge.Cartridge, irq *interrupts.Controller, t *timer.Controller, jp *joypad.Controller, sr *serial.Controller, logger log.Logger) *Bus {
	if logger == nil {
		logger = log.NewNull()
	}
	return &Bus{
		cart:                cart,
		hram:                *ram.New(0x7F),
		irq:                 irq,
		timer:               t,
		joypad:              jp,
		serial:              sr,
		log:                 logger,
		unimplementedWarned: make(map[uint16]bool),
	}
}

// Read reads a byte from addr. observe=true means the access is
// program-visible (subject to DMA lockout); observe=false is a
// diagnostic read that bypasses it.
func (b *Bus) Read(addr uint16, observe bool) uint8 {
	if observe && b.dma.active() && !inHRAM(addr) {
		return 0xFF
	}
	return b.rawRead(addr)
}

// Write writes value to addr, subject to the same DMA-lockout rule as
// Read.
func (b *Bus) Write(addr uint16, value uint8, observe bool) {
	if observe && b.dma.active() && !inHRAM(addr) {
		return
	}
	b.rawWrite(addr, value)
}

// Read16 and Write16 compose two byte accesses in little-endian order.
func (b *Bus) Read16(addr uint16, observe bool) uint16 {
	lo := b.Read(addr, observe)
	hi := b.Read(addr+1, observe)
	return uint16(hi)<<8 | uint16(lo)
}

func (b *Bus) Write16(addr uint16, value uint16, observe bool) {
	b.Write(addr, uint8(value), observe)
	b.Write(addr+1, uint8(value>>8), observe)
}

func inHRAM(addr uint16) bool {
	return addr >= 0xFF80 && addr <= 0xFFFE
}

func (b *Bus) rawRead(addr uint16) uint8 {
	switch {
	case addr <= 0x3FFF:
		return b.cart.ReadROMBank0(addr)
	case addr <= 0x7FFF:
		return b.cart.ReadROMBankN(addr)
	case addr <= 0x9FFF:
		return b.vram[addr-0x8000]
	case addr <= 0xBFFF:
		return b.cart.ReadRAM(addr - 0xA000)
	case addr <= 0xDFFF:
		return b.wram[addr-0xC000]
	case addr <= 0xFDFF: // echo RAM: true alias of 0xC000-0xDDFF
		return b.wram[addr-0xE000]
	case addr <= 0xFE9F:
		return b.oam[addr-0xFE00]
	case addr <= 0xFEFF: // forbidden region
		return 0x00
	case addr <= 0xFF7F:
		return b.readIO(addr)
	case addr <= 0xFFFE:
		return b.hram.Read(addr - 0xFF80)
	default: // 0xFFFF
		return b.irq.ReadIE()
	}
}

func (b *Bus) rawWrite(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF: // RAM enable: mapper protocol out of scope, ignored
	case addr <= 0x3FFF:
		b.cart.SelectROMBank(value)
	case addr <= 0x5FFF:
		b.cart.SelectRAMBank(value)
	case addr <= 0x7FFF: // banking-mode select: out of scope, ignored
	case addr <= 0x9FFF:
		b.vram[addr-0x8000] = value
	case addr <= 0xBFFF:
		b.cart.WriteRAM(addr-0xA000, value)
	case addr <= 0xDFFF:
		b.wram[addr-0xC000] = value
	case addr <= 0xFDFF:
		b.wram[addr-0xE000] = value
	case addr <= 0xFE9F:
		b.oam[addr-0xFE00] = value
	case addr <= 0xFEFF: // forbidden region, writes dropped
	case addr <= 0xFF7F:
		b.writeIO(addr, value)
	case addr <= 0xFFFE:
		b.hram.Write(addr-0xFF80, value)
	default: // 0xFFFF
		b.irq.WriteIE(value)
	}
}

// TickDMA advances the DMA state machine by one T-cycle. Every fourth
// call (once per M-cycle) it copies one byte directly into OAM,
// bypassing the lockout that would otherwise apply to a normal bus
// write.
func (b *Bus) TickDMA() {
	if src, ok := b.dma.tick(); ok {
		b.oam[b.dma.offset()] = b.rawRead(src)
	}
}

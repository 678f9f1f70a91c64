package ppu

import (
	"testing"

	"github.com/ashgrove/dmgcore/internal/interrupts"
)

// fakeBus is a minimal stand-in for *mmu.Bus, holding just the
// registers and VRAM the PPU touches.
type fakeBus struct {
	vram [0x2000]uint8
	lcdc, scy, scx, ly, lyc, wy, wx, bgp, obp0, obp1 uint8
	stat uint8
	irq  *interrupts.Controller
}

func newFakeBus() *fakeBus {
	return &fakeBus{lcdc: 0x91, irq: interrupts.NewController()} // LCD+BG+tiledata-unsigned on
}

func (b *fakeBus) Read(addr uint16, observe bool) uint8 {
	if addr >= 0x8000 && addr <= 0x9FFF {
		return b.vram[addr-0x8000]
	}
	return 0xFF
}
func (b *fakeBus) LCDC() uint8       { return b.lcdc }
func (b *fakeBus) SCY() uint8        { return b.scy }
func (b *fakeBus) SCX() uint8        { return b.scx }
func (b *fakeBus) LY() uint8         { return b.ly }
func (b *fakeBus) SetLY(v uint8)     { b.ly = v }
func (b *fakeBus) LYC() uint8        { return b.lyc }
func (b *fakeBus) WY() uint8         { return b.wy }
func (b *fakeBus) WX() uint8         { return b.wx }
func (b *fakeBus) BGP() uint8        { return b.bgp }
func (b *fakeBus) OBP0() uint8       { return b.obp0 }
func (b *fakeBus) OBP1() uint8       { return b.obp1 }
func (b *fakeBus) StatMode() uint8   { return b.stat & 0x03 }
func (b *fakeBus) SetStatMode(m uint8) {
	b.stat = b.stat&0xFC | m&0x03
	if b.ly == b.lyc {
		b.stat |= 1 << 2
	} else {
		b.stat &^= 1 << 2
	}
}
func (b *fakeBus) Interrupts() *interrupts.Controller { return b.irq }

func TestScanlineTimingIsDotsPerLine(t *testing.T) {
	bus := newFakeBus()
	p := New(bus)

	for i := 0; i < dotsPerLine; i++ {
		p.Tick()
	}

	if bus.ly != 1 {
		t.Fatalf("LY = %d after 456 dots, want 1", bus.ly)
	}
}

func TestModeSequenceWithinAScanline(t *testing.T) {
	bus := newFakeBus()
	p := New(bus)

	if bus.StatMode() != ModeOAM {
		t.Fatalf("initial mode = %d, want ModeOAM", bus.StatMode())
	}

	for i := 0; i < oamScanDots; i++ {
		p.Tick()
	}
	if bus.StatMode() != ModeDraw {
		t.Fatalf("mode after %d dots = %d, want ModeDraw", oamScanDots, bus.StatMode())
	}

	for i := 0; i < drawDots; i++ {
		p.Tick()
	}
	if bus.StatMode() != ModeHBlank {
		t.Fatalf("mode after oam+draw dots = %d, want ModeHBlank", bus.StatMode())
	}
}

func TestVBlankSpansTenScanlinesAndRequestsInterrupt(t *testing.T) {
	bus := newFakeBus()
	bus.irq.Enable = 0x1F
	p := New(bus)

	for i := 0; i < dotsPerLine*ScreenHeight; i++ {
		p.Tick()
	}

	if bus.StatMode() != ModeVBlank {
		t.Fatalf("mode at LY=144 = %d, want ModeVBlank", bus.StatMode())
	}
	if !bus.irq.HasPending() {
		t.Fatalf("VBlank interrupt not requested entering VBlank")
	}

	for i := 0; i < dotsPerLine*10; i++ {
		p.Tick()
	}
	if bus.ly != 0 || bus.StatMode() != ModeOAM {
		t.Fatalf("LY/mode after full VBlank = %d/%d, want 0/ModeOAM", bus.ly, bus.StatMode())
	}
}

func TestFrameReadyFiresOncePerFrame(t *testing.T) {
	bus := newFakeBus()
	p := New(bus)

	for i := 0; i < dotsPerLine*ScreenHeight; i++ {
		p.Tick()
	}

	if !p.FrameReady() {
		t.Fatalf("FrameReady false at start of VBlank, want true")
	}
	if p.FrameReady() {
		t.Fatalf("FrameReady true on second call, want it to clear after first read")
	}
}

func TestTileDataAddrSignedAndUnsignedModes(t *testing.T) {
	// LCDC bit 4 clear: signed addressing from 0x9000.
	if got := tileDataAddr(0x00, 0x00); got != 0x9000 {
		t.Fatalf("signed mode tile 0 addr = %04X, want 9000", got)
	}
	if got := tileDataAddr(0x00, 0x80); got != 0x8800 {
		t.Fatalf("signed mode tile 0x80 addr = %04X, want 8800", got)
	}
	// LCDC bit 4 set: unsigned addressing from 0x8000.
	if got := tileDataAddr(0x10, 0x00); got != 0x8000 {
		t.Fatalf("unsigned mode tile 0 addr = %04X, want 8000", got)
	}
	if got := tileDataAddr(0x10, 0xFF); got != 0x8FF0 {
		t.Fatalf("unsigned mode tile 0xFF addr = %04X, want 8FF0", got)
	}
}

func TestTileRowPixelExtractionMSBFirst(t *testing.T) {
	// low=0b10000000, high=0b00000000 -> pixel 0 (leftmost) has low
	// bit 1, high bit 0 -> color index 1.
	tr := tileRow{low: 0x80, high: 0x00}
	if got := tr.pixel(0, false); got != 1 {
		t.Fatalf("pixel(0) = %d, want 1", got)
	}
	if got := tr.pixel(7, false); got != 0 {
		t.Fatalf("pixel(7) = %d, want 0", got)
	}
}

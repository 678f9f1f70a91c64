package mmu

import (
	"testing"

	"github.com/ashgrove/dmgcore/internal/cartridge"
	"github.com/ashgrove/dmgcore/internal/interrupts"
	"github.com/ashgrove/dmgcore/internal/joypad"
	"github.com/ashgrove/dmgcore/internal/serial"
	"github.com/ashgrove/dmgcore/internal/timer"
)

// minimalROM builds a 32KiB ROM image with just enough of a header to
// parse: non-color, no RAM, 2 banks.
func minimalROM() []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:0x144], "TEST")
	rom[0x143] = 0x00 // not color-only
	rom[0x147] = 0x00 // ROM only
	rom[0x148] = 0x00 // 2 banks
	rom[0x149] = 0x00 // no RAM
	return rom
}

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	cart, err := cartridge.New(minimalROM(), nil)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	irq := interrupts.NewController()
	tm := timer.NewController(irq)
	jp := joypad.NewController(irq)
	sr := serial.NewController(irq)
	return New(cart, irq, tm, jp, sr, nil)
}

func TestWRAMReadWrite(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xC123, 0x42, true)
	if got := b.Read(0xC123, true); got != 0x42 {
		t.Fatalf("WRAM read = %02X, want 42", got)
	}
}

func TestEchoRAMAliasesWRAMBothDirections(t *testing.T) {
	b := newTestBus(t)

	b.Write(0xC100, 0xAB, true)
	if got := b.Read(0xE100, true); got != 0xAB {
		t.Fatalf("echo read = %02X, want AB", got)
	}

	b.Write(0xE200, 0xCD, true)
	if got := b.Read(0xC200, true); got != 0xCD {
		t.Fatalf("WRAM read after echo write = %02X, want CD", got)
	}
}

func TestHRAMReadWrite(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFF85, 0x7A, true)
	if got := b.Read(0xFF85, true); got != 0x7A {
		t.Fatalf("HRAM read = %02X, want 7A", got)
	}
}

func TestDIVResetsOnAnyWrite(t *testing.T) {
	b := newTestBus(t)
	for i := 0; i < 300; i++ {
		b.timer.Tick()
	}
	if b.Read(0xFF04, true) == 0 {
		t.Fatalf("DIV is 0 before write, test is not exercising anything")
	}
	b.Write(0xFF04, 0xFF, true)
	if got := b.Read(0xFF04, true); got != 0 {
		t.Fatalf("DIV after write = %02X, want 0", got)
	}
}

// DMA: writing the source page to 0xFF46 starts a 160 M-cycle (640
// T-cycle) transfer from source*0x100 into OAM; during the transfer
// any non-HRAM read returns 0xFF (spec scenario 6).
func TestDMATransfer(t *testing.T) {
	b := newTestBus(t)
	for i := 0; i < 160; i++ {
		b.Write(0xC100+uint16(i), uint8(i), true)
	}

	b.Write(0xFF46, 0xC1, true)

	if got := b.Read(0xC000, true); got != 0xFF {
		t.Fatalf("read during DMA = %02X, want FF (locked out)", got)
	}

	for i := 0; i < 640; i++ {
		b.TickDMA()
	}

	if b.dma.active() {
		t.Fatalf("DMA still active after 640 T-cycles")
	}
	for i := 0; i < 160; i++ {
		if got := b.oam[i]; got != uint8(i) {
			t.Fatalf("OAM[%d] = %02X, want %02X", i, got, i)
		}
	}
}

func TestDMALockoutAllowsHRAM(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFF80, 0x11, true)
	b.Write(0xFF46, 0xC1, true)

	b.Write(0xFF81, 0x22, true)
	if got := b.Read(0xFF80, true); got != 0x11 {
		t.Fatalf("HRAM read during DMA = %02X, want 11 (not locked out)", got)
	}
	if got := b.Read(0xFF81, true); got != 0x22 {
		t.Fatalf("HRAM write during DMA didn't take effect: got %02X, want 22", got)
	}
}

func TestIFReadBitsForcedHigh(t *testing.T) {
	b := newTestBus(t)
	b.irq.WriteIF(0x01)
	if got := b.irq.ReadIF(); got&0xE0 != 0xE0 {
		t.Fatalf("IF bits 5-7 = %03b, want all set", got>>5)
	}
}

func TestForbiddenRegionReadsZeroWritesIgnored(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFEA0, 0x55, true)
	if got := b.Read(0xFEA0, true); got != 0x00 {
		t.Fatalf("forbidden region read = %02X, want 0", got)
	}
}

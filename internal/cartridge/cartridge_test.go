package cartridge

import "testing"

func minimalROM(titleBytes string, colorOnly bool) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:0x144], titleBytes)
	if colorOnly {
		rom[0x143] = 0xC0
	}
	rom[0x147] = 0x00
	rom[0x148] = 0x00 // 2 banks
	rom[0x149] = 0x02 // 8 KiB RAM
	return rom
}

func TestNewRejectsColorOnlyCartridge(t *testing.T) {
	_, err := New(minimalROM("CGBGAME", true), nil)
	if err == nil {
		t.Fatalf("New accepted a color-only cartridge")
	}
}

func TestNewRejectsTruncatedHeader(t *testing.T) {
	_, err := New(make([]byte, 0x10), nil)
	if err == nil {
		t.Fatalf("New accepted a truncated ROM")
	}
}

func TestROMBankSwitching(t *testing.T) {
	rom := minimalROM("GAME", false)
	rom[0x4000] = 0xAA // bank 1, offset 0
	c, err := New(rom, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := c.ReadROMBankN(0x4000); got != 0xAA {
		t.Fatalf("bank 1 read = %02X, want AA", got)
	}

	c.SelectROMBank(0) // bank 0 is not selectable; hardware aliases it to 1
	if c.ReadROMBankN(0x4000) != 0xAA {
		t.Fatalf("selecting bank 0 did not alias to bank 1")
	}
}

func TestRAMReadWriteRoundTrip(t *testing.T) {
	c, err := New(minimalROM("GAME", false), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.WriteRAM(0x10, 0x99)
	if got := c.ReadRAM(0x10); got != 0x99 {
		t.Fatalf("RAM read = %02X, want 99", got)
	}
}

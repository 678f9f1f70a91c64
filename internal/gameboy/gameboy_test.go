package gameboy

import (
	"testing"

	"github.com/ashgrove/dmgcore/internal/ppu"
)

func minimalROM() []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:0x144], "TEST")
	rom[0x143] = 0x00
	rom[0x147] = 0x00
	rom[0x148] = 0x00
	rom[0x149] = 0x00
	// An infinite JP-to-self loop at the entry point, so RunFrame
	// terminates only by PPU frame completion, not by falling off a
	// zeroed ROM into undefined opcodes.
	rom[0x0100] = 0xC3 // JP a16
	rom[0x0101] = 0x00
	rom[0x0102] = 0x01
	return rom
}

func TestNewBuildsRunnableMachine(t *testing.T) {
	gb, err := New(minimalROM())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if gb.CPU.PC != 0x0100 {
		t.Fatalf("PC = %04X, want 0100", gb.CPU.PC)
	}
	if gb.Title() != "TEST" {
		t.Fatalf("Title = %q, want TEST", gb.Title())
	}
}

func TestRunFrameProducesAFullBuffer(t *testing.T) {
	gb, err := New(minimalROM())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	frame := gb.RunFrame()
	if len(frame) != ppu.ScreenHeight {
		t.Fatalf("frame has %d rows, want %d", len(frame), ppu.ScreenHeight)
	}
}

func TestJoypadPressRequestsInterrupt(t *testing.T) {
	gb, err := New(minimalROM())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	gb.Interrupts.WriteIE(0x1F)

	gb.PressButton(0) // ButtonA

	if !gb.Interrupts.HasPending() {
		t.Fatalf("pressing a button did not request the joypad interrupt")
	}
}

package display

import (
	"testing"
	"time"

	"github.com/ashgrove/dmgcore/internal/joypad"
)

func newTestRenderer() *TerminalRenderer {
	return &TerminalRenderer{
		lastSeen: make(map[joypad.Button]time.Time),
		active:   make(map[joypad.Button]bool),
	}
}

func TestPollInputReportsNewPress(t *testing.T) {
	r := newTestRenderer()
	r.lastSeen[joypad.ButtonRight] = time.Now()

	pressed, released := r.PollInput()

	if len(pressed) != 1 || pressed[0] != joypad.ButtonRight {
		t.Fatalf("pressed = %v, want [ButtonRight]", pressed)
	}
	if len(released) != 0 {
		t.Fatalf("released = %v, want none", released)
	}
}

func TestPollInputHeldButtonIsNotReportedAgain(t *testing.T) {
	r := newTestRenderer()
	r.lastSeen[joypad.ButtonRight] = time.Now()
	r.PollInput() // first poll: reports the press, marks it active

	r.lastSeen[joypad.ButtonRight] = time.Now() // a repeat event, well within keyTimeout
	pressed, released := r.PollInput()

	if len(pressed) != 0 {
		t.Fatalf("pressed = %v, want none (still held)", pressed)
	}
	if len(released) != 0 {
		t.Fatalf("released = %v, want none (still held)", released)
	}
}

// Without a repeat event within keyTimeout, a held button must be
// reported as released instead of staying stuck forever.
func TestPollInputReleasesAfterKeyTimeoutExpires(t *testing.T) {
	r := newTestRenderer()
	r.lastSeen[joypad.ButtonA] = time.Now()
	r.PollInput() // marks ButtonA active

	time.Sleep(keyTimeout + 20*time.Millisecond)
	pressed, released := r.PollInput()

	if len(pressed) != 0 {
		t.Fatalf("pressed = %v, want none", pressed)
	}
	if len(released) != 1 || released[0] != joypad.ButtonA {
		t.Fatalf("released = %v, want [ButtonA]", released)
	}
}

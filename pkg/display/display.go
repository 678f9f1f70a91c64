// Package display implements the host side of the emulator: turning
// completed PPU frames into pixels on a terminal, and terminal key
// presses into joypad input (spec.md §6).
package display

import "github.com/ashgrove/dmgcore/internal/joypad"

// Renderer is the interface gameboy.GameBoy's host loop drives: one
// call per completed frame, plus a way to learn which buttons are
// currently held and whether the user asked to quit.
type Renderer interface {
	// Present draws one frame of 2-bit shade values (0=lightest,
	// 3=darkest), 160x144, row-major.
	Present(frame [144][160]uint8) error
	// PollInput returns buttons newly pressed and newly released
	// since the last call.
	PollInput() (pressed, released []joypad.Button)
	// Closed reports whether the host window/terminal was closed.
	Closed() bool
	// SetTitle updates the window/terminal title, if supported.
	SetTitle(title string)
	// Close releases the renderer's resources.
	Close() error
}

// NullRenderer discards every frame and never reports input or
// closure. The CLI's --headless path does not use it; it runs frames
// without any renderer.
type NullRenderer struct{}

func (NullRenderer) Present([144][160]uint8) error                   { return nil }
func (NullRenderer) PollInput() (pressed, released []joypad.Button) { return nil, nil }
func (NullRenderer) Closed() bool                                    { return false }
func (NullRenderer) SetTitle(string)                                 {}
func (NullRenderer) Close() error                                    { return nil }

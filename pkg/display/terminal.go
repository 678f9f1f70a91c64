package display

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ashgrove/dmgcore/internal/joypad"
)

// shadeChars renders the four DMG shades, indexed 0 (lightest) to 3
// (darkest), by block-element density in a white foreground on black;
// each pixel is drawn as scaleX characters side by side.
var shadeChars = []rune{'█', '▓', '▒', ' '}

const (
	screenWidth  = 160
	screenHeight = 144
	scaleX       = 2

	// keyTimeout is how long a button is considered held after its
	// last key event. A plain terminal only delivers key-down events
	// (driven by the OS's key-repeat rate, typically well under this),
	// so a button is treated as released once no repeat arrives within
	// the timeout.
	keyTimeout = 100 * time.Millisecond
)

// TerminalRenderer draws frames into a tcell screen and maps arrow
// keys plus a/s/enter/backspace to the joypad's eight buttons.
type TerminalRenderer struct {
	screen tcell.Screen
	closed bool

	lastSeen map[joypad.Button]time.Time
	active   map[joypad.Button]bool
}

// NewTerminalRenderer initializes a tcell screen in the current
// terminal.
func NewTerminalRenderer() (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("display: initializing terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("display: initializing terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	return &TerminalRenderer{
		screen:   screen,
		lastSeen: make(map[joypad.Button]time.Time),
		active:   make(map[joypad.Button]bool),
	}, nil
}

// Present implements Renderer.
func (t *TerminalRenderer) Present(frame [screenHeight][screenWidth]uint8) error {
	t.drainEvents()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			char := shadeChars[frame[y][x]&0x03]
			for sx := 0; sx < scaleX; sx++ {
				t.screen.SetContent(x*scaleX+sx, y, char, nil, style)
			}
		}
	}
	t.screen.Show()
	return nil
}

// PollInput implements Renderer. It diffs each button's elapsed time
// since its last key event against keyTimeout to synthesize the
// release events the terminal never sends directly.
func (t *TerminalRenderer) PollInput() (pressed, released []joypad.Button) {
	now := time.Now()
	currentlyActive := make(map[joypad.Button]bool, len(t.lastSeen))

	for button, seen := range t.lastSeen {
		if now.Sub(seen) >= keyTimeout {
			delete(t.lastSeen, button)
			continue
		}
		currentlyActive[button] = true
		if !t.active[button] {
			pressed = append(pressed, button)
		}
	}

	for button := range t.active {
		if !currentlyActive[button] {
			released = append(released, button)
		}
	}

	t.active = currentlyActive
	return pressed, released
}

// Closed implements Renderer.
func (t *TerminalRenderer) Closed() bool { return t.closed }

// SetTitle implements Renderer. tcell has no window title to set in a
// plain terminal, so this writes the OSC 0 escape sequence, which sets
// the terminal window's title where the terminal emulator honors it.
func (t *TerminalRenderer) SetTitle(title string) {
	fmt.Printf("\033]0;%s\007", title)
}

// Close implements Renderer.
func (t *TerminalRenderer) Close() error {
	t.screen.Fini()
	return nil
}

func (t *TerminalRenderer) drainEvents() {
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.handleKey(ev)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *TerminalRenderer) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		t.closed = true
		return
	}

	button, ok := keyButton(ev)
	if !ok {
		return
	}
	t.lastSeen[button] = time.Now()
}

func keyButton(ev *tcell.EventKey) (joypad.Button, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return joypad.ButtonUp, true
	case tcell.KeyDown:
		return joypad.ButtonDown, true
	case tcell.KeyLeft:
		return joypad.ButtonLeft, true
	case tcell.KeyRight:
		return joypad.ButtonRight, true
	case tcell.KeyEnter:
		return joypad.ButtonStart, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return joypad.ButtonSelect, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return joypad.ButtonA, true
		case 's', 'S':
			return joypad.ButtonB, true
		}
	}
	return 0, false
}

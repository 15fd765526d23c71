// Package device samples terminal input into per-frame key state.
//
// Terminals report presses (and auto-repeats) but never key releases, so a
// key counts as held for a hold window after its last press. Mouse buttons
// are held until the terminal reports their release.
package device

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbeckham/rebind/internal/input"
)

// DefaultHold bridges the gap between a key press and the first auto-repeat
// on most terminals.
const DefaultHold = 500 * time.Millisecond

// Terminal is an input.Device fed by bubbletea messages. Events accumulate
// between frames and become visible when Advance closes the frame.
type Terminal struct {
	hold time.Duration

	until   map[input.Key]time.Time // key hold expiry
	buttons map[input.Key]bool      // mouse buttons down

	pending       map[input.Key]bool
	pendingScroll int

	held     map[input.Key]bool
	pressed  map[input.Key]bool
	released map[input.Key]bool
	scroll   int
}

// NewTerminal returns a device using hold as the key hold window. A
// non-positive hold selects DefaultHold.
func NewTerminal(hold time.Duration) *Terminal {
	if hold <= 0 {
		hold = DefaultHold
	}
	t := &Terminal{hold: hold}
	t.Reset()
	return t
}

// Reset forgets every held key and pending event.
func (t *Terminal) Reset() {
	t.until = map[input.Key]time.Time{}
	t.buttons = map[input.Key]bool{}
	t.pending = map[input.Key]bool{}
	t.pendingScroll = 0
	t.held = map[input.Key]bool{}
	t.pressed = map[input.Key]bool{}
	t.released = map[input.Key]bool{}
	t.scroll = 0
}

// Hold returns the key hold window.
func (t *Terminal) Hold() time.Duration {
	return t.hold
}

// Press records a key press at now.
func (t *Terminal) Press(k input.Key, now time.Time) {
	if k == input.KeyNone {
		return
	}
	t.pending[k] = true
	if k.IsMouse() {
		t.buttons[k] = true
		return
	}
	t.until[k] = now.Add(t.hold)
}

// Release ends a hold immediately.
func (t *Terminal) Release(k input.Key) {
	delete(t.buttons, k)
	delete(t.until, k)
}

// Scroll records wheel motion; positive is up.
func (t *Terminal) Scroll(delta int) {
	t.pendingScroll += delta
}

// HandleMsg feeds a bubbletea key or mouse message into the device. It
// reports whether the message was consumed.
func (t *Terminal) HandleMsg(msg tea.Msg, now time.Time) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := KeysFromMsg(msg)
		for _, k := range keys {
			t.Press(k, now)
		}
		return len(keys) > 0
	case tea.MouseMsg:
		return t.handleMouse(msg, now)
	}
	return false
}

func (t *Terminal) handleMouse(msg tea.MouseMsg, now time.Time) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		t.Scroll(1)
		return true
	case tea.MouseButtonWheelDown:
		t.Scroll(-1)
		return true
	}

	switch msg.Action {
	case tea.MouseActionPress:
		k, ok := mouseKey(msg.Button)
		if !ok {
			return false
		}
		t.Press(k, now)
		return true
	case tea.MouseActionRelease:
		k, ok := mouseKey(msg.Button)
		if !ok {
			// Some encodings omit the released button.
			for b := range t.buttons {
				t.Release(b)
			}
			return true
		}
		t.Release(k)
		return true
	}
	return false
}

// Advance closes the current frame at now.
func (t *Terminal) Advance(now time.Time) {
	held := make(map[input.Key]bool, len(t.until)+len(t.buttons)+len(t.pending))
	for k, expiry := range t.until {
		if now.Before(expiry) {
			held[k] = true
		} else {
			delete(t.until, k)
		}
	}
	for k := range t.buttons {
		held[k] = true
	}

	pressed := make(map[input.Key]bool, len(t.pending))
	for k := range t.pending {
		// A press always shows for at least one frame.
		held[k] = true
		if !t.held[k] {
			pressed[k] = true
		}
	}

	released := map[input.Key]bool{}
	for k := range t.held {
		if !held[k] {
			released[k] = true
		}
	}

	t.held = held
	t.pressed = pressed
	t.released = released
	t.scroll = sign(t.pendingScroll)

	t.pending = map[input.Key]bool{}
	t.pendingScroll = 0
}

func (t *Terminal) KeyHeld(k input.Key) bool     { return t.held[k] }
func (t *Terminal) KeyPressed(k input.Key) bool  { return t.pressed[k] }
func (t *Terminal) KeyReleased(k input.Key) bool { return t.released[k] }
func (t *Terminal) ScrollDelta() int             { return t.scroll }

// HeldKeys returns the keys held in the current frame.
func (t *Terminal) HeldKeys() []input.Key {
	keys := make([]input.Key, 0, len(t.held))
	for _, k := range input.Keys() {
		if t.held[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

var _ input.Device = (*Terminal)(nil)

package device

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbeckham/rebind/internal/input"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyPressHoldRelease(t *testing.T) {
	dev := NewTerminal(100 * time.Millisecond)

	dev.HandleMsg(runeMsg('w'), at(0))
	if dev.KeyHeld(input.KeyW) {
		t.Fatal("events must not be visible before Advance")
	}

	dev.Advance(at(10))
	if !dev.KeyPressed(input.KeyW) || !dev.KeyHeld(input.KeyW) {
		t.Fatal("expected W pressed and held on first frame")
	}

	dev.Advance(at(50))
	if dev.KeyPressed(input.KeyW) {
		t.Error("pressed edge must last one frame")
	}
	if !dev.KeyHeld(input.KeyW) {
		t.Error("expected W still held inside the hold window")
	}

	dev.Advance(at(150))
	if dev.KeyHeld(input.KeyW) {
		t.Error("expected W no longer held")
	}
	if !dev.KeyReleased(input.KeyW) {
		t.Error("expected W released edge")
	}

	dev.Advance(at(200))
	if dev.KeyReleased(input.KeyW) {
		t.Error("released edge must last one frame")
	}
}

func TestAutoRepeatKeepsHeldWithoutNewEdge(t *testing.T) {
	dev := NewTerminal(100 * time.Millisecond)

	dev.HandleMsg(runeMsg('w'), at(0))
	dev.Advance(at(10))
	dev.HandleMsg(runeMsg('w'), at(80))
	dev.Advance(at(90))
	if dev.KeyPressed(input.KeyW) {
		t.Error("repeat should not produce a new pressed edge")
	}
	dev.Advance(at(160))
	if !dev.KeyHeld(input.KeyW) {
		t.Error("repeat should extend the hold")
	}
}

func TestScrollIsPerFrame(t *testing.T) {
	dev := NewTerminal(0)
	dev.HandleMsg(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, at(0))
	dev.HandleMsg(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, at(1))
	dev.Advance(at(10))
	if dev.ScrollDelta() != 1 {
		t.Errorf("ScrollDelta() = %d, want 1", dev.ScrollDelta())
	}
	dev.Advance(at(20))
	if dev.ScrollDelta() != 0 {
		t.Errorf("ScrollDelta() = %d, want 0", dev.ScrollDelta())
	}
	dev.HandleMsg(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}, at(21))
	dev.Advance(at(30))
	if dev.ScrollDelta() != -1 {
		t.Errorf("ScrollDelta() = %d, want -1", dev.ScrollDelta())
	}
}

func TestMouseButtonHeldUntilRelease(t *testing.T) {
	dev := NewTerminal(50 * time.Millisecond)
	dev.HandleMsg(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, at(0))
	dev.Advance(at(10))
	if !dev.KeyPressed(input.KeyMouse0) {
		t.Fatal("expected Mouse0 pressed")
	}
	dev.Advance(at(500))
	if !dev.KeyHeld(input.KeyMouse0) {
		t.Error("mouse buttons ignore the hold window")
	}
	dev.HandleMsg(tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}, at(510))
	dev.Advance(at(520))
	if dev.KeyHeld(input.KeyMouse0) || !dev.KeyReleased(input.KeyMouse0) {
		t.Error("expected Mouse0 released")
	}
}

func TestDeviceDrivesMapper(t *testing.T) {
	dev := NewTerminal(100 * time.Millisecond)
	m := input.NewMapper(input.NewTable(), dev)

	dev.HandleMsg(tea.KeyMsg{Type: tea.KeyUp}, at(0))
	dev.HandleMsg(runeMsg(' '), at(0))
	dev.Advance(at(10))

	if m.Vertical() != 1 {
		t.Errorf("Vertical() = %v, want 1", m.Vertical())
	}
	if !m.IsPressed(input.Jump) {
		t.Error("expected Jump pressed")
	}
}

func TestKeysFromMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []input.Key
	}{
		{"letter", runeMsg('w'), []input.Key{input.KeyW}},
		{"upper letter", runeMsg('W'), []input.Key{input.KeyW, input.KeyLeftShift}},
		{"digit", runeMsg('1'), []input.Key{input.KeyAlpha1}},
		{"bang", runeMsg('!'), []input.Key{input.KeyAlpha1, input.KeyLeftShift}},
		{"backslash", runeMsg('\\'), []input.Key{input.KeyBackslash}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []input.Key{input.KeySpace}},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, []input.Key{input.KeyLeftArrow}},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlA}, []input.Key{input.KeyA, input.KeyLeftControl}},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}, Alt: true}, []input.Key{input.KeyD, input.KeyLeftAlt}},
		{"function", tea.KeyMsg{Type: tea.KeyF5}, []input.Key{input.KeyF5}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []input.Key{input.KeyTab}},
		{"unknown rune", runeMsg('é'), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeysFromMsg(tt.msg)
			if !slices.Equal(got, tt.want) {
				t.Errorf("KeysFromMsg() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControlFromMouse(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   input.Control
		wantOK bool
	}{
		{"wheel up", tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, input.ScrollUp(), true},
		{"wheel down", tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}, input.ScrollDown(), true},
		{"right press", tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, input.KeyControl(input.KeyMouse1), true},
		{"left release", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, input.Control{}, false},
		{"motion", tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}, input.Control{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ControlFromMouse(tt.msg)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ControlFromMouse() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResetClearsState(t *testing.T) {
	dev := NewTerminal(time.Second)
	dev.HandleMsg(runeMsg('a'), at(0))
	dev.Advance(at(1))
	dev.Reset()
	if dev.KeyHeld(input.KeyA) || len(dev.HeldKeys()) != 0 {
		t.Error("expected nothing held after Reset")
	}
}

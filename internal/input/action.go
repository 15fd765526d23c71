package input

import (
	"strconv"
	"strings"
)

// Action is an abstract input intent. Values are dense ordinals so a table can
// index arrays by them.
type Action int

const (
	Console Action = iota
	Up
	Down
	Left
	Right
	Jump
	Fire1
	Fire2
	SwitchWeapon1
	SwitchWeapon2

	numActions
)

var actionNames = [numActions]string{
	Console:       "Console",
	Up:            "Up",
	Down:          "Down",
	Left:          "Left",
	Right:         "Right",
	Jump:          "Jump",
	Fire1:         "Fire1",
	Fire2:         "Fire2",
	SwitchWeapon1: "SwitchWeapon1",
	SwitchWeapon2: "SwitchWeapon2",
}

func (a Action) String() string {
	if !a.Valid() {
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
	return actionNames[a]
}

// Valid reports whether a belongs to the fixed action set.
func (a Action) Valid() bool {
	return a >= 0 && a < numActions
}

// Actions returns every action in ordinal order.
func Actions() []Action {
	out := make([]Action, numActions)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ParseAction resolves an action name, ignoring case.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(i), nil
		}
	}
	return 0, &UnknownActionError{Name: name}
}

// Slot is one of the two binding positions of an action.
type Slot int

const (
	Primary Slot = iota
	Alternate

	numSlots
)

func (s Slot) String() string {
	switch s {
	case Primary:
		return "Primary"
	case Alternate:
		return "Alternate"
	default:
		return "Slot(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseSlot accepts "primary", "p", "alternate", "alt" and "a".
func ParseSlot(name string) (Slot, bool) {
	switch strings.ToLower(name) {
	case "primary", "p":
		return Primary, true
	case "alternate", "alt", "a":
		return Alternate, true
	}
	return 0, false
}

package input

import (
	"fmt"
	"log/slog"
)

// bindings holds the two slots of every action, indexed by ordinal.
type bindings [numActions][numSlots]Control

// defaultBindings is the built-in table. No two bound entries are equivalent.
var defaultBindings = bindings{
	Console:       {KeyControl(KeyBackslash), Unbound()},
	Up:            {KeyControl(KeyW), KeyControl(KeyUpArrow)},
	Down:          {KeyControl(KeyS), KeyControl(KeyDownArrow)},
	Left:          {KeyControl(KeyA), KeyControl(KeyLeftArrow)},
	Right:         {KeyControl(KeyD), KeyControl(KeyRightArrow)},
	Jump:          {KeyControl(KeySpace), Unbound()},
	Fire1:         {KeyControl(KeyMouse0), KeyControl(KeyLeftControl)},
	Fire2:         {KeyControl(KeyMouse1), KeyControl(KeyLeftAlt)},
	SwitchWeapon1: {ScrollUp(), KeyControl(KeyAlpha1)},
	SwitchWeapon2: {ScrollDown(), KeyControl(KeyAlpha2)},
}

// DefaultControls returns the built-in (primary, alternate) pair for a.
func DefaultControls(a Action) (Control, Control, error) {
	if !a.Valid() {
		return Control{}, Control{}, &UnknownActionError{Name: a.String()}
	}
	return defaultBindings[a][Primary], defaultBindings[a][Alternate], nil
}

type listener struct {
	id uint64
	fn func()
}

// Table maps every action to a primary and an alternate control and keeps
// bound controls unique across all slots.
//
// A Table is not safe for concurrent use; it is meant to be owned by the
// frame-update goroutine.
type Table struct {
	bindings  bindings
	version   uint64
	listeners []listener
	nextID    uint64
}

// NewTable returns a table populated with the default bindings.
func NewTable() *Table {
	return &Table{bindings: defaultBindings}
}

// Subscribe registers fn to run after every successful mutation. Callbacks run
// synchronously, in registration order, before the mutator returns. The
// returned func removes the subscription.
func (t *Table) Subscribe(fn func()) (unsubscribe func()) {
	t.nextID++
	id := t.nextID
	t.listeners = append(t.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range t.listeners {
			if l.id == id {
				t.listeners = append(t.listeners[:i:i], t.listeners[i+1:]...)
				return
			}
		}
	}
}

// Version increments on every successful mutation.
func (t *Table) Version() uint64 {
	return t.version
}

func (t *Table) changed() {
	t.version++
	listeners := make([]listener, len(t.listeners))
	copy(listeners, t.listeners)
	for _, l := range listeners {
		l.fn()
	}
}

// LoadDefaults replaces every binding with its built-in default.
func (t *Table) LoadDefaults() {
	t.bindings = defaultBindings
	t.changed()
}

// Controls returns the (primary, alternate) pair bound to a.
func (t *Table) Controls(a Action) (Control, Control, error) {
	if !a.Valid() {
		return Control{}, Control{}, &UnknownActionError{Name: a.String()}
	}
	return t.bindings[a][Primary], t.bindings[a][Alternate], nil
}

// Control returns the control in one slot of a, or the unbound sentinel when a
// or s is out of range.
func (t *Table) Control(a Action, s Slot) Control {
	if !a.Valid() || s < 0 || s >= numSlots {
		return Unbound()
	}
	return t.bindings[a][s]
}

// Find returns the slot holding a control equivalent to c.
func (t *Table) Find(c Control) (Action, Slot, bool) {
	for a := range t.bindings {
		for s := range t.bindings[a] {
			if t.bindings[a][s].Equivalent(c) {
				return Action(a), Slot(s), true
			}
		}
	}
	return 0, 0, false
}

// Rebind assigns c to slot s of action a. Any other slot already holding an
// equivalent control is cleared to unbound first, so rebinding never fails.
// Scroll controls are stored without a key. Out-of-range actions or slots are
// ignored.
func (t *Table) Rebind(a Action, s Slot, c Control) {
	if !a.Valid() || s < 0 || s >= numSlots {
		return
	}
	c = c.canonical()
	if !c.IsUnbound() {
		for pa := range t.bindings {
			for ps := range t.bindings[pa] {
				if t.bindings[pa][ps].Equivalent(c) {
					if Action(pa) != a || Slot(ps) != s {
						slog.Debug("Binding demoted", "action", Action(pa), "slot", Slot(ps), "control", c.Label())
					}
					t.bindings[pa][ps] = Unbound()
				}
			}
		}
	}
	t.bindings[a][s] = c
	t.changed()
}

// Serialize emits the table as [action, primary, alternate] triples in ordinal
// order.
func (t *Table) Serialize() []string {
	tokens := make([]string, 0, int(numActions)*3)
	for a := range t.bindings {
		tokens = append(tokens,
			Action(a).String(),
			t.bindings[a][Primary].String(),
			t.bindings[a][Alternate].String(),
		)
	}
	return tokens
}

// Deserialize replaces the table with the triples in tokens. Triples may come
// in any order. Actions missing from tokens get their defaults. If two slots
// claim the same control, the one listed first keeps it and the other is
// cleared. On error the table is left unchanged and no notification fires.
func (t *Table) Deserialize(tokens []string) error {
	if len(tokens)%3 != 0 {
		return &MalformedControlError{
			Reason: fmt.Sprintf("token count %d is not a multiple of 3", len(tokens)),
		}
	}

	var next bindings
	var listed [numActions]bool
	order := make([]Action, 0, numActions)

	for i := 0; i < len(tokens); i += 3 {
		a, err := ParseAction(tokens[i])
		if err != nil {
			return err
		}
		if listed[a] {
			return &DuplicateActionError{Action: a}
		}
		primary, err := ParseControl(tokens[i+1])
		if err != nil {
			return fmt.Errorf("parsing %s primary: %w", a, err)
		}
		alternate, err := ParseControl(tokens[i+2])
		if err != nil {
			return fmt.Errorf("parsing %s alternate: %w", a, err)
		}
		next[a] = [numSlots]Control{primary, alternate}
		listed[a] = true
		order = append(order, a)
	}

	for _, a := range Actions() {
		if !listed[a] {
			next[a] = defaultBindings[a]
			order = append(order, a)
		}
	}

	next.dedupe(order)
	t.bindings = next
	t.changed()
	return nil
}

// dedupe clears every slot whose control was already claimed by an earlier
// slot, walking actions in the given order.
func (b *bindings) dedupe(order []Action) {
	claimed := make([]Control, 0, int(numActions)*int(numSlots))
	for _, a := range order {
		for s := range b[a] {
			c := b[a][s]
			if c.IsUnbound() {
				continue
			}
			taken := false
			for _, other := range claimed {
				if other.Equivalent(c) {
					taken = true
					break
				}
			}
			if taken {
				slog.Warn("Duplicate binding cleared on load", "action", a, "slot", Slot(s), "control", c.Label())
				b[a][s] = Unbound()
				continue
			}
			claimed = append(claimed, c)
		}
	}
}

// Equal reports whether t and other bind every action slot to the same
// controls.
func (t *Table) Equal(other *Table) bool {
	return t.bindings == other.bindings
}

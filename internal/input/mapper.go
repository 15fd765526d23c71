package input

// Device is the host input backend sampled once per frame.
type Device interface {
	KeyHeld(k Key) bool
	KeyPressed(k Key) bool
	KeyReleased(k Key) bool
	// ScrollDelta is the wheel motion this frame: -1, 0 or +1.
	ScrollDelta() int
}

// Mapper answers action queries by reading controls from a Table and their
// state from a Device.
type Mapper struct {
	Table  *Table
	Device Device
}

// NewMapper returns a Mapper over t and d.
func NewMapper(t *Table, d Device) *Mapper {
	return &Mapper{Table: t, Device: d}
}

// IsHeld is true while either bound key is down. Scroll controls are never
// held.
func (m *Mapper) IsHeld(a Action) bool {
	return m.any(a, func(c Control) bool {
		return c.Method == MethodKey && m.Device.KeyHeld(c.Key)
	})
}

// IsPressed is true on the frame either bound control activates.
func (m *Mapper) IsPressed(a Action) bool {
	return m.any(a, func(c Control) bool {
		switch c.Method {
		case MethodKey:
			return m.Device.KeyPressed(c.Key)
		default:
			return m.Device.ScrollDelta() == c.scrollDir()
		}
	})
}

// IsReleased is true on the frame either bound key goes up. Scroll controls
// have no release edge.
func (m *Mapper) IsReleased(a Action) bool {
	return m.any(a, func(c Control) bool {
		return c.Method == MethodKey && m.Device.KeyReleased(c.Key)
	})
}

func (m *Mapper) any(a Action, pred func(Control) bool) bool {
	primary, alternate, err := m.Table.Controls(a)
	if err != nil {
		return false
	}
	for _, c := range [...]Control{primary, alternate} {
		if c.IsUnbound() {
			continue
		}
		if pred(c) {
			return true
		}
	}
	return false
}

// Axis folds two opposed actions into -1, 0 or +1. Holding both cancels out.
func (m *Mapper) Axis(negative, positive Action) float64 {
	axis := 0.0
	if m.IsHeld(positive) {
		axis++
	}
	if m.IsHeld(negative) {
		axis--
	}
	return axis
}

// Horizontal is Axis(Left, Right).
func (m *Mapper) Horizontal() float64 {
	return m.Axis(Left, Right)
}

// Vertical is Axis(Down, Up).
func (m *Mapper) Vertical() float64 {
	return m.Axis(Down, Up)
}

package input

import (
	"fmt"
	"strconv"
	"strings"
)

// ControlMethod is the kind of physical control bound to a slot.
type ControlMethod uint8

const (
	MethodKey ControlMethod = iota
	MethodScrollUp
	MethodScrollDown
)

// Wire names. Both scroll directions share "MouseScroll" on the wire and are
// told apart by the scroll field.
const (
	methodKeyName         = "Key"
	methodScrollName      = "MouseScroll"
	methodScrollUpName    = "MouseScrollUp"
	methodScrollDownName  = "MouseScrollDown"
	scrollDirUp           = 1
	scrollDirDown         = -1
	controlFieldSeparator = " "
)

func (m ControlMethod) String() string {
	switch m {
	case MethodKey:
		return methodKeyName
	case MethodScrollUp:
		return methodScrollUpName
	case MethodScrollDown:
		return methodScrollDownName
	default:
		return "ControlMethod(" + strconv.Itoa(int(m)) + ")"
	}
}

// Control is a physical control: a key (or mouse button), or a scroll-wheel
// direction. The zero value is the unbound sentinel.
type Control struct {
	Method ControlMethod
	Key    Key // only meaningful for MethodKey
}

// KeyControl returns a control bound to k.
func KeyControl(k Key) Control {
	return Control{Method: MethodKey, Key: k}
}

// ScrollUp returns the scroll-wheel-up control.
func ScrollUp() Control {
	return Control{Method: MethodScrollUp}
}

// ScrollDown returns the scroll-wheel-down control.
func ScrollDown() Control {
	return Control{Method: MethodScrollDown}
}

// Unbound returns the "no binding" sentinel.
func Unbound() Control {
	return Control{Method: MethodKey, Key: KeyNone}
}

// IsUnbound reports whether c is the "no binding" sentinel.
func (c Control) IsUnbound() bool {
	return c.Method == MethodKey && c.Key == KeyNone
}

// IsScroll reports whether c is a scroll-wheel direction.
func (c Control) IsScroll() bool {
	return c.Method == MethodScrollUp || c.Method == MethodScrollDown
}

// Equivalent reports whether c and other name the same physical control.
// The unbound sentinel is never equivalent to anything, itself included.
func (c Control) Equivalent(other Control) bool {
	if c.IsUnbound() || other.IsUnbound() {
		return false
	}
	if c.Method != other.Method {
		return false
	}
	if c.Method == MethodKey {
		return c.Key == other.Key
	}
	return true
}

// canonical drops the key carried by a scroll control, which the wire form
// does not keep.
func (c Control) canonical() Control {
	if c.IsScroll() {
		return Control{Method: c.Method}
	}
	return c
}

// scrollDir returns the wire scroll field for c.
func (c Control) scrollDir() int {
	switch c.Method {
	case MethodScrollUp:
		return scrollDirUp
	case MethodScrollDown:
		return scrollDirDown
	default:
		return 0
	}
}

// String encodes c as "<method> <key> <scroll>", the persisted form.
func (c Control) String() string {
	method := methodKeyName
	key := c.Key
	if c.IsScroll() {
		method = methodScrollName
		key = KeyNone
	}
	return method + controlFieldSeparator + key.String() + controlFieldSeparator + strconv.Itoa(c.scrollDir())
}

// Label is the short human form shown in UIs ("W", "Scroll Up", "-").
func (c Control) Label() string {
	switch {
	case c.IsUnbound():
		return "-"
	case c.Method == MethodScrollUp:
		return "Scroll Up"
	case c.Method == MethodScrollDown:
		return "Scroll Down"
	default:
		return c.Key.String()
	}
}

// ParseControl decodes a token produced by Control.String. All three fields
// are required; the key field must name a known key and the scroll field must
// be an integer even when the method ignores them.
func ParseControl(token string) (Control, error) {
	fields := strings.Split(token, controlFieldSeparator)
	if len(fields) != 3 {
		return Control{}, &MalformedControlError{
			Token:  token,
			Reason: fmt.Sprintf("expected 3 fields, got %d", len(fields)),
		}
	}

	key, ok := ParseKey(fields[1])
	if !ok {
		return Control{}, &MalformedControlError{Token: token, Reason: fmt.Sprintf("unknown key %q", fields[1])}
	}
	dir, err := strconv.Atoi(fields[2])
	if err != nil {
		return Control{}, &MalformedControlError{Token: token, Reason: "scroll field is not an integer", Err: err}
	}

	switch {
	case strings.EqualFold(fields[0], methodKeyName):
		return KeyControl(key), nil
	case strings.EqualFold(fields[0], methodScrollUpName):
		return ScrollUp(), nil
	case strings.EqualFold(fields[0], methodScrollDownName):
		return ScrollDown(), nil
	case strings.EqualFold(fields[0], methodScrollName):
		switch dir {
		case scrollDirUp:
			return ScrollUp(), nil
		case scrollDirDown:
			return ScrollDown(), nil
		}
		return Control{}, &MalformedControlError{Token: token, Reason: fmt.Sprintf("scroll direction %d is not 1 or -1", dir)}
	}
	return Control{}, &MalformedControlError{Token: token, Reason: fmt.Sprintf("unknown control method %q", fields[0])}
}

// ParseControlName resolves the short names typed by a user: a key name,
// "scrollup", "scrolldown" or "none".
func ParseControlName(name string) (Control, bool) {
	switch strings.ToLower(name) {
	case "none", "-":
		return Unbound(), true
	case "scrollup", "wheelup":
		return ScrollUp(), true
	case "scrolldown", "wheeldown":
		return ScrollDown(), true
	}
	key, ok := ParseKey(name)
	if !ok {
		return Control{}, false
	}
	return KeyControl(key), true
}

package input

import "strings"

// Key identifies a physical key or mouse button known to the host backend.
type Key uint16

// Key vocabulary. KeyNone is the unbound sentinel.
const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyAlpha0
	KeyAlpha1
	KeyAlpha2
	KeyAlpha3
	KeyAlpha4
	KeyAlpha5
	KeyAlpha6
	KeyAlpha7
	KeyAlpha8
	KeyAlpha9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeySpace
	KeyReturn
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUpArrow
	KeyDownArrow
	KeyLeftArrow
	KeyRightArrow

	KeyBackslash
	KeySlash
	KeyComma
	KeyPeriod
	KeySemicolon
	KeyQuote
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackQuote

	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt

	KeyMouse0
	KeyMouse1
	KeyMouse2

	numKeys
)

var keyNames = [numKeys]string{
	KeyNone: "None",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	KeyAlpha0: "Alpha0", KeyAlpha1: "Alpha1", KeyAlpha2: "Alpha2", KeyAlpha3: "Alpha3",
	KeyAlpha4: "Alpha4", KeyAlpha5: "Alpha5", KeyAlpha6: "Alpha6", KeyAlpha7: "Alpha7",
	KeyAlpha8: "Alpha8", KeyAlpha9: "Alpha9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	KeySpace:     "Space",
	KeyReturn:    "Return",
	KeyEscape:    "Escape",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",

	KeyUpArrow:    "UpArrow",
	KeyDownArrow:  "DownArrow",
	KeyLeftArrow:  "LeftArrow",
	KeyRightArrow: "RightArrow",

	KeyBackslash:    "Backslash",
	KeySlash:        "Slash",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySemicolon:    "Semicolon",
	KeyQuote:        "Quote",
	KeyMinus:        "Minus",
	KeyEquals:       "Equals",
	KeyLeftBracket:  "LeftBracket",
	KeyRightBracket: "RightBracket",
	KeyBackQuote:    "BackQuote",

	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",

	KeyMouse0: "Mouse0",
	KeyMouse1: "Mouse1",
	KeyMouse2: "Mouse2",
}

// String returns the canonical key name used in serialized bindings.
func (k Key) String() string {
	if k >= numKeys {
		return "Key(?)"
	}
	return keyNames[k]
}

// Valid reports whether k belongs to the vocabulary.
func (k Key) Valid() bool {
	return k < numKeys
}

// IsMouse reports whether k is a mouse button.
func (k Key) IsMouse() bool {
	return k >= KeyMouse0 && k <= KeyMouse2
}

// ParseKey resolves a key name, ignoring case.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key(k), true
		}
	}
	return KeyNone, false
}

// Keys returns every key in the vocabulary except KeyNone.
func Keys() []Key {
	keys := make([]Key, 0, numKeys-1)
	for k := KeyNone + 1; k < numKeys; k++ {
		keys = append(keys, k)
	}
	return keys
}

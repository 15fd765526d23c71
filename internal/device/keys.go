package device

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbeckham/rebind/internal/input"
)

// runeKeys maps printable runes that are not letters or digits.
var runeKeys = map[rune]input.Key{
	' ':  input.KeySpace,
	'\\': input.KeyBackslash,
	'|':  input.KeyBackslash,
	'/':  input.KeySlash,
	'?':  input.KeySlash,
	',':  input.KeyComma,
	'<':  input.KeyComma,
	'.':  input.KeyPeriod,
	'>':  input.KeyPeriod,
	';':  input.KeySemicolon,
	':':  input.KeySemicolon,
	'\'': input.KeyQuote,
	'"':  input.KeyQuote,
	'-':  input.KeyMinus,
	'_':  input.KeyMinus,
	'=':  input.KeyEquals,
	'+':  input.KeyEquals,
	'[':  input.KeyLeftBracket,
	'{':  input.KeyLeftBracket,
	']':  input.KeyRightBracket,
	'}':  input.KeyRightBracket,
	'`':  input.KeyBackQuote,
	'~':  input.KeyBackQuote,
}

// shiftedRunes are produced with shift held on a US layout.
const shiftedRunes = `|?<>:"_+{}~!@#$%^&*()`

// digitShift maps shifted digit-row symbols back to their digit key.
var digitShift = map[rune]input.Key{
	'!': input.KeyAlpha1, '@': input.KeyAlpha2, '#': input.KeyAlpha3,
	'$': input.KeyAlpha4, '%': input.KeyAlpha5, '^': input.KeyAlpha6,
	'&': input.KeyAlpha7, '*': input.KeyAlpha8, '(': input.KeyAlpha9,
	')': input.KeyAlpha0,
}

var typeKeys = map[tea.KeyType][]input.Key{
	tea.KeySpace:     {input.KeySpace},
	tea.KeyEnter:     {input.KeyReturn},
	tea.KeyEsc:       {input.KeyEscape},
	tea.KeyTab:       {input.KeyTab},
	tea.KeyShiftTab:  {input.KeyTab, input.KeyLeftShift},
	tea.KeyBackspace: {input.KeyBackspace},
	tea.KeyDelete:    {input.KeyDelete},
	tea.KeyInsert:    {input.KeyInsert},
	tea.KeyHome:      {input.KeyHome},
	tea.KeyEnd:       {input.KeyEnd},
	tea.KeyPgUp:      {input.KeyPageUp},
	tea.KeyPgDown:    {input.KeyPageDown},

	tea.KeyUp:    {input.KeyUpArrow},
	tea.KeyDown:  {input.KeyDownArrow},
	tea.KeyLeft:  {input.KeyLeftArrow},
	tea.KeyRight: {input.KeyRightArrow},

	tea.KeyShiftUp:    {input.KeyUpArrow, input.KeyLeftShift},
	tea.KeyShiftDown:  {input.KeyDownArrow, input.KeyLeftShift},
	tea.KeyShiftLeft:  {input.KeyLeftArrow, input.KeyLeftShift},
	tea.KeyShiftRight: {input.KeyRightArrow, input.KeyLeftShift},

	tea.KeyCtrlUp:    {input.KeyUpArrow, input.KeyLeftControl},
	tea.KeyCtrlDown:  {input.KeyDownArrow, input.KeyLeftControl},
	tea.KeyCtrlLeft:  {input.KeyLeftArrow, input.KeyLeftControl},
	tea.KeyCtrlRight: {input.KeyRightArrow, input.KeyLeftControl},

	tea.KeyCtrlBackslash: {input.KeyBackslash, input.KeyLeftControl},

	tea.KeyF1: {input.KeyF1}, tea.KeyF2: {input.KeyF2}, tea.KeyF3: {input.KeyF3},
	tea.KeyF4: {input.KeyF4}, tea.KeyF5: {input.KeyF5}, tea.KeyF6: {input.KeyF6},
	tea.KeyF7: {input.KeyF7}, tea.KeyF8: {input.KeyF8}, tea.KeyF9: {input.KeyF9},
	tea.KeyF10: {input.KeyF10}, tea.KeyF11: {input.KeyF11}, tea.KeyF12: {input.KeyF12},
}

// KeysFromMsg translates a bubbletea key message into vocabulary keys. The
// first element is the main key; any following elements are modifiers the
// terminal reported alongside it. It returns nil for keys outside the
// vocabulary.
func KeysFromMsg(msg tea.KeyMsg) []input.Key {
	var keys []input.Key

	switch {
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return nil
		}
		k, shifted, ok := runeKey(msg.Runes[0])
		if !ok {
			return nil
		}
		keys = append(keys, k)
		if shifted {
			keys = append(keys, input.KeyLeftShift)
		}
	case typeKeys[msg.Type] != nil:
		keys = append(keys, typeKeys[msg.Type]...)
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		keys = append(keys, input.KeyA+input.Key(msg.Type-tea.KeyCtrlA), input.KeyLeftControl)
	default:
		return nil
	}

	if msg.Alt {
		keys = append(keys, input.KeyLeftAlt)
	}
	return keys
}

// KeyFromMsg returns the main key of msg.
func KeyFromMsg(msg tea.KeyMsg) (input.Key, bool) {
	keys := KeysFromMsg(msg)
	if len(keys) == 0 {
		return input.KeyNone, false
	}
	return keys[0], true
}

func runeKey(r rune) (k input.Key, shifted bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return input.KeyA + input.Key(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return input.KeyA + input.Key(r-'A'), true, true
	case r >= '0' && r <= '9':
		return input.KeyAlpha0 + input.Key(r-'0'), false, true
	}
	if k, ok := digitShift[r]; ok {
		return k, true, true
	}
	if k, ok := runeKeys[r]; ok {
		return k, strings.ContainsRune(shiftedRunes, r), true
	}
	return input.KeyNone, false, false
}

// ControlFromMouse maps a mouse press or wheel event to a bindable control.
func ControlFromMouse(msg tea.MouseMsg) (input.Control, bool) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return input.ScrollUp(), true
	case tea.MouseButtonWheelDown:
		return input.ScrollDown(), true
	}
	if msg.Action != tea.MouseActionPress {
		return input.Control{}, false
	}
	if k, ok := mouseKey(msg.Button); ok {
		return input.KeyControl(k), true
	}
	return input.Control{}, false
}

// Mouse buttons are numbered 0 left, 1 right, 2 middle.
func mouseKey(b tea.MouseButton) (input.Key, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.KeyMouse0, true
	case tea.MouseButtonRight:
		return input.KeyMouse1, true
	case tea.MouseButtonMiddle:
		return input.KeyMouse2, true
	}
	return input.KeyNone, false
}

package input

import "fmt"

// UnknownActionError reports an action name or identifier outside the fixed
// action set.
type UnknownActionError struct {
	Name string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q", e.Name)
}

// MalformedControlError reports a control token that does not follow the
// "<method> <key> <scroll>" grammar.
type MalformedControlError struct {
	Token  string
	Reason string
	Err    error
}

func (e *MalformedControlError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("malformed control: %s", e.Reason)
	}
	return fmt.Sprintf("malformed control %q: %s", e.Token, e.Reason)
}

func (e *MalformedControlError) Unwrap() error { return e.Err }

// DuplicateActionError reports an action listed more than once in a
// serialized table.
type DuplicateActionError struct {
	Action Action
}

func (e *DuplicateActionError) Error() string {
	return fmt.Sprintf("action %s listed more than once", e.Action)
}

// Package console implements the in-game command console: a log buffer, an
// open/closed state that can be locked, and a registry of named commands
// dispatched from a typed line.
package console

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
)

// Command is a named console command.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Execute(args []string)
}

// Console holds the command registry, the log buffer and the open state.
// It is not safe for concurrent use.
type Console struct {
	commands []Command
	log      strings.Builder
	open     bool
	locked   bool

	toggled []func(open bool)
	entered []func(line string)
}

// New returns a closed console holding cmds. A locked console ignores
// Open, Close and Toggle until unlocked.
func New(locked bool, cmds ...Command) *Console {
	c := &Console{locked: locked}
	c.Register(cmds...)
	return c
}

// Register appends commands to the registry. Earlier registrations win when
// names collide.
func (c *Console) Register(cmds ...Command) {
	c.commands = append(c.commands, cmds...)
}

// Commands returns the registry in registration order.
func (c *Console) Commands() []Command {
	return c.commands
}

// Lookup returns the first command named name.
func (c *Console) Lookup(name string) (Command, bool) {
	for _, cmd := range c.commands {
		if cmd.Name() == name {
			return cmd, true
		}
	}
	return nil, false
}

// OnToggle registers fn to run whenever the console opens or closes.
func (c *Console) OnToggle(fn func(open bool)) {
	c.toggled = append(c.toggled, fn)
}

// OnInput registers fn to run with every submitted line, after case folding.
func (c *Console) OnInput(fn func(line string)) {
	c.entered = append(c.entered, fn)
}

func (c *Console) Lock()   { c.locked = true }
func (c *Console) Unlock() { c.locked = false }

func (c *Console) IsLocked() bool { return c.locked }
func (c *Console) IsOpen() bool   { return c.open }

// Toggle opens a closed console or closes an open one.
func (c *Console) Toggle() {
	if c.open {
		c.Close()
	} else {
		c.Open()
	}
}

func (c *Console) Open() {
	if c.locked || c.open {
		return
	}
	c.open = true
	c.notifyToggle()
}

func (c *Console) Close() {
	if c.locked || !c.open {
		return
	}
	c.open = false
	c.notifyToggle()
}

func (c *Console) notifyToggle() {
	for _, fn := range c.toggled {
		fn(c.open)
	}
}

// PrintLine appends message and a newline to the log.
func (c *Console) PrintLine(message string) {
	c.log.WriteString(message)
	c.log.WriteString("\n")
}

// PrintString appends message to the log.
func (c *Console) PrintString(message string) {
	c.log.WriteString(message)
}

// SetText replaces the whole log.
func (c *Console) SetText(text string) {
	c.log.Reset()
	c.log.WriteString(text)
}

// Text returns the whole log.
func (c *Console) Text() string {
	return c.log.String()
}

// Lines returns the log split into lines, without a trailing empty line.
func (c *Console) Lines() []string {
	text := strings.TrimSuffix(c.log.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Tokenize case-folds line and splits it on runs of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(cases.Fold().String(line))
}

// Submit runs a typed line: it folds case, echoes the line into the log, then
// executes the first command whose name matches the first token. It reports
// whether a command ran; unknown names are ignored.
func (c *Console) Submit(line string) bool {
	line = cases.Fold().String(line)
	for _, fn := range c.entered {
		fn(line)
	}
	c.PrintLine("> " + line)

	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return false
	}
	cmd, ok := c.Lookup(tokens[0])
	if !ok {
		slog.Debug("Console command not found", "name", tokens[0])
		return false
	}
	slog.Info("Console command", "name", tokens[0], "args", tokens[1:])
	cmd.Execute(tokens[1:])
	return true
}

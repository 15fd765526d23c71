package console

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sahilm/fuzzy"

	"github.com/jbeckham/rebind/internal/input"
)

// Store persists the serialized binding table.
type Store interface {
	// Load returns nil, nil when nothing has been saved yet.
	Load() ([]string, error)
	Save(tokens []string) error
}

// Install registers the built-in commands on c. store may be nil, in which
// case save and load are not registered.
func Install(c *Console, table *input.Table, store Store) {
	c.Register(
		&helpCommand{console: c},
		&bindsCommand{console: c, table: table},
		&bindCommand{console: c, table: table},
		&unbindCommand{console: c, table: table},
		&resetCommand{console: c, table: table},
		&exportCommand{console: c, table: table, write: clipboard.WriteAll},
		&clearCommand{console: c},
	)
	if store != nil {
		c.Register(
			&saveCommand{console: c, table: table, store: store},
			&loadCommand{console: c, table: table, store: store},
		)
	}
}

// --- help ---

type helpCommand struct {
	console *Console
}

func (h *helpCommand) Name() string        { return "help" }
func (h *helpCommand) Description() string { return "Print command information" }
func (h *helpCommand) Usage() string       { return "help [command_name]" }

func (h *helpCommand) Execute(args []string) {
	if len(args) == 0 {
		for _, cmd := range h.console.Commands() {
			h.console.PrintLine(cmd.Name())
		}
		return
	}
	if cmd, ok := h.console.Lookup(args[0]); ok {
		h.console.PrintLine(cmd.Usage())
		h.console.PrintLine(cmd.Description())
		return
	}

	names := make([]string, len(h.console.Commands()))
	for i, cmd := range h.console.Commands() {
		names[i] = cmd.Name()
	}
	matches := fuzzy.Find(args[0], names)
	if len(matches) == 0 {
		h.console.PrintLine("no such command: " + args[0])
		return
	}
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	h.console.PrintLine("no such command: " + args[0] + " (did you mean " + strings.Join(suggestions, ", ") + "?)")
}

// --- binds ---

type bindsCommand struct {
	console *Console
	table   *input.Table
}

func (b *bindsCommand) Name() string        { return "binds" }
func (b *bindsCommand) Description() string { return "List every action with its primary and alternate control" }
func (b *bindsCommand) Usage() string       { return "binds" }

func (b *bindsCommand) Execute(args []string) {
	for _, a := range input.Actions() {
		p, alt, _ := b.table.Controls(a)
		b.console.PrintLine(fmt.Sprintf("%-14s %-12s %s", a, p.Label(), alt.Label()))
	}
}

// --- bind ---

type bindCommand struct {
	console *Console
	table   *input.Table
}

func (b *bindCommand) Name() string        { return "bind" }
func (b *bindCommand) Description() string { return "Bind a control to an action slot, clearing it elsewhere" }
func (b *bindCommand) Usage() string       { return "bind <action> <primary|alternate> <key|scrollup|scrolldown|none>" }

func (b *bindCommand) Execute(args []string) {
	if len(args) != 3 {
		b.console.PrintLine("usage: " + b.Usage())
		return
	}
	a, err := input.ParseAction(args[0])
	if err != nil {
		b.console.PrintLine(err.Error())
		return
	}
	slot, ok := input.ParseSlot(args[1])
	if !ok {
		b.console.PrintLine("unknown slot: " + args[1])
		return
	}
	c, ok := input.ParseControlName(args[2])
	if !ok {
		b.console.PrintLine("unknown control: " + args[2])
		return
	}

	if prev, prevSlot, found := b.table.Find(c); found && (prev != a || prevSlot != slot) {
		b.console.PrintLine(fmt.Sprintf("%s cleared from %s %s", c.Label(), prev, prevSlot))
	}
	b.table.Rebind(a, slot, c)
	b.console.PrintLine(fmt.Sprintf("%s %s = %s", a, slot, c.Label()))
}

// --- unbind ---

type unbindCommand struct {
	console *Console
	table   *input.Table
}

func (u *unbindCommand) Name() string        { return "unbind" }
func (u *unbindCommand) Description() string { return "Clear one or both slots of an action" }
func (u *unbindCommand) Usage() string       { return "unbind <action> [primary|alternate]" }

func (u *unbindCommand) Execute(args []string) {
	if len(args) < 1 || len(args) > 2 {
		u.console.PrintLine("usage: " + u.Usage())
		return
	}
	a, err := input.ParseAction(args[0])
	if err != nil {
		u.console.PrintLine(err.Error())
		return
	}
	slots := []input.Slot{input.Primary, input.Alternate}
	if len(args) == 2 {
		slot, ok := input.ParseSlot(args[1])
		if !ok {
			u.console.PrintLine("unknown slot: " + args[1])
			return
		}
		slots = []input.Slot{slot}
	}
	for _, s := range slots {
		u.table.Rebind(a, s, input.Unbound())
	}
	u.console.PrintLine(fmt.Sprintf("%s unbound", a))
}

// --- reset ---

type resetCommand struct {
	console *Console
	table   *input.Table
}

func (r *resetCommand) Name() string        { return "reset" }
func (r *resetCommand) Description() string { return "Restore the default bindings" }
func (r *resetCommand) Usage() string       { return "reset" }

func (r *resetCommand) Execute(args []string) {
	r.table.LoadDefaults()
	r.console.PrintLine("bindings reset to defaults")
}

// --- save / load ---

type saveCommand struct {
	console *Console
	table   *input.Table
	store   Store
}

func (s *saveCommand) Name() string        { return "save" }
func (s *saveCommand) Description() string { return "Write the current bindings to disk" }
func (s *saveCommand) Usage() string       { return "save" }

func (s *saveCommand) Execute(args []string) {
	if err := s.store.Save(s.table.Serialize()); err != nil {
		s.console.PrintLine("save failed: " + err.Error())
		return
	}
	s.console.PrintLine("bindings saved")
}

type loadCommand struct {
	console *Console
	table   *input.Table
	store   Store
}

func (l *loadCommand) Name() string        { return "load" }
func (l *loadCommand) Description() string { return "Replace the bindings with the saved ones" }
func (l *loadCommand) Usage() string       { return "load" }

func (l *loadCommand) Execute(args []string) {
	tokens, err := l.store.Load()
	if err != nil {
		l.console.PrintLine("load failed: " + err.Error())
		return
	}
	if tokens == nil {
		l.console.PrintLine("no saved bindings")
		return
	}
	if err := l.table.Deserialize(tokens); err != nil {
		l.console.PrintLine("load failed: " + err.Error())
		return
	}
	l.console.PrintLine("bindings loaded")
}

// --- export ---

type exportCommand struct {
	console *Console
	table   *input.Table
	write   func(string) error
}

func (e *exportCommand) Name() string        { return "export" }
func (e *exportCommand) Description() string { return "Copy the serialized bindings to the clipboard" }
func (e *exportCommand) Usage() string       { return "export" }

func (e *exportCommand) Execute(args []string) {
	text := strings.Join(e.table.Serialize(), "\n")
	if err := e.write(text); err != nil {
		e.console.PrintLine("clipboard unavailable")
		return
	}
	e.console.PrintLine("bindings copied to clipboard")
}

// --- clear ---

type clearCommand struct {
	console *Console
}

func (c *clearCommand) Name() string        { return "clear" }
func (c *clearCommand) Description() string { return "Clear the console log" }
func (c *clearCommand) Usage() string       { return "clear" }

func (c *clearCommand) Execute(args []string) {
	c.console.SetText("")
}

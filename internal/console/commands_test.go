package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/jbeckham/rebind/internal/input"
)

type memStore struct {
	tokens  []string
	saveErr error
	loadErr error
}

func (m *memStore) Load() ([]string, error) { return m.tokens, m.loadErr }

func (m *memStore) Save(tokens []string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tokens = append([]string(nil), tokens...)
	return nil
}

func setup(t *testing.T) (*Console, *input.Table, *memStore) {
	t.Helper()
	c := New(false)
	table := input.NewTable()
	store := &memStore{}
	Install(c, table, store)
	return c, table, store
}

func lastLine(c *Console) string {
	lines := c.Lines()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func TestBindCommand(t *testing.T) {
	c, table, _ := setup(t)

	if !c.Submit("bind jump primary w") {
		t.Fatal("bind did not run")
	}
	if got := table.Control(input.Jump, input.Primary); got != input.KeyControl(input.KeyW) {
		t.Errorf("Jump primary = %v, want W", got)
	}
	if !table.Control(input.Up, input.Primary).IsUnbound() {
		t.Error("expected Up primary demoted")
	}
	if !strings.Contains(c.Text(), "W cleared from Up Primary") {
		t.Errorf("log missing demotion notice:\n%s", c.Text())
	}
}

func TestBindScrollAndNone(t *testing.T) {
	c, table, _ := setup(t)

	c.Submit("bind fire1 alt scrollup")
	if got := table.Control(input.Fire1, input.Alternate); got != input.ScrollUp() {
		t.Errorf("Fire1 alternate = %v, want scroll up", got)
	}
	if !table.Control(input.SwitchWeapon1, input.Primary).IsUnbound() {
		t.Error("expected SwitchWeapon1 primary demoted")
	}

	c.Submit("bind jump p none")
	if !table.Control(input.Jump, input.Primary).IsUnbound() {
		t.Error("expected Jump primary unbound")
	}
}

func TestBindCommandErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"bind jump", "usage: bind"},
		{"bind crouch p c", `unknown action "crouch"`},
		{"bind jump middle c", "unknown slot: middle"},
		{"bind jump p notakey", "unknown control: notakey"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c, table, _ := setup(t)
			before := table.Version()
			c.Submit(tt.line)
			if !strings.Contains(lastLine(c), tt.want) {
				t.Errorf("last line = %q, want it to contain %q", lastLine(c), tt.want)
			}
			if table.Version() != before {
				t.Error("table changed on a rejected bind")
			}
		})
	}
}

func TestUnbindCommand(t *testing.T) {
	c, table, _ := setup(t)

	c.Submit("unbind up alternate")
	if !table.Control(input.Up, input.Alternate).IsUnbound() {
		t.Error("expected Up alternate unbound")
	}
	if table.Control(input.Up, input.Primary).IsUnbound() {
		t.Error("Up primary should be untouched")
	}

	c.Submit("unbind down")
	p, alt, _ := table.Controls(input.Down)
	if !p.IsUnbound() || !alt.IsUnbound() {
		t.Errorf("Down = %v/%v, want both unbound", p, alt)
	}
}

func TestResetCommand(t *testing.T) {
	c, table, _ := setup(t)
	c.Submit("bind jump p w")
	c.Submit("reset")
	if !table.Equal(input.NewTable()) {
		t.Error("expected defaults after reset")
	}
}

func TestSaveAndLoadCommands(t *testing.T) {
	c, table, store := setup(t)

	c.Submit("load")
	if lastLine(c) != "no saved bindings" {
		t.Errorf("load with empty store: %q", lastLine(c))
	}

	c.Submit("bind jump p j")
	c.Submit("save")
	if len(store.tokens) == 0 {
		t.Fatal("save wrote nothing")
	}

	c.Submit("reset")
	c.Submit("load")
	if got := table.Control(input.Jump, input.Primary); got != input.KeyControl(input.KeyJ) {
		t.Errorf("Jump primary after load = %v, want J", got)
	}
}

func TestLoadRejectsBadData(t *testing.T) {
	c, table, store := setup(t)
	store.tokens = []string{"Key W"}
	c.Submit("load")
	if !strings.HasPrefix(lastLine(c), "load failed:") {
		t.Errorf("last line = %q", lastLine(c))
	}
	if !table.Equal(input.NewTable()) {
		t.Error("table changed after failed load")
	}
}

func TestSaveFailure(t *testing.T) {
	c, _, store := setup(t)
	store.saveErr = errors.New("disk full")
	c.Submit("save")
	if lastLine(c) != "save failed: disk full" {
		t.Errorf("last line = %q", lastLine(c))
	}
}

func TestInstallWithoutStore(t *testing.T) {
	c := New(false)
	Install(c, input.NewTable(), nil)
	if _, ok := c.Lookup("save"); ok {
		t.Error("save registered without a store")
	}
	if _, ok := c.Lookup("bind"); !ok {
		t.Error("bind not registered")
	}
}

func TestHelpCommand(t *testing.T) {
	c, _, _ := setup(t)

	c.Submit("help")
	for _, name := range []string{"help", "binds", "bind", "unbind", "reset", "export", "clear", "save", "load"} {
		if !strings.Contains(c.Text(), "\n"+name+"\n") {
			t.Errorf("help listing missing %q", name)
		}
	}

	c.SetText("")
	c.Submit("help unbind")
	lines := c.Lines()
	if len(lines) != 3 || lines[1] != "unbind <action> [primary|alternate]" {
		t.Errorf("help unbind = %q", lines)
	}

	c.Submit("help bnd")
	if !strings.Contains(lastLine(c), "did you mean") || !strings.Contains(lastLine(c), "bind") {
		t.Errorf("expected suggestion, got %q", lastLine(c))
	}

	c.Submit("help zzz")
	if lastLine(c) != "no such command: zzz" {
		t.Errorf("last line = %q", lastLine(c))
	}
}

func TestBindsCommand(t *testing.T) {
	c, _, _ := setup(t)
	c.Submit("binds")
	lines := c.Lines()
	if len(lines) != 1+len(input.Actions()) {
		t.Fatalf("binds printed %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[2], "Up") || !strings.Contains(lines[2], "UpArrow") {
		t.Errorf("Up row = %q", lines[2])
	}
}

func TestExportCommand(t *testing.T) {
	c := New(false)
	table := input.NewTable()
	var copied string
	c.Register(&exportCommand{console: c, table: table, write: func(s string) error {
		copied = s
		return nil
	}})

	c.Submit("export")
	if copied != strings.Join(table.Serialize(), "\n") {
		t.Errorf("copied = %q", copied)
	}

	failing := &exportCommand{console: c, table: table, write: func(string) error { return errors.New("no display") }}
	failing.Execute(nil)
	if lastLine(c) != "clipboard unavailable" {
		t.Errorf("last line = %q", lastLine(c))
	}
}

func TestClearCommand(t *testing.T) {
	c, _, _ := setup(t)
	c.Submit("binds")
	c.Submit("clear")
	if c.Text() != "" {
		t.Errorf("Text() = %q after clear", c.Text())
	}
}

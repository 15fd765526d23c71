package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/rebind/internal/console"
	"github.com/jbeckham/rebind/internal/device"
	"github.com/jbeckham/rebind/internal/input"
)

// --- Messages ---

// frameMsg closes one input frame.
type frameMsg time.Time

// --- Modes ---

type mode int

const (
	modePlay mode = iota
	modeBindings
)

func (m mode) String() string {
	if m == modeBindings {
		return "Bindings"
	}
	return "Play"
}

// overlayAction identifies which edit the overlay result maps to.
type overlayAction int

const (
	overlayActionNone overlayAction = iota
	overlayActionRebind
	overlayActionReset
)

// Options configures a new App.
type Options struct {
	Table   *input.Table
	Console *console.Console // nil gets an unlocked console with the built-in commands
	Store   console.Store    // nil disables saving
	Hold    time.Duration    // key hold window, see device.NewTerminal
	Frame   time.Duration    // time between frames
	Clock   func() time.Time // nil uses time.Now
}

// --- App model ---

// App is the root bubbletea model for rebind.
type App struct {
	width  int
	height int
	ready  bool

	keys    KeyMap
	mode    mode
	frame   time.Duration
	now     func() time.Time
	table   *input.Table
	device  *device.Terminal
	mapper  *input.Mapper
	console *console.Console
	store   console.Store

	// changed is set by the table subscription and cleared once the
	// bindings view has been rebuilt.
	changed *bool
	unsaved bool

	arena    arena
	pane     consolePane
	bindings bindingsView

	overlay       overlay       // active overlay (nil = none)
	overlayTarget input.Action  // action the overlay is editing
	overlaySlot   input.Slot    // slot the overlay is editing
	overlayAction overlayAction // which edit the overlay is for

	flash      string // transient status message
	flashIsErr bool   // true if the flash is an error
}

// NewApp creates a new App model.
func NewApp(opts Options) App {
	if opts.Table == nil {
		opts.Table = input.NewTable()
	}
	if opts.Console == nil {
		opts.Console = console.New(false)
		console.Install(opts.Console, opts.Table, opts.Store)
	}
	if opts.Frame <= 0 {
		opts.Frame = time.Second / 30
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	dev := device.NewTerminal(opts.Hold)
	opts.Console.OnToggle(func(open bool) {
		// Keys typed into the prompt must not stay held in the arena.
		dev.Reset()
		slog.Debug("Console toggled", "open", open)
	})

	changed := new(bool)
	opts.Table.Subscribe(func() { *changed = true })

	return App{
		keys:     DefaultKeyMap(),
		frame:    opts.Frame,
		now:      opts.Clock,
		table:    opts.Table,
		device:   dev,
		mapper:   input.NewMapper(opts.Table, dev),
		console:  opts.Console,
		store:    opts.Store,
		changed:  changed,
		arena:    newArena(),
		pane:     newConsolePane(),
		bindings: newBindingsView(opts.Table),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.tick()
}

func (a App) tick() tea.Cmd {
	return tea.Tick(a.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.update(msg)
	app := model.(App)
	if *app.changed {
		*app.changed = false
		app.unsaved = true
		app.bindings.refresh(app.table)
	}
	return app, cmd
}

func (a App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.resize()

	case frameMsg:
		return a.handleFrame(time.Time(msg))

	case tea.MouseMsg:
		if a.overlay != nil {
			return a.updateOverlay(msg)
		}
		if a.mode == modePlay && !a.console.IsOpen() {
			a.device.HandleMsg(msg, a.now())
		}

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// handleFrame advances the device and, in play mode, the arena.
func (a App) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	a.device.Advance(now)
	if a.mode != modePlay || a.console.IsOpen() {
		return a, a.tick()
	}

	if a.mapper.IsPressed(input.Console) {
		if a.console.IsLocked() {
			a.flash = "Console is locked"
			a.flashIsErr = true
		} else {
			a.console.Open()
			a.resize()
			return a, tea.Batch(a.pane.prompt.Focus(), a.tick())
		}
	}

	a.arena.step(a.mapper, a.frame.Seconds())
	return a, a.tick()
}

// handleKey processes key input.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys always work
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	// If an overlay is active, route ALL keys to it
	if a.overlay != nil {
		return a.updateOverlay(msg)
	}

	if a.mode == modePlay && a.console.IsOpen() {
		return a.handleConsoleKey(msg)
	}

	if key.Matches(msg, a.keys.Mode) {
		return a.switchMode(), nil
	}

	if a.mode == modeBindings {
		return a.handleBindingsKey(msg)
	}

	a.flash = ""
	a.device.HandleMsg(msg, a.now())
	return a, nil
}

func (a App) switchMode() App {
	if a.mode == modePlay {
		a.mode = modeBindings
	} else {
		a.mode = modePlay
	}
	a.device.Reset()
	a.flash = ""
	a.resize()
	return a
}

// handleConsoleKey routes keys while the console prompt is open.
func (a App) handleConsoleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.CloseConsole) || a.isConsoleKey(msg):
		a.closeConsole()
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		line := a.pane.prompt.Value()
		a.pane.prompt.SetValue("")
		a.console.Submit(line)
		if !a.console.IsOpen() {
			a.closeConsole()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.pane.prompt, cmd = a.pane.prompt.Update(msg)
	return a, cmd
}

// isConsoleKey reports whether msg is bound to the Console action. Printable
// keys always go to the prompt so any character can be typed.
func (a App) isConsoleKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		return false
	}
	k, ok := device.KeyFromMsg(msg)
	if !ok {
		return false
	}
	action, _, found := a.table.Find(input.KeyControl(k))
	return found && action == input.Console
}

func (a *App) closeConsole() {
	a.console.Close()
	if a.console.IsOpen() {
		// locked while open
		return
	}
	a.pane.prompt.Blur()
	a.pane.prompt.SetValue("")
	a.resize()
}

// handleBindingsKey processes keys in the bindings editor.
func (a App) handleBindingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.flash = ""

	switch {
	case key.Matches(msg, a.keys.Exit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.RebindPrimary):
		return a.startCapture(input.Primary), nil

	case key.Matches(msg, a.keys.RebindAlternate):
		return a.startCapture(input.Alternate), nil

	case key.Matches(msg, a.keys.UnbindPrimary):
		return a.unbind(input.Primary), nil

	case key.Matches(msg, a.keys.UnbindAlternate):
		return a.unbind(input.Alternate), nil

	case key.Matches(msg, a.keys.Reset):
		a.overlay = newConfirmOverlay("Reset every binding to its default?")
		a.overlayAction = overlayActionReset
		return a, nil

	case key.Matches(msg, a.keys.Save):
		return a.save(), nil
	}

	// Delegate to table for j/k/up/down navigation
	var cmd tea.Cmd
	a.bindings.table, cmd = a.bindings.table.Update(msg)
	return a, cmd
}

func (a App) startCapture(slot input.Slot) App {
	action, ok := a.bindings.selected()
	if !ok {
		return a
	}
	a.overlay = newCaptureOverlay(action, slot, a.table.Control(action, slot))
	a.overlayTarget = action
	a.overlaySlot = slot
	a.overlayAction = overlayActionRebind
	return a
}

func (a App) unbind(slot input.Slot) App {
	action, ok := a.bindings.selected()
	if !ok {
		return a
	}
	a.table.Rebind(action, slot, input.Unbound())
	a.flash = fmt.Sprintf("%s %s unbound", action, strings.ToLower(slot.String()))
	a.flashIsErr = false
	return a
}

func (a App) save() App {
	if a.store == nil {
		a.flash = "No bindings file configured"
		a.flashIsErr = true
		return a
	}
	if err := a.store.Save(a.table.Serialize()); err != nil {
		slog.Error("Saving bindings failed", "error", err)
		a.flash = "Save failed: " + err.Error()
		a.flashIsErr = true
		return a
	}
	a.unsaved = false
	a.flash = "Bindings saved"
	a.flashIsErr = false
	return a
}

func (a App) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.overlay, cmd = a.overlay.Update(msg)
	if isDone, result := a.overlay.done(); isDone {
		return a.handleOverlayResult(result)
	}
	return a, cmd
}

// handleOverlayResult applies the result of a completed overlay. Called when
// overlay.done() returns true.
func (a App) handleOverlayResult(result interface{}) (tea.Model, tea.Cmd) {
	action := a.overlayAction
	target, slot := a.overlayTarget, a.overlaySlot
	a.overlay = nil
	a.overlayAction = overlayActionNone

	if result == nil {
		// User cancelled
		return a, nil
	}

	switch action {
	case overlayActionRebind:
		c := result.(input.Control)
		if prev, prevSlot, found := a.table.Find(c); found && (prev != target || prevSlot != slot) {
			a.flash = fmt.Sprintf("%s %s = %s (cleared from %s)", target, strings.ToLower(slot.String()), c.Label(), prev)
		} else {
			a.flash = fmt.Sprintf("%s %s = %s", target, strings.ToLower(slot.String()), c.Label())
		}
		a.flashIsErr = false
		a.table.Rebind(target, slot, c)

	case overlayActionReset:
		a.table.LoadDefaults()
		a.flash = "Bindings reset to defaults"
		a.flashIsErr = false
	}

	return a, nil
}

// resize lays out the arena and bindings table for the window size.
func (a *App) resize() {
	if !a.ready {
		return
	}
	// Reserve: mode bar (1) + margin (1) + status line (1)
	content := a.height - 3
	a.bindings.setSize(a.width, max(content, 3))

	// Arena border (2) + HUD (3)
	arenaH := content - 5
	if a.console.IsOpen() {
		arenaH -= consoleHeight + 1
	}
	a.arena.resize(a.width-2, max(arenaH, 3))
}

// --- View ---

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, a.renderModeBar())

	switch {
	case a.overlay != nil:
		sections = append(sections, a.overlay.View(a.width, a.height-2))
	case a.mode == modeBindings:
		sections = append(sections, a.bindings.table.View())
	default:
		sections = append(sections, a.arena.View(), hudView(a.mapper, &a.arena, a.device.HeldKeys()))
		if a.console.IsOpen() {
			sections = append(sections, a.pane.View(a.console, a.width))
		}
	}

	sections = append(sections, a.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderModeBar draws the mode strip across the top.
func (a App) renderModeBar() string {
	var tabs []string
	for _, m := range []mode{modePlay, modeBindings} {
		label := " " + m.String() + " "
		if m == a.mode {
			tabs = append(tabs, activeModeStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveModeStyle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	bar += "  " + titleStyle.Render("rebind")
	if a.unsaved {
		bar += helpStyle.Render("  (modified)")
	}
	return modeBarStyle.Render(bar)
}

// renderStatusBar draws the bottom help/status line.
func (a App) renderStatusBar() string {
	var parts []string

	// Flash message (transient feedback)
	if a.flash != "" {
		if a.flashIsErr {
			parts = append(parts, errorStyle.Render(a.flash))
		} else {
			parts = append(parts, successStyle.Render(a.flash))
		}
	}

	switch {
	case a.overlay != nil:
	case a.mode == modeBindings:
		parts = append(parts, helpStyle.Render(helpLine(
			a.keys.RebindPrimary, a.keys.RebindAlternate, a.keys.UnbindPrimary,
			a.keys.UnbindAlternate, a.keys.Reset, a.keys.Save, a.keys.Mode, a.keys.Exit,
		)))
	case a.console.IsOpen():
		parts = append(parts, helpStyle.Render(helpLine(a.keys.Submit, a.keys.CloseConsole)))
	default:
		p, _, _ := a.table.Controls(input.Console)
		parts = append(parts, helpStyle.Render(
			fmt.Sprintf("%s: console  %s", p.Label(), helpLine(a.keys.Mode, a.keys.Quit)),
		))
	}

	return strings.Join(parts, helpStyle.Render("  │  "))
}

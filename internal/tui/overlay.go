package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/rebind/internal/device"
	"github.com/jbeckham/rebind/internal/input"
)

// overlay is a transient input capture that floats on top of any view.
// When done() returns true, the overlay is dismissed.
// result is nil if aborted, or contains the user's selection/input.
type overlay interface {
	Update(tea.Msg) (overlay, tea.Cmd)
	View(width, height int) string
	done() (bool, interface{})
}

// --- Styles ---

var (
	overlayBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("12")).
				Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12")).
				MarginBottom(1)

	overlayHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				MarginTop(1)
)

// --- Capture Overlay ---

// captureOverlay waits for the next key, mouse button or wheel motion and
// returns it as an input.Control. Esc cancels, so Escape itself cannot be
// captured.
type captureOverlay struct {
	action  input.Action
	slot    input.Slot
	current input.Control
	isDone  bool
	result  interface{} // input.Control or nil
}

func newCaptureOverlay(action input.Action, slot input.Slot, current input.Control) *captureOverlay {
	return &captureOverlay{action: action, slot: slot, current: current}
}

func (c *captureOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			c.isDone = true
			c.result = nil
			return c, nil
		}
		if k, ok := device.KeyFromMsg(msg); ok {
			c.isDone = true
			c.result = input.KeyControl(k)
		}
	case tea.MouseMsg:
		if ctrl, ok := device.ControlFromMouse(msg); ok {
			c.isDone = true
			c.result = ctrl
		}
	}
	return c, nil
}

func (c *captureOverlay) View(width, height int) string {
	var b strings.Builder

	b.WriteString(overlayTitleStyle.Render(fmt.Sprintf("Rebind %s (%s)", c.action, strings.ToLower(c.slot.String()))))
	b.WriteString("\n")
	b.WriteString("Currently: " + c.current.Label())
	b.WriteString("\n\n")
	b.WriteString("Press a key, click a mouse button or scroll the wheel.")
	b.WriteString("\n")
	b.WriteString(overlayHintStyle.Render("esc: cancel"))

	boxWidth := width - 10
	if boxWidth < 30 {
		boxWidth = 30
	}
	if boxWidth > 60 {
		boxWidth = 60
	}

	content := overlayBorderStyle.Width(boxWidth).Render(b.String())
	return lipgloss.Place(width, height-2, lipgloss.Center, lipgloss.Center, content)
}

func (c *captureOverlay) done() (bool, interface{}) {
	return c.isDone, c.result
}

// --- Confirmation Overlay ---

// confirmOverlay shows a y/n confirmation prompt.
type confirmOverlay struct {
	message string
	isDone  bool
	result  interface{} // bool (true=confirmed) or nil
}

func newConfirmOverlay(message string) *confirmOverlay {
	return &confirmOverlay{message: message}
}

func (c *confirmOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "y", "Y":
			c.isDone = true
			c.result = true
			return c, nil
		case "n", "N", "esc":
			c.isDone = true
			c.result = nil
			return c, nil
		}
	}
	return c, nil
}

func (c *confirmOverlay) View(width, height int) string {
	content := overlayBorderStyle.Render(
		fmt.Sprintf("%s\n\n%s",
			overlayTitleStyle.Render(c.message),
			overlayHintStyle.Render("y: confirm  n/esc: cancel"),
		),
	)
	return lipgloss.Place(width, height-2, lipgloss.Center, lipgloss.Center, content)
}

func (c *confirmOverlay) done() (bool, interface{}) {
	return c.isDone, c.result
}

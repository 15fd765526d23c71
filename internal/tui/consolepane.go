package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mattn/go-runewidth"

	"github.com/jbeckham/rebind/internal/console"
)

const consoleHeight = 8 // log lines plus prompt

// consolePane renders the console log tail and the command prompt.
type consolePane struct {
	prompt textinput.Model
}

func newConsolePane() consolePane {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "help"
	ti.CharLimit = 200
	return consolePane{prompt: ti}
}

// tail returns the last n log lines of c, each cut to width cells.
func tail(c *console.Console, n, width int) []string {
	lines := c.Lines()
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = runewidth.Truncate(line, width, "…")
	}
	return out
}

func (p consolePane) View(c *console.Console, width int) string {
	lines := tail(c, consoleHeight-1, max(width-1, 1))
	for len(lines) < consoleHeight-1 {
		lines = append([]string{""}, lines...)
	}
	p.prompt.Width = max(width-3, 1)
	lines = append(lines, p.prompt.View())
	return consoleStyle.Width(width).Render(strings.Join(lines, "\n"))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/rebind/internal/input"
)

// Marker speed in cells per second. Rows are roughly twice as tall as
// columns are wide, so vertical speed is halved.
const (
	speedX = 24.0
	speedY = 12.0

	maxEvents = 4
)

// arena is the play field: a marker steered by the movement axes plus the
// state the other actions drive.
type arena struct {
	width, height int // inner size in cells
	x, y          float64
	placed        bool

	weapon int
	jumps  int
	shots  [2]int
	events []string // most recent last
}

func newArena() arena {
	return arena{weapon: 1}
}

// resize sets the inner size, centering the marker the first time.
func (a *arena) resize(width, height int) {
	a.width = max(width, 1)
	a.height = max(height, 1)
	if !a.placed {
		a.x = float64(a.width-1) / 2
		a.y = float64(a.height-1) / 2
		a.placed = true
	}
	a.clamp()
}

// step advances the arena by dt seconds using the mapper's action state.
func (a *arena) step(m *input.Mapper, dt float64) {
	a.x += m.Horizontal() * speedX * dt
	a.y -= m.Vertical() * speedY * dt
	a.clamp()

	if m.IsPressed(input.Jump) {
		a.jumps++
		a.event("jump")
	}
	if m.IsPressed(input.Fire1) {
		a.shots[0]++
		a.event(fmt.Sprintf("fire1 with weapon %d", a.weapon))
	}
	if m.IsPressed(input.Fire2) {
		a.shots[1]++
		a.event(fmt.Sprintf("fire2 with weapon %d", a.weapon))
	}
	if m.IsPressed(input.SwitchWeapon1) && a.weapon != 1 {
		a.weapon = 1
		a.event("switched to weapon 1")
	}
	if m.IsPressed(input.SwitchWeapon2) && a.weapon != 2 {
		a.weapon = 2
		a.event("switched to weapon 2")
	}
}

func (a *arena) event(s string) {
	a.events = append(a.events, s)
	if len(a.events) > maxEvents {
		a.events = a.events[len(a.events)-maxEvents:]
	}
}

func (a *arena) clamp() {
	a.x = min(max(a.x, 0), float64(a.width-1))
	a.y = min(max(a.y, 0), float64(a.height-1))
}

// cell returns the marker's grid position.
func (a *arena) cell() (int, int) {
	return int(a.x + 0.5), int(a.y + 0.5)
}

func (a *arena) View() string {
	cx, cy := a.cell()
	var b strings.Builder
	for row := 0; row < a.height; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		if row != cy {
			b.WriteString(strings.Repeat(" ", a.width))
			continue
		}
		b.WriteString(strings.Repeat(" ", cx))
		b.WriteString(markerStyle.Render("@"))
		b.WriteString(strings.Repeat(" ", a.width-cx-1))
	}
	return arenaStyle.Render(b.String())
}

// hudView renders one badge per action, lit while the action is held, the
// arena counters and the raw keys held this frame.
func hudView(m *input.Mapper, a *arena, held []input.Key) string {
	badges := make([]string, 0, len(input.Actions()))
	for _, act := range input.Actions() {
		if m.IsHeld(act) {
			badges = append(badges, hudActiveStyle.Render(act.String()))
		} else {
			badges = append(badges, hudIdleStyle.Render(act.String()))
		}
	}

	names := make([]string, len(held))
	for i, k := range held {
		names[i] = k.String()
	}
	stats := fmt.Sprintf("weapon %d  jumps %d  fire1 %d  fire2 %d  axes %+.0f/%+.0f  keys [%s]",
		a.weapon, a.jumps, a.shots[0], a.shots[1], m.Horizontal(), m.Vertical(), strings.Join(names, " "))
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
		helpStyle.Render(stats),
	}
	if len(a.events) > 0 {
		lines = append(lines, helpStyle.Render(strings.Join(a.events, " · ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

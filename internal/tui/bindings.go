package tui

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/jbeckham/rebind/internal/input"
)

// bindingsView is the bindings editor: one table row per action.
type bindingsView struct {
	table table.Model
}

// newBindingsView creates the editor populated from t. The width is set
// once the window size is known.
func newBindingsView(t *input.Table) bindingsView {
	tbl := table.New(
		table.WithColumns(buildColumns(bindingColumns, 80)),
		table.WithFocused(true),
		table.WithHeight(len(input.Actions())+1),
	)
	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = tableSelectedStyle
	s.Cell = tableCellStyle
	tbl.SetStyles(s)

	v := bindingsView{table: tbl}
	v.refresh(t)
	return v
}

// setSize updates the table dimensions.
func (v *bindingsView) setSize(width, height int) {
	v.table.SetColumns(buildColumns(bindingColumns, width))
	v.table.SetWidth(width)
	v.table.SetHeight(height)
}

// refresh rebuilds the rows from t, keeping the cursor.
func (v *bindingsView) refresh(t *input.Table) {
	v.table.SetRows(bindingRows(t))
}

// selected returns the action under the cursor.
func (v *bindingsView) selected() (input.Action, bool) {
	a := input.Action(v.table.Cursor())
	return a, a.Valid()
}

func bindingRows(t *input.Table) []table.Row {
	actions := input.Actions()
	rows := make([]table.Row, len(actions))
	for i, a := range actions {
		primary, alternate, _ := t.Controls(a)
		rows[i] = table.Row{a.String(), primary.Label(), alternate.Label()}
	}
	return rows
}

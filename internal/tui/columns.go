package tui

import "github.com/charmbracelet/bubbles/table"

// columnDef holds display metadata for a bindings table column.
type columnDef struct {
	title    string
	minWidth int
	flex     bool // if true, absorbs remaining space
}

// bindingColumns are the columns of the bindings editor, in order.
var bindingColumns = []columnDef{
	{title: "Action", minWidth: 16},
	{title: "Primary", minWidth: 14, flex: true},
	{title: "Alternate", minWidth: 14, flex: true},
}

// buildColumns creates bubbles table columns from defs, auto-sizing flex
// columns to the given total width.
func buildColumns(defs []columnDef, totalWidth int) []table.Column {
	cols := make([]table.Column, len(defs))
	fixedTotal := 0
	flexCount := 0

	for i, def := range defs {
		cols[i] = table.Column{Title: def.title, Width: def.minWidth}
		if def.flex {
			flexCount++
		} else {
			fixedTotal += def.minWidth
		}
	}

	if flexCount == 0 {
		return cols
	}

	// Reserve a small gap per column for padding
	padding := len(defs) * 2
	remaining := totalWidth - fixedTotal - padding
	if remaining < 0 {
		remaining = 0
	}
	perFlex := remaining / flexCount
	for i, def := range defs {
		if def.flex {
			cols[i].Width = max(perFlex, def.minWidth)
		}
	}
	return cols
}

package tui

import "testing"

func TestBuildColumnsTitles(t *testing.T) {
	cols := buildColumns(bindingColumns, 80)
	expected := []string{"Action", "Primary", "Alternate"}
	if len(cols) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected), len(cols))
	}
	for i, col := range cols {
		if col.Title != expected[i] {
			t.Errorf("column %d: expected title %q, got %q", i, expected[i], col.Title)
		}
	}
}

func TestBuildColumnsFlexDistribution(t *testing.T) {
	cols := buildColumns(bindingColumns, 100)

	// 100 - 16 fixed - 6 padding = 78, split across two flex columns
	if cols[0].Width != 16 {
		t.Errorf("expected fixed Action width 16, got %d", cols[0].Width)
	}
	if cols[1].Width != 39 || cols[2].Width != 39 {
		t.Errorf("expected flex widths 39/39, got %d/%d", cols[1].Width, cols[2].Width)
	}

	total := 0
	for _, col := range cols {
		total += col.Width
	}
	if total > 100 {
		t.Errorf("expected total width <= 100, got %d", total)
	}
}

func TestBuildColumnsNarrowKeepsMinimum(t *testing.T) {
	cols := buildColumns(bindingColumns, 20)
	for _, col := range cols {
		if col.Width < 14 {
			t.Errorf("column %q narrower than its minimum: %d", col.Title, col.Width)
		}
	}
}

func TestBuildColumnsNoFlex(t *testing.T) {
	defs := []columnDef{{title: "A", minWidth: 5}, {title: "B", minWidth: 7}}
	cols := buildColumns(defs, 200)
	if cols[0].Width != 5 || cols[1].Width != 7 {
		t.Errorf("fixed columns resized: %d/%d", cols[0].Width, cols[1].Width)
	}
}

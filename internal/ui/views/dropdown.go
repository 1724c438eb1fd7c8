package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"typeahead/internal/ui/services/navigation"
)

const minDropdownWidth = 12

// Dropdown renders an open suggestion list under its input and maps pointer
// rows back to item indexes
type Dropdown struct {
	styles   *Styles
	width    int
	rows     int // rows in the last rendered list
	released bool
}

// NewDropdown creates a dropdown renderer
func NewDropdown(styles *Styles) *Dropdown {
	if styles == nil {
		styles = NewStyles()
	}
	return &Dropdown{styles: styles, width: 40}
}

// SetWidth sets the outer width, borders included
func (d *Dropdown) SetWidth(width int) {
	if width < minDropdownWidth {
		width = minDropdownWidth
	}
	d.width = width
}

// Width returns the outer width
func (d *Dropdown) Width() int {
	return d.width
}

// Render draws state. A closed state renders nothing.
func (d *Dropdown) Render(state navigation.State) string {
	if d.released || !state.Open || len(state.Items) == 0 {
		d.rows = 0
		return ""
	}

	inner := d.width - 2
	lines := make([]string, len(state.Items))
	for i, item := range state.Items {
		text := truncate(item.Label, inner-2)
		style := d.styles.Item
		if i == state.Highlighted {
			style = d.styles.ItemHighlight
		}
		lines[i] = style.Width(inner).Render(text)
	}
	d.rows = len(lines)

	return d.styles.Dropdown.Render(strings.Join(lines, "\n"))
}

// Height returns how many terminal lines the last render occupied
func (d *Dropdown) Height() int {
	if d.rows == 0 {
		return 0
	}
	return d.rows + 2
}

// RowAt maps a line offset from the top border to an item index,
// or -1 when y is on a border or outside the list
func (d *Dropdown) RowAt(y int) int {
	idx := y - 1
	if idx < 0 || idx >= d.rows {
		return -1
	}
	return idx
}

// Release drops render state; nothing renders afterwards
func (d *Dropdown) Release() {
	d.released = true
	d.rows = 0
}

// truncate shortens s to max cells, adding "…" if truncated
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

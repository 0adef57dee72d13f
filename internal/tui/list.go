package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each item occupies.
const linesPerItem = 1

// renderList renders the left panel: the item checklist with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.items) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("Nothing to split")
		return empty
	}

	var lines []string
	for i, it := range m.items {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatItemLine(it, width, i == m.cursor))
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatItemLine formats a single item as one line:
//
//	[>] [x] label
func formatItemLine(it Item, width int, current bool) string {
	var box string
	if it.Selected {
		box = styleChecked.Render("[x]")
	} else {
		box = styleUnchecked.Render("[ ]")
	}

	// Truncate label to fit width: leave room for prefix "  [x] "
	label := strings.ReplaceAll(it.Label, "\n", " ")
	labelMax := width - 2 - 4
	if labelMax < 0 {
		labelMax = 0
	}
	if runewidth.StringWidth(label) > labelMax {
		label = runewidth.Truncate(label, labelMax, "")
	}

	line := fmt.Sprintf("%s %s", box, label)
	if current {
		line = styleListSelected.Render("> ") + line
	} else {
		line = "  " + line
	}
	return line
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}

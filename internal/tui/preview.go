package tui

import "github.com/charmbracelet/bubbles/viewport"

// showPreview puts the plan for the item under the cursor into the
// preview viewport. Previews are pre-rendered, so this is synchronous.
func (m *model) showPreview() {
	if len(m.items) == 0 || m.cursor >= len(m.items) {
		return
	}
	if m.previewIdx == m.cursor {
		return // already showing this preview
	}
	m.preview.SetContent(m.items[m.cursor].Preview)
	m.preview.GotoTop()
	m.previewIdx = m.cursor
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// renderFilterBar renders the deal-type chips in a bordered box.
func (m Model) renderFilterBar() string {
	var chips strings.Builder
	active := m.store.Filter()

	for i, fc := range filterChips {
		focused := m.focus == focusFilters && m.filterCursor == i
		chips.WriteString(m.renderChip(fc.label, fc.filter == active, focused))
		if i < len(filterChips)-1 {
			chips.WriteString(" ")
		}
	}

	border := stylePanelNormal
	if m.focus == focusFilters {
		border = stylePanelFocused
	}
	return border.Render(chips.String())
}

// renderChip renders a single chip with cursor highlighting.
func (m Model) renderChip(label string, active bool, focused bool) string {
	if focused {
		if active {
			return styleChipCursor.Render("[" + label + "]")
		}
		return styleChipCursor.Render(" " + label + " ")
	}
	if active {
		return styleChipActive.Render("[" + label + "]")
	}
	return styleMuted.Render(" " + label + " ")
}

// handleFilterKeys handles key events when the filter bar is focused.
// Activating a chip re-fetches through the store with the new filter.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.filterCursor > 0 {
			m.filterCursor--
		}
		return m, nil

	case "l", "right":
		if m.filterCursor < len(filterChips)-1 {
			m.filterCursor++
		}
		return m, nil

	case " ", "enter":
		m.listCursor = 0
		m.showDetail = false
		m.detail = nil
		m.store.SetFilter(filterChips[m.filterCursor].filter)
		return m, nil

	case "tab":
		m.focus = focusList
		return m, nil

	case "shift+tab":
		if m.showDetail {
			m.focus = focusDetail
			return m, nil
		}
		m.focus = focusList
		return m, nil

	case "esc":
		m.focus = focusList
		return m, nil
	}

	return m, nil
}

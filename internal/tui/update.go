package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/immolist/immo-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusMsg:
		return m.handleStatus(msg)

	case itemsMsg:
		return m.handleItems(msg)

	case selectionMsg:
		return m.handleSelection(msg)

	case spinner.TickMsg:
		if m.status != store.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleStatus(msg statusMsg) (tea.Model, tea.Cmd) {
	m.status = store.Status(msg)
	m.logger.Debug("status changed", "status", m.status.String())

	cmds := []tea.Cmd{waitForStatus(m.statusSub)}
	if m.status == store.StatusLoading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleItems(msg itemsMsg) (tea.Model, tea.Cmd) {
	m.listings = msg
	m.logger.Debug("items updated", "count", len(m.listings))

	// Clamp cursor if the list shrank
	if m.listCursor >= len(m.listings) {
		m.listCursor = len(m.listings) - 1
	}
	if m.listCursor < 0 {
		m.listCursor = 0
	}
	return m, waitForItems(m.itemsSub)
}

func (m Model) handleSelection(msg selectionMsg) (tea.Model, tea.Cmd) {
	if msg != nil {
		// Navigate, then acknowledge so the signal fires exactly once
		l := *msg
		m.detail = &l
		m.showDetail = true
		m.focus = focusDetail
		m.store.AcknowledgeSelection()
	}
	return m, waitForSelection(m.selectedSub)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c", "q":
		m.store.Dispose()
		return m, tea.Quit

	case "r":
		m.store.Refresh()
		return m, nil
	}

	switch m.focus {
	case focusFilters:
		return m.handleFilterKeys(msg)
	case focusList:
		return m.handleListKeys(msg)
	case focusDetail:
		return m.handleDetailKeys(msg)
	}

	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Cursor must stay within the current list
	if len(m.listings) > 0 {
		if m.listCursor < 0 {
			m.listCursor = 0
		}
		if m.listCursor >= len(m.listings) {
			m.listCursor = len(m.listings) - 1
		}
	}

	switch msg.String() {
	case "tab":
		m.focus = focusFilters
		return m, nil

	case "shift+tab":
		if m.showDetail {
			m.focus = focusDetail
			return m, nil
		}
		m.focus = focusFilters
		return m, nil

	case "j", "down":
		if m.listCursor < len(m.listings)-1 {
			m.listCursor++
		}
		return m, nil

	case "k", "up":
		if m.listCursor > 0 {
			m.listCursor--
		}
		return m, nil

	case "pgdown":
		if len(m.listings) > 0 {
			pageSize := m.height - 10
			if pageSize < 1 {
				pageSize = 10
			}
			m.listCursor += pageSize
			if m.listCursor >= len(m.listings) {
				m.listCursor = len(m.listings) - 1
			}
		}
		return m, nil

	case "pgup":
		if len(m.listings) > 0 {
			pageSize := m.height - 10
			if pageSize < 1 {
				pageSize = 10
			}
			m.listCursor -= pageSize
			if m.listCursor < 0 {
				m.listCursor = 0
			}
		}
		return m, nil

	case "home":
		m.listCursor = 0
		return m, nil

	case "end":
		if len(m.listings) > 0 {
			m.listCursor = len(m.listings) - 1
		}
		return m, nil

	case "esc":
		if m.showDetail {
			m.showDetail = false
			m.detail = nil
		}
		return m, nil

	case "enter":
		if len(m.listings) > 0 {
			m.store.Select(m.listings[m.listCursor])
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showDetail = false
		m.detail = nil
		m.focus = focusList
		return m, nil

	case "tab":
		m.focus = focusFilters
		return m, nil

	case "shift+tab":
		m.focus = focusList
		return m, nil
	}

	return m, nil
}

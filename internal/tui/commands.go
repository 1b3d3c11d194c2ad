package tui

import (
	"github.com/immolist/immo-cli/internal/models"
	"github.com/immolist/immo-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// The store publishes on channels; each wait command blocks on one channel,
// wraps the next update into a message and is re-issued by Update after the
// message is handled.

// waitForStatus returns a tea.Cmd that delivers the next status transition.
func waitForStatus(sub <-chan store.Status) tea.Cmd {
	return func() tea.Msg {
		return statusMsg(<-sub)
	}
}

// waitForItems returns a tea.Cmd that delivers the next listings update.
func waitForItems(sub <-chan []models.Listing) tea.Cmd {
	return func() tea.Msg {
		return itemsMsg(<-sub)
	}
}

// waitForSelection returns a tea.Cmd that delivers the next selection signal.
func waitForSelection(sub <-chan *models.Listing) tea.Cmd {
	return func() tea.Msg {
		return selectionMsg(<-sub)
	}
}

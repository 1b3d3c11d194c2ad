package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/immolist/immo-cli/internal/models"
	"github.com/immolist/immo-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type focusPanel int

const (
	focusFilters focusPanel = iota
	focusList
	focusDetail
)

var filterChips = []struct {
	filter models.Filter
	label  string
}{
	{models.FilterAll, "All"},
	{models.FilterRent, "Rent"},
	{models.FilterBuy, "Buy"},
}

// Model is the root Bubble Tea model for the TUI. It renders whatever the
// listings store publishes and forwards user intent back to it.
type Model struct {
	store  *store.Store
	logger *slog.Logger
	width  int
	height int

	focus   focusPanel
	spinner spinner.Model

	// Filter bar - deal type chips
	filterCursor int

	// Mirrors of the store's observable state
	status   store.Status
	listings []models.Listing

	// List panel
	listCursor int

	// Detail panel, driven by the selection signal
	detail     *models.Listing
	showDetail bool

	// Subscriptions to the store
	statusSub   <-chan store.Status
	itemsSub    <-chan []models.Listing
	selectedSub <-chan *models.Listing
}

// New creates a TUI model observing s.
func New(s *store.Store, logger *slog.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleLoading

	return Model{
		store:       s,
		logger:      logger,
		spinner:     sp,
		focus:       focusList,
		status:      s.Status().Get(),
		listings:    s.Items().Get(),
		statusSub:   s.Status().Subscribe(),
		itemsSub:    s.Items().Subscribe(),
		selectedSub: s.Selected().Subscribe(),
	}
}

// Init starts the store subscription pumps and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForStatus(m.statusSub),
		waitForItems(m.itemsSub),
		waitForSelection(m.selectedSub),
		m.spinner.Tick,
	)
}

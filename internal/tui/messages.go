package tui

import (
	"github.com/immolist/immo-cli/internal/models"
	"github.com/immolist/immo-cli/internal/store"
)

// statusMsg carries a status transition published by the store.
type statusMsg store.Status

// itemsMsg carries a fresh listings list published by the store.
type itemsMsg []models.Listing

// selectionMsg carries the one-shot selection signal. nil means the signal
// was cleared.
type selectionMsg *models.Listing

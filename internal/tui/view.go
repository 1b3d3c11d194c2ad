package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/immolist/immo-cli/internal/models"
	"github.com/immolist/immo-cli/internal/store"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Layout: header + filter bar + panels + status bar
	header := renderHeader()
	filterBar := m.renderFilterBar()
	statusBar := m.renderStatusBar()

	headerHeight := lipgloss.Height(header)
	filterHeight := lipgloss.Height(filterBar)
	statusHeight := lipgloss.Height(statusBar)
	panelHeight := m.height - headerHeight - filterHeight - statusHeight
	if panelHeight < 3 {
		panelHeight = 3
	}

	var panels string
	if m.showDetail && m.detail != nil {
		// Panel widths: ~55% list, ~45% detail
		leftWidth := m.width*55/100 - 2 // subtract border
		rightWidth := m.width - leftWidth - 4
		if leftWidth < 20 {
			leftWidth = 20
		}
		if rightWidth < 20 {
			rightWidth = 20
		}

		leftPanel := m.renderListingList(leftWidth, panelHeight-2)
		rightPanel := m.renderListingDetail(rightWidth, panelHeight-2)

		leftBorder := stylePanelNormal
		if m.focus == focusList {
			leftBorder = stylePanelFocused
		}
		leftPanel = leftBorder.
			Width(leftWidth).
			Height(panelHeight - 2).
			Render(leftPanel)

		rightBorder := stylePanelNormal
		if m.focus == focusDetail {
			rightBorder = stylePanelFocused
		}
		rightPanel = rightBorder.
			Width(rightWidth).
			Height(panelHeight - 2).
			Render(rightPanel)

		panels = lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
	} else {
		listWidth := m.width - 4
		if listWidth < 20 {
			listWidth = 20
		}
		listPanel := m.renderListingList(listWidth, panelHeight-2)

		border := stylePanelNormal
		if m.focus == focusList {
			border = stylePanelFocused
		}
		panels = border.
			Width(listWidth).
			Height(panelHeight - 2).
			Render(listPanel)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filterBar, panels, statusBar)
}

// renderHeader renders the ASCII brand name.
func renderHeader() string {
	title := "" +
		" _                    \n" +
		"(_)_ __  _ __  ___    \n" +
		"| | '  \\| '  \\/ _ \\   \n" +
		"|_|_|_|_|_|_|_\\___/   listings browser"

	return styleLogo.Render(title)
}

// renderListingList renders the scrollable listings panel.
func (m Model) renderListingList(width, height int) string {
	title := styleHeader.Render("LISTINGS (" + m.store.Filter().String() + ")")

	switch m.status {
	case store.StatusLoading:
		return title + "\n" + m.spinner.View() + styleLoading.Render(" Loading listings...")
	case store.StatusError:
		return title + "\n" + styleError.Render(" Failed to load listings. Press r to retry.")
	case store.StatusNoConnection:
		return title + "\n" + styleError.Render(" No network connection.")
	}

	if len(m.listings) == 0 {
		return title + "\n" + styleMuted.Render(" No listings found")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	// Calculate visible range to keep cursor in view
	maxVisible := height - 2 // account for title + spacing
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.listCursor, len(m.listings), maxVisible)

	for i := start; i < end; i++ {
		line := renderListingLine(m.listings[i], width, i == m.listCursor && m.focus == focusList)
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderListingLine renders a single listing entry.
func renderListingLine(l models.Listing, width int, selected bool) string {
	priceStr := fmt.Sprintf("%-12s", truncate(l.PriceLabel(), 12))

	roomsStr := "    "
	if l.Rooms > 0 {
		roomsStr = fmt.Sprintf("%-4s", fmt.Sprintf("%dk", l.Rooms))
	}

	areaStr := "        "
	if l.Area > 0 {
		areaStr = fmt.Sprintf("%-8s", fmt.Sprintf("%.1fm", l.Area))
	}

	regionStr := fmt.Sprintf("%-12s", truncate(l.Region, 12))

	subject := l.Subject
	fixedWidth := 12 + 1 + 4 + 1 + 8 + 1 + 12 + 1
	maxSubject := width - fixedWidth - 4 // 4 for cursor indicator + padding
	if maxSubject > 0 {
		subject = truncate(subject, maxSubject)
	}

	entry := fmt.Sprintf("%s %s %s %s %s",
		stylePrice.Render(priceStr),
		styleRooms.Render(roomsStr),
		styleArea.Render(areaStr),
		styleRegion.Render(regionStr),
		subject,
	)
	if l.IsAgency {
		entry += " " + styleAgency.Render("[A]")
	}

	if selected {
		return styleSelected.Render(">") + entry
	}
	return " " + entry
}

// renderListingDetail renders the detail panel for the selected listing.
func (m Model) renderListingDetail(width, height int) string {
	l := m.detail

	var b strings.Builder
	b.WriteString(styleHeader.Render("DETAIL"))
	b.WriteString("\n\n")

	b.WriteString(styleHeader.Render(truncate(l.Subject, width-2)))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styleMuted.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(truncate(value, width-12))
		b.WriteString("\n")
	}

	writeField("Price", l.PriceLabel())
	if l.Rooms > 0 {
		writeField("Rooms", fmt.Sprintf("%d", l.Rooms))
	}
	if l.Area > 0 {
		writeField("Area", fmt.Sprintf("%.1f m²", l.Area))
	}
	writeField("Floor", l.Floor)
	writeField("Address", l.Address)
	writeField("Region", l.Region)
	if l.ListTime != nil {
		writeField("Listed", l.ListTime.Format("2006-01-02 15:04"))
	}
	if l.IsAgency {
		b.WriteString(styleAgency.Render("Agency listing"))
		b.WriteString("\n")
	}
	if l.Link != "" {
		b.WriteString("\n")
		b.WriteString(styleMuted.Render(truncate(l.Link, width-2)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusBar renders context-aware keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.focus {
	case focusFilters:
		hints = "h/l:move  Space:apply  Tab:list  r:refresh  q:quit"
	case focusList:
		hints = "j/k:navigate  Enter:detail  Tab:filters  r:refresh  q:quit"
	case focusDetail:
		hints = "Esc:close  Tab:list  r:refresh  q:quit"
	}

	status := ""
	switch m.status {
	case store.StatusLoading:
		status = "loading"
	case store.StatusError:
		status = "error"
	case store.StatusNoConnection:
		status = "offline"
	case store.StatusDone:
		status = fmt.Sprintf("%d listings", len(m.listings))
	}

	return styleStatusBar.Width(m.width).Render(" " + hints + "  |  " + status)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// truncate truncates a string to the given width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "~"
}

package output

import (
	"fmt"
	"io"

	"github.com/immolist/immo-cli/internal/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors   *Colors
	ShowLink bool
	ShowTime bool
}

// RenderListings renders listings as a formatted table
func RenderListings(w io.Writer, listings []models.Listing, opts TableOptions) {
	if len(listings) == 0 {
		_, _ = fmt.Fprintln(w, "No listings found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	for _, l := range listings {
		// Price (right-aligned, 12 chars)
		priceStr := fmt.Sprintf("%12s", l.PriceLabel())

		// Rooms (fixed 4-char width: "3k  " or spaces)
		roomsStr := "    "
		if l.Rooms > 0 {
			roomsStr = fmt.Sprintf("%-4s", fmt.Sprintf("%dk", l.Rooms))
		}

		// Area (fixed 8-char width)
		areaStr := "        "
		if l.Area > 0 {
			areaStr = fmt.Sprintf("%7.1fm", l.Area)
		}

		// Region (truncate/pad to 12 chars)
		region := l.Region
		if len([]rune(region)) > 12 {
			region = string([]rune(region)[:12])
		}
		regionStr := fmt.Sprintf("%-12s", region)

		subject := l.Subject
		if l.IsAgency {
			subject += " " + c.Agency("[agency]")
		}

		// Format the line: PRICE ROOMS AREA REGION SUBJECT
		_, _ = fmt.Fprintf(w, "%s %s %s  %s %s\n",
			c.Price(priceStr),
			c.Rooms(roomsStr),
			c.Area(areaStr),
			c.Region(regionStr),
			subject,
		)

		if opts.ShowTime && l.ListTime != nil {
			_, _ = fmt.Fprintf(w, "             %s\n", c.Muted("listed %s", l.ListTime.Format("02.01.2006 15:04")))
		}

		if opts.ShowLink && l.Link != "" {
			_, _ = fmt.Fprintf(w, "             %s\n", c.Muted("%s", l.Link))
		}
	}
}

// RenderListingDetail renders one listing with all known fields
func RenderListingDetail(w io.Writer, l *models.Listing, opts TableOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintln(w, c.Header("%s", l.Subject))
	_, _ = fmt.Fprintf(w, "  Price:   %s\n", c.Price("%s", l.PriceLabel()))
	if l.Rooms > 0 {
		_, _ = fmt.Fprintf(w, "  Rooms:   %s\n", c.Rooms("%d", l.Rooms))
	}
	if l.Area > 0 {
		_, _ = fmt.Fprintf(w, "  Area:    %s\n", c.Area("%.1f m²", l.Area))
	}
	if l.Floor != "" {
		_, _ = fmt.Fprintf(w, "  Floor:   %s\n", l.Floor)
	}
	if l.Address != "" {
		_, _ = fmt.Fprintf(w, "  Address: %s\n", l.Address)
	}
	if l.Region != "" {
		_, _ = fmt.Fprintf(w, "  Region:  %s\n", c.Region("%s", l.Region))
	}
	if l.IsAgency {
		_, _ = fmt.Fprintf(w, "  Seller:  %s\n", c.Agency("agency"))
	}
	if l.ListTime != nil {
		_, _ = fmt.Fprintf(w, "  Listed:  %s\n", c.Time("%s", l.ListTime.Format("02.01.2006 15:04")))
	}
	if l.Link != "" {
		_, _ = fmt.Fprintf(w, "  Link:    %s\n", c.Muted("%s", l.Link))
	}
}

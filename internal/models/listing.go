package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Listing represents a single real-estate ad
type Listing struct {
	ID       int64      `json:"id"`
	Subject  string     `json:"subject"`
	Link     string     `json:"link"`
	DealType string     `json:"dealType"` // "sell" or "let"
	PriceBYN float64    `json:"priceByn"`
	PriceUSD float64    `json:"priceUsd"`
	Currency string     `json:"currency"`
	Rooms    int        `json:"rooms,omitempty"`
	Area     float64    `json:"area,omitempty"` // total area in m²
	Floor    string     `json:"floor,omitempty"`
	Address  string     `json:"address,omitempty"`
	Region   string     `json:"region,omitempty"`
	IsAgency bool       `json:"isAgency"`
	Images   []string   `json:"images,omitempty"`
	ListTime *time.Time `json:"listTime,omitempty"`
}

// AdParameter is one entry of the ad_parameters array. The API mixes value
// types (string, number, array), so raw values are kept as json.RawMessage.
type AdParameter struct {
	P  string          `json:"p"`  // parameter key
	PL string          `json:"pl"` // human-readable parameter label
	V  json.RawMessage `json:"v"`  // machine value
	VL json.RawMessage `json:"vl"` // human-readable value
}

// ListingResponse represents the raw JSON for a single ad entry
type ListingResponse struct {
	AdID     int64  `json:"ad_id"`
	AdLink   string `json:"ad_link"`
	Subject  string `json:"subject"`
	ListTime string `json:"list_time"`
	PriceBYN string `json:"price_byn"` // kopecks as string
	PriceUSD string `json:"price_usd"` // cents as string
	Currency string `json:"currency"`
	IsAgency bool   `json:"company_ad"`
	Images   []struct {
		Path string `json:"path"`
	} `json:"images"`
	AdParameters []AdParameter `json:"ad_parameters"`
}

// ListingsResponse represents the full API response for a listings search
type ListingsResponse struct {
	Ads   []ListingResponse `json:"ads"`
	Total int               `json:"total"`
}

// ToListing converts the raw response to a Listing
func (r *ListingResponse) ToListing(loc *time.Location) *Listing {
	l := &Listing{
		ID:       r.AdID,
		Subject:  strings.TrimSpace(r.Subject),
		Link:     r.AdLink,
		Currency: r.Currency,
		IsAgency: r.IsAgency,
		PriceBYN: parseMinorUnits(r.PriceBYN),
		PriceUSD: parseMinorUnits(r.PriceUSD),
	}

	for _, img := range r.Images {
		if img.Path != "" {
			l.Images = append(l.Images, img.Path)
		}
	}

	if r.ListTime != "" {
		if t, err := time.Parse(time.RFC3339, r.ListTime); err == nil {
			local := t.In(loc)
			l.ListTime = &local
		}
	}

	for _, p := range r.AdParameters {
		switch p.P {
		case "typ":
			l.DealType = rawString(p.V)
		case "rooms":
			if n, err := strconv.Atoi(rawString(p.VL)); err == nil {
				l.Rooms = n
			}
		case "size":
			if f, err := strconv.ParseFloat(rawString(p.V), 64); err == nil {
				l.Area = f
			}
		case "floor":
			l.Floor = rawString(p.VL)
		case "address":
			l.Address = rawString(p.V)
		case "area":
			l.Region = rawString(p.VL)
		}
	}

	return l
}

// parseMinorUnits parses an integer price string in minor units (kopecks,
// cents) into major units.
func parseMinorUnits(s string) float64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return float64(n) / 100
}

// rawString decodes a raw JSON value into a plain string. Quoted strings are
// unquoted, numbers are returned as their literal text, anything else (arrays,
// objects) yields "".
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// PriceLabel returns a short display price, preferring USD
func (l *Listing) PriceLabel() string {
	if l.PriceUSD > 0 {
		return "$" + strconv.FormatFloat(l.PriceUSD, 'f', 0, 64)
	}
	if l.PriceBYN > 0 {
		return strconv.FormatFloat(l.PriceBYN, 'f', 0, 64) + " BYN"
	}
	return "n/a"
}

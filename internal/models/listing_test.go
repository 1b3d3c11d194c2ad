package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/immolist/immo-cli/internal/testutil"
)

func mustLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Minsk")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return loc
}

func TestToListing(t *testing.T) {
	raw := `{
		"ad_id": 1034567,
		"ad_link": "https://re.kufar.by/vi/minsk/1034567",
		"subject": "  3-комнатная квартира, ул. Якуба Коласа ",
		"list_time": "2024-03-01T10:15:00Z",
		"price_byn": "25000000",
		"price_usd": "7650000",
		"currency": "USD",
		"company_ad": true,
		"images": [{"path": "ads/103/1034567_1.jpg"}, {"path": ""}],
		"ad_parameters": [
			{"p": "typ", "pl": "Тип сделки", "v": "sell", "vl": "Продажа"},
			{"p": "rooms", "pl": "Комнат", "v": 3, "vl": "3"},
			{"p": "size", "pl": "Площадь", "v": "72.5", "vl": "72.5 м²"},
			{"p": "floor", "pl": "Этаж", "v": [5], "vl": "5 из 9"},
			{"p": "address", "pl": "Адрес", "v": "ул. Якуба Коласа, 12", "vl": ""},
			{"p": "area", "pl": "Район", "v": "minsk", "vl": "Минск"}
		]
	}`

	var resp ListingResponse
	testutil.AssertNil(t, json.Unmarshal([]byte(raw), &resp))

	l := resp.ToListing(mustLocation(t))

	testutil.AssertEqual(t, l.ID, int64(1034567))
	testutil.AssertEqual(t, l.Subject, "3-комнатная квартира, ул. Якуба Коласа")
	testutil.AssertEqual(t, l.DealType, "sell")
	testutil.AssertEqual(t, l.PriceBYN, 250000.0)
	testutil.AssertEqual(t, l.PriceUSD, 76500.0)
	testutil.AssertEqual(t, l.Rooms, 3)
	testutil.AssertEqual(t, l.Area, 72.5)
	testutil.AssertEqual(t, l.Floor, "5 из 9")
	testutil.AssertEqual(t, l.Address, "ул. Якуба Коласа, 12")
	testutil.AssertEqual(t, l.Region, "Минск")
	testutil.AssertTrue(t, l.IsAgency)
	testutil.AssertLen(t, l.Images, 1)
	testutil.AssertTrue(t, l.ListTime != nil)
	testutil.AssertEqual(t, l.ListTime.Location().String(), "Europe/Minsk")
}

func TestToListing_MissingFields(t *testing.T) {
	resp := ListingResponse{AdID: 42, Subject: "Дом"}
	l := resp.ToListing(mustLocation(t))

	testutil.AssertEqual(t, l.ID, int64(42))
	testutil.AssertEqual(t, l.PriceBYN, 0.0)
	testutil.AssertEqual(t, l.Rooms, 0)
	testutil.AssertTrue(t, l.ListTime == nil)
	testutil.AssertLen(t, l.Images, 0)
}

func TestToListing_InvalidListTime(t *testing.T) {
	resp := ListingResponse{AdID: 1, ListTime: "yesterday"}
	l := resp.ToListing(mustLocation(t))
	testutil.AssertTrue(t, l.ListTime == nil)
}

func TestParseMinorUnits(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"25000000", 250000},
		{"150", 1.5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, parseMinorUnits(tt.in), tt.want)
	}
}

func TestPriceLabel(t *testing.T) {
	tests := []struct {
		name string
		l    Listing
		want string
	}{
		{"usd preferred", Listing{PriceUSD: 76500, PriceBYN: 250000}, "$76500"},
		{"byn fallback", Listing{PriceBYN: 900}, "900 BYN"},
		{"no price", Listing{}, "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.l.PriceLabel(), tt.want)
		})
	}
}

func TestListingsResponse_Unmarshal(t *testing.T) {
	raw := `{"ads": [{"ad_id": 1}, {"ad_id": 2}], "total": 2}`
	var resp ListingsResponse
	testutil.AssertNil(t, json.Unmarshal([]byte(raw), &resp))
	testutil.AssertLen(t, resp.Ads, 2)
	testutil.AssertEqual(t, resp.Total, 2)
}

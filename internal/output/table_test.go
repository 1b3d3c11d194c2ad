package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/immolist/immo-cli/internal/models"
	"github.com/immolist/immo-cli/internal/testutil"
)

func sampleListing() models.Listing {
	listed := time.Date(2024, 3, 1, 13, 15, 0, 0, time.UTC)
	return models.Listing{
		ID:       1034567,
		Subject:  "3-комнатная квартира, ул. Якуба Коласа",
		Link:     "https://re.kufar.by/vi/minsk/1034567",
		DealType: "sell",
		PriceBYN: 250000,
		PriceUSD: 76500,
		Rooms:    3,
		Area:     72.5,
		Floor:    "5 из 9",
		Address:  "ул. Якуба Коласа, 12",
		Region:   "Минск",
		ListTime: &listed,
	}
}

func TestRenderListings_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderListings(&buf, nil, TableOptions{})
	testutil.AssertContains(t, buf.String(), "No listings found.")
}

func TestRenderListings_Basic(t *testing.T) {
	var buf bytes.Buffer
	RenderListings(&buf, []models.Listing{sampleListing()}, TableOptions{})

	out := buf.String()
	testutil.AssertContains(t, out, "$76500")
	testutil.AssertContains(t, out, "3k")
	testutil.AssertContains(t, out, "72.5m")
	testutil.AssertContains(t, out, "Минск")
	testutil.AssertContains(t, out, "3-комнатная квартира")
	testutil.AssertNotContains(t, out, "re.kufar.by")
	testutil.AssertNotContains(t, out, "[agency]")
}

func TestRenderListings_AgencyTag(t *testing.T) {
	l := sampleListing()
	l.IsAgency = true

	var buf bytes.Buffer
	RenderListings(&buf, []models.Listing{l}, TableOptions{})
	testutil.AssertContains(t, buf.String(), "[agency]")
}

func TestRenderListings_ShowLinkAndTime(t *testing.T) {
	var buf bytes.Buffer
	RenderListings(&buf, []models.Listing{sampleListing()}, TableOptions{
		ShowLink: true,
		ShowTime: true,
	})

	out := buf.String()
	testutil.AssertContains(t, out, "https://re.kufar.by/vi/minsk/1034567")
	testutil.AssertContains(t, out, "listed 01.03.2024")
}

func TestRenderListings_MissingFields(t *testing.T) {
	l := models.Listing{ID: 1, Subject: "Гараж"}

	var buf bytes.Buffer
	RenderListings(&buf, []models.Listing{l}, TableOptions{})

	out := buf.String()
	testutil.AssertContains(t, out, "n/a")
	testutil.AssertContains(t, out, "Гараж")
}

func TestRenderListingDetail(t *testing.T) {
	l := sampleListing()
	l.IsAgency = true

	var buf bytes.Buffer
	RenderListingDetail(&buf, &l, TableOptions{})

	out := buf.String()
	testutil.AssertContains(t, out, l.Subject)
	testutil.AssertContains(t, out, "$76500")
	testutil.AssertContains(t, out, "Rooms:   3")
	testutil.AssertContains(t, out, "72.5 m²")
	testutil.AssertContains(t, out, "5 из 9")
	testutil.AssertContains(t, out, "ул. Якуба Коласа, 12")
	testutil.AssertContains(t, out, "agency")
	testutil.AssertContains(t, out, "01.03.2024")
	testutil.AssertContains(t, out, "https://re.kufar.by/vi/minsk/1034567")
}

func TestRenderListingDetail_Minimal(t *testing.T) {
	l := models.Listing{ID: 1, Subject: "Гараж"}

	var buf bytes.Buffer
	RenderListingDetail(&buf, &l, TableOptions{})

	out := buf.String()
	testutil.AssertContains(t, out, "Гараж")
	testutil.AssertNotContains(t, out, "Rooms:")
	testutil.AssertNotContains(t, out, "Address:")
	testutil.AssertNotContains(t, out, "Link:")
}

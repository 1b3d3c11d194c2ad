package api

const (
	// BaseURL is the base URL for the kufar.by search API
	BaseURL = "https://api.kufar.by"

	// EndpointListings returns paginated, rendered real-estate listings
	// Required params: cat, lang, size, sort; optional: typ, gtsy, cur
	EndpointListings = "/search-api/v2/search/rendered-paginated"
)

// Real-estate categories of the search API
const (
	CategoryApartments = "1010"
	CategoryHouses     = "1020"
	CategoryGarages    = "1030"
	CategoryRooms      = "1040"
	CategoryCommercial = "1050"
	CategoryPlots      = "1080"
)

// SortByDateDesc orders results by list time, newest first
const SortByDateDesc = "lst.d"

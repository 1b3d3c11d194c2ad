package testutil

// Sample JSON responses for API testing

// SampleListingsResponse is a minimal valid listings search response
const SampleListingsResponse = `{
	"total": 2,
	"ads": [
		{
			"ad_id": 1034567,
			"ad_link": "https://re.kufar.by/vi/minsk/1034567",
			"subject": "3-комнатная квартира, ул. Якуба Коласа",
			"list_time": "2024-03-01T10:15:00Z",
			"price_byn": "25000000",
			"price_usd": "7650000",
			"currency": "USD",
			"company_ad": false,
			"images": [{"path": "ads/103/1034567_1.jpg"}],
			"ad_parameters": [
				{"p": "typ", "pl": "Тип сделки", "v": "sell", "vl": "Продажа"},
				{"p": "rooms", "pl": "Комнат", "v": 3, "vl": "3"},
				{"p": "size", "pl": "Площадь", "v": "72.5", "vl": "72.5 м²"},
				{"p": "address", "pl": "Адрес", "v": "ул. Якуба Коласа, 12", "vl": ""},
				{"p": "area", "pl": "Район", "v": "minsk", "vl": "Минск"}
			]
		},
		{
			"ad_id": 1034568,
			"ad_link": "https://re.kufar.by/vi/brest/1034568",
			"subject": "Дом в пригороде",
			"list_time": "2024-03-01T09:40:00Z",
			"price_byn": "45000000",
			"price_usd": "13770000",
			"currency": "BYN",
			"company_ad": true,
			"images": [],
			"ad_parameters": [
				{"p": "typ", "pl": "Тип сделки", "v": "let", "vl": "Аренда"},
				{"p": "area", "pl": "Район", "v": "brest", "vl": "Брест"}
			]
		}
	]
}`

// SampleEmptyListingsResponse is a valid response with no ads
const SampleEmptyListingsResponse = `{"total": 0, "ads": []}`

// SampleErrorResponse is a sample error response
const SampleErrorResponse = `{
	"error": {
		"code": "BAD_REQUEST",
		"message": "Unknown category"
	}
}`

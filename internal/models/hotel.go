package models

// RoomOffer is one room type and its advertised price on a booking site
type RoomOffer struct {
	RoomType   string `json:"room_type"`
	PriceText  string `json:"price_text"`
	PriceValue *int   `json:"price_value,omitempty"` // nil when the text holds no digits
}

// HotelPricing is the best-effort enrichment attached to a lodging result
type HotelPricing struct {
	HotelName string      `json:"hotel_name"`
	HotelURL  string      `json:"hotel_url"`
	Rooms     []RoomOffer `json:"rooms"`
}

package models

// DateLayout is the wire and storage format of MarketPrice.Date. Dates in
// this layout sort lexicographically in calendar order.
const DateLayout = "2006-01-02"

type MarketPrice struct {
	Record
	Commodity BilingualText `json:"commodity"`
	Market    string        `json:"market"`
	Price     float64       `json:"price"`
	Unit      string        `json:"unit"`
	Change    string        `json:"change"`
	Date      string        `json:"date"`
}

package dto

type CreateMarketPriceRequest struct {
	Commodity BilingualInput `json:"commodity" validate:"required"`
	Market    *string        `json:"market" validate:"required"`
	Price     *float64       `json:"price" validate:"required,gte=0"`
	Unit      *string        `json:"unit" validate:"required"`
	Change    *string        `json:"change" validate:"required"`
	Date      string         `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdateMarketPriceRequest struct {
	Commodity *BilingualInput `json:"commodity,omitempty" validate:"omitempty"`
	Market    *string         `json:"market,omitempty" validate:"omitempty"`
	Price     *float64        `json:"price,omitempty" validate:"omitempty,gte=0"`
	Unit      *string         `json:"unit,omitempty" validate:"omitempty"`
	Change    *string         `json:"change,omitempty" validate:"omitempty"`
	Date      *string         `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

package services

import (
	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/dimitrije/kisan-api/pkg/dto"
)

type MarketPriceService = Repository[*models.MarketPrice, dto.CreateMarketPriceRequest, dto.UpdateMarketPriceRequest]

var MarketPriceFields = filter.FieldMap{
	{Param: "commodity", Kind: filter.Bilingual, Fields: []string{"commodity"}},
	{Param: "market", Kind: filter.Scalar, Fields: []string{"market"}},
	{Param: "date", Kind: filter.ExactMatch, Fields: []string{"date"}, Layout: models.DateLayout},
}

// Newest prices first. Dates are stored as YYYY-MM-DD, so the text order is
// the calendar order.
var marketPriceSort = []filter.Sort{{Path: filter.Path{"date"}, Desc: true}}

func NewMarketPriceService(st store.Store, limit int) *MarketPriceService {
	return NewRepository[*models.MarketPrice, dto.CreateMarketPriceRequest, dto.UpdateMarketPriceRequest](st, Binding[*models.MarketPrice, dto.CreateMarketPriceRequest]{
		Kind:       "market price",
		Title:      "Market price",
		Collection: store.MarketPrices,
		Fields:     MarketPriceFields,
		Sort:       marketPriceSort,
		New: func(req dto.CreateMarketPriceRequest) *models.MarketPrice {
			return &models.MarketPrice{
				Commodity: req.Commodity.Text(),
				Market:    dto.Value(req.Market),
				Price:     dto.Value(req.Price),
				Unit:      dto.Value(req.Unit),
				Change:    dto.Value(req.Change),
				Date:      req.Date,
			}
		},
	}, limit)
}

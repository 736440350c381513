package testutil

import (
	"time"

	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/pkg/dto"
)

func Bilingual(hindi, english string) dto.BilingualInput {
	return dto.Bilingual(hindi, english)
}

func Ptr[T any](v T) *T {
	return &v
}

// CropRequest returns a valid create request for a wheat crop
func CropRequest() dto.CreateCropRequest {
	return dto.CreateCropRequest{
		Crop:        Bilingual("गेहूं", "Wheat"),
		Season:      Bilingual("रबी", "Rabi"),
		SoilType:    Bilingual("दोमट मिट्टी", "Loamy Soil"),
		SowingTime:  Bilingual("नवंबर-दिसंबर", "November-December"),
		HarvestTime: Bilingual("मार्च-अप्रैल", "March-April"),
		Tips:        Bilingual("नियमित सिंचाई आवश्यक", "Regular irrigation required"),
		Region:      Ptr("All India"),
	}
}

// Crop returns a stored crop built from CropRequest
func Crop(id string) *models.Crop {
	req := CropRequest()
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	return &models.Crop{
		Record:      models.Record{ID: id, CreatedAt: now, UpdatedAt: now},
		Crop:        req.Crop.Text(),
		Season:      req.Season.Text(),
		SoilType:    req.SoilType.Text(),
		SowingTime:  req.SowingTime.Text(),
		HarvestTime: req.HarvestTime.Text(),
		Tips:        req.Tips.Text(),
		Region:      dto.Value(req.Region),
	}
}

// MarketPriceRequest returns a valid create request for a market price
func MarketPriceRequest(date string) dto.CreateMarketPriceRequest {
	return dto.CreateMarketPriceRequest{
		Commodity: Bilingual("गेहूं", "Wheat"),
		Market:    Ptr("Delhi Mandi"),
		Price:     Ptr(2150.0),
		Unit:      Ptr("per quintal"),
		Change:    Ptr("+50"),
		Date:      date,
	}
}

// QAPairRequest returns a valid create request for a Q&A pair
func QAPairRequest(hindiQuestion, englishQuestion, category string) dto.CreateQAPairRequest {
	return dto.CreateQAPairRequest{
		Question: Bilingual(hindiQuestion, englishQuestion),
		Answer:   Bilingual("उत्तर: "+hindiQuestion, "Answer: "+englishQuestion),
		Category: Ptr(category),
	}
}

package services

import (
	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/dimitrije/kisan-api/pkg/dto"
)

type CropService = Repository[*models.Crop, dto.CreateCropRequest, dto.UpdateCropRequest]

var CropFields = filter.FieldMap{
	{Param: "season", Kind: filter.Bilingual, Fields: []string{"season"}},
	{Param: "soil_type", Kind: filter.Bilingual, Fields: []string{"soil_type"}},
	{Param: "region", Kind: filter.Scalar, Fields: []string{"region"}},
	{Param: "search", Kind: filter.Bilingual, Fields: []string{"crop"}},
}

func NewCropService(st store.Store, limit int) *CropService {
	return NewRepository[*models.Crop, dto.CreateCropRequest, dto.UpdateCropRequest](st, Binding[*models.Crop, dto.CreateCropRequest]{
		Kind:       "crop",
		Title:      "Crop",
		Collection: store.Crops,
		Fields:     CropFields,
		New: func(req dto.CreateCropRequest) *models.Crop {
			return &models.Crop{
				Crop:        req.Crop.Text(),
				Season:      req.Season.Text(),
				SoilType:    req.SoilType.Text(),
				SowingTime:  req.SowingTime.Text(),
				HarvestTime: req.HarvestTime.Text(),
				Tips:        req.Tips.Text(),
				Region:      dto.Value(req.Region),
			}
		},
	}, limit)
}

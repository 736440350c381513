package services

import (
	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/dimitrije/kisan-api/pkg/dto"
)

type StorageGuideService = Repository[*models.StorageGuide, dto.CreateStorageGuideRequest, dto.UpdateStorageGuideRequest]

var StorageGuideFields = filter.FieldMap{
	{Param: "item", Kind: filter.Bilingual, Fields: []string{"item"}},
}

func NewStorageGuideService(st store.Store, limit int) *StorageGuideService {
	return NewRepository[*models.StorageGuide, dto.CreateStorageGuideRequest, dto.UpdateStorageGuideRequest](st, Binding[*models.StorageGuide, dto.CreateStorageGuideRequest]{
		Kind:       "storage guide",
		Title:      "Storage guide",
		Collection: store.StorageGuides,
		Fields:     StorageGuideFields,
		New: func(req dto.CreateStorageGuideRequest) *models.StorageGuide {
			return &models.StorageGuide{
				Item: req.Item.Text(),
				Tips: dto.Texts(req.Tips),
			}
		},
	}, limit)
}

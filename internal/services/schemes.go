package services

import (
	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/dimitrije/kisan-api/pkg/dto"
)

type SchemeService = Repository[*models.Scheme, dto.CreateSchemeRequest, dto.UpdateSchemeRequest]

var SchemeFields = filter.FieldMap{
	{Param: "category", Kind: filter.Scalar, Fields: []string{"category"}},
	{Param: "state", Kind: filter.Scalar, Fields: []string{"state"}},
	{Param: "search", Kind: filter.Bilingual, Fields: []string{"name", "description"}},
}

func NewSchemeService(st store.Store, limit int) *SchemeService {
	return NewRepository[*models.Scheme, dto.CreateSchemeRequest, dto.UpdateSchemeRequest](st, Binding[*models.Scheme, dto.CreateSchemeRequest]{
		Kind:       "scheme",
		Title:      "Scheme",
		Collection: store.Schemes,
		Fields:     SchemeFields,
		New: func(req dto.CreateSchemeRequest) *models.Scheme {
			return &models.Scheme{
				Name:        req.Name.Text(),
				Description: req.Description.Text(),
				Eligibility: req.Eligibility.Text(),
				State:       dto.Value(req.State),
				Category:    dto.Value(req.Category),
				Link:        dto.Value(req.Link),
			}
		},
	}, limit)
}

package services

import (
	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/dimitrije/kisan-api/pkg/dto"
)

type QAPairService = Repository[*models.QAPair, dto.CreateQAPairRequest, dto.UpdateQAPairRequest]

var QAPairFields = filter.FieldMap{
	{Param: "category", Kind: filter.Scalar, Fields: []string{"category"}},
}

func NewQAPairService(st store.Store, limit int) *QAPairService {
	return NewRepository[*models.QAPair, dto.CreateQAPairRequest, dto.UpdateQAPairRequest](st, Binding[*models.QAPair, dto.CreateQAPairRequest]{
		Kind:       "q&a pair",
		Title:      "Q&A pair",
		Collection: store.QAPairs,
		Fields:     QAPairFields,
		New: func(req dto.CreateQAPairRequest) *models.QAPair {
			return &models.QAPair{
				Question: req.Question.Text(),
				Answer:   req.Answer.Text(),
				Category: dto.Value(req.Category),
			}
		},
	}, limit)
}

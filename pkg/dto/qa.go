package dto

type CreateQAPairRequest struct {
	Question BilingualInput `json:"question" validate:"required"`
	Answer   BilingualInput `json:"answer" validate:"required"`
	Category *string        `json:"category" validate:"required"`
}

type UpdateQAPairRequest struct {
	Question *BilingualInput `json:"question,omitempty" validate:"omitempty"`
	Answer   *BilingualInput `json:"answer,omitempty" validate:"omitempty"`
	Category *string         `json:"category,omitempty" validate:"omitempty"`
}

type ChatRequest struct {
	Question string `json:"question" validate:"required"`
	Language string `json:"language,omitempty"`
}

type ChatResponse struct {
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

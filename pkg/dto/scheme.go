package dto

type CreateSchemeRequest struct {
	Name        BilingualInput `json:"name" validate:"required"`
	Description BilingualInput `json:"description" validate:"required"`
	Eligibility BilingualInput `json:"eligibility" validate:"required"`
	State       *string        `json:"state" validate:"required"`
	Category    *string        `json:"category" validate:"required"`
	Link        *string        `json:"link" validate:"required"`
}

type UpdateSchemeRequest struct {
	Name        *BilingualInput `json:"name,omitempty" validate:"omitempty"`
	Description *BilingualInput `json:"description,omitempty" validate:"omitempty"`
	Eligibility *BilingualInput `json:"eligibility,omitempty" validate:"omitempty"`
	State       *string         `json:"state,omitempty" validate:"omitempty"`
	Category    *string         `json:"category,omitempty" validate:"omitempty"`
	Link        *string         `json:"link,omitempty" validate:"omitempty"`
}

package dto

type CreateStorageGuideRequest struct {
	Item BilingualInput   `json:"item" validate:"required"`
	Tips []BilingualInput `json:"tips" validate:"required,dive"`
}

type UpdateStorageGuideRequest struct {
	Item *BilingualInput   `json:"item,omitempty" validate:"omitempty"`
	Tips *[]BilingualInput `json:"tips,omitempty" validate:"omitempty,dive"`
}

package dto

type CreateCropRequest struct {
	Crop        BilingualInput `json:"crop" validate:"required"`
	Season      BilingualInput `json:"season" validate:"required"`
	SoilType    BilingualInput `json:"soil_type" validate:"required"`
	SowingTime  BilingualInput `json:"sowing_time" validate:"required"`
	HarvestTime BilingualInput `json:"harvest_time" validate:"required"`
	Tips        BilingualInput `json:"tips" validate:"required"`
	Region      *string        `json:"region" validate:"required"`
}

type UpdateCropRequest struct {
	Crop        *BilingualInput `json:"crop,omitempty" validate:"omitempty"`
	Season      *BilingualInput `json:"season,omitempty" validate:"omitempty"`
	SoilType    *BilingualInput `json:"soil_type,omitempty" validate:"omitempty"`
	SowingTime  *BilingualInput `json:"sowing_time,omitempty" validate:"omitempty"`
	HarvestTime *BilingualInput `json:"harvest_time,omitempty" validate:"omitempty"`
	Tips        *BilingualInput `json:"tips,omitempty" validate:"omitempty"`
	Region      *string         `json:"region,omitempty" validate:"omitempty"`
}

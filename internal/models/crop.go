package models

type Crop struct {
	Record
	Crop        BilingualText `json:"crop"`
	Season      BilingualText `json:"season"`
	SoilType    BilingualText `json:"soil_type"`
	SowingTime  BilingualText `json:"sowing_time"`
	HarvestTime BilingualText `json:"harvest_time"`
	Tips        BilingualText `json:"tips"`
	Region      string        `json:"region"`
}

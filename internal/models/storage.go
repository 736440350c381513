package models

type StorageGuide struct {
	Record
	Item BilingualText   `json:"item"`
	Tips []BilingualText `json:"tips"`
}

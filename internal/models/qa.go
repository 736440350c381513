package models

type QAPair struct {
	Record
	Question BilingualText `json:"question"`
	Answer   BilingualText `json:"answer"`
	Category string        `json:"category"`
}

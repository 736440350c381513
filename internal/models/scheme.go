package models

type Scheme struct {
	Record
	Name        BilingualText `json:"name"`
	Description BilingualText `json:"description"`
	Eligibility BilingualText `json:"eligibility"`
	State       string        `json:"state"`
	Category    string        `json:"category"`
	Link        string        `json:"link"`
}

package models

import "time"

// Record carries the server-assigned fields every stored entity shares.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Meta gives generic code access to the embedded record fields.
func (r *Record) Meta() *Record {
	return r
}

// BilingualText holds the Hindi and English variants of one field.
type BilingualText struct {
	Hindi   string `json:"hindi"`
	English string `json:"english"`
}

const (
	LanguageHindi   = "hindi"
	LanguageEnglish = "english"
)

// In returns the variant for language, English for anything but Hindi.
func (b BilingualText) In(language string) string {
	if language == LanguageHindi {
		return b.Hindi
	}
	return b.English
}

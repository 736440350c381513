package dto

import "github.com/dimitrije/kisan-api/internal/models"

// BilingualInput is bilingual text as sent by clients. Both halves must be
// present; empty strings are accepted.
type BilingualInput struct {
	Hindi   *string `json:"hindi" validate:"required"`
	English *string `json:"english" validate:"required"`
}

func Bilingual(hindi, english string) BilingualInput {
	return BilingualInput{Hindi: &hindi, English: &english}
}

func (b BilingualInput) Text() models.BilingualText {
	return models.BilingualText{Hindi: Value(b.Hindi), English: Value(b.English)}
}

// Texts converts a list of inputs, keeping nil as an empty list.
func Texts(in []BilingualInput) []models.BilingualText {
	out := make([]models.BilingualText, len(in))
	for i, b := range in {
		out[i] = b.Text()
	}
	return out
}

// Value dereferences p, giving the zero value for nil.
func Value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

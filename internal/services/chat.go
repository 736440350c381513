package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/dimitrije/kisan-api/internal/metrics"
	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/dimitrije/kisan-api/pkg/dto"
)

const FallbackCategory = "General"

var fallbackAnswer = models.BilingualText{
	Hindi:   "मुझे खुशी होगी आपकी मदद करने में। कृपया अपना प्रश्न और स्पष्ट तरीके से पूछें।",
	English: "I would be happy to help you. Please ask your question more clearly.",
}

// ChatService answers free-text questions from the stored Q&A pairs.
type ChatService struct {
	store   store.Store
	metrics *metrics.Collector
}

func NewChatService(st store.Store, collector *metrics.Collector) *ChatService {
	return &ChatService{store: st, metrics: collector}
}

// Ask returns the answer of the first Q&A pair, in storage order, whose
// question contains the asked question in either language. When nothing
// contains the whole question, its words are tried one at a time.
func (s *ChatService) Ask(ctx context.Context, question, language string) (*dto.ChatResponse, error) {
	language = NormalizeLanguage(language)

	for _, needle := range needles(question) {
		qa, err := s.firstMatch(ctx, needle)
		if err != nil {
			return nil, err
		}
		if qa != nil {
			s.metrics.RecordChat(true)
			return &dto.ChatResponse{
				Answer:   qa.Answer.In(language),
				Category: qa.Category,
			}, nil
		}
	}

	s.metrics.RecordChat(false)
	return &dto.ChatResponse{
		Answer:   fallbackAnswer.In(language),
		Category: FallbackCategory,
	}, nil
}

func (s *ChatService) firstMatch(ctx context.Context, needle string) (*models.QAPair, error) {
	f := filter.Filter{}.And(filter.BilingualContains(needle, "question"))

	docs, err := s.store.Find(ctx, store.QAPairs, f, store.FindOptions{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("%w: chat lookup: %w", ErrStorage, err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var qa models.QAPair
	if err := json.Unmarshal(docs[0], &qa); err != nil {
		return nil, fmt.Errorf("%w: chat lookup: %w", ErrStorage, err)
	}
	return &qa, nil
}

// NormalizeLanguage maps an absent language to Hindi and lowercases the rest.
func NormalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return models.LanguageHindi
	}
	return language
}

// Function words match almost every stored question, so they never count as
// a word match on their own.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "was": true,
	"be": true, "to": true, "of": true, "and": true, "or": true, "in": true,
	"on": true, "at": true, "for": true, "with": true, "by": true, "from": true,
	"as": true, "it": true, "this": true, "that": true, "do": true, "does": true,
	"can": true, "i": true, "me": true, "my": true, "we": true, "you": true,
	"your": true, "how": true, "what": true, "when": true, "where": true,
	"which": true, "who": true, "why": true, "about": true, "tell": true,
	"please": true,

	"का": true, "के": true, "की": true, "को": true, "में": true, "से": true,
	"पर": true, "है": true, "हैं": true, "था": true, "थे": true, "और": true,
	"या": true, "भी": true, "क्या": true, "कैसे": true, "कब": true, "कहाँ": true,
	"कौन": true, "क्यों": true, "मेरा": true, "मेरी": true, "मेरे": true,
	"मैं": true, "हम": true, "आप": true, "यह": true, "वह": true, "करें": true,
	"करना": true, "लिए": true, "तो": true, "ही": true, "ने": true,
}

// needles lists the whole trimmed question followed by its distinct words of
// at least two characters, skipping stop words.
func needles(question string) []string {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil
	}

	out := []string{question}
	seen := map[string]bool{question: true}
	words := strings.FieldsFunc(question, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	for _, word := range words {
		if utf8.RuneCountInString(word) < 2 || seen[word] || stopWords[strings.ToLower(word)] {
			continue
		}
		seen[word] = true
		out = append(out, word)
	}
	return out
}

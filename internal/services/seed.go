package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/store"
	"go.uber.org/zap"
)

// Seeder replaces the content of every record collection with the built-in
// starter data.
type Seeder struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
}

type SeedResult struct {
	Collection string
	Deleted    int64
	Inserted   int
}

func NewSeeder(st store.Store, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		store:  st,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Seed clears and refills the collections in a fixed order. It stops at the
// first failure; collections already seeded stay seeded.
func (s *Seeder) Seed(ctx context.Context) ([]SeedResult, error) {
	now := s.now()
	stamp := models.Record{CreatedAt: now, UpdatedAt: now}

	sets := []struct {
		collection string
		docs       func(models.Record) ([]store.Document, error)
	}{
		{store.Schemes, func(r models.Record) ([]store.Document, error) { return documents(seedSchemes(r)) }},
		{store.Crops, func(r models.Record) ([]store.Document, error) { return documents(seedCrops(r)) }},
		{store.MarketPrices, func(r models.Record) ([]store.Document, error) { return documents(seedMarketPrices(r)) }},
		{store.QAPairs, func(r models.Record) ([]store.Document, error) { return documents(seedQAPairs(r)) }},
		{store.StorageGuides, func(r models.Record) ([]store.Document, error) { return documents(seedStorageGuides(r)) }},
	}

	results := make([]SeedResult, 0, len(sets))
	for _, set := range sets {
		docs, err := set.docs(stamp)
		if err != nil {
			return results, fmt.Errorf("failed to encode %s seed data: %w", set.collection, err)
		}

		deleted, err := s.store.DeleteAll(ctx, set.collection)
		if err != nil {
			return results, fmt.Errorf("%w: clear %s: %w", ErrStorage, set.collection, err)
		}
		if err := s.store.InsertMany(ctx, set.collection, docs); err != nil {
			return results, fmt.Errorf("%w: seed %s: %w", ErrStorage, set.collection, err)
		}

		s.logger.Info("seeded collection",
			zap.String("collection", set.collection),
			zap.Int64("deleted", deleted),
			zap.Int("inserted", len(docs)),
		)
		results = append(results, SeedResult{Collection: set.collection, Deleted: deleted, Inserted: len(docs)})
	}
	return results, nil
}

func documents[E Entity](entities []E) ([]store.Document, error) {
	docs := make([]store.Document, len(entities))
	for i, e := range entities {
		body, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		docs[i] = store.Document{ID: e.Meta().ID, Body: body}
	}
	return docs, nil
}

func withID(r models.Record, id string) models.Record {
	r.ID = id
	return r
}

func seedSchemes(r models.Record) []*models.Scheme {
	return []*models.Scheme{
		{
			Record:      withID(r, "scheme_1"),
			Name:        models.BilingualText{Hindi: "प्रधानमंत्री किसान सम्मान निधि", English: "PM Kisan Samman Nidhi"},
			Description: models.BilingualText{Hindi: "छोटे और सीमांत किसानों को वित्तीय सहायता के लिए ₹6,000 प्रति वर्ष", English: "Financial assistance of ₹6,000 per year for small and marginal farmers"},
			Eligibility: models.BilingualText{Hindi: "सभी भूमिधारक किसान परिवार", English: "All landholding farmer families"},
			State:       "Central",
			Category:    "Financial Support",
			Link:        "https://pmkisan.gov.in",
		},
		{
			Record:      withID(r, "scheme_2"),
			Name:        models.BilingualText{Hindi: "फसल बीमा योजना", English: "Pradhan Mantri Fasal Bima Yojana"},
			Description: models.BilingualText{Hindi: "प्राकृतिक आपदाओं से होने वाले नुकसान के लिए फसल बीमा", English: "Crop insurance for losses due to natural disasters"},
			Eligibility: models.BilingualText{Hindi: "सभी किसान (भूमिधारक और गैर-भूमिधारक)", English: "All farmers (landholding and non-landholding)"},
			State:       "Central",
			Category:    "Insurance",
			Link:        "https://pmfby.gov.in",
		},
		{
			Record:      withID(r, "scheme_3"),
			Name:        models.BilingualText{Hindi: "कृषि यंत्रीकरण योजना", English: "Sub Mission on Agricultural Mechanization"},
			Description: models.BilingualText{Hindi: "कृषि उपकरण खरीदने के लिए सब्सिडी", English: "Subsidy for purchasing agricultural equipment"},
			Eligibility: models.BilingualText{Hindi: "सभी श्रेणी के किसान", English: "Farmers of all categories"},
			State:       "Central",
			Category:    "Equipment",
			Link:        "https://agrimachinery.nic.in",
		},
	}
}

func seedCrops(r models.Record) []*models.Crop {
	return []*models.Crop{
		{
			Record:      withID(r, "crop_1"),
			Crop:        models.BilingualText{Hindi: "गेहूं", English: "Wheat"},
			Season:      models.BilingualText{Hindi: "रबी", English: "Rabi"},
			SoilType:    models.BilingualText{Hindi: "दोमट मिट्टी", English: "Loamy Soil"},
			SowingTime:  models.BilingualText{Hindi: "नवंबर-दिसंबर", English: "November-December"},
			HarvestTime: models.BilingualText{Hindi: "मार्च-अप्रैल", English: "March-April"},
			Tips:        models.BilingualText{Hindi: "उचित जल निकासी और नियमित सिंचाई आवश्यक", English: "Proper drainage and regular irrigation required"},
			Region:      "All India",
		},
		{
			Record:      withID(r, "crop_2"),
			Crop:        models.BilingualText{Hindi: "धान", English: "Rice"},
			Season:      models.BilingualText{Hindi: "खरीफ", English: "Kharif"},
			SoilType:    models.BilingualText{Hindi: "चिकनी मिट्टी", English: "Clay Soil"},
			SowingTime:  models.BilingualText{Hindi: "जून-जुलाई", English: "June-July"},
			HarvestTime: models.BilingualText{Hindi: "अक्टूबर-नवंबर", English: "October-November"},
			Tips:        models.BilingualText{Hindi: "पानी से भरे खेत में उगाई जाती है", English: "Grown in flooded fields"},
			Region:      "All India",
		},
	}
}

func seedMarketPrices(r models.Record) []*models.MarketPrice {
	return []*models.MarketPrice{
		{
			Record:    withID(r, "market_1"),
			Commodity: models.BilingualText{Hindi: "गेहूं", English: "Wheat"},
			Market:    "Delhi Mandi",
			Price:     2150,
			Unit:      "per quintal",
			Change:    "+50",
			Date:      "2024-01-15",
		},
		{
			Record:    withID(r, "market_2"),
			Commodity: models.BilingualText{Hindi: "धान", English: "Rice"},
			Market:    "Mumbai Mandi",
			Price:     3200,
			Unit:      "per quintal",
			Change:    "-25",
			Date:      "2024-01-15",
		},
		{
			Record:    withID(r, "market_3"),
			Commodity: models.BilingualText{Hindi: "मक्का", English: "Maize"},
			Market:    "Pune Mandi",
			Price:     1850,
			Unit:      "per quintal",
			Change:    "+75",
			Date:      "2024-01-15",
		},
	}
}

func seedQAPairs(r models.Record) []*models.QAPair {
	return []*models.QAPair{
		{
			Record:   withID(r, "qa_1"),
			Question: models.BilingualText{Hindi: "गेहूं की खेती कैसे करें?", English: "How to cultivate wheat?"},
			Answer: models.BilingualText{
				Hindi:   "गेहूं की खेती के लिए दोमट मिट्टी सबसे उपयुक्त है। नवंबर-दिसंबर में बुआई करें। नियमित सिंचाई और उर्वरक का प्रयोग करें।",
				English: "Loamy soil is most suitable for wheat cultivation. Sow in November-December. Use regular irrigation and fertilizers.",
			},
			Category: "Crop Cultivation",
		},
		{
			Record:   withID(r, "qa_2"),
			Question: models.BilingualText{Hindi: "PM किसान योजना के लिए कैसे आवेदन करें?", English: "How to apply for PM Kisan scheme?"},
			Answer: models.BilingualText{
				Hindi:   "PM किसान की आधिकारिक वेबसाइट पर जाकर ऑनलाइन आवेदन कर सकते हैं। आधार कार्ड, बैंक खाता और भूमि का विवरण चाहिए।",
				English: "You can apply online on the official PM Kisan website. Aadhaar card, bank account and land details are required.",
			},
			Category: "Government Schemes",
		},
		{
			Record:   withID(r, "qa_3"),
			Question: models.BilingualText{Hindi: "फसल में कीट लगने पर क्या करें?", English: "What to do when crops are affected by pests?"},
			Answer: models.BilingualText{
				Hindi:   "तुरंत कृषि विशेषज्ञ से संपर्क करें। जैविक कीटनाशक का प्रयोग करें। नीम का तेल प्राकृतिक कीटनाशक है।",
				English: "Contact agricultural expert immediately. Use organic pesticides. Neem oil is a natural pesticide.",
			},
			Category: "Pest Management",
		},
	}
}

func seedStorageGuides(r models.Record) []*models.StorageGuide {
	return []*models.StorageGuide{
		{
			Record: withID(r, "storage_1"),
			Item:   models.BilingualText{Hindi: "अनाज", English: "Grains"},
			Tips: []models.BilingualText{
				{Hindi: "अनाज को पूरी तरह सुखाकर भंडारित करें", English: "Store grains after complete drying"},
				{Hindi: "हवादार स्थान पर रखें", English: "Keep in well-ventilated area"},
			},
		},
		{
			Record: withID(r, "storage_2"),
			Item:   models.BilingualText{Hindi: "सब्जियां", English: "Vegetables"},
			Tips: []models.BilingualText{
				{Hindi: "ठंडी और सूखी जगह पर रखें", English: "Store in cool and dry place"},
				{Hindi: "अलग-अलग सब्जियों को अलग रखें", English: "Store different vegetables separately"},
			},
		},
	}
}

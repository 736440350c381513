// Package store is the document store behind the record repositories.
// Documents are JSON objects addressed by collection and id; every call is a
// single read or a single-document write.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dimitrije/kisan-api/internal/filter"
)

const (
	Crops         = "crops"
	MarketPrices  = "market_prices"
	Schemes       = "schemes"
	StorageGuides = "storage_guides"
	QAPairs       = "qa_pairs"
	WeatherCache  = "weather_cache"
)

var (
	// ErrNotFound indicates no document has the requested id.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateID indicates an insert reused an existing id.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrUnknownCollection indicates a collection the store has no table for.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Document is a stored JSON object together with its id.
type Document struct {
	ID   string
	Body json.RawMessage
}

type FindOptions struct {
	Sort  []filter.Sort
	Limit int
}

type Store interface {
	// Find returns matching documents in sort order, then insertion order.
	Find(ctx context.Context, collection string, f filter.Filter, opts FindOptions) ([]json.RawMessage, error)
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	Insert(ctx context.Context, collection string, doc Document) error
	InsertMany(ctx context.Context, collection string, docs []Document) error
	// Merge overwrites the top-level keys present in patch and returns the
	// merged document.
	Merge(ctx context.Context, collection, id string, patch json.RawMessage) (json.RawMessage, error)
	Upsert(ctx context.Context, collection string, doc Document) error
	Delete(ctx context.Context, collection, id string) error
	DeleteAll(ctx context.Context, collection string) (int64, error)
	Ping(ctx context.Context) error
	Close()
}

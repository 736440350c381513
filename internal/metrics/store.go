package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/dimitrije/kisan-api/internal/store"
)

// InstrumentedStore records count, outcome and latency of every call to the
// wrapped store.
type InstrumentedStore struct {
	next      store.Store
	collector *Collector
}

func NewInstrumentedStore(next store.Store, collector *Collector) *InstrumentedStore {
	return &InstrumentedStore{next: next, collector: collector}
}

func (s *InstrumentedStore) observe(collection, operation string, start time.Time, err error) {
	outcome := OutcomeOK
	switch {
	case errors.Is(err, store.ErrNotFound):
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeError
	}
	s.collector.StoreOperations.WithLabelValues(collection, operation, outcome).Inc()
	s.collector.StoreDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
}

func (s *InstrumentedStore) Find(ctx context.Context, collection string, f filter.Filter, opts store.FindOptions) ([]json.RawMessage, error) {
	start := time.Now()
	docs, err := s.next.Find(ctx, collection, f, opts)
	s.observe(collection, "find", start, err)
	return docs, err
}

func (s *InstrumentedStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	start := time.Now()
	doc, err := s.next.Get(ctx, collection, id)
	s.observe(collection, "get", start, err)
	return doc, err
}

func (s *InstrumentedStore) Insert(ctx context.Context, collection string, doc store.Document) error {
	start := time.Now()
	err := s.next.Insert(ctx, collection, doc)
	s.observe(collection, "insert", start, err)
	return err
}

func (s *InstrumentedStore) InsertMany(ctx context.Context, collection string, docs []store.Document) error {
	start := time.Now()
	err := s.next.InsertMany(ctx, collection, docs)
	s.observe(collection, "insert_many", start, err)
	return err
}

func (s *InstrumentedStore) Merge(ctx context.Context, collection, id string, patch json.RawMessage) (json.RawMessage, error) {
	start := time.Now()
	doc, err := s.next.Merge(ctx, collection, id, patch)
	s.observe(collection, "merge", start, err)
	return doc, err
}

func (s *InstrumentedStore) Upsert(ctx context.Context, collection string, doc store.Document) error {
	start := time.Now()
	err := s.next.Upsert(ctx, collection, doc)
	s.observe(collection, "upsert", start, err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, collection, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, collection, id)
	s.observe(collection, "delete", start, err)
	return err
}

func (s *InstrumentedStore) DeleteAll(ctx context.Context, collection string) (int64, error) {
	start := time.Now()
	n, err := s.next.DeleteAll(ctx, collection)
	s.observe(collection, "delete_all", start, err)
	return n, err
}

func (s *InstrumentedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *InstrumentedStore) Close() {
	s.next.Close()
}

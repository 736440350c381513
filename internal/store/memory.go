package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dimitrije/kisan-api/internal/filter"
)

// MemoryStore is a process-local Store for development and tests. Documents
// are kept in insertion order; all operations are serialized by one lock.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
}

type memCollection struct {
	order []string
	docs  map[string]memDoc
}

type memDoc struct {
	raw     json.RawMessage
	decoded map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memCollection)}
}

// peek returns the named collection without creating it; safe under RLock.
func (s *MemoryStore) peek(name string) *memCollection {
	if c, ok := s.collections[name]; ok {
		return c
	}
	return &memCollection{}
}

func (s *MemoryStore) collection(name string) *memCollection {
	c, ok := s.collections[name]
	if !ok {
		c = &memCollection{docs: make(map[string]memDoc)}
		s.collections[name] = c
	}
	return c
}

func (s *MemoryStore) Find(ctx context.Context, collection string, f filter.Filter, opts FindOptions) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.peek(collection)
	var matched []memDoc
	for _, id := range c.order {
		doc := c.docs[id]
		if f.Matches(doc.decoded) {
			matched = append(matched, doc)
		}
	}

	if len(opts.Sort) > 0 {
		slices.SortStableFunc(matched, func(a, b memDoc) int {
			for _, key := range opts.Sort {
				av, _ := filter.Lookup(a.decoded, key.Path)
				bv, _ := filter.Lookup(b.decoded, key.Path)
				cmp := strings.Compare(av, bv)
				if key.Desc {
					cmp = -cmp
				}
				if cmp != 0 {
					return cmp
				}
			}
			return 0
		})
	}

	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	docs := make([]json.RawMessage, len(matched))
	for i, doc := range matched {
		docs[i] = bytes.Clone(doc.raw)
	}
	return docs, nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.peek(collection).docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return bytes.Clone(doc.raw), nil
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(s.collection(collection), doc)
}

func (s *MemoryStore) InsertMany(ctx context.Context, collection string, docs []Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	for _, doc := range docs {
		if _, ok := c.docs[doc.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, doc.ID)
		}
	}
	for _, doc := range docs {
		if err := s.insert(c, doc); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) insert(c *memCollection, doc Document) error {
	if _, ok := c.docs[doc.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, doc.ID)
	}
	stored, err := newMemDoc(doc.Body)
	if err != nil {
		return err
	}
	c.docs[doc.ID] = stored
	c.order = append(c.order, doc.ID)
	return nil
}

func (s *MemoryStore) Merge(ctx context.Context, collection, id string, patch json.RawMessage) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	current, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}

	var fields, updates map[string]json.RawMessage
	if err := json.Unmarshal(current.raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}
	if err := json.Unmarshal(patch, &updates); err != nil {
		return nil, fmt.Errorf("failed to decode patch: %w", err)
	}
	for key, value := range updates {
		fields[key] = value
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	merged, err := newMemDoc(raw)
	if err != nil {
		return nil, err
	}
	c.docs[id] = merged
	return bytes.Clone(merged.raw), nil
}

func (s *MemoryStore) Upsert(ctx context.Context, collection string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	if _, ok := c.docs[doc.ID]; !ok {
		return s.insert(c, doc)
	}
	stored, err := newMemDoc(doc.Body)
	if err != nil {
		return err
	}
	c.docs[doc.ID] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	delete(c.docs, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	return nil
}

func (s *MemoryStore) DeleteAll(ctx context.Context, collection string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	n := int64(len(c.order))
	c.order = nil
	c.docs = make(map[string]memDoc)
	return n, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() {}

func newMemDoc(raw json.RawMessage) (memDoc, error) {
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return memDoc{}, fmt.Errorf("document is not a JSON object: %w", err)
	}
	return memDoc{raw: bytes.Clone(raw), decoded: decoded}, nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/google/uuid"
)

const DefaultListLimit = 1000

var (
	// ErrNotFound is matched by every kind-specific not-found error.
	ErrNotFound = errors.New("not found")

	// ErrStorage wraps any failure of the underlying store.
	ErrStorage = errors.New("storage failure")

	// ErrInvalidFilter marks query parameters that cannot be used.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Entity is implemented by pointers to the model types through their
// embedded models.Record.
type Entity interface {
	Meta() *models.Record
}

// Binding describes how one entity kind maps onto the store.
type Binding[E Entity, C any] struct {
	Kind string
	// Title is Kind as it starts a client-facing message.
	Title      string
	Collection string
	Fields     filter.FieldMap
	Sort       []filter.Sort
	// New builds the entity from a create request. Record fields are
	// assigned by the repository afterwards.
	New func(C) E
}

// Repository is the list/get/create/update/delete facade shared by every
// entity kind. E is a pointer to a model, C the create request and U the
// partial update request, whose unset fields must marshal to nothing.
type Repository[E Entity, C any, U any] struct {
	store    store.Store
	binding  Binding[E, C]
	notFound error
	limit    int
	now      func() time.Time
	newID    func() string
}

func NewRepository[E Entity, C any, U any](st store.Store, binding Binding[E, C], limit int) *Repository[E, C, U] {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return &Repository[E, C, U]{
		store:    st,
		binding:  binding,
		notFound: fmt.Errorf("%s %w", binding.Kind, ErrNotFound),
		limit:    limit,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (r *Repository[E, C, U]) Kind() string {
	return r.binding.Kind
}

func (r *Repository[E, C, U]) Title() string {
	if r.binding.Title == "" {
		return r.binding.Kind
	}
	return r.binding.Title
}

// Params lists the query parameters List understands.
func (r *Repository[E, C, U]) Params() []string {
	return r.binding.Fields.Params()
}

func (r *Repository[E, C, U]) List(ctx context.Context, params map[string]string) ([]E, error) {
	if err := r.binding.Fields.Validate(params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	docs, err := r.store.Find(ctx, r.binding.Collection, r.binding.Fields.Build(params), store.FindOptions{
		Sort:  r.binding.Sort,
		Limit: r.limit,
	})
	if err != nil {
		return nil, r.storageError("list", err)
	}

	entities := make([]E, 0, len(docs))
	for _, doc := range docs {
		e, err := r.decode(doc)
		if err != nil {
			return nil, r.storageError("list", err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func (r *Repository[E, C, U]) Get(ctx context.Context, id string) (E, error) {
	doc, err := r.store.Get(ctx, r.binding.Collection, id)
	if err != nil {
		var zero E
		return zero, r.wrap("get", err)
	}
	return r.decodeOrFail("get", doc)
}

func (r *Repository[E, C, U]) Create(ctx context.Context, req C) (E, error) {
	var zero E

	e := r.binding.New(req)
	now := r.now()
	*e.Meta() = models.Record{ID: r.newID(), CreatedAt: now, UpdatedAt: now}

	body, err := json.Marshal(e)
	if err != nil {
		return zero, fmt.Errorf("failed to encode %s: %w", r.binding.Kind, err)
	}
	if err := r.store.Insert(ctx, r.binding.Collection, store.Document{ID: e.Meta().ID, Body: body}); err != nil {
		return zero, r.storageError("create", err)
	}
	return e, nil
}

// Update applies the fields set in req and refreshes updated_at. A request
// with no fields set only refreshes the timestamp.
func (r *Repository[E, C, U]) Update(ctx context.Context, id string, req U) (E, error) {
	var zero E

	patch, err := r.patch(req)
	if err != nil {
		return zero, err
	}

	doc, err := r.store.Merge(ctx, r.binding.Collection, id, patch)
	if err != nil {
		return zero, r.wrap("update", err)
	}
	return r.decodeOrFail("update", doc)
}

func (r *Repository[E, C, U]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.binding.Collection, id); err != nil {
		return r.wrap("delete", err)
	}
	return nil
}

func (r *Repository[E, C, U]) patch(req U) (json.RawMessage, error) {
	encoded, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s update: %w", r.binding.Kind, err)
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, fmt.Errorf("failed to encode %s update: %w", r.binding.Kind, err)
	}
	for _, key := range []string{"id", "created_at"} {
		delete(fields, key)
	}

	updatedAt, err := json.Marshal(r.now())
	if err != nil {
		return nil, err
	}
	fields["updated_at"] = updatedAt

	return json.Marshal(fields)
}

func (r *Repository[E, C, U]) decode(doc json.RawMessage) (E, error) {
	var e E
	if err := json.Unmarshal(doc, &e); err != nil {
		return e, fmt.Errorf("failed to decode %s: %w", r.binding.Kind, err)
	}
	return e, nil
}

func (r *Repository[E, C, U]) decodeOrFail(op string, doc json.RawMessage) (E, error) {
	e, err := r.decode(doc)
	if err != nil {
		var zero E
		return zero, r.storageError(op, err)
	}
	return e, nil
}

// wrap converts a store error into the repository's error kinds.
func (r *Repository[E, C, U]) wrap(op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return r.notFound
	}
	return r.storageError(op, err)
}

func (r *Repository[E, C, U]) storageError(op string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrStorage, op, r.binding.Kind, err)
}

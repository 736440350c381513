package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

func seedMemory(t *testing.T, docs ...Document) *MemoryStore {
	t.Helper()
	st := NewMemoryStore()
	require.NoError(t, st.InsertMany(context.Background(), Crops, docs))
	return st
}

func cropDoc(id, hindi, english, region string) Document {
	return Document{
		ID:   id,
		Body: raw(fmt.Sprintf(`{"id":%q,"season":{"hindi":%q,"english":%q},"region":%q}`, id, hindi, english, region)),
	}
}

func ids(t *testing.T, docs []json.RawMessage) []string {
	t.Helper()
	out := make([]string, len(docs))
	for i, doc := range docs {
		var v struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(doc, &v))
		out[i] = v.ID
	}
	return out
}

func TestMemoryStore_Find(t *testing.T) {
	st := seedMemory(t,
		cropDoc("c1", "रबी", "Rabi", "All India"),
		cropDoc("c2", "खरीफ", "Kharif", "Punjab"),
		cropDoc("c3", "रबी", "Rabi", "Punjab"),
	)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter filter.Filter
		opts   FindOptions
		want   []string
	}{
		{"empty filter keeps insertion order", filter.Filter{}, FindOptions{}, []string{"c1", "c2", "c3"}},
		{"bilingual english", filter.Filter{}.And(filter.BilingualContains("rab", "season")), FindOptions{}, []string{"c1", "c3"}},
		{"bilingual hindi", filter.Filter{}.And(filter.BilingualContains("खरीफ", "season")), FindOptions{}, []string{"c2"}},
		{
			"clauses intersect",
			filter.Filter{}.And(filter.BilingualContains("rabi", "season")).And(filter.ScalarContains("punjab", "region")),
			FindOptions{},
			[]string{"c3"},
		},
		{"limit", filter.Filter{}, FindOptions{Limit: 2}, []string{"c1", "c2"}},
		{
			"sort descending is stable",
			filter.Filter{},
			FindOptions{Sort: []filter.Sort{{Path: filter.Path{"region"}, Desc: true}}},
			[]string{"c2", "c3", "c1"},
		},
		{"no match", filter.Filter{}.And(filter.Exact("Kerala", "region")), FindOptions{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := st.Find(ctx, Crops, tt.filter, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(t, docs))
		})
	}
}

func TestMemoryStore_Find_UnknownCollectionIsEmpty(t *testing.T) {
	st := NewMemoryStore()

	docs, err := st.Find(context.Background(), "nothing", filter.Filter{}, FindOptions{})

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStore_Find_ReturnsCopies(t *testing.T) {
	st := seedMemory(t, cropDoc("c1", "रबी", "Rabi", "All India"))
	ctx := context.Background()

	docs, err := st.Find(ctx, Crops, filter.Filter{}, FindOptions{})
	require.NoError(t, err)
	docs[0][0] = 'x'

	again, err := st.Get(ctx, Crops, "c1")
	require.NoError(t, err)
	assert.True(t, json.Valid(again))
}

func TestMemoryStore_GetAndInsert(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	doc := cropDoc("c1", "रबी", "Rabi", "All India")

	_, err := st.Get(ctx, Crops, "c1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Insert(ctx, Crops, doc))

	got, err := st.Get(ctx, Crops, "c1")
	require.NoError(t, err)
	assert.JSONEq(t, string(doc.Body), string(got))

	err = st.Insert(ctx, Crops, doc)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestMemoryStore_Insert_RejectsNonObject(t *testing.T) {
	st := NewMemoryStore()

	err := st.Insert(context.Background(), Crops, Document{ID: "c1", Body: raw(`[1,2]`)})

	assert.Error(t, err)
	_, err = st.Get(context.Background(), Crops, "c1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_InsertMany_IsAllOrNothing(t *testing.T) {
	st := seedMemory(t, cropDoc("c1", "रबी", "Rabi", "All India"))
	ctx := context.Background()

	err := st.InsertMany(ctx, Crops, []Document{
		cropDoc("c2", "खरीफ", "Kharif", "Punjab"),
		cropDoc("c1", "रबी", "Rabi", "All India"),
	})

	assert.ErrorIs(t, err, ErrDuplicateID)
	_, err = st.Get(ctx, Crops, "c2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Merge(t *testing.T) {
	st := seedMemory(t, cropDoc("c1", "रबी", "Rabi", "All India"))
	ctx := context.Background()

	merged, err := st.Merge(ctx, Crops, "c1", raw(`{"region":"Punjab","season":{"hindi":"खरीफ","english":"Kharif"}}`))

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1","season":{"hindi":"खरीफ","english":"Kharif"},"region":"Punjab"}`, string(merged))

	docs, err := st.Find(ctx, Crops, filter.Filter{}.And(filter.ScalarContains("punjab", "region")), FindOptions{})
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestMemoryStore_Merge_NotFound(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Merge(context.Background(), Crops, "missing", raw(`{"region":"Punjab"}`))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Upsert(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, WeatherCache, Document{ID: "w1", Body: raw(`{"location":"Delhi","n":1}`)}))
	require.NoError(t, st.Upsert(ctx, WeatherCache, Document{ID: "w1", Body: raw(`{"location":"Delhi","n":2}`)}))

	docs, err := st.Find(ctx, WeatherCache, filter.Filter{}, FindOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.JSONEq(t, `{"location":"Delhi","n":2}`, string(docs[0]))
}

func TestMemoryStore_Delete(t *testing.T) {
	st := seedMemory(t,
		cropDoc("c1", "रबी", "Rabi", "All India"),
		cropDoc("c2", "खरीफ", "Kharif", "Punjab"),
	)
	ctx := context.Background()

	require.NoError(t, st.Delete(ctx, Crops, "c1"))
	assert.ErrorIs(t, st.Delete(ctx, Crops, "c1"), ErrNotFound)

	docs, err := st.Find(ctx, Crops, filter.Filter{}, FindOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c2"}, ids(t, docs))
}

func TestMemoryStore_DeleteAll(t *testing.T) {
	st := seedMemory(t,
		cropDoc("c1", "रबी", "Rabi", "All India"),
		cropDoc("c2", "खरीफ", "Kharif", "Punjab"),
	)
	ctx := context.Background()

	n, err := st.DeleteAll(ctx, Crops)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	docs, err := st.Find(ctx, Crops, filter.Filter{}, FindOptions{})
	require.NoError(t, err)
	assert.Empty(t, docs)

	require.NoError(t, st.Insert(ctx, Crops, cropDoc("c1", "रबी", "Rabi", "All India")))
}

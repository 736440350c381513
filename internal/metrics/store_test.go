package metrics

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/dimitrije/kisan-api/internal/store"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedStore_Outcomes(t *testing.T) {
	c := NewCollector("test")
	st := NewInstrumentedStore(store.NewMemoryStore(), c)
	ctx := context.Background()

	require.NoError(t, st.Insert(ctx, store.Crops, store.Document{ID: "c1", Body: json.RawMessage(`{"id":"c1"}`)}))
	assert.Error(t, st.Insert(ctx, store.Crops, store.Document{ID: "c1", Body: json.RawMessage(`{"id":"c1"}`)}))

	_, err := st.Get(ctx, store.Crops, "c1")
	require.NoError(t, err)
	_, err = st.Get(ctx, store.Crops, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Find(ctx, store.Crops, filter.Filter{}, store.FindOptions{})
	require.NoError(t, err)

	ops := c.StoreOperations
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues(store.Crops, "insert", OutcomeOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues(store.Crops, "insert", OutcomeError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues(store.Crops, "get", OutcomeOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues(store.Crops, "get", OutcomeNotFound)))
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues(store.Crops, "find", OutcomeOK)))
	assert.Equal(t, 3, testutil.CollectAndCount(c.StoreDuration, "test_store_operation_duration_seconds"))
}

func TestInstrumentedStore_PassesThroughWrites(t *testing.T) {
	c := NewCollector("test")
	st := NewInstrumentedStore(store.NewMemoryStore(), c)
	ctx := context.Background()

	require.NoError(t, st.InsertMany(ctx, store.Schemes, []store.Document{
		{ID: "s1", Body: json.RawMessage(`{"id":"s1","state":"Central"}`)},
		{ID: "s2", Body: json.RawMessage(`{"id":"s2","state":"Punjab"}`)},
	}))

	merged, err := st.Merge(ctx, store.Schemes, "s1", json.RawMessage(`{"state":"Kerala"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"s1","state":"Kerala"}`, string(merged))

	require.NoError(t, st.Upsert(ctx, store.WeatherCache, store.Document{ID: "w1", Body: json.RawMessage(`{}`)}))
	require.NoError(t, st.Delete(ctx, store.Schemes, "s2"))

	n, err := st.DeleteAll(ctx, store.Schemes)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, st.Ping(ctx))

	ops := c.StoreOperations
	for _, op := range []string{"insert_many", "merge", "delete", "delete_all"} {
		assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues(store.Schemes, op, OutcomeOK)), op)
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues(store.WeatherCache, "upsert", OutcomeOK)))
}

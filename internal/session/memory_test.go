package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

func sampleTable() domain.ScheduleTable {
	return domain.ScheduleTable{
		{
			EmployeeID: "Alice",
			ShiftID:    "toronto-0800-1600",
			StartTime:  8,
			EndTime:    16,
			Breaks:     []domain.Interval{{Start: 9.5, End: 9.75}},
			Lunch:      domain.Interval{Start: 11.5, End: 12},
		},
	}
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "s1", sampleTable()))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_PutReplacesWholesale(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "s1", sampleTable()))
	require.NoError(t, store.Put(ctx, "s1", domain.ScheduleTable{}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "s1", sampleTable()))

	_, err := store.Get(ctx, "s2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ReturnedTableDoesNotAliasStorage(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "s1", sampleTable()))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	got[0].StartTime = 9
	got[0].Breaks[0].Start = 10

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), again, "caller mutations must not leak into the store")
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "s1", sampleTable()))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "s1", sampleTable()))
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cashbook/internal/domain"
	"cashbook/internal/gateway"
	"cashbook/internal/usecase"
	mock_usecase "cashbook/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(id int64, amount int64) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:          id,
		Timestamp:   "14/03/2025, 3:04 pm",
		Counts:      []string{"", "", "1", "", "", ""},
		TotalAmount: amount,
		TotalNotes:  1,
		Tally:       "100",
		Details:     "100×1=100\n=============\nTotal ₹100\n[Total 1 Notes]",
	}
}

func TestHistoryLog_AppendThenLoad(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemoryStore()

	log := usecase.NewHistoryLog(store, discardLogger)
	require.NoError(t, log.Load(ctx))
	require.NoError(t, log.Append(ctx, sampleEntry(1, 100)))
	require.NoError(t, log.Append(ctx, sampleEntry(2, 200)))

	fresh := usecase.NewHistoryLog(store, discardLogger)
	require.NoError(t, fresh.Load(ctx))

	entries := fresh.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, sampleEntry(2, 200), entries[0], "most recent first")
	assert.Equal(t, sampleEntry(1, 100), entries[1])
	assert.Equal(t, int64(2), fresh.MaxID())
}

func TestHistoryLog_Remove(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		remove  int64
		wantIDs []int64
	}{
		{name: "middle entry", remove: 2, wantIDs: []int64{3, 1}},
		{name: "absent id is a no-op", remove: 99, wantIDs: []int64{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := gateway.NewMemoryStore()
			log := usecase.NewHistoryLog(store, discardLogger)
			for id := int64(1); id <= 3; id++ {
				require.NoError(t, log.Append(ctx, sampleEntry(id, id*100)))
			}

			require.NoError(t, log.Remove(ctx, tt.remove))

			fresh := usecase.NewHistoryLog(store, discardLogger)
			require.NoError(t, fresh.Load(ctx))
			var ids []int64
			for _, e := range fresh.Entries() {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestHistoryLog_Clear(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemoryStore()

	log := usecase.NewHistoryLog(store, discardLogger)
	require.NoError(t, log.Append(ctx, sampleEntry(1, 100)))
	require.NoError(t, log.Clear(ctx))

	raw, err := store.Get(ctx, usecase.HistoryKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	fresh := usecase.NewHistoryLog(store, discardLogger)
	require.NoError(t, fresh.Load(ctx))
	assert.Empty(t, fresh.Entries())
	assert.Equal(t, int64(0), fresh.MaxID())
}

func TestHistoryLog_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		raw     *string
		wantLen int
		wantErr bool
	}{
		{name: "missing key", raw: nil, wantLen: 0},
		{name: "empty array", raw: ptr("[]"), wantLen: 0},
		{name: "null", raw: ptr("null"), wantLen: 0},
		{name: "malformed", raw: ptr("{oops"), wantLen: 0, wantErr: true},
		{name: "wrong shape", raw: ptr(`{"id":1}`), wantLen: 0, wantErr: true},
		{name: "stored entries", raw: ptr(`[{"id":7,"timestamp":"t","counts":["1","","","","",""],"totalAmount":500,"totalNotes":1,"tally":"","details":"d"}]`), wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := gateway.NewMemoryStore()
			if tt.raw != nil {
				require.NoError(t, store.Set(ctx, usecase.HistoryKey, *tt.raw))
			}

			log := usecase.NewHistoryLog(store, discardLogger)
			err := log.Load(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantLen, log.Len())
			assert.NotNil(t, log.Entries())
		})
	}
}

func TestHistoryLog_LoadReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	readErr := errors.New("io error")

	store := mock_usecase.NewMockKeyValueStore(ctrl)
	store.EXPECT().Get(gomock.Any(), usecase.HistoryKey).Return("", readErr)

	log := usecase.NewHistoryLog(store, nil)
	err := log.Load(ctx)

	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, 0, log.Len())
}

func TestHistoryLog_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	writeErr := errors.New("quota exceeded")

	store := mock_usecase.NewMockKeyValueStore(ctrl)
	store.EXPECT().Set(gomock.Any(), usecase.HistoryKey, gomock.Any()).Return(writeErr)

	log := usecase.NewHistoryLog(store, discardLogger)
	err := log.Append(ctx, sampleEntry(1, 100))

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, writeErr)
}

func TestHistoryLog_EntriesAreCopies(t *testing.T) {
	ctx := context.Background()
	log := usecase.NewHistoryLog(gateway.NewMemoryStore(), discardLogger)

	entry := sampleEntry(1, 100)
	require.NoError(t, log.Append(ctx, entry))
	entry.Counts[2] = "9"

	got, ok := log.Get(1)
	require.True(t, ok)
	assert.Equal(t, "1", got.Counts[2], "append keeps its own counts")

	got.Counts[2] = "8"
	entries := log.Entries()
	entries[0].Counts[2] = "7"

	again, _ := log.Get(1)
	assert.Equal(t, "1", again.Counts[2])

	_, ok = log.Get(2)
	assert.False(t, ok)
}

func TestHistoryLog_Replace(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemoryStore()
	log := usecase.NewHistoryLog(store, discardLogger)
	require.NoError(t, log.Append(ctx, sampleEntry(1, 100)))

	require.NoError(t, log.Replace(ctx, []domain.HistoryEntry{sampleEntry(8, 800), sampleEntry(5, 500)}))

	fresh := usecase.NewHistoryLog(store, discardLogger)
	require.NoError(t, fresh.Load(ctx))
	require.Equal(t, 2, fresh.Len())
	assert.Equal(t, int64(8), fresh.Entries()[0].ID)
	assert.Equal(t, int64(8), fresh.MaxID())
}

func ptr(s string) *string { return &s }

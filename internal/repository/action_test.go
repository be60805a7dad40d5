package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/agent-match/internal/model"
)

func newTestAction(id, status string) *model.Action {
	now := time.Now()
	return &model.Action{
		ID:               id,
		CategoryID:       "trade",
		RecommendationID: "trade-seed-1",
		Status:           model.ActionStatus(status),
		RequesterEmail:   "buyer@example.com",
		OwnerEmail:       "seller@example.com",
		CreatedAt:        now,
		UpdatedAt:        now,
		History:          []model.HistoryEntry{{Status: model.ActionStatus(status), At: now}},
	}
}

func TestCreateIfNoActiveDedup(t *testing.T) {
	repo := NewActionRepository()
	ctx := context.Background()

	first, created := repo.CreateIfNoActive(ctx, newTestAction("act-1", "requested"))
	require.True(t, created)

	dup, created := repo.CreateIfNoActive(ctx, newTestAction("act-2", "requested"))
	assert.False(t, created)
	assert.Equal(t, first.ID, dup.ID)

	_, ok := repo.Get(ctx, "act-2")
	assert.False(t, ok, "duplicate must not be stored")
}

func TestCreateAllowedAfterTerminal(t *testing.T) {
	repo := NewActionRepository()
	ctx := context.Background()

	repo.CreateIfNoActive(ctx, newTestAction("act-1", "requested"))
	_, _, err := repo.Mutate(ctx, "act-1", func(a *model.Action) error {
		a.Status = model.StatusRejected
		return nil
	})
	require.NoError(t, err)

	second, created := repo.CreateIfNoActive(ctx, newTestAction("act-2", "requested"))
	assert.True(t, created)
	assert.Equal(t, "act-2", second.ID)
}

func TestCreateDifferentRequesterNotDeduped(t *testing.T) {
	repo := NewActionRepository()
	ctx := context.Background()

	repo.CreateIfNoActive(ctx, newTestAction("act-1", "requested"))
	other := newTestAction("act-2", "requested")
	other.RequesterEmail = "another@example.com"
	_, created := repo.CreateIfNoActive(ctx, other)
	assert.True(t, created)
}

func TestMutateDiscardsOnError(t *testing.T) {
	repo := NewActionRepository()
	ctx := context.Background()
	repo.CreateIfNoActive(ctx, newTestAction("act-1", "requested"))

	boom := errors.New("boom")
	a, found, err := repo.Mutate(ctx, "act-1", func(a *model.Action) error {
		a.Status = model.StatusAccepted
		return boom
	})
	require.True(t, found)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, model.StatusRequested, a.Status)

	stored, _ := repo.Get(ctx, "act-1")
	assert.Equal(t, model.StatusRequested, stored.Status)
}

func TestMutateUnknownID(t *testing.T) {
	repo := NewActionRepository()
	_, found, err := repo.Mutate(context.Background(), "act-missing", func(a *model.Action) error { return nil })
	assert.False(t, found)
	assert.NoError(t, err)
}

func TestListOrderAndCategoryFilter(t *testing.T) {
	repo := NewActionRepository()
	ctx := context.Background()

	a1 := newTestAction("act-1", "requested")
	a2 := newTestAction("act-2", "requested")
	a2.RecommendationID = "trade-seed-2"
	a3 := newTestAction("act-3", "requested")
	a3.CategoryID = "soccer"
	a3.RecommendationID = "soccer-seed-1"

	repo.CreateIfNoActive(ctx, a1)
	repo.CreateIfNoActive(ctx, a2)
	repo.CreateIfNoActive(ctx, a3)

	// touching act-1 moves it to the top
	time.Sleep(time.Millisecond)
	_, _, err := repo.Mutate(ctx, "act-1", func(a *model.Action) error {
		a.Status = model.StatusAccepted
		a.UpdatedAt = time.Now()
		return nil
	})
	require.NoError(t, err)

	all := repo.List(ctx, "")
	require.Len(t, all, 3)
	assert.Equal(t, "act-1", all[0].ID)

	trade := repo.List(ctx, "trade")
	require.Len(t, trade, 2)
	for _, a := range trade {
		assert.Equal(t, "trade", a.CategoryID)
	}
}

func TestResetClearsLedger(t *testing.T) {
	repo := NewActionRepository()
	ctx := context.Background()
	repo.CreateIfNoActive(ctx, newTestAction("act-1", "requested"))
	repo.Reset(ctx)

	assert.Empty(t, repo.List(ctx, ""))
	_, created := repo.CreateIfNoActive(ctx, newTestAction("act-2", "requested"))
	assert.True(t, created)
}

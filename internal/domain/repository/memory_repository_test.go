package repository

import (
	"autosallon/internal/common"
	"autosallon/internal/domain/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCarRepository_CreateAssignsAscendingIDs(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	first := &model.Car{Title: "First", Price: 1000, Year: 2020, Description: "x"}
	second := &model.Car{Title: "Second", Price: 2000, Year: 2021, Description: "y"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "First", cars[0].Title)
	assert.Equal(t, "Second", cars[1].Title)
}

func TestMemoryCarRepository_DeleteTwice(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	car := &model.Car{Title: "Gone soon", Price: 1, Year: 2020, Description: "x"}
	require.NoError(t, repo.Create(ctx, car))

	require.NoError(t, repo.Delete(ctx, car.ID))
	assert.ErrorIs(t, repo.Delete(ctx, car.ID), common.ErrNotFound)
}

func TestMemoryCarRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	err := repo.Update(ctx, &model.Car{ID: 9999, Title: "Ghost"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	cars, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, cars, "failed update must not create a row")
}

func TestMemoryUserRepository_UniqueUsername(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "admin"}))
	assert.ErrorIs(t, repo.Create(ctx, &model.User{Username: "admin"}), common.ErrConflict)
}

func TestMemorySessionRepository_Lifecycle(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()

	token, err := repo.Create(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := repo.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)

	require.NoError(t, repo.Delete(ctx, token))
	_, err = repo.Get(ctx, token)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// Deleting again is not an error.
	assert.NoError(t, repo.Delete(ctx, token))
}

func TestMemorySessionRepository_Expiry(t *testing.T) {
	repo := NewMemorySessionRepository(-time.Second) // already expired on creation
	ctx := context.Background()

	token, err := repo.Create(ctx, 1)
	require.NoError(t, err)

	_, err = repo.Get(ctx, token)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryContactRepository_InsertionOrder(t *testing.T) {
	repo := NewMemoryContactRepository()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &model.Contact{Name: name, Email: name + "@example.com", Message: "hi"}))
	}

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{contacts[0].ID, contacts[1].ID, contacts[2].ID})
}

package database

import (
	"context"
	"testing"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRequests(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	first := &models.ItemRequest{RequestorID: alice.ID, Description: "need a drill"}
	require.NoError(t, db.CreateRequest(ctx, first))
	second := &models.ItemRequest{RequestorID: bob.ID, Description: "need a ladder"}
	require.NoError(t, db.CreateRequest(ctx, second))

	got, err := db.GetRequest(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "need a drill", got.Description)

	_, err = db.GetRequest(ctx, 9999)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	own, err := db.GetRequestsByRequestor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, first.ID, own[0].ID)

	others, err := db.GetRequestsFromOthers(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, second.ID, others[0].ID)
}

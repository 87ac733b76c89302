package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanakim-star/trc20bot/internal/models"
	"github.com/nanakim-star/trc20bot/pkg/logger"
)

// newTestDB opens an in-memory SQLite database. A single connection keeps
// every query on the same in-memory database.
func newTestDB(t *testing.T) *PostgresDB {
	t.Helper()
	db, err := Open(sqlite.Open(":memory:"), logger.NewNopLogger(), WithMaxOpenConns(1))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newWallet(name, address string) *models.Wallet {
	return &models.Wallet{
		Name:     name,
		Address:  address,
		BotToken: "B",
		ChatID:   "C",
	}
}

func strPtr(s string) *string { return &s }

func TestCreateWallet_AssignsID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	w := newWallet("W1", "T111")
	require.NoError(t, db.CreateWallet(ctx, w))
	assert.NotZero(t, w.ID)

	got, err := db.GetWalletByAddress(ctx, "T111")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *w, *got)
}

func TestCreateWallet_DuplicateAddress(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateWallet(ctx, newWallet("W1", "T111")))
	err := db.CreateWallet(ctx, newWallet("W2", "T111"))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, "Wallet address already exists", err.Error())

	wallets, err := db.ListWallets(ctx)
	require.NoError(t, err)
	assert.Len(t, wallets, 1)
}

func TestGetWalletByAddress_NotFound(t *testing.T) {
	db := newTestDB(t)

	got, err := db.GetWalletByAddress(context.Background(), "T404")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListWallets_OrderedByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, addr := range []string{"T1", "T2", "T3"} {
		require.NoError(t, db.CreateWallet(ctx, newWallet("W-"+addr, addr)))
	}

	wallets, err := db.ListWallets(ctx)
	require.NoError(t, err)
	require.Len(t, wallets, 3)
	assert.Equal(t, "T1", wallets[0].Address)
	assert.Equal(t, "T3", wallets[2].Address)
	assert.Less(t, wallets[0].ID, wallets[1].ID)
}

func TestUpdateWallet_MergePatch(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	w := newWallet("W1", "T111")
	w.NotificationURL = "https://h/x"
	w.NotificationAPIKey = "key"
	w.TatumSubscriptionID = "sub-1"
	require.NoError(t, db.CreateWallet(ctx, w))

	updated, err := db.UpdateWallet(ctx, w.ID, &models.WalletPatch{ChatID: strPtr("C2")})
	require.NoError(t, err)

	want := *w
	want.ChatID = "C2"
	assert.Equal(t, want, *updated)

	stored, err := db.GetWalletByAddress(ctx, "T111")
	require.NoError(t, err)
	assert.Equal(t, want, *stored)
}

func TestUpdateWallet_ExplicitEmptyClearsCallback(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	w := newWallet("W1", "T111")
	w.NotificationURL = "https://h/x"
	require.NoError(t, db.CreateWallet(ctx, w))

	updated, err := db.UpdateWallet(ctx, w.ID, &models.WalletPatch{NotificationURL: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.NotificationURL)
	assert.Equal(t, "W1", updated.Name)
}

func TestUpdateWallet_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.UpdateWallet(context.Background(), 42, &models.WalletPatch{Name: strPtr("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateWallet_AddressConflict(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := newWallet("W1", "T111")
	second := newWallet("W2", "T222")
	require.NoError(t, db.CreateWallet(ctx, first))
	require.NoError(t, db.CreateWallet(ctx, second))

	_, err := db.UpdateWallet(ctx, second.ID, &models.WalletPatch{Address: strPtr("T111")})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, "New wallet address already exists", err.Error())

	stored, err := db.GetWalletByAddress(ctx, "T222")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, second.ID, stored.ID)
}

func TestUpdateWallet_SameAddressIsAllowed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	w := newWallet("W1", "T111")
	require.NoError(t, db.CreateWallet(ctx, w))

	updated, err := db.UpdateWallet(ctx, w.ID, &models.WalletPatch{Address: strPtr("T111"), Name: strPtr("W1b")})
	require.NoError(t, err)
	assert.Equal(t, "W1b", updated.Name)
}

func TestDeleteWallet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	w := newWallet("W1", "T111")
	require.NoError(t, db.CreateWallet(ctx, w))
	require.NoError(t, db.DeleteWallet(ctx, w.ID))

	got, err := db.GetWalletByAddress(ctx, "T111")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = db.DeleteWallet(ctx, w.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSaveUser_CreateThenUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := db.SaveUser(ctx, "admin", "hash-1")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = db.SaveUser(ctx, "admin", "hash-2")
	require.NoError(t, err)
	assert.False(t, created)

	user, err := db.GetUser(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "hash-2", user.PasswordHash)

	missing, err := db.GetUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmstack/rmstack/internal/countries"
	"github.com/rmstack/rmstack/internal/users"
)

func TestOpenCreateTablesAndSeed(t *testing.T) {
	ctx := context.Background()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, CreateTables(ctx, db))
	// Creating tables twice must be harmless.
	require.NoError(t, CreateTables(ctx, db))

	require.NoError(t, SetupDefaults(ctx, db))

	userStore := users.NewSQLiteStore(db)
	result, err := userStore.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, result)

	countryStore := countries.NewSQLiteStore(db)
	all, err := countryStore.ListAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)
}

package countries

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = db.NewCreateTable().
		Model((*CountrySchema)(nil)).
		IfNotExists().
		Exec(context.Background())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func TestSeedAndListAll(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, Seed(ctx, db))

	store := NewSQLiteStore(db)
	result, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, result, len(seedCountries))

	// Ordered by name.
	assert.Equal(t, "Australia", result[0].CountryName)
	assert.Equal(t, "AU", result[0].IsoCode)
	assert.Equal(t, "United States", result[len(result)-1].CountryName)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, Seed(ctx, db))
	require.NoError(t, Seed(ctx, db))

	store := NewSQLiteStore(db)
	result, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, result, len(seedCountries))
}

func TestSearchMatchesSubstringCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, Seed(ctx, db))

	store := NewSQLiteStore(db)

	result, err := store.Search(ctx, "united")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "United Kingdom", result[0].CountryName)
	assert.Equal(t, "United States", result[1].CountryName)

	result, err = store.Search(ctx, "zz-no-such-country")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSearchEmptyTermReturnsAll(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, Seed(ctx, db))

	store := NewSQLiteStore(db)
	result, err := store.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, result, len(seedCountries))
}

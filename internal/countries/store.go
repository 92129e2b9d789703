package countries

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Store defines the interface for country read operations
type Store interface {
	// ListAll returns every country, ordered by name.
	ListAll(ctx context.Context) ([]Country, error)
	// Search returns countries whose name contains the term,
	// case-insensitively. An empty term matches everything.
	Search(ctx context.Context, term string) ([]Country, error)
}

// SQLiteStore implements the Store interface on the shared bun handle
type SQLiteStore struct {
	db *bun.DB
}

// NewSQLiteStore creates a new country store instance
func NewSQLiteStore(db *bun.DB) *SQLiteStore {
	return &SQLiteStore{
		db: db,
	}
}

// ListAll returns every country ordered by name
func (s *SQLiteStore) ListAll(ctx context.Context) ([]Country, error) {
	var schemas []CountrySchema
	err := s.db.NewSelect().
		Model(&schemas).
		Order("country_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	return schemasToCountries(schemas), nil
}

// Search returns countries whose name contains the term, case-insensitively
func (s *SQLiteStore) Search(ctx context.Context, term string) ([]Country, error) {
	var schemas []CountrySchema
	err := s.db.NewSelect().
		Model(&schemas).
		Where("country_name LIKE ?", "%"+term+"%").
		Order("country_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search countries: %w", err)
	}

	return schemasToCountries(schemas), nil
}

// Seed populates the reference table on first startup. Existing data is left
// alone so the table survives restarts unchanged.
func Seed(ctx context.Context, db *bun.DB) error {
	count, err := db.NewSelect().
		Model((*CountrySchema)(nil)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count countries: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = db.NewInsert().
		Model(&seedCountries).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed countries: %w", err)
	}
	return nil
}

var seedCountries = []CountrySchema{
	{CountryName: "Australia", IsoCode: "AU"},
	{CountryName: "Brazil", IsoCode: "BR"},
	{CountryName: "Canada", IsoCode: "CA"},
	{CountryName: "France", IsoCode: "FR"},
	{CountryName: "Germany", IsoCode: "DE"},
	{CountryName: "India", IsoCode: "IN"},
	{CountryName: "Japan", IsoCode: "JP"},
	{CountryName: "New Zealand", IsoCode: "NZ"},
	{CountryName: "Spain", IsoCode: "ES"},
	{CountryName: "United Kingdom", IsoCode: "GB"},
	{CountryName: "United States", IsoCode: "US"},
}

func schemasToCountries(schemas []CountrySchema) []Country {
	result := make([]Country, 0, len(schemas))
	for _, schema := range schemas {
		result = append(result, Country{
			ID:          schema.ID,
			CountryName: schema.CountryName,
			IsoCode:     schema.IsoCode,
		})
	}
	return result
}

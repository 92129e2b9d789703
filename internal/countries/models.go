package countries

import (
	"github.com/uptrace/bun"
)

// Country represents a reference country record
type Country struct {
	ID          int64  `json:"id"`
	CountryName string `json:"country_name"`
	IsoCode     string `json:"iso_code"`
}

// CountrySchema represents the test_countries table schema in SQLite
type CountrySchema struct {
	bun.BaseModel `bun:"table:test_countries,alias:c"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	CountryName string `bun:"country_name,notnull,unique" json:"country_name"`
	IsoCode     string `bun:"iso_code,notnull" json:"iso_code"`
}

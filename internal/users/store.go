package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// UserSchema represents the test_users table schema in SQLite
type UserSchema struct {
	bun.BaseModel `bun:"table:test_users,alias:u"`

	ID              int64  `bun:"id,pk,autoincrement" json:"id"`
	UserName        string `bun:"user_name,notnull,unique" json:"user_name"`
	FirstName       string `bun:"first_name,notnull" json:"first_name"`
	Surname         string `bun:"surname,notnull" json:"surname"`
	StatusSetting   string `bun:"status_setting,notnull" json:"status_setting"`
	DateAdded       string `bun:"date_added,notnull" json:"date_added"`
	DateLastAmended string `bun:"date_last_amended,notnull" json:"date_last_amended"`
}

// timestampFormat is the canonical on-disk timestamp layout. Every write goes
// through nowStamp so all rows carry the same format.
const timestampFormat = "2006-01-02 15:04:05"

func nowStamp() string {
	return time.Now().UTC().Format(timestampFormat)
}

// SQLiteStore implements the Store interface on the shared bun handle
type SQLiteStore struct {
	db *bun.DB
}

// NewSQLiteStore creates a new user store instance
func NewSQLiteStore(db *bun.DB) *SQLiteStore {
	return &SQLiteStore{
		db: db,
	}
}

// ListActive returns all users that are not marked Deleted, ordered by id
func (s *SQLiteStore) ListActive(ctx context.Context) ([]User, error) {
	var schemas []UserSchema
	err := s.db.NewSelect().
		Model(&schemas).
		Where("status_setting != ?", StatusDeleted).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]User, 0, len(schemas))
	for _, schema := range schemas {
		result = append(result, *schemaToUser(schema))
	}
	return result, nil
}

// GetByID returns the user with the given id if it exists and is not marked
// Deleted. Absence is reported as (nil, nil), not as an error.
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (*User, error) {
	var schema UserSchema
	err := s.db.NewSelect().
		Model(&schema).
		Where("id = ?", id).
		Where("status_setting != ?", StatusDeleted).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return schemaToUser(schema), nil
}

// Create inserts a new user with both timestamps set to the current instant
func (s *SQLiteStore) Create(ctx context.Context, fields Fields) (int64, error) {
	now := nowStamp()
	schema := &UserSchema{
		UserName:        fields.UserName,
		FirstName:       fields.FirstName,
		Surname:         fields.Surname,
		StatusSetting:   fields.StatusSetting,
		DateAdded:       now,
		DateLastAmended: now,
	}

	_, err := s.db.NewInsert().
		Model(schema).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, NewConflictError(err)
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return schema.ID, nil
}

// Update overwrites all four mutable fields and refreshes date_last_amended.
// The caller is expected to have confirmed existence; an unknown id is a no-op
// reported through the rows-affected count.
func (s *SQLiteStore) Update(ctx context.Context, id int64, fields Fields) (int64, error) {
	result, err := s.db.NewUpdate().
		Model((*UserSchema)(nil)).
		Where("id = ?", id).
		Set("user_name = ?", fields.UserName).
		Set("first_name = ?", fields.FirstName).
		Set("surname = ?", fields.Surname).
		Set("status_setting = ?", fields.StatusSetting).
		Set("date_last_amended = ?", nowStamp()).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, NewConflictError(err)
		}
		return 0, fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}

// Delete removes the row permanently
func (s *SQLiteStore) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := s.db.NewDelete().
		Model((*UserSchema)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}

// isUniqueViolation detects the SQLite uniqueness error by message. The
// substring is part of the API contract: clients match on it.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func schemaToUser(schema UserSchema) *User {
	return &User{
		ID:              schema.ID,
		UserName:        schema.UserName,
		FirstName:       schema.FirstName,
		Surname:         schema.Surname,
		StatusSetting:   schema.StatusSetting,
		DateAdded:       schema.DateAdded,
		DateLastAmended: schema.DateLastAmended,
	}
}

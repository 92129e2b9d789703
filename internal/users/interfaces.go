package users

import (
	"context"
)

// Store defines the interface for user storage operations
type Store interface {
	// ListActive returns all users whose status is not Deleted, ordered by id.
	ListActive(ctx context.Context) ([]User, error)
	// GetByID returns the user if it exists and is not deleted, nil otherwise.
	// Absence is not an error.
	GetByID(ctx context.Context, id int64) (*User, error)
	// Create inserts a new user and returns the assigned id.
	Create(ctx context.Context, fields Fields) (int64, error)
	// Update overwrites the mutable fields of the row with the given id and
	// returns the number of rows affected. It does not check existence.
	Update(ctx context.Context, id int64, fields Fields) (int64, error)
	// Delete removes the row with the given id and returns the number of rows
	// affected.
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service defines the interface for user service operations
type Service interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, req *CreateUserRequest) (*CreateUserResult, error)
	Update(ctx context.Context, req *UpdateUserRequest) (*UpdateUserResult, error)
	Delete(ctx context.Context, req *DeleteUserRequest) error
}

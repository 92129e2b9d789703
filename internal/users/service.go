package users

import (
	"context"
)

// ServiceImpl implements the Service interface. It is stateless between
// calls; all state lives in the store.
type ServiceImpl struct {
	store Store
}

// NewService creates a new user service instance
func NewService(store Store) *ServiceImpl {
	return &ServiceImpl{
		store: store,
	}
}

// List returns all users that are not marked Deleted
func (s *ServiceImpl) List(ctx context.Context) ([]User, error) {
	return s.store.ListActive(ctx)
}

// Create validates the request and inserts a new user
func (s *ServiceImpl) Create(ctx context.Context, req *CreateUserRequest) (*CreateUserResult, error) {
	if req.UserName == "" || req.FirstName == "" || req.Surname == "" || req.StatusSetting == "" {
		return nil, NewValidationError(ValidationErrorMissingInput, "All fields are required")
	}

	id, err := s.store.Create(ctx, Fields{
		UserName:      req.UserName,
		FirstName:     req.FirstName,
		Surname:       req.Surname,
		StatusSetting: req.StatusSetting,
	})
	if err != nil {
		return nil, err
	}

	return &CreateUserResult{ID: id}, nil
}

// Update validates the request and overwrites an existing user. The existence
// check runs before field validation, so an unknown id reports not-found even
// when other fields are missing too.
func (s *ServiceImpl) Update(ctx context.Context, req *UpdateUserRequest) (*UpdateUserResult, error) {
	if req.UserID == 0 {
		return nil, NewValidationError(ValidationErrorRowIDMissing, "No id in request body")
	}

	existing, err := s.store.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NewNotFoundError(req.UserID)
	}

	if req.UserName == "" || req.FirstName == "" || req.Surname == "" || req.StatusSetting == "" {
		return nil, NewValidationError(ValidationErrorMissingField, "All fields are required")
	}

	rowsAffected, err := s.store.Update(ctx, req.UserID, Fields{
		UserName:      req.UserName,
		FirstName:     req.FirstName,
		Surname:       req.Surname,
		StatusSetting: req.StatusSetting,
	})
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		// The row vanished between the existence check and the update.
		return nil, NewNotFoundError(req.UserID)
	}

	return &UpdateUserResult{ID: req.UserID, UserName: req.UserName}, nil
}

// Delete validates the request and removes an existing user. Same ordering as
// Update: existence first, then everything else.
func (s *ServiceImpl) Delete(ctx context.Context, req *DeleteUserRequest) error {
	if req.UserID == 0 {
		return NewValidationError(ValidationErrorRowIDMissing, "No id in request body")
	}

	existing, err := s.store.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return NewNotFoundError(req.UserID)
	}

	rowsAffected, err := s.store.Delete(ctx, req.UserID)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// The row vanished between the existence check and the delete.
		return NewNotFoundError(req.UserID)
	}

	return nil
}

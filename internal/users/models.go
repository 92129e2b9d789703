package users

// User status values. Listing filters out StatusDeleted, so a row can be
// retired in place by an update even though the DELETE endpoint removes rows
// physically.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusDeleted  = "Deleted"
)

// User represents a test user record
type User struct {
	ID              int64  `json:"id"`
	UserName        string `json:"user_name"`
	FirstName       string `json:"first_name"`
	Surname         string `json:"surname"`
	StatusSetting   string `json:"status_setting"`
	DateAdded       string `json:"date_added"`
	DateLastAmended string `json:"date_last_amended"`
}

// Fields holds the four mutable fields of a user record. Updates replace all
// of them at once, never partially.
type Fields struct {
	UserName      string
	FirstName     string
	Surname       string
	StatusSetting string
}

// CreateUserRequest represents the request body to add a user
type CreateUserRequest struct {
	UserName      string `json:"user_name"`
	FirstName     string `json:"first_name"`
	Surname       string `json:"surname"`
	StatusSetting string `json:"status_setting"`
}

// UpdateUserRequest represents the request body to amend a user
type UpdateUserRequest struct {
	UserID        int64  `json:"user_id"`
	UserName      string `json:"user_name"`
	FirstName     string `json:"first_name"`
	Surname       string `json:"surname"`
	StatusSetting string `json:"status_setting"`
}

// DeleteUserRequest represents the request body to delete a user
type DeleteUserRequest struct {
	UserID int64 `json:"user_id"`
}

// CreateUserResult is returned by the service after a successful create
type CreateUserResult struct {
	ID int64
}

// UpdateUserResult is returned by the service after a successful update
type UpdateUserResult struct {
	ID       int64
	UserName string
}

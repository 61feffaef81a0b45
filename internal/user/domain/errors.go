package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for a bad username or password.
	// One error for both cases so a caller cannot probe which usernames
	// exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccessDenied is returned when a non-admin session invokes a
	// user-management operation.
	ErrAccessDenied = errors.New("access denied")
	// ErrProtectedAccount is returned when a built-in admin account is
	// targeted for removal or a role change.
	ErrProtectedAccount = errors.New("account is protected")
	// ErrUserExists is returned when a username is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when the username has no entry.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidRole is returned for a role outside the known set.
	ErrInvalidRole = errors.New("invalid role")
)

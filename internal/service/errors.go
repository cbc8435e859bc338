package service

import "errors"

// Sentinel errors for the failure kinds user actions can hit. Handlers map
// these to HTTP status codes; the messages are the user-visible text.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("please verify your email first")
	ErrEmailTaken         = errors.New("email already exists")
	ErrSelfDelete         = errors.New("you cannot delete your own account")
	ErrDepartmentInUse    = errors.New("cannot delete: department has employees")
	ErrAccountMissing     = errors.New("user email must match an existing account")
	ErrNoItems            = errors.New("add at least one item")
	ErrNoPendingEmail     = errors.New("no email is pending verification")
	ErrInvalidRole        = errors.New("invalid role: must be admin or user")
)

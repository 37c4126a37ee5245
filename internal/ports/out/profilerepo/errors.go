package profilerepo

import "errors"

var (
	// ErrNotFound indicates the requested profile does not exist.
	ErrNotFound = errors.New("profile not found")

	// ErrAlreadyExists indicates a profile already exists for the account id.
	ErrAlreadyExists = errors.New("profile already exists")
)

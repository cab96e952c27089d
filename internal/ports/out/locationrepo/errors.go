package locationrepo

import "errors"

var (
	ErrNotFound      = errors.New("location not found")
	ErrAlreadyExists = errors.New("location already exists")
)

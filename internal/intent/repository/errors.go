package repository

import "errors"

var (
	ErrNotFound     = errors.New("no persisted registry")
	ErrFailedToLoad = errors.New("failed to load registry")
	ErrFailedToSave = errors.New("failed to save registry")
)

package models

import "errors"

// Custom errors
var (
	ErrNotFound       = errors.New("record not found")
	ErrAlreadySettled = errors.New("pick already settled")
	ErrInvalidPick    = errors.New("invalid pick")
)

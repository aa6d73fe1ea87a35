package service

import (
	"errors"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

var (
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = sqlconfig.ErrNotFound
	// ErrInvalid wraps every input validation failure.
	ErrInvalid = errors.New("invalid input")
)

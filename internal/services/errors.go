package services

import "errors"

var (
	// ErrPizzaNotFound is returned when no custom pizza has the requested id
	ErrPizzaNotFound = errors.New("custom pizza not found")
	// ErrInvalidPizzaName is returned when a pizza name is empty or blank
	ErrInvalidPizzaName = errors.New("pizza name cannot be empty")
)

package domain

import "errors"

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrNoFreeSeats       = errors.New("no free seats")
	ErrFlightUnavailable = errors.New("flight not found or no free seats")
	ErrNoFlights         = errors.New("no flights")
)

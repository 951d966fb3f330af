package routes

import "errors"

var (
	ErrNotFound            = errors.New("route not found")
	ErrAirportNotFound     = errors.New("airport not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDistanceUnavailable = errors.New("distance could not be resolved")
)

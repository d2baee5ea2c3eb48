package domain

import "errors"

var (
	ErrLaunchNotFound    = errors.New("launch not found")
	ErrPlanetNotFound    = errors.New("no matching planet found")
	ErrFlightNumberTaken = errors.New("flight number already taken")
)

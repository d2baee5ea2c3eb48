package launches

import (
	"errors"
	"math"

	"github.com/araddon/dateparse"
)

// MaxListOffset bounds how many launches a list request may skip.
const MaxListOffset = math.MaxInt32

var (
	ErrMissingLaunchProperty = errors.New("missing required launch property")
	ErrInvalidLaunchDate     = errors.New("invalid launch date format")
	ErrPageOutOfRange        = errors.New("page out of range")
)

// PageOffset converts a 1-based page of the given size into a skip count.
// A zero limit means a single page holding every launch.
func PageOffset(page, limit int) (int, error) {
	if page < 1 || limit < 0 {
		return 0, ErrPageOutOfRange
	}
	if limit > 0 && page-1 > MaxListOffset/limit {
		return 0, ErrPageOutOfRange
	}
	return (page - 1) * limit, nil
}

// ParseScheduleRequest checks a raw scheduling request before it reaches the
// service. Dates are read in local time unless they carry a zone.
func ParseScheduleRequest(mission, rocket, launchDate, target string) (ScheduleLaunchInput, error) {
	if mission == "" || rocket == "" || launchDate == "" || target == "" {
		return ScheduleLaunchInput{}, ErrMissingLaunchProperty
	}
	date, err := dateparse.ParseLocal(launchDate)
	if err != nil {
		return ScheduleLaunchInput{}, ErrInvalidLaunchDate
	}
	return ScheduleLaunchInput{
		Mission:    mission,
		Rocket:     rocket,
		LaunchDate: date,
		Target:     target,
	}, nil
}

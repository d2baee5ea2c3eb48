package domain

import "time"

// Seed launch: the first historical record of the external catalog. Its
// presence means the catalog has already been imported.
const (
	SeedFlightNumber int64 = 1
	SeedRocket             = "Falcon 1"
	SeedMission            = "FalconSat"
)

// DefaultCustomers are assigned to every launch scheduled through the service.
var DefaultCustomers = []string{"Zero To Mastery", "NASA"}

type Launch struct {
	FlightNumber int64     `json:"flightNumber"`
	Mission      string    `json:"mission"`
	Rocket       string    `json:"rocket"`
	LaunchDate   time.Time `json:"launchDate"`
	Target       string    `json:"target,omitempty"`
	Customers    []string  `json:"customers"`
	Upcoming     bool      `json:"upcoming"`
	Success      bool      `json:"success"`
}

// LaunchFilter matches launches on every non-zero field.
type LaunchFilter struct {
	FlightNumber int64
	Rocket       string
	Mission      string
}

func (f LaunchFilter) Match(l Launch) bool {
	if f.FlightNumber != 0 && f.FlightNumber != l.FlightNumber {
		return false
	}
	if f.Rocket != "" && f.Rocket != l.Rocket {
		return false
	}
	if f.Mission != "" && f.Mission != l.Mission {
		return false
	}
	return true
}

func SeedFilter() LaunchFilter {
	return LaunchFilter{FlightNumber: SeedFlightNumber, Rocket: SeedRocket, Mission: SeedMission}
}

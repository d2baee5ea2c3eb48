package launches

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheduleRequest(t *testing.T) {
	input, err := ParseScheduleRequest("Mission 1", "Rocket 1", "January 1, 2030", "Kepler-442 b")
	require.NoError(t, err)
	assert.Equal(t, "Mission 1", input.Mission)
	assert.Equal(t, "Rocket 1", input.Rocket)
	assert.Equal(t, "Kepler-442 b", input.Target)
	assert.True(t, input.LaunchDate.Equal(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.Local)))

	input, err = ParseScheduleRequest("Mission 1", "Rocket 1", "2030-12-27T10:00:00Z", "Kepler-442 b")
	require.NoError(t, err)
	assert.True(t, input.LaunchDate.Equal(time.Date(2030, time.December, 27, 10, 0, 0, 0, time.UTC)))
}

func TestParseScheduleRequest_Errors(t *testing.T) {
	tests := []struct {
		name                          string
		mission, rocket, date, target string
		want                          error
	}{
		{"missing mission", "", "Rocket 1", "January 1, 2030", "Kepler-442 b", ErrMissingLaunchProperty},
		{"missing rocket", "Mission 1", "", "January 1, 2030", "Kepler-442 b", ErrMissingLaunchProperty},
		{"missing date", "Mission 1", "Rocket 1", "", "Kepler-442 b", ErrMissingLaunchProperty},
		{"missing target", "Mission 1", "Rocket 1", "January 1, 2030", "", ErrMissingLaunchProperty},
		{"invalid date", "Mission 1", "Rocket 1", "Hello!", "Kepler-442 b", ErrInvalidLaunchDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScheduleRequest(tt.mission, tt.rocket, tt.date, tt.target)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        int
		wantErr     bool
	}{
		{name: "first page", page: 1, limit: 10, want: 0},
		{name: "third page", page: 3, limit: 10, want: 20},
		{name: "unbounded limit", page: 5, limit: 0, want: 0},
		{name: "at bound", page: 2, limit: MaxListOffset, want: MaxListOffset},
		{name: "zero page", page: 0, limit: 10, wantErr: true},
		{name: "negative limit", page: 1, limit: -1, wantErr: true},
		{name: "overflow", page: math.MaxInt, limit: 1000, wantErr: true},
		{name: "past bound", page: 3, limit: MaxListOffset, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PageOffset(tt.page, tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPageOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

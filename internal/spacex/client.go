// Package spacex fetches the historical launch catalog from the SpaceX API.
package spacex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/missioncontrol/internal/domain"
)

type LaunchDoc struct {
	FlightNumber int64     `json:"flight_number"`
	Name         string    `json:"name"`
	DateLocal    time.Time `json:"date_local"`
	Upcoming     bool      `json:"upcoming"`
	// Success is null for launches that have not flown yet.
	Success  *bool     `json:"success"`
	Rocket   Rocket    `json:"rocket"`
	Payloads []Payload `json:"payloads"`
}

type Rocket struct {
	Name string `json:"name"`
}

type Payload struct {
	Customers []string `json:"customers"`
}

// Customers flattens the customer lists of every payload.
func (d LaunchDoc) Customers() []string {
	customers := make([]string, 0)
	for _, p := range d.Payloads {
		customers = append(customers, p.Customers...)
	}
	return customers
}

func (d LaunchDoc) ToLaunch() domain.Launch {
	return domain.Launch{
		FlightNumber: d.FlightNumber,
		Mission:      d.Name,
		Rocket:       d.Rocket.Name,
		LaunchDate:   d.DateLocal,
		Customers:    d.Customers(),
		Upcoming:     d.Upcoming,
		Success:      d.Success != nil && *d.Success,
	}
}

// Catalog is the decoded catalog plus the raw response body.
type Catalog struct {
	Docs []LaunchDoc
	Raw  []byte
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type queryRequest struct {
	Query   struct{}     `json:"query"`
	Options queryOptions `json:"options"`
}

type queryOptions struct {
	Pagination bool           `json:"pagination"`
	Populate   []populatePath `json:"populate"`
}

type populatePath struct {
	Path   string         `json:"path"`
	Select map[string]int `json:"select"`
}

type queryResponse struct {
	Docs []LaunchDoc `json:"docs"`
}

var launchesQuery = queryRequest{
	Options: queryOptions{
		Pagination: false,
		Populate: []populatePath{
			{Path: "rocket", Select: map[string]int{"name": 1}},
			{Path: "payloads", Select: map[string]int{"customers": 1}},
		},
	},
}

// FetchLaunches downloads the complete, unpaginated launch history.
func (c *Client) FetchLaunches(ctx context.Context) (*Catalog, error) {
	body, err := json.Marshal(launchesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/launches/query", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("launch data download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("launch data download failed: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read launch data: %w", err)
	}

	var decoded queryResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode launch data: %w", err)
	}
	return &Catalog{Docs: decoded.Docs, Raw: raw}, nil
}

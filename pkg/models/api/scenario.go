package api

import "time"

type SaveScenarioRequest struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data"`
}

type Scenario struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Data         map[string]any `json:"data"`
	CreatedAt    time.Time      `json:"created_at"`
	LastModified time.Time      `json:"last_modified"`
}

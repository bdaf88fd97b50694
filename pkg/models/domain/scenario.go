package domain

import "time"

// Scenario is a named, persisted set of calculation inputs. Data passes
// through the store unchanged; the engine never interprets it. The json
// tags fix the on-disk field names of the scenario file.
type Scenario struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Data         map[string]any `json:"data"`
	CreatedAt    time.Time      `json:"created_at"`
	LastModified time.Time      `json:"last_modified"`
}

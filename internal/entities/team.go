// Package entities contains core business entities.
package entities

// Team aggregates members under a team name.
type Team struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Members []Member `json:"members,omitempty"`
}

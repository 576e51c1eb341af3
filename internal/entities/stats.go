// Package entities contains core business entities.
package entities

// AgeStats aggregates member ages across the whole store.
type AgeStats struct {
	Count int64   `json:"count"`
	Sum   int64   `json:"sum"`
	Avg   float64 `json:"avg"`
	Max   int     `json:"max"`
	Min   int     `json:"min"`
}

// TeamAgeStat contains the average member age of a team.
type TeamAgeStat struct {
	TeamName string  `json:"team_name"`
	AvgAge   float64 `json:"avg_age"`
}

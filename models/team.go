package models

// Team представляет киберспортивную команду.
type Team struct {
	ID          int    `json:"id" db:"team_id"`
	Name        string `json:"name" db:"name"`
	Region      string `json:"region" db:"region"`
	PlayerCount int    `json:"player_count" db:"player_count"`
}

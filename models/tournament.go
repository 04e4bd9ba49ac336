package models

import "time"

// Tournament представляет турнир.
type Tournament struct {
	ID         int       `json:"id" db:"tournament_id"`
	Name       string    `json:"name" db:"name"`
	GameID     *int      `json:"game_id,omitempty" db:"game_id"`
	PrizeMoney int       `json:"prize_money" db:"prize_money"`
	Location   string    `json:"location" db:"location"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`

	// Заполняется через LEFT JOIN games
	GameTitle *string `json:"game_title,omitempty" db:"-"`
}

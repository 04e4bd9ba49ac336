package models

// Game is a competitive title tournaments are played in.
type Game struct {
	ID        int    `json:"id" db:"game_id"`
	Title     string `json:"title" db:"title"`
	Developer string `json:"developer" db:"developer"`
	Genre     string `json:"genre" db:"genre"`
}

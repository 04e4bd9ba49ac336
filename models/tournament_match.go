package models

import "time"

// TournamentMatch records that a match belongs to a tournament.
type TournamentMatch struct {
	ID           int `json:"id" db:"tournament_match_id"`
	TournamentID int `json:"tournament_id" db:"tournament_id"`
	MatchID      int `json:"match_id" db:"match_id"`

	TournamentName     *string    `json:"tournament_name,omitempty" db:"-"`
	MatchScheduledTime *time.Time `json:"match_scheduled_time,omitempty" db:"-"`
}

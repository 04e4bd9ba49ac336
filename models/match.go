package models

import "time"

type Match struct {
	ID            int       `json:"id" db:"match_id"`
	TournamentID  int       `json:"tournament_id" db:"tournament_id"`
	ScheduledTime time.Time `json:"scheduled_time" db:"scheduled_time"`
	WinnerID      *int      `json:"winner_id,omitempty" db:"winner_id"`

	// Display labels resolved by LEFT JOINs; nil when the reference is unset.
	TournamentName *string `json:"tournament_name,omitempty" db:"-"`
	WinnerName     *string `json:"winner_name,omitempty" db:"-"`
}

package models

import "time"

// MatchTeam records that a team takes part in a match.
type MatchTeam struct {
	ID      int `json:"id" db:"match_team_id"`
	MatchID int `json:"match_id" db:"match_id"`
	TeamID  int `json:"team_id" db:"team_id"`

	TeamName           string     `json:"team_name" db:"-"`
	MatchScheduledTime *time.Time `json:"match_scheduled_time,omitempty" db:"-"`
}

package models

import "time"

// Session statuses. A session is Active until a blackout cascade or an
// explicit edit cancels it; no operation flips it back to Active.
const (
	SessionStatusActive    = "Active"
	SessionStatusCancelled = "Cancelled"
)

// Session is one scheduled practice occurrence on a specific date, time
// slot and facility. Its effective location is its own location or, when
// absent, the location of its class.
type Session struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	ClassID    string    `db:"class_id" json:"class_id"`
	CoachID    *string   `db:"coach_id" json:"coach_id,omitempty"`
	LocationID *string   `db:"location_id" json:"location_id,omitempty"`
	Date       string    `db:"date" json:"date"`
	Time       *string   `db:"time" json:"time,omitempty"`
	Court      *string   `db:"court" json:"court,omitempty"`
	Notes      *string   `db:"notes" json:"notes,omitempty"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// SessionView is a session joined with its display names for listing.
type SessionView struct {
	Session
	ClassName    *string `db:"class_name" json:"class_name,omitempty"`
	CoachName    *string `db:"coach_name" json:"coach_name,omitempty"`
	LocationName *string `db:"location_name" json:"location_name,omitempty"`
}

// Participant is one roster entry attached to a session. Entries linked
// to a player id are unique per session; name-only walk-ins may repeat.
type Participant struct {
	ID         int64     `db:"id" json:"id"`
	SessionID  int64     `db:"session_id" json:"session_id"`
	PlayerID   *string   `db:"player_id" json:"player_id,omitempty"`
	PlayerName string    `db:"player_name" json:"player_name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

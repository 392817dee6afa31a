package models

import "time"

// AttendanceEntry is one row of the attendance log. Entries reference
// sessions without foreign-key enforcement: attendance is a historical
// record and survives session deletion.
type AttendanceEntry struct {
	ID         int64     `db:"id" json:"id"`
	Date       *string   `db:"date" json:"date,omitempty"`
	YearMonth  *string   `db:"year_month" json:"year_month,omitempty"`
	LocationID *string   `db:"location_id" json:"location_id,omitempty"`
	SessionID  *int64    `db:"session_id" json:"session_id,omitempty"`
	ClassID    *string   `db:"class_id" json:"class_id,omitempty"`
	CoachID    *string   `db:"coach_id" json:"coach_id,omitempty"`
	Slot       *int      `db:"slot" json:"slot,omitempty"`
	PlayerID   *string   `db:"player_id" json:"player_id,omitempty"`
	PlayerName *string   `db:"player_name" json:"player_name,omitempty"`
	Present    bool      `db:"present" json:"present"`
	Late       bool      `db:"late" json:"late"`
	OverLimit  bool      `db:"over_limit" json:"over_limit"`
	Remarks    *string   `db:"remarks" json:"remarks,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

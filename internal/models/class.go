package models

import "time"

// Sentinel class attached to batch-generated sessions that are not tied
// to a specific recurring class.
const (
	SystemClassID     = "SYS-SESSION"
	SystemClassName   = "General Session"
	SystemClassStatus = "System"
)

// Class is a recurring training group (batch) with a home facility.
type Class struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Status     *string   `db:"status" json:"status,omitempty"`
	LocationID *string   `db:"location_id" json:"location_id,omitempty"`
	Day        *string   `db:"day" json:"day,omitempty"`
	Court      *string   `db:"court" json:"court,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// ClassView joins the location display name for listing.
type ClassView struct {
	Class
	LocationName *string `db:"location_name" json:"location_name,omitempty"`
}

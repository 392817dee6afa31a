package models

import "time"

// Blackout is an inclusive date range during which sessions at a facility
// are disallowed. A nil LocationID blocks every facility. Windows are
// immutable once created; the only mutation is deletion.
type Blackout struct {
	ID         int64     `db:"id" json:"id"`
	StartDate  string    `db:"start_date" json:"start_date"`
	EndDate    string    `db:"end_date" json:"end_date"`
	Reason     *string   `db:"reason" json:"reason,omitempty"`
	LocationID *string   `db:"location_id" json:"location_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// BlackoutView joins the facility display name for listing.
type BlackoutView struct {
	Blackout
	LocationName *string `db:"location_name" json:"location_name,omitempty"`
}

// Covers reports whether the window blocks the given date at the given
// location. Dates are ISO YYYY-MM-DD strings, so the inclusive range check
// is a lexicographic comparison.
func (b Blackout) Covers(date string, locationID *string) bool {
	if date < b.StartDate || date > b.EndDate {
		return false
	}
	if b.LocationID == nil {
		return true
	}
	return locationID != nil && *locationID == *b.LocationID
}

package models

import "time"

// Player is an enrolled student.
type Player struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	ClassID       *string   `db:"class_id" json:"class_id,omitempty"`
	Level         *string   `db:"level" json:"level,omitempty"`
	Status        *string   `db:"status" json:"status,omitempty"`
	ParentName    *string   `db:"parent_name" json:"parent_name,omitempty"`
	ParentPhone   *string   `db:"parent_phone" json:"parent_phone,omitempty"`
	StartDate     *string   `db:"start_date" json:"start_date,omitempty"`
	PaymentStatus *string   `db:"payment_status" json:"payment_status,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

package models

import "time"

// Price is one hourly tier. OldCost is the "was" price shown next to the
// current one.
type Price struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	ProfileID   uint `gorm:"not null;index" json:"profile_id"`
	Hours       int  `gorm:"not null" json:"hours"`
	CurrentCost int  `gorm:"not null;index" json:"current_cost"`
	OldCost     *int `json:"old_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type Photo struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProfileID uint   `gorm:"not null;index" json:"profile_id"`
	FilePath  string `gorm:"size:256;not null" json:"file_path"`
	Order     int    `gorm:"column:position;not null" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"

	"github.com/BruksfildServices01/profile-catalog/internal/locale"
)

type Service struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	NameUA string `gorm:"column:name_ua;size:32;not null" json:"name_ua"`
	NameRU string `gorm:"column:name_ru;size:32;not null" json:"name_ru"`
	NameEN string `gorm:"column:name_en;size:32;not null" json:"name_en"`
	Order  int    `gorm:"column:position;not null" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Name picks the name for lang, defaulting to the Ukrainian one.
func (s *Service) Name(lang locale.Lang) string {
	switch lang {
	case locale.RU:
		return s.NameRU
	case locale.EN:
		return s.NameEN
	default:
		return s.NameUA
	}
}

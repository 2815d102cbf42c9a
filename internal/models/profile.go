package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/profile-catalog/internal/locale"
)

type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string    `gorm:"size:16;not null" json:"name"`
	BirthDate time.Time `gorm:"type:date;not null;index" json:"birth_date"`
	Phone     string    `gorm:"size:13;not null" json:"phone"`

	Height     int     `gorm:"not null;index" json:"height"`
	Weight     int     `gorm:"not null;index" json:"weight"`
	BreastSize float64 `gorm:"not null" json:"breast_size"`

	HairColor  locale.HairColor  `gorm:"size:16;not null" json:"hair_color"`
	Ethnicity  locale.Ethnicity  `gorm:"size:16;not null" json:"ethnicity"`
	BodyType   locale.BodyType   `gorm:"size:16;not null" json:"body_type"`
	BreastType locale.BreastType `gorm:"size:16;not null" json:"breast_type"`
	City       *locale.City      `gorm:"size:32;index" json:"city"`

	HasTattoo   bool `gorm:"not null;default:false" json:"has_tattoo"`
	HasPiercing bool `gorm:"not null;default:false" json:"has_piercing"`
	IsVerified  bool `gorm:"not null;default:false" json:"is_verified"`

	DescriptionUA *string `gorm:"column:description_ua;size:512" json:"description_ua"`
	DescriptionRU *string `gorm:"column:description_ru;size:512" json:"description_ru"`
	DescriptionEN *string `gorm:"column:description_en;size:512" json:"description_en"`

	Photos   []Photo          `gorm:"foreignKey:ProfileID" json:"photos,omitempty"`
	Prices   []Price          `gorm:"foreignKey:ProfileID" json:"prices,omitempty"`
	Services []ProfileService `gorm:"foreignKey:ProfileID" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Description returns the description stored for lang. Empty slots and
// unknown languages yield nil; there is no cross-language fallback.
// AfterFind pins BirthDate to UTC midnight of its stored day. Drivers may
// hand a date back in the session zone, where the same instant falls on
// the previous calendar day west of UTC.
func (p *Profile) AfterFind(*gorm.DB) error {
	p.BirthDate = BirthDay(p.BirthDate)
	return nil
}

// BirthDay converts a loaded birth date to UTC midnight of the day it
// was stored as.
func BirthDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func (p *Profile) Description(lang locale.Lang) *string {
	var d *string
	switch lang {
	case locale.UK:
		d = p.DescriptionUA
	case locale.RU:
		d = p.DescriptionRU
	case locale.EN:
		d = p.DescriptionEN
	}
	if d == nil || *d == "" {
		return nil
	}
	return d
}

// MinPrice is the lowest current cost across the loaded price tiers.
func (p *Profile) MinPrice() (int, bool) {
	if len(p.Prices) == 0 {
		return 0, false
	}
	lowest := p.Prices[0].CurrentCost
	for _, pr := range p.Prices[1:] {
		if pr.CurrentCost < lowest {
			lowest = pr.CurrentCost
		}
	}
	return lowest, true
}

// MainPhoto is the photo with the lowest order; equal orders resolve by id.
func (p *Profile) MainPhoto() (*Photo, bool) {
	if len(p.Photos) == 0 {
		return nil, false
	}
	main := &p.Photos[0]
	for i := 1; i < len(p.Photos); i++ {
		ph := &p.Photos[i]
		if ph.Order < main.Order || (ph.Order == main.Order && ph.ID < main.ID) {
			main = ph
		}
	}
	return main, true
}

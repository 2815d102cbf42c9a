package models

// ProfileService links a profile to a service it offers. The pair is the
// primary key, so a profile can reference a service at most once.
type ProfileService struct {
	ProfileID      uint `gorm:"primaryKey;autoIncrement:false" json:"profile_id"`
	ServiceID      uint `gorm:"primaryKey;autoIncrement:false;index" json:"service_id"`
	AdditionalCost *int `json:"additional_cost"`

	Service Service `gorm:"foreignKey:ServiceID" json:"service"`
}

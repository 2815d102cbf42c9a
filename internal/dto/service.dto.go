package dto

type ServiceDTO struct {
	ID            uint   `json:"id"`
	LocalizedName string `json:"localized_name"`
	Order         int    `json:"order"`
}

package dto

type PhotoDTO struct {
	FilePath string `json:"file_path"`
	Order    int    `json:"order"`
}

type PriceDTO struct {
	Hours       int  `json:"hours"`
	CurrentCost int  `json:"current_cost"`
	OldCost     *int `json:"old_cost"`
}

type ProfileServiceDTO struct {
	ServiceID      uint   `json:"service_id"`
	LocalizedName  string `json:"localized_name"`
	AdditionalCost *int   `json:"additional_cost"`
}

type ProfileDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Phone string `json:"phone"`

	Height     int     `json:"height"`
	Weight     int     `json:"weight"`
	BreastSize float64 `json:"breast_size"`

	HairColorLocalized  string  `json:"hair_color_localized"`
	EthnicityLocalized  string  `json:"ethnicity_localized"`
	BodyTypeLocalized   string  `json:"body_type_localized"`
	BreastTypeLocalized string  `json:"breast_type_localized"`
	CityLocalized       *string `json:"city_localized"`

	HasTattoo   bool `json:"has_tattoo"`
	HasPiercing bool `json:"has_piercing"`
	IsVerified  bool `json:"is_verified"`

	DescriptionLocalized *string `json:"description_localized"`

	Photos   []PhotoDTO          `json:"photos"`
	Prices   []PriceDTO          `json:"prices"`
	Services []ProfileServiceDTO `json:"services"`
}

// ProfileShortDTO is the listing card.
type ProfileShortDTO struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	Height     int     `json:"height"`
	Weight     int     `json:"weight"`
	IsVerified bool    `json:"is_verified"`
	MainPhoto  *string `json:"main_photo"`
	MinPrice   *int    `json:"min_price"`
}

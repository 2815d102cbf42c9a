// Package view projects stored entities into localized, read-only
// response shapes. Projections never touch the store.
package view

import (
	"time"

	"github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/dto"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

func Profile(p *models.Profile, lang locale.Lang, today time.Time) dto.ProfileDTO {
	out := dto.ProfileDTO{
		ID:    p.ID,
		Name:  p.Name,
		Age:   catalog.Age(p.BirthDate, today),
		Phone: p.Phone,

		Height:     p.Height,
		Weight:     p.Weight,
		BreastSize: p.BreastSize,

		HairColorLocalized:  p.HairColor.Translate(lang),
		EthnicityLocalized:  p.Ethnicity.Translate(lang),
		BodyTypeLocalized:   p.BodyType.Translate(lang),
		BreastTypeLocalized: p.BreastType.Translate(lang),

		HasTattoo:   p.HasTattoo,
		HasPiercing: p.HasPiercing,
		IsVerified:  p.IsVerified,

		DescriptionLocalized: p.Description(lang),

		Photos:   make([]dto.PhotoDTO, 0, len(p.Photos)),
		Prices:   make([]dto.PriceDTO, 0, len(p.Prices)),
		Services: make([]dto.ProfileServiceDTO, 0, len(p.Services)),
	}

	if p.City != nil {
		city := p.City.Translate(lang)
		out.CityLocalized = &city
	}

	for _, ph := range p.Photos {
		out.Photos = append(out.Photos, dto.PhotoDTO{FilePath: ph.FilePath, Order: ph.Order})
	}

	for _, pr := range p.Prices {
		out.Prices = append(out.Prices, dto.PriceDTO{
			Hours:       pr.Hours,
			CurrentCost: pr.CurrentCost,
			OldCost:     pr.OldCost,
		})
	}

	for i := range p.Services {
		ps := &p.Services[i]
		out.Services = append(out.Services, dto.ProfileServiceDTO{
			ServiceID:      ps.ServiceID,
			LocalizedName:  Service(&ps.Service, lang).LocalizedName,
			AdditionalCost: ps.AdditionalCost,
		})
	}

	return out
}

func ProfileShort(p *models.Profile, today time.Time) dto.ProfileShortDTO {
	out := dto.ProfileShortDTO{
		ID:         p.ID,
		Name:       p.Name,
		Age:        catalog.Age(p.BirthDate, today),
		Height:     p.Height,
		Weight:     p.Weight,
		IsVerified: p.IsVerified,
	}

	if ph, ok := p.MainPhoto(); ok {
		path := ph.FilePath
		out.MainPhoto = &path
	}
	if lowest, ok := p.MinPrice(); ok {
		out.MinPrice = &lowest
	}

	return out
}

func ProfileShortList(ps []models.Profile, today time.Time) []dto.ProfileShortDTO {
	out := make([]dto.ProfileShortDTO, 0, len(ps))
	for i := range ps {
		out = append(out, ProfileShort(&ps[i], today))
	}
	return out
}

func Service(s *models.Service, lang locale.Lang) dto.ServiceDTO {
	return dto.ServiceDTO{
		ID:            s.ID,
		LocalizedName: s.Name(lang),
		Order:         s.Order,
	}
}

func ServiceList(ss []models.Service, lang locale.Lang) []dto.ServiceDTO {
	out := make([]dto.ServiceDTO, 0, len(ss))
	for i := range ss {
		out = append(out, Service(&ss[i], lang))
	}
	return out
}

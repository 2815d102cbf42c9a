package profile

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
	"github.com/BruksfildServices01/profile-catalog/internal/validators"
)

const (
	maxNameLen        = 16
	maxDescriptionLen = 512
)

func validateProfile(p *models.Profile, today time.Time) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || utf8.RuneCountInString(p.Name) > maxNameLen {
		return httperr.ErrValidation("name must be 1..%d characters", maxNameLen)
	}

	if p.BirthDate.IsZero() || p.BirthDate.After(today) {
		return httperr.ErrValidation("birth_date must not be in the future")
	}

	p.Phone = validators.NormalizePhone(p.Phone)
	if !validators.IsPhoneValid(p.Phone) {
		return httperr.ErrValidation("invalid phone %q", p.Phone)
	}

	if p.Height <= 0 || p.Weight <= 0 || p.BreastSize <= 0 {
		return httperr.ErrValidation("height, weight and breast_size must be positive")
	}

	if err := locale.ValidateAttributes(p.HairColor, p.Ethnicity, p.BodyType, p.BreastType, p.City); err != nil {
		return httperr.ErrValidation("%s", err.Error())
	}

	for _, d := range []*string{p.DescriptionUA, p.DescriptionRU, p.DescriptionEN} {
		if d != nil && utf8.RuneCountInString(*d) > maxDescriptionLen {
			return httperr.ErrValidation("description must be at most %d characters", maxDescriptionLen)
		}
	}
	return nil
}

func validatePrice(pr *models.Price) error {
	if pr.Hours <= 0 {
		return httperr.ErrValidation("hours must be positive")
	}
	if pr.CurrentCost < 0 {
		return httperr.ErrValidation("current_cost must not be negative")
	}
	if pr.OldCost != nil && *pr.OldCost < 0 {
		return httperr.ErrValidation("old_cost must not be negative")
	}
	return nil
}

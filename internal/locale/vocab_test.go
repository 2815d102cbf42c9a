package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/profile-catalog/internal/locale"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"hair_uk", locale.HairFair.Translate(locale.UK), "Русява"},
		{"hair_ru", locale.HairFair.Translate(locale.RU), "Русая"},
		{"hair_en", locale.HairRedhead.Translate(locale.EN), "Redheads"},
		{"ethnicity_en", locale.EthnicitySlavic.Translate(locale.EN), "Slavic"},
		{"body_ru", locale.BodySport.Translate(locale.RU), "Спортивная"},
		{"breast_uk", locale.BreastNatural.Translate(locale.UK), "Натуральні"},
		{"city_en", locale.CityOdesa.Translate(locale.EN), "Odesa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestTranslate_FallsBackToRawValue(t *testing.T) {
	assert.Equal(t, "blonde", locale.HairBlonde.Translate(locale.Lang("de")))
	assert.Equal(t, "slim", locale.BodySlim.Translate(locale.Lang("")))
	assert.Equal(t, "purple", locale.HairColor("purple").Translate(locale.EN))
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		raw  string
		want locale.Lang
		ok   bool
	}{
		{"", locale.UK, true},
		{"uk", locale.UK, true},
		{"UA", locale.UK, true},
		{"ru", locale.RU, true},
		{" en ", locale.EN, true},
		{"de", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := locale.ParseLang(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVocabularies(t *testing.T) {
	vocabs := locale.Vocabularies(locale.EN)
	require.Len(t, vocabs, 5)

	assert.Equal(t, "hair_color", vocabs[0].Name)
	require.Len(t, vocabs[0].Options, 5)
	assert.Equal(t, locale.Option{Value: "blonde", Label: "Blondes"}, vocabs[0].Options[0])
	assert.Equal(t, "city", vocabs[4].Name)
}

func TestValidateAttributes(t *testing.T) {
	city := locale.CityLviv
	assert.NoError(t, locale.ValidateAttributes(
		locale.HairBrown, locale.EthnicityAsian, locale.BodyFit, locale.BreastSilicone, &city,
	))
	assert.NoError(t, locale.ValidateAttributes(
		locale.HairBrown, locale.EthnicityAsian, locale.BodyFit, locale.BreastSilicone, nil,
	))

	bad := locale.City("paris")
	assert.Error(t, locale.ValidateAttributes(
		locale.HairBrown, locale.EthnicityAsian, locale.BodyFit, locale.BreastSilicone, &bad,
	))
	assert.Error(t, locale.ValidateAttributes(
		"green", locale.EthnicityAsian, locale.BodyFit, locale.BreastSilicone, nil,
	))
}

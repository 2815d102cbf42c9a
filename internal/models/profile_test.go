package models_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

func strPtr(s string) *string { return &s }

func TestProfile_MinPrice(t *testing.T) {
	p := models.Profile{}
	_, ok := p.MinPrice()
	assert.False(t, ok)

	p.Prices = []models.Price{{CurrentCost: 1800}, {CurrentCost: 1200}, {CurrentCost: 3000}}
	got, ok := p.MinPrice()
	require.True(t, ok)
	assert.Equal(t, 1200, got)
}

func TestProfile_MainPhoto(t *testing.T) {
	p := models.Profile{}
	_, ok := p.MainPhoto()
	assert.False(t, ok)

	p.Photos = []models.Photo{
		{ID: 3, FilePath: "b.webp", Order: 2},
		{ID: 5, FilePath: "c.webp", Order: 0},
		{ID: 4, FilePath: "a.webp", Order: 0},
	}
	main, ok := p.MainPhoto()
	require.True(t, ok)
	assert.Equal(t, "a.webp", main.FilePath)
}

func TestProfile_Description(t *testing.T) {
	p := models.Profile{
		DescriptionUA: strPtr("опис"),
		DescriptionRU: strPtr(""),
	}

	require.NotNil(t, p.Description(locale.UK))
	assert.Equal(t, "опис", *p.Description(locale.UK))
	assert.Nil(t, p.Description(locale.RU))
	assert.Nil(t, p.Description(locale.EN))
	assert.Nil(t, p.Description(locale.Lang("de")))
}

func TestService_Name(t *testing.T) {
	s := models.Service{NameUA: "Масаж", NameRU: "Массаж", NameEN: "Massage"}

	assert.Equal(t, "Масаж", s.Name(locale.UK))
	assert.Equal(t, "Массаж", s.Name(locale.RU))
	assert.Equal(t, "Massage", s.Name(locale.EN))
	assert.Equal(t, "Масаж", s.Name(locale.Lang("fr")))
}

func TestProfile_BirthDateIsDateColumn(t *testing.T) {
	s, err := schema.Parse(&models.Profile{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	f := s.LookUpField("BirthDate")
	require.NotNil(t, f)
	assert.Equal(t, schema.DataType("date"), f.DataType)
}

func TestBirthDay_KeepsStoredDayWestOfUTC(t *testing.T) {
	stored := time.Date(1999, time.March, 1, 0, 0, 0, 0, time.UTC)
	// the same instant as a driver in a UTC-5 session returns it
	loaded := stored.In(time.FixedZone("EST", -5*3600))
	require.Equal(t, 28, loaded.Day())

	got := models.BirthDay(loaded)
	assert.Equal(t, stored, got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestProfile_AfterFindNormalizesBirthDate(t *testing.T) {
	stored := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	p := models.Profile{BirthDate: stored.In(time.FixedZone("PST", -8*3600))}

	require.NoError(t, p.AfterFind(nil))
	assert.Equal(t, stored, p.BirthDate)
}

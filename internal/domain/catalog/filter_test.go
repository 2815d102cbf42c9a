package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
)

func intPtr(v int) *int                  { return &v }
func floatPtr(v float64) *float64        { return &v }
func cityPtr(c locale.City) *locale.City { return &c }

func TestParseSortBy(t *testing.T) {
	s, ok := catalog.ParseSortBy("")
	assert.True(t, ok)
	assert.Equal(t, catalog.SortDefault, s)

	s, ok = catalog.ParseSortBy("bust_down")
	assert.True(t, ok)
	assert.Equal(t, catalog.SortBustDown, s)

	_, ok = catalog.ParseSortBy("height_up")
	assert.False(t, ok)
}

func TestProfileFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  catalog.ProfileFilter
		wantErr bool
	}{
		{"empty", catalog.ProfileFilter{}, false},
		{"equal_bounds", catalog.ProfileFilter{HeightMin: intPtr(160), HeightMax: intPtr(160)}, false},
		{"only_min", catalog.ProfileFilter{PriceMin: intPtr(5000)}, false},
		{"inverted_age", catalog.ProfileFilter{AgeMin: intPtr(30), AgeMax: intPtr(20)}, true},
		{"inverted_breast", catalog.ProfileFilter{BreastMin: floatPtr(3.5), BreastMax: floatPtr(2)}, true},
		{"inverted_price", catalog.ProfileFilter{PriceMin: intPtr(3000), PriceMax: intPtr(1000)}, true},
		{"known_city", catalog.ProfileFilter{City: cityPtr(locale.CityKyiv)}, false},
		{"unknown_city", catalog.ProfileFilter{City: cityPtr("paris")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileFilter_UniqueServiceIDs(t *testing.T) {
	f := catalog.ProfileFilter{ServiceIDs: []uint{4, 2, 4, 1, 2}}
	assert.Equal(t, []uint{1, 2, 4}, f.UniqueServiceIDs())
	assert.Nil(t, catalog.ProfileFilter{}.UniqueServiceIDs())
}

func TestProfileQuery_Normalize(t *testing.T) {
	q := catalog.ProfileQuery{Offset: -5, Limit: 0}.Normalize()
	assert.Equal(t, 0, q.Offset)
	assert.Equal(t, catalog.DefaultLimit, q.Limit)
	assert.Equal(t, catalog.SortDefault, q.Sort)

	q = catalog.ProfileQuery{Offset: 10, Limit: 500, Sort: catalog.SortAgeUp}.Normalize()
	assert.Equal(t, 10, q.Offset)
	assert.Equal(t, catalog.MaxLimit, q.Limit)
	assert.Equal(t, catalog.SortAgeUp, q.Sort)
}

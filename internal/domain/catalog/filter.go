package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/BruksfildServices01/profile-catalog/internal/locale"
)

// ===============================
// Sorting
// ===============================

type SortBy string

const (
	SortDefault    SortBy = "default"
	SortPriceUp    SortBy = "price_up"
	SortPriceDown  SortBy = "price_down"
	SortAgeUp      SortBy = "age_up"
	SortAgeDown    SortBy = "age_down"
	SortWeightUp   SortBy = "weight_up"
	SortWeightDown SortBy = "weight_down"
	SortBustUp     SortBy = "bust_up"
	SortBustDown   SortBy = "bust_down"
)

func ParseSortBy(raw string) (SortBy, bool) {
	if raw == "" {
		return SortDefault, true
	}
	switch s := SortBy(raw); s {
	case SortDefault, SortPriceUp, SortPriceDown, SortAgeUp, SortAgeDown,
		SortWeightUp, SortWeightDown, SortBustUp, SortBustDown:
		return s, true
	}
	return "", false
}

// ===============================
// Filtering
// ===============================

// ProfileFilter bounds are inclusive; nil means unconstrained. The price
// bounds match a profile having any tier whose current cost lies inside
// them. A profile must be linked to every id in ServiceIDs.
type ProfileFilter struct {
	AgeMin    *int
	AgeMax    *int
	HeightMin *int
	HeightMax *int
	WeightMin *int
	WeightMax *int
	BreastMin *float64
	BreastMax *float64
	PriceMin  *int
	PriceMax  *int

	City       *locale.City
	ServiceIDs []uint
}

func (f ProfileFilter) HasPriceBounds() bool {
	return f.PriceMin != nil || f.PriceMax != nil
}

// Validate rejects inverted ranges and unknown cities.
func (f ProfileFilter) Validate() error {
	if err := checkRange("age", f.AgeMin, f.AgeMax); err != nil {
		return err
	}
	if err := checkRange("height", f.HeightMin, f.HeightMax); err != nil {
		return err
	}
	if err := checkRange("weight", f.WeightMin, f.WeightMax); err != nil {
		return err
	}
	if err := checkRange("breast", f.BreastMin, f.BreastMax); err != nil {
		return err
	}
	if err := checkRange("price", f.PriceMin, f.PriceMax); err != nil {
		return err
	}
	if f.City != nil && !f.City.IsValid() {
		return fmt.Errorf("unknown city %q", *f.City)
	}
	return nil
}

// UniqueServiceIDs returns ServiceIDs sorted and without duplicates.
func (f ProfileFilter) UniqueServiceIDs() []uint {
	if len(f.ServiceIDs) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(f.ServiceIDs))
	out := make([]uint, 0, len(f.ServiceIDs))
	for _, id := range f.ServiceIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func checkRange[T int | float64](name string, lo, hi *T) error {
	if lo != nil && hi != nil && *lo > *hi {
		return fmt.Errorf("%s_min must not exceed %s_max", name, name)
	}
	return nil
}

// ===============================
// Query
// ===============================

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

type ProfileQuery struct {
	Filter ProfileFilter
	Sort   SortBy
	Offset int
	Limit  int

	// Today anchors age filters.
	Today time.Time
}

// Normalize clamps paging and fills the default sort key.
func (q ProfileQuery) Normalize() ProfileQuery {
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Sort == "" {
		q.Sort = SortDefault
	}
	return q
}

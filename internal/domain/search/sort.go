package search

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"easymed-booking/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

type SortKey string

const (
	SortByRating     SortKey = "rating"
	SortByPriceLow   SortKey = "price-low"
	SortByPriceHigh  SortKey = "price-high"
	SortByExperience SortKey = "experience"
	SortByReviews    SortKey = "reviews"
	SortByName       SortKey = "name"
)

// SortKeys lists every supported key in display order.
var SortKeys = []SortKey{SortByRating, SortByPriceLow, SortByPriceHigh, SortByExperience, SortByReviews, SortByName}

// ParseSortKey maps a query value to a SortKey; empty means rating.
func ParseSortKey(raw string) (SortKey, error) {
	if raw == "" {
		return SortByRating, nil
	}
	key := SortKey(raw)
	if !slices.Contains(SortKeys, key) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, raw)
	}
	return key, nil
}

// Sort returns a new slice ordered by key. Equal keys fall back to ascending doctor ID.
// An unknown key yields the input order, copied.
func Sort(doctors []entity.Doctor, key SortKey) []entity.Doctor {
	sorted := slices.Clone(doctors)
	if sorted == nil {
		sorted = []entity.Doctor{}
	}

	compare := comparator(key)
	if compare == nil {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b entity.Doctor) int {
		if c := compare(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

func comparator(key SortKey) func(a, b entity.Doctor) int {
	switch key {
	case SortByRating:
		return func(a, b entity.Doctor) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortByPriceLow:
		return func(a, b entity.Doctor) int { return a.ConsultationFee.Cmp(b.ConsultationFee) }
	case SortByPriceHigh:
		return func(a, b entity.Doctor) int { return b.ConsultationFee.Cmp(a.ConsultationFee) }
	case SortByExperience:
		return func(a, b entity.Doctor) int { return cmp.Compare(b.ExperienceYears, a.ExperienceYears) }
	case SortByReviews:
		return func(a, b entity.Doctor) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	case SortByName:
		// collate.Collator is not safe for concurrent use, so each sort gets its own.
		collator := collate.New(language.English)
		return func(a, b entity.Doctor) int { return collator.CompareString(a.Name, b.Name) }
	}
	return nil
}

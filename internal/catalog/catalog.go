// Package catalog holds the static doctor catalog. It is loaded once at startup and never mutated.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"easymed-booking/internal/domain/entity"
	"easymed-booking/internal/domain/repository"
)

var ErrDuplicateDoctorID = errors.New("duplicate doctor id")

type Catalog struct {
	doctors []entity.Doctor
	byID    map[int]int
}

// New validates every record and rejects duplicate identifiers.
func New(doctors []entity.Doctor) (*Catalog, error) {
	c := &Catalog{
		doctors: make([]entity.Doctor, 0, len(doctors)),
		byID:    make(map[int]int, len(doctors)),
	}
	for _, doctor := range doctors {
		if err := doctor.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[doctor.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDoctorID, doctor.ID)
		}
		c.byID[doctor.ID] = len(c.doctors)
		c.doctors = append(c.doctors, cloneDoctor(doctor))
	}
	return c, nil
}

// Load reads all doctors from repo and builds the catalog.
func Load(ctx context.Context, repo repository.DoctorRepository) (*Catalog, error) {
	doctors, err := repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(doctors)
}

// All returns a copy of every doctor in catalog order.
func (c *Catalog) All() []entity.Doctor {
	out := make([]entity.Doctor, len(c.doctors))
	for i, doctor := range c.doctors {
		out[i] = cloneDoctor(doctor)
	}
	return out
}

func (c *Catalog) FindByID(id int) (entity.Doctor, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.Doctor{}, false
	}
	return cloneDoctor(c.doctors[i]), true
}

func (c *Catalog) Len() int {
	return len(c.doctors)
}

// Specialties returns the distinct specialties, sorted case-insensitively.
func (c *Catalog) Specialties() []string {
	seen := make(map[string]bool)
	var out []string
	for _, doctor := range c.doctors {
		key := strings.ToLower(doctor.Specialty)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, doctor.Specialty)
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return out
}

func cloneDoctor(d entity.Doctor) entity.Doctor {
	d.Languages = slices.Clone(d.Languages)
	d.TimeSlots = slices.Clone(d.TimeSlots)
	return d
}

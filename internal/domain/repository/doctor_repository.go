package repository

import (
	"context"

	"easymed-booking/internal/domain/entity"
)

// DoctorRepository loads the doctor catalog from its backing source.
type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
}

// DoctorSeeder writes catalog records, replacing rows that share an ID.
type DoctorSeeder interface {
	Upsert(ctx context.Context, doctors []entity.Doctor) error
}

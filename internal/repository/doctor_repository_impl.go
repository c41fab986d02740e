package repository

import (
	"context"

	"easymed-booking/internal/domain/entity"
	domainRepo "easymed-booking/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func NewDoctorSeeder(db *gorm.DB) domainRepo.DoctorSeeder {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Upsert(ctx context.Context, doctors []entity.Doctor) error {
	if len(doctors) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&doctors).Error
}

type staticDoctorRepository struct {
	doctors []entity.Doctor
}

// NewStaticDoctorRepository serves a fixed in-process catalog.
func NewStaticDoctorRepository(doctors []entity.Doctor) domainRepo.DoctorRepository {
	return &staticDoctorRepository{doctors: doctors}
}

func (r *staticDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	doctors := make([]entity.Doctor, len(r.doctors))
	copy(doctors, r.doctors)
	return doctors, nil
}

package repository

import (
	"errors"

	"naac_backend/internal/model"
	"naac_backend/internal/util"

	"gorm.io/gorm"
)

type ExtendedProfileRepository struct {
	db *gorm.DB
}

func NewExtendedProfileRepository(db *gorm.DB) *ExtendedProfileRepository {
	return &ExtendedProfileRepository{db: db}
}

func (r *ExtendedProfileRepository) Create(profile *model.ExtendedProfile) error {
	return r.db.Create(profile).Error
}

func (r *ExtendedProfileRepository) FindByFormAndYear(formID uint, year int) (*model.ExtendedProfile, error) {
	var profile model.ExtendedProfile
	err := r.db.Where("iiqa_form_id = ? AND year = ?", formID, year).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundf("no extended profile found for year %d", year)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListBetween returns the yearly snapshots inside [startYear, endYear]
// ordered ascending.
func (r *ExtendedProfileRepository) ListBetween(startYear, endYear int) ([]model.ExtendedProfile, error) {
	var profiles []model.ExtendedProfile
	err := r.db.
		Where("year BETWEEN ? AND ?", startYear, endYear).
		Order("year ASC").
		Find(&profiles).Error
	return profiles, err
}

// Latest returns the most recent snapshot regardless of year.
func (r *ExtendedProfileRepository) Latest() (*model.ExtendedProfile, error) {
	var profile model.ExtendedProfile
	err := r.db.Order("id DESC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundf("extended profile not found")
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// LatestBetween returns the newest snapshot whose year lies inside the
// window.
func (r *ExtendedProfileRepository) LatestBetween(formID uint, startYear, endYear int) (*model.ExtendedProfile, error) {
	var profile model.ExtendedProfile
	err := r.db.
		Where("iiqa_form_id = ? AND year BETWEEN ? AND ?", formID, startYear, endYear).
		Order("year DESC").
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundf("no extended profile found between %d and %d", startYear, endYear)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ExtendedProfileRepository) ListByForm(formID uint) ([]model.ExtendedProfile, error) {
	var profiles []model.ExtendedProfile
	err := r.db.Where("iiqa_form_id = ?", formID).Order("year ASC").Find(&profiles).Error
	return profiles, err
}

package repository

import (
	"errors"

	"naac_backend/internal/model"
	"naac_backend/internal/util"

	"gorm.io/gorm"
)

type IIQARepository struct {
	db *gorm.DB
}

func NewIIQARepository(db *gorm.DB) *IIQARepository {
	return &IIQARepository{db: db}
}

// Create stores the form together with its child annexures in one
// transaction.
func (r *IIQARepository) Create(form *model.IIQAForm) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(form).Error
	})
}

// Latest returns the most recently created form. The newest form is the
// anchor every session window derives from.
func (r *IIQARepository) Latest() (*model.IIQAForm, error) {
	var form model.IIQAForm
	err := r.db.Order("created_at DESC").First(&form).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundf("no IIQA form found")
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// LatestWithDetails preloads the child annexures for display.
func (r *IIQARepository) LatestWithDetails() (*model.IIQAForm, error) {
	var form model.IIQAForm
	err := r.db.
		Preload("Departments").
		Preload("StaffDetails").
		Preload("StudentDetails").
		Preload("ProgrammeCounts").
		Order("created_at DESC").
		First(&form).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundf("no IIQA form found")
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// LatestStaffTotal sums headcounts across every staff category of the latest
// form's staffing annexure.
func (r *IIQARepository) LatestStaffTotal() (int, error) {
	form, err := r.Latest()
	if err != nil {
		return 0, err
	}
	var rows []model.IIQAStaffDetails
	if err := r.db.Where("iiqa_form_id = ?", form.ID).Find(&rows).Error; err != nil {
		return 0, err
	}
	total := 0
	for _, row := range rows {
		total += row.Total()
	}
	return total, nil
}

// LatestStudentTotal sums regular student headcounts of the latest form.
func (r *IIQARepository) LatestStudentTotal() (int, error) {
	form, err := r.Latest()
	if err != nil {
		return 0, err
	}
	var rows []model.IIQAStudentDetails
	if err := r.db.Where("iiqa_form_id = ?", form.ID).Find(&rows).Error; err != nil {
		return 0, err
	}
	total := 0
	for _, row := range rows {
		total += row.Total()
	}
	return total, nil
}

// LatestProgrammeStudentTotal sums the programme-count annexure of the
// latest form, the enrollment denominator used by certificate-course
// percentages.
func (r *IIQARepository) LatestProgrammeStudentTotal() (int, error) {
	form, err := r.Latest()
	if err != nil {
		return 0, err
	}
	var rows []model.IIQAProgrammeCount
	if err := r.db.Where("iiqa_form_id = ?", form.ID).Find(&rows).Error; err != nil {
		return 0, err
	}
	total := 0
	for _, row := range rows {
		total += row.Count
	}
	return total, nil
}

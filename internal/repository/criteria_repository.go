package repository

import (
	"errors"

	"naac_backend/internal/model"
	"naac_backend/internal/util"

	"gorm.io/gorm"
)

type CriteriaRepository struct {
	db *gorm.DB
}

func NewCriteriaRepository(db *gorm.DB) *CriteriaRepository {
	return &CriteriaRepository{db: db}
}

// FindBySubSubID looks up a taxonomy entry by its padded six digit
// sub-sub-criterion id, e.g. "010103".
func (r *CriteriaRepository) FindBySubSubID(subSubID string) (*model.CriteriaMaster, error) {
	var criteria model.CriteriaMaster
	err := r.db.Where("sub_sub_criterion_id = ?", subSubID).First(&criteria).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundf("criteria %s not found in criteria_master", subSubID)
	}
	if err != nil {
		return nil, err
	}
	return &criteria, nil
}

// FindBySubSubIDs returns the taxonomy entries for a set of padded ids, used
// by multi-table submissions that write one input under several codes.
func (r *CriteriaRepository) FindBySubSubIDs(subSubIDs []string) ([]model.CriteriaMaster, error) {
	var criteria []model.CriteriaMaster
	err := r.db.Where("sub_sub_criterion_id IN ?", subSubIDs).Find(&criteria).Error
	if err != nil {
		return nil, err
	}
	if len(criteria) != len(subSubIDs) {
		return nil, util.NotFoundf("one or more criteria not found")
	}
	return criteria, nil
}

func (r *CriteriaRepository) List() ([]model.CriteriaMaster, error) {
	var criteria []model.CriteriaMaster
	err := r.db.Order("criteria_code").Find(&criteria).Error
	return criteria, err
}

func (r *CriteriaRepository) Create(entry *model.CriteriaMaster) error {
	return r.db.Create(entry).Error
}

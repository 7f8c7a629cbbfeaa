package repository

import (
	"errors"

	"naac_backend/internal/model"
	"naac_backend/internal/util"

	"gorm.io/gorm"
)

type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Upsert records a computed result, keyed on (criteria_code, session).
// Recomputation is the normal path, so an existing row is overwritten in
// place; the coarser rollup columns stay untouched.
func (r *ScoreRepository) Upsert(criteria *model.CriteriaMaster, session int, score float64, grade int) (*model.Score, error) {
	var entry model.Score
	err := r.db.
		Where("criteria_code = ? AND session = ?", criteria.CriteriaCode, session).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = model.Score{
			CriteriaCode:        criteria.CriteriaCode,
			CriteriaID:          criteria.CriterionID,
			SubCriteriaID:       criteria.SubCriterionID,
			SubSubCriteriaID:    criteria.SubSubCriterionID,
			ScoreCriteria:       0,
			ScoreSubCriteria:    0,
			ScoreSubSubCriteria: score,
			SubSubCrGrade:       grade,
			Session:             session,
			CycleYear:           1,
		}
		if err := r.db.Create(&entry).Error; err != nil {
			return nil, err
		}
		return &entry, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"score_sub_sub_criteria": score,
		"sub_sub_cr_grade":       grade,
	}
	if err := r.db.Model(&entry).Updates(updates).Error; err != nil {
		return nil, err
	}
	entry.ScoreSubSubCriteria = score
	entry.SubSubCrGrade = grade
	return &entry, nil
}

func (r *ScoreRepository) FindByCodeAndSession(criteriaCode string, session int) (*model.Score, error) {
	var entry model.Score
	err := r.db.Where("criteria_code = ? AND session = ?", criteriaCode, session).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundf("no score recorded for %s in session %d", criteriaCode, session)
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ScoreRepository) ListBySession(session int) ([]model.Score, error) {
	var entries []model.Score
	err := r.db.Where("session = ?", session).Order("criteria_code").Find(&entries).Error
	return entries, err
}

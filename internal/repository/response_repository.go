package repository

import (
	"errors"

	"naac_backend/internal/model"
	"naac_backend/internal/util"

	"gorm.io/gorm"
)

// ResponseRepo wraps one per-sub-criterion response table. Natural keys are
// enforced here through locate-then-write rather than database constraints,
// matching the two ingestion policies: merge-on-conflict and append with
// duplicate rejection.
type ResponseRepo[T any] struct {
	db *gorm.DB
}

func NewResponseRepo[T any](db *gorm.DB) *ResponseRepo[T] {
	return &ResponseRepo[T]{db: db}
}

func (r *ResponseRepo[T]) Create(row *T) error {
	return r.db.Create(row).Error
}

func (r *ResponseRepo[T]) FindOne(conds map[string]interface{}) (*T, error) {
	var row T
	err := r.db.Where(conds).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Merge locates a row by its natural key and either creates it from row or
// overwrites the non-key payload fields. Returns the stored row and whether
// it was newly created.
func (r *ResponseRepo[T]) Merge(key map[string]interface{}, row *T, updates map[string]interface{}) (*T, bool, error) {
	existing, err := r.FindOne(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.Create(row).Error; err != nil {
			return nil, false, err
		}
		return row, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := r.db.Model(existing).Where(key).Updates(updates).Error; err != nil {
		return nil, false, err
	}
	updated, err := r.FindOne(key)
	if err != nil {
		return nil, false, err
	}
	return updated, false, nil
}

// Append creates a row only when its natural key is unseen; an existing
// match is a duplicate of a discrete fact and is rejected.
func (r *ResponseRepo[T]) Append(key map[string]interface{}, row *T) (*T, error) {
	_, err := r.FindOne(key)
	if err == nil {
		return nil, util.Duplicatef("an entry with the same details already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *ResponseRepo[T]) List(conds map[string]interface{}) ([]T, error) {
	var rows []T
	err := r.db.Where(conds).Find(&rows).Error
	return rows, err
}

// ListSessionBetween returns rows for a criteria code whose session lies in
// [startYear, endYear].
func (r *ResponseRepo[T]) ListSessionBetween(criteriaCode string, startYear, endYear int) ([]T, error) {
	var rows []T
	err := r.db.
		Where("criteria_code = ? AND session BETWEEN ? AND ?", criteriaCode, startYear, endYear).
		Find(&rows).Error
	return rows, err
}

// ListYearBetween is the variant bounded on the event year column instead
// of the session.
func (r *ResponseRepo[T]) ListYearBetween(criteriaCode, yearColumn string, startYear, endYear int) ([]T, error) {
	var rows []T
	err := r.db.
		Where("criteria_code = ? AND "+yearColumn+" BETWEEN ? AND ?", criteriaCode, startYear, endYear).
		Find(&rows).Error
	return rows, err
}

// Latest returns the most recently inserted row for a criteria code.
func (r *ResponseRepo[T]) Latest(criteriaCode string) (*T, error) {
	var row T
	err := r.db.
		Where("criteria_code = ?", criteriaCode).
		Order("sl_no DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// WithTx returns a copy of the repository bound to a transaction.
func (r *ResponseRepo[T]) WithTx(tx *gorm.DB) *ResponseRepo[T] {
	return &ResponseRepo[T]{db: tx}
}

// Responses bundles the typed repositories for every response table so
// services can take one dependency.
type Responses struct {
	DB *gorm.DB

	R113  *ResponseRepo[model.Response113]
	R121  *ResponseRepo[model.Response121]
	R122  *ResponseRepo[model.Response122]
	R132  *ResponseRepo[model.Response132]
	R133  *ResponseRepo[model.Response133]
	R141  *ResponseRepo[model.Response141]
	R142  *ResponseRepo[model.Response142]
	R211  *ResponseRepo[model.Response211]
	R212  *ResponseRepo[model.Response212]
	R222  *ResponseRepo[model.Response222]
	R233  *ResponseRepo[model.Response233]
	R241  *ResponseRepo[model.Response241]
	R242  *ResponseRepo[model.Response242]
	R243  *ResponseRepo[model.Response243]
	R263  *ResponseRepo[model.Response263]
	R311  *ResponseRepo[model.Response311]
	R623  *ResponseRepo[model.Response623]
	R632  *ResponseRepo[model.Response632]
	R633  *ResponseRepo[model.Response633]
	R634  *ResponseRepo[model.Response634]
	R642  *ResponseRepo[model.Response642]
	R712  *ResponseRepo[model.Response712]
	R7110 *ResponseRepo[model.Response7110]
}

func NewResponses(db *gorm.DB) *Responses {
	return &Responses{
		DB:    db,
		R113:  NewResponseRepo[model.Response113](db),
		R121:  NewResponseRepo[model.Response121](db),
		R122:  NewResponseRepo[model.Response122](db),
		R132:  NewResponseRepo[model.Response132](db),
		R133:  NewResponseRepo[model.Response133](db),
		R141:  NewResponseRepo[model.Response141](db),
		R142:  NewResponseRepo[model.Response142](db),
		R211:  NewResponseRepo[model.Response211](db),
		R212:  NewResponseRepo[model.Response212](db),
		R222:  NewResponseRepo[model.Response222](db),
		R233:  NewResponseRepo[model.Response233](db),
		R241:  NewResponseRepo[model.Response241](db),
		R242:  NewResponseRepo[model.Response242](db),
		R243:  NewResponseRepo[model.Response243](db),
		R263:  NewResponseRepo[model.Response263](db),
		R311:  NewResponseRepo[model.Response311](db),
		R623:  NewResponseRepo[model.Response623](db),
		R632:  NewResponseRepo[model.Response632](db),
		R633:  NewResponseRepo[model.Response633](db),
		R634:  NewResponseRepo[model.Response634](db),
		R642:  NewResponseRepo[model.Response642](db),
		R712:  NewResponseRepo[model.Response712](db),
		R7110: NewResponseRepo[model.Response7110](db),
	}
}

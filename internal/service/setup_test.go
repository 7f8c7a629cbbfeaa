package service

import (
	"fmt"
	"testing"

	"naac_backend/internal/model"
	"naac_backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires the full scoring stack against an in-memory database.
type testEnv struct {
	db          *gorm.DB
	scores      *ScoreService
	submissions *SubmissionService
	criteria    *repository.CriteriaRepository
	responses   *repository.Responses
	profiles    *repository.ExtendedProfileRepository
	iiqa        *repository.IIQARepository
	anchor      *model.IIQAForm
}

var testCriteria = []model.CriteriaMaster{
	{CriteriaCode: "1.1.3", CriterionID: "01", SubCriterionID: "0101", SubSubCriterionID: "010103"},
	{CriteriaCode: "1.3.3", CriterionID: "01", SubCriterionID: "0103", SubSubCriterionID: "010303"},
	{CriteriaCode: "1.4.1", CriterionID: "01", SubCriterionID: "0104", SubSubCriterionID: "010401"},
	{CriteriaCode: "2.2.2", CriterionID: "02", SubCriterionID: "0202", SubSubCriterionID: "020202"},
	{CriteriaCode: "2.4.1", CriterionID: "02", SubCriterionID: "0204", SubSubCriterionID: "020401"},
	{CriteriaCode: "2.4.3", CriterionID: "02", SubCriterionID: "0204", SubSubCriterionID: "020403"},
	{CriteriaCode: "2.6.3", CriterionID: "02", SubCriterionID: "0206", SubSubCriterionID: "020603"},
}

// newTestEnv opens a fresh in-memory database, migrates the schema, seeds
// the taxonomy subset the tests touch and stores one anchor form ending in
// 2024, so every test sees the window [2019, 2024].
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	for i := range testCriteria {
		entry := testCriteria[i]
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("failed to seed criteria %s: %v", entry.CriteriaCode, err)
		}
	}

	anchor := &model.IIQAForm{
		InstitutionID:    1,
		SessionStartYear: 2023,
		SessionEndYear:   2024,
		YearFilled:       2024,
		NAACCycle:        1,
		Status:           "Submitted",
	}
	if err := db.Create(anchor).Error; err != nil {
		t.Fatalf("failed to seed anchor form: %v", err)
	}

	criteria := repository.NewCriteriaRepository(db)
	iiqa := repository.NewIIQARepository(db)
	profiles := repository.NewExtendedProfileRepository(db)
	scores := repository.NewScoreRepository(db)
	responses := repository.NewResponses(db)
	windows := NewWindowResolver(iiqa)

	submissions := NewSubmissionService(criteria, responses, windows, 1990)
	submissions.nowYear = func() int { return 2024 }

	return &testEnv{
		db:          db,
		scores:      NewScoreService(criteria, scores, profiles, iiqa, responses, windows),
		submissions: submissions,
		criteria:    criteria,
		responses:   responses,
		profiles:    profiles,
		iiqa:        iiqa,
		anchor:      anchor,
	}
}

func (e *testEnv) countRows(t *testing.T, value interface{}, conds map[string]interface{}) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(value).Where(conds).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

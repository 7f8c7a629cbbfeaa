package database

import (
	"fmt"
	"testing"

	"naac_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.CriteriaMaster{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func TestSeedCriteriaMaster(t *testing.T) {
	db := openSeedTestDB(t)

	if err := SeedCriteriaMaster(db); err != nil {
		t.Fatalf("SeedCriteriaMaster failed: %v", err)
	}

	var entries []model.CriteriaMaster
	if err := db.Find(&entries).Error; err != nil {
		t.Fatalf("failed to read seeded taxonomy: %v", err)
	}
	if len(entries) != len(criteriaCatalog) {
		t.Fatalf("seeded %d entries, want %d", len(entries), len(criteriaCatalog))
	}

	for _, entry := range entries {
		if entry.CriteriaType != "Qn" && entry.CriteriaType != "Ql" {
			t.Errorf("%s: criteria type %q is outside the Qn/Ql domain", entry.CriteriaCode, entry.CriteriaType)
		}
		if len(entry.SubSubCriterionID) != 6 {
			t.Errorf("%s: sub-sub id %q is not six digits", entry.CriteriaCode, entry.SubSubCriterionID)
		}
		if entry.CriterionID != entry.SubSubCriterionID[:2] || entry.SubCriterionID != entry.SubSubCriterionID[:4] {
			t.Errorf("%s: parent ids not derived from %q", entry.CriteriaCode, entry.SubSubCriterionID)
		}
	}
}

// Column widths follow the original taxonomy schema, so every seed value
// must fit its declared size or the insert fails on MySQL.
func TestSeedCatalogFitsColumnWidths(t *testing.T) {
	for _, seed := range criteriaCatalog {
		if len(seed.ctype) > 2 {
			t.Errorf("%s: criteria type %q exceeds the two character column", seed.code, seed.ctype)
		}
		if len(seed.code) > 20 {
			t.Errorf("%s: criteria code exceeds its column", seed.code)
		}
		if len(seed.name) > 500 || len(seed.subName) > 255 || len(seed.crName) > 255 {
			t.Errorf("%s: a name exceeds its column", seed.code)
		}
	}
}

func TestSeedCriteriaMasterIsRerunSafe(t *testing.T) {
	db := openSeedTestDB(t)

	if err := SeedCriteriaMaster(db); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := SeedCriteriaMaster(db); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	var count int64
	if err := db.Model(&model.CriteriaMaster{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != int64(len(criteriaCatalog)) {
		t.Errorf("rows = %d after reseeding, want %d", count, len(criteriaCatalog))
	}
}

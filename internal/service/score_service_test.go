package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"naac_backend/internal/model"
	"naac_backend/internal/util"
)

func seedTeachers(t *testing.T, env *testEnv, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		row := model.Response113{
			ResponseBase: model.ResponseBase{CriteriaID: 1, CriteriaCode: "1.1.3", Session: 2024},
			Year:         2023,
			TeacherName:  fmt.Sprintf("teacher %02d", i),
			BodyName:     "board of studies",
		}
		if err := env.db.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed response: %v", err)
		}
	}
}

func TestComputeScoreDistinctTeachers(t *testing.T) {
	env := newTestEnv(t)
	seedTeachers(t, env, 32)

	result, err := env.scores.ComputeScore("1.1.3", 2024)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if result.Score != 32 {
		t.Errorf("score = %v, want 32", result.Score)
	}
	if result.Grade != 4 {
		t.Errorf("grade = %d, want 4", result.Grade)
	}
	if result.Entry == nil || result.Entry.ScoreSubSubCriteria != 32 {
		t.Errorf("ledger entry not persisted with the raw result: %+v", result.Entry)
	}
}

func TestComputeScoreDeduplicatesTeachers(t *testing.T) {
	env := newTestEnv(t)
	// Same teacher in two bodies counts once.
	for _, body := range []string{"board of studies", "academic council"} {
		row := model.Response113{
			ResponseBase: model.ResponseBase{CriteriaID: 1, CriteriaCode: "1.1.3", Session: 2024},
			Year:         2023,
			TeacherName:  "Asha Rao",
			BodyName:     body,
		}
		if err := env.db.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed response: %v", err)
		}
	}

	result, err := env.scores.ComputeScore("1.1.3", 2024)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("score = %v, want 1 distinct teacher", result.Score)
	}
}

func TestComputeScoreIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	seedTeachers(t, env, 12)

	first, err := env.scores.ComputeScore("1.1.3", 2024)
	if err != nil {
		t.Fatalf("first compute failed: %v", err)
	}
	second, err := env.scores.ComputeScore("1.1.3", 2024)
	if err != nil {
		t.Fatalf("second compute failed: %v", err)
	}

	if first.Score != second.Score || first.Grade != second.Grade {
		t.Errorf("recomputation changed the result: %v/%d vs %v/%d",
			first.Score, first.Grade, second.Score, second.Grade)
	}

	count := env.countRows(t, &model.Score{}, map[string]interface{}{
		"criteria_code": "1.1.3",
		"session":       2024,
	})
	if count != 1 {
		t.Errorf("ledger rows = %d, want exactly 1", count)
	}
}

func TestComputeScoreZeroPassRate(t *testing.T) {
	env := newTestEnv(t)
	row := model.Response263{
		ResponseBase:     model.ResponseBase{CriteriaID: 7, CriteriaCode: "2.6.3", Session: 2024},
		Year:             2024,
		ProgramCode:      "BSC01",
		ProgramName:      "B.Sc. Physics",
		StudentsAppeared: 150,
		StudentsPassed:   0,
	}
	if err := env.db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed response: %v", err)
	}

	result, err := env.scores.ComputeScore("2.6.3", 2024)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("score = %v, want 0", result.Score)
	}
	if result.Grade != 0 {
		t.Errorf("grade = %d, want 0", result.Grade)
	}
}

func TestComputeScoreZeroDenominator(t *testing.T) {
	env := newTestEnv(t)
	row := model.Response263{
		ResponseBase:     model.ResponseBase{CriteriaID: 7, CriteriaCode: "2.6.3", Session: 2024},
		Year:             2024,
		ProgramCode:      "BSC01",
		ProgramName:      "B.Sc. Physics",
		StudentsAppeared: 0,
		StudentsPassed:   0,
	}
	if err := env.db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed response: %v", err)
	}

	result, err := env.scores.ComputeScore("2.6.3", 2024)
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("score = %v, want 0 when nobody appeared", result.Score)
	}
}

func TestComputeScoreUnknownCode(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.scores.ComputeScore("9.9.9", 2024)
	if !errors.Is(err, util.ErrNotFound) {
		t.Errorf("expected not-found error for unknown code, got %v", err)
	}
}

func TestComputeScoreNoData(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.scores.ComputeScore("1.4.1", 2024)
	if !errors.Is(err, util.ErrNotFound) {
		t.Errorf("expected not-found error when no responses exist, got %v", err)
	}

	count := env.countRows(t, &model.Score{}, map[string]interface{}{"criteria_code": "1.4.1"})
	if count != 0 {
		t.Errorf("failed computation must not write a ledger row, found %d", count)
	}
}

func TestComputeScoreSessionOutsideWindow(t *testing.T) {
	env := newTestEnv(t)
	seedTeachers(t, env, 5)

	_, err := env.scores.ComputeScore("1.1.3", 2026)
	if !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Session must be between 2019 and 2024") {
		t.Errorf("unexpected message: %v", err)
	}
}

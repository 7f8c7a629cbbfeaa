package service

import (
	"errors"
	"strings"
	"testing"

	"naac_backend/internal/model"
	"naac_backend/internal/util"
)

func newProfileService(env *testEnv) *ExtendedProfileService {
	return NewExtendedProfileService(env.profiles, env.iiqa, NewWindowResolver(env.iiqa))
}

func TestProfileCreateRejectsDuplicateYear(t *testing.T) {
	env := newTestEnv(t)
	profiles := newProfileService(env)

	in := CreateProfileInput{
		Year:                   2023,
		NumberOfCoursesOffered: 120,
		TotalStudents:          1500,
		FullTimeTeachers:       80,
	}
	profile, err := profiles.Create(in)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if profile.IIQAFormID != env.anchor.ID {
		t.Errorf("profile attached to form %d, want the anchor %d", profile.IIQAFormID, env.anchor.ID)
	}

	_, err = profiles.Create(in)
	if !errors.Is(err, util.ErrDuplicate) {
		t.Fatalf("expected duplicate error for a second snapshot of 2023, got %v", err)
	}

	count := env.countRows(t, &model.ExtendedProfile{}, map[string]interface{}{
		"iiqa_form_id": env.anchor.ID,
		"year":         2023,
	})
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestProfileCreateYearOutsideWindow(t *testing.T) {
	env := newTestEnv(t)
	profiles := newProfileService(env)

	_, err := profiles.Create(CreateProfileInput{Year: 2018, TotalStudents: 900})
	if !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Session must be between 2019 and 2024") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestProfileCreateRejectsNegativeCounts(t *testing.T) {
	env := newTestEnv(t)
	profiles := newProfileService(env)

	_, err := profiles.Create(CreateProfileInput{Year: 2023, TotalStudents: -1})
	if !errors.Is(err, util.ErrValidation) {
		t.Errorf("expected validation error for a negative count, got %v", err)
	}

	_, err = profiles.Create(CreateProfileInput{Year: 2023, ExpenditureInLakhs: -0.5})
	if !errors.Is(err, util.ErrValidation) {
		t.Errorf("expected validation error for negative expenditure, got %v", err)
	}
}

// A failed uniqueness lookup must surface, not fall through to Create.
func TestProfileCreatePropagatesLookupFailure(t *testing.T) {
	env := newTestEnv(t)
	profiles := newProfileService(env)

	if err := env.db.Migrator().DropTable(&model.ExtendedProfile{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	_, err := profiles.Create(CreateProfileInput{Year: 2023, TotalStudents: 1500})
	if err == nil {
		t.Fatal("expected an error when the snapshot table is unreadable")
	}
	if errors.Is(err, util.ErrDuplicate) || errors.Is(err, util.ErrValidation) || errors.Is(err, util.ErrNotFound) {
		t.Errorf("storage failure mapped to a caller error: %v", err)
	}
}

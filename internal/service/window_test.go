package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"naac_backend/internal/model"
	"naac_backend/internal/util"
)

type anchorStub struct {
	form *model.IIQAForm
	err  error
}

func (s *anchorStub) Latest() (*model.IIQAForm, error) {
	return s.form, s.err
}

func TestResolveWindowFromAnchor(t *testing.T) {
	stub := &anchorStub{form: &model.IIQAForm{SessionStartYear: 2023, SessionEndYear: 2024}}
	resolver := NewWindowResolver(stub)

	w, err := resolver.Resolve(5)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if w.StartYear != 2019 || w.EndYear != 2024 {
		t.Errorf("window = [%d, %d], want [2019, 2024]", w.StartYear, w.EndYear)
	}

	w, err = resolver.Resolve(4)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if w.StartYear != 2020 || w.EndYear != 2024 {
		t.Errorf("window = [%d, %d], want [2020, 2024]", w.StartYear, w.EndYear)
	}
}

func TestResolveFollowsNewestAnchor(t *testing.T) {
	stub := &anchorStub{form: &model.IIQAForm{SessionEndYear: 2022}}
	resolver := NewWindowResolver(stub)

	w, _ := resolver.Resolve(5)
	if w.EndYear != 2022 {
		t.Fatalf("window end = %d, want 2022", w.EndYear)
	}

	stub.form = &model.IIQAForm{SessionEndYear: 2024}
	w, _ = resolver.Resolve(5)
	if w.StartYear != 2019 || w.EndYear != 2024 {
		t.Errorf("window = [%d, %d], want [2019, 2024] after new anchor", w.StartYear, w.EndYear)
	}
}

func TestResolveWithoutAnchor(t *testing.T) {
	stub := &anchorStub{err: util.NotFoundf("no IIQA form found")}
	resolver := NewWindowResolver(stub)

	if _, err := resolver.Resolve(5); !errors.Is(err, util.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestValidateSession(t *testing.T) {
	stub := &anchorStub{form: &model.IIQAForm{SessionEndYear: 2024}}
	resolver := NewWindowResolver(stub)

	if _, err := resolver.ValidateSession(2024, 5); err != nil {
		t.Errorf("session 2024 should be accepted: %v", err)
	}
	if _, err := resolver.ValidateSession(2019, 5); err != nil {
		t.Errorf("session 2019 should be accepted: %v", err)
	}

	_, err := resolver.ValidateSession(2026, 5)
	if !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Session must be between 2019 and 2024") {
		t.Errorf("unexpected message: %v", err)
	}

	if _, err := resolver.ValidateSession(2018, 5); !errors.Is(err, util.ErrValidation) {
		t.Errorf("expected validation error for 2018, got %v", err)
	}
}

// Only the most recently created form anchors the window; older forms
// must not shift it.
func TestResolveUsesNewestStoredAnchor(t *testing.T) {
	env := newTestEnv(t)
	resolver := NewWindowResolver(env.iiqa)

	older := model.IIQAForm{
		InstitutionID:    1,
		SessionStartYear: 2019,
		SessionEndYear:   2020,
		YearFilled:       2020,
		NAACCycle:        1,
		Status:           "Submitted",
	}
	older.CreatedAt = time.Now().AddDate(-1, 0, 0)
	if err := env.db.Create(&older).Error; err != nil {
		t.Fatalf("failed to store older form: %v", err)
	}

	w, err := resolver.Resolve(5)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if w.StartYear != 2019 || w.EndYear != 2024 {
		t.Errorf("window = [%d, %d], want [2019, 2024] from the newest form", w.StartYear, w.EndYear)
	}

	newer := model.IIQAForm{
		InstitutionID:    1,
		SessionStartYear: 2025,
		SessionEndYear:   2026,
		YearFilled:       2026,
		NAACCycle:        2,
		Status:           "Submitted",
	}
	newer.CreatedAt = time.Now().Add(time.Hour)
	if err := env.db.Create(&newer).Error; err != nil {
		t.Fatalf("failed to store newer form: %v", err)
	}

	w, err = resolver.Resolve(5)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if w.StartYear != 2021 || w.EndYear != 2026 {
		t.Errorf("window = [%d, %d], want [2021, 2026] after a newer form", w.StartYear, w.EndYear)
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{StartYear: 2019, EndYear: 2024}
	for year := 2019; year <= 2024; year++ {
		if !w.Contains(year) {
			t.Errorf("Contains(%d) = false, want true", year)
		}
	}
	if w.Contains(2018) || w.Contains(2025) {
		t.Error("years outside the span must not be contained")
	}
}

package service

import (
	"naac_backend/internal/model"
	"naac_backend/internal/util"
)

// AnchorSource yields the latest self-assessment anchor form. Injected so
// tests can pin the anchor instead of relying on insertion order.
type AnchorSource interface {
	Latest() (*model.IIQAForm, error)
}

// Window is the span of sessions eligible for aggregation, inclusive on
// both ends.
type Window struct {
	StartYear int
	EndYear   int
}

func (w Window) Contains(session int) bool {
	return session >= w.StartYear && session <= w.EndYear
}

// WindowResolver derives the rolling session window from the latest anchor.
type WindowResolver struct {
	anchors AnchorSource
}

func NewWindowResolver(anchors AnchorSource) *WindowResolver {
	return &WindowResolver{anchors: anchors}
}

// Resolve returns [endYear-windowYears, endYear] for the newest anchor.
// Formulas needing exactly five sample points pass windowYears 4; the
// default span is 5.
func (r *WindowResolver) Resolve(windowYears int) (Window, error) {
	anchor, err := r.anchors.Latest()
	if err != nil {
		return Window{}, err
	}
	end := anchor.SessionEndYear
	return Window{StartYear: end - windowYears, EndYear: end}, nil
}

// ValidateSession rejects sessions outside the window with the message the
// data-entry UI renders verbatim.
func (r *WindowResolver) ValidateSession(session, windowYears int) (Window, error) {
	w, err := r.Resolve(windowYears)
	if err != nil {
		return Window{}, err
	}
	if !w.Contains(session) {
		return Window{}, util.Validationf("Session must be between %d and %d", w.StartYear, w.EndYear)
	}
	return w, nil
}

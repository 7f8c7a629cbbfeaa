package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validationf("session must be a year"), http.StatusBadRequest},
		{NotFoundf("no IIQA form found"), http.StatusNotFound},
		{Duplicatef("an entry with the same details already exists"), http.StatusConflict},
		{ErrUnauthorized, http.StatusUnauthorized},
		{errors.New("driver: bad connection"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusForError(tc.err); got != tc.want {
			t.Errorf("StatusForError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestRespondErrorMapsSentinels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/scores/1.1.3", nil)
		RespondError(c, err)
		return w
	}

	w := run(Duplicatef("an extended profile for year %d already exists", 2023))
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), "2023") {
		t.Errorf("caller message lost: %s", w.Body.String())
	}

	w = run(Validationf("Session must be between %d and %d", 2019, 2024))
	if w.Code != http.StatusBadRequest {
		t.Errorf("validation status = %d, want 400", w.Code)
	}

	w = run(errors.New("driver: bad connection"))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("unknown error status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "bad connection") {
		t.Errorf("driver error leaked to the client: %s", w.Body.String())
	}
}

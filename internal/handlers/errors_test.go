package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func render(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	writeError(c, zerolog.Nop(), err)
	return w
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", httperr.ErrBusiness("invalid_phone"), http.StatusBadRequest, "invalid_phone"},
		{"wrapped business", fmt.Errorf("create: %w", httperr.ErrBusiness("party_size_out_of_range")), http.StatusBadRequest, "party_size_out_of_range"},
		{"not found", httperr.ErrBusiness("reservation_not_found"), http.StatusNotFound, "reservation_not_found"},
		{"conflict", httperr.ErrBusiness("username_taken"), http.StatusConflict, "username_taken"},
		{"credentials", httperr.ErrBusiness("invalid_credentials"), http.StatusUnauthorized, "invalid_credentials"},
		{"unknown code", httperr.ErrBusiness("something_new"), http.StatusBadRequest, "something_new"},
		{"storage", httperr.Storage("insert", errors.New("conn reset")), http.StatusServiceUnavailable, "storage_unavailable"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := render(tt.err)
			assert.Equal(t, tt.status, w.Code)

			var body httperr.HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWriteError_SlotUnavailable(t *testing.T) {
	w := render(&domain.SlotUnavailableError{
		Date:         "2024-06-03",
		Time:         "19:00",
		Reason:       domain.RejectFull,
		Alternatives: []string{"18:30", "19:30"},
	})
	require.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Code    string `json:"error_code"`
		Details struct {
			RequestedTime  string   `json:"requested_time"`
			Reason         string   `json:"reason"`
			AvailableTimes []string `json:"available_times"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "slot_unavailable", body.Code)
	assert.Equal(t, "19:00", body.Details.RequestedTime)
	assert.Equal(t, []string{"18:30", "19:30"}, body.Details.AvailableTimes)
	assert.Equal(t, "full", body.Details.Reason)
	assert.Empty(t, w.Header().Get("Retry-After"))
}

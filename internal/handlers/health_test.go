package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dimitrije/kisan-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealthHandler_Check(t *testing.T) {
	testCases := []struct {
		name     string
		pingErr  error
		expected int
		body     string
	}{
		{"healthy", nil, http.StatusOK, `{"status":"ok"}`},
		{"store unavailable", errors.New("connection refused"), http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pinger := new(testutil.MockPinger)
			pinger.On("Ping", mock.Anything).Return(tc.pingErr)

			app := drift.New()
			app.Get("/health", NewHealthHandler(pinger, nil).Check)

			rec := testutil.NewHTTPTestClient(t, app).GET("/health", nil)

			assert.Equal(t, tc.expected, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
			pinger.AssertExpectations(t)
		})
	}
}

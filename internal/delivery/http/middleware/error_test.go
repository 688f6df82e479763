package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"authhub/internal/delivery/http/response"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantHeader string
	}{
		{
			name:       "app error",
			err:        errors.WithStack(domainerrors.ErrMFAInvalidCode),
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerrors.CodeMFAInvalidCode,
		},
		{
			name:       "rate limit",
			err:        domainerrors.NewRateLimitError(1500*time.Millisecond, 2),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   domainerrors.CodeRateLimitExceeded,
			wantHeader: "2",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unexpected error",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.CodeInternalError,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.NotContains(t, rec.Body.String(), "database exploded")
			assert.Equal(t, tt.wantHeader, rec.Header().Get(response.HeaderRateLimitRemaining))
		})
	}
}

package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fileauth/internal/delivery/api/response"
	"fileauth/internal/delivery/api/validator"
	deliverycontext "fileauth/internal/delivery/context"
	domainerrors "fileauth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrUserNotFound, "bob"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "user not found", body.Error.Message)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestHandleHTTPError_AuthErrorsDoNotLeakCause(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrTokenExpired.WrapMessage("token is expired by 1h0m0s"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_EXPIRED", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "1h0m0s")
}

func TestHandleHTTPError_ValidationDetails(t *testing.T) {
	type req struct {
		Username string `json:"username" validate:"required"`
	}
	err := validator.New().Validate(&req{})

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, map[string]any{"username": "required"}, body.Error.Details)
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	rec, body := handleError(t, echo.ErrMethodNotAllowed)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestHandleHTTPError_Unknown(t *testing.T) {
	rec, body := handleError(t, errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}

package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salesledger/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestOK_WritesBarePayload(t *testing.T) {
	c, w := newContext()
	OK(c, map[string]int{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestError_AppError(t *testing.T) {
	c, w := newContext()
	c.Set("request_id", "req-1")
	Error(c, apperror.NewFieldValidationError("start_date", "field required"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, "start_date", body.Errors[0].Field)
	assert.Equal(t, "req-1", body.Meta.RequestID)
	assert.Empty(t, c.Errors)
}

func TestError_UnknownErrorIsHidden(t *testing.T) {
	c, w := newContext()
	Error(c, errors.New("database is locked"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database is locked")
	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors[0].Err, "database is locked")
}

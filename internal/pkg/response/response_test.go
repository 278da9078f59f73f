package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldErrs map[string][]string

func (f fieldErrs) Details() map[string]any {
	return map[string]any{"fieldErrors": map[string][]string(f)}
}

func run(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)
	return w, c
}

func TestOK_WritesRawPayload(t *testing.T) {
	w, _ := run(t, func(c *gin.Context) {
		OK(c, http.StatusCreated, []string{"a", "b"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `["a","b"]`, w.Body.String())
}

func TestError_OmitsEmptyDetails(t *testing.T) {
	w, c := run(t, func(c *gin.Context) {
		Error(c, http.StatusConflict, "CPF/CNPJ already exists")
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"CPF/CNPJ already exists"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestValidationFailed(t *testing.T) {
	w, _ := run(t, func(c *gin.Context) {
		ValidationFailed(c, fieldErrs{"name": {"is required"}})
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","details":{"fieldErrors":{"name":["is required"]}}}`, w.Body.String())
}

func TestNotFoundAndDeleted(t *testing.T) {
	w, _ := run(t, func(c *gin.Context) { NotFound(c, "Plot") })
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Plot not found"}`, w.Body.String())

	w, _ = run(t, func(c *gin.Context) { Deleted(c, "Plot") })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Plot deleted successfully"}`, w.Body.String())
}

func TestInternal_HidesCause(t *testing.T) {
	w, c := run(t, func(c *gin.Context) {
		Internal(c, errors.New("disk on fire"), "Failed to fetch clients")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch clients"}`, w.Body.String())
	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors[0].Err, "disk on fire")
}

package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"agroconsult/internal/pkg/validator"
)

type item struct {
	Quantity validator.Number `json:"quantity" input:"required" validate:"gt=0"`
}

type payload struct {
	Name  validator.String `json:"name" validate:"required"`
	Items []item           `json:"items" validate:"omitempty,dive"`
}

func bind(body string) (*httptest.ResponseRecorder, bool, payload) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var p payload
	ok := BindJSON(c, &p)
	return w, ok, p
}

func TestBindJSON_OK(t *testing.T) {
	_, ok, p := bind(`{"name":" Ana ","items":[{"quantity":"2"}],"unknown":true}`)

	assert.True(t, ok)
	assert.Equal(t, "Ana", p.Name.Value)
	assert.Equal(t, 2.0, p.Items[0].Quantity.Value)
}

func TestBindJSON_Malformed(t *testing.T) {
	for _, body := range []string{"", "   ", "{", "[1,2"} {
		w, ok, _ := bind(body)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid JSON body"}`, w.Body.String())
	}
}

func TestBindJSON_WrongContainerType(t *testing.T) {
	w, ok, _ := bind(`{"name":"x","items":"nope"}`)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","details":{"fieldErrors":{"items":["must be of type array"]}}}`, w.Body.String())
}

func TestBindJSON_ValidationFailure(t *testing.T) {
	w, ok, _ := bind(`{"items":[{"quantity":-1}]}`)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","details":{"fieldErrors":{
		"name":["is required"],
		"items[0].quantity":["must be greater than 0"]
	}}}`, w.Body.String())
}

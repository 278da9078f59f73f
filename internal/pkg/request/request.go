package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"agroconsult/internal/pkg/response"
	"agroconsult/internal/pkg/validator"
)

// BindJSON decodes the body into v and validates it. On failure the error
// response is already written and false is returned.
func BindJSON(c *gin.Context, v any) bool {
	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		response.InvalidJSON(c)
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			response.ValidationFailed(c, validator.Errors{
				typeErr.Field: {"must be of type " + jsonKind(typeErr.Type.Kind().String())},
			})
			return false
		}
		response.InvalidJSON(c)
		return false
	}

	if errs := validator.Validate(v); errs != nil {
		response.ValidationFailed(c, errs)
		return false
	}
	return true
}

func jsonKind(kind string) string {
	switch {
	case kind == "slice" || kind == "array":
		return "array"
	case kind == "struct" || kind == "map":
		return "object"
	case strings.HasPrefix(kind, "int") || strings.HasPrefix(kind, "float") || strings.HasPrefix(kind, "uint"):
		return "number"
	default:
		return kind
	}
}

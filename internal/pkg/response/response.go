package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes data as the raw JSON body.
func OK(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Error writes {error, details?}. Only the first details value is used.
func Error(c *gin.Context, statusCode int, message string, details ...any) {
	body := gin.H{"error": message}
	if len(details) > 0 && details[0] != nil {
		body["details"] = details[0]
	}
	c.AbortWithStatusJSON(statusCode, body)
}

func NotFound(c *gin.Context, entity string) {
	Error(c, http.StatusNotFound, entity+" not found")
}

func Deleted(c *gin.Context, entity string) {
	c.JSON(http.StatusOK, gin.H{"message": entity + " deleted successfully"})
}

func InvalidJSON(c *gin.Context) {
	Error(c, http.StatusBadRequest, "Invalid JSON body")
}

// Detailer is implemented by validator.Errors.
type Detailer interface {
	Details() map[string]any
}

func ValidationFailed(c *gin.Context, errs Detailer) {
	Error(c, http.StatusBadRequest, "Validation failed", errs.Details())
}

// Internal records err for the error logger and hides it from the caller.
func Internal(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, message)
}

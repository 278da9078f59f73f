package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"agroconsult/internal/pkg/response"
)

const pingTimeout = 2 * time.Second

type Status struct {
	OK             bool `json:"ok"`
	HasDatabaseURL bool `json:"hasDatabaseUrl"`
	DBOK           bool `json:"dbOk"`
}

type Handler struct {
	db             *gorm.DB
	hasDatabaseURL bool
}

// NewHandler reports on db. hasDatabaseURL tells whether DATABASE_URL was
// configured explicitly.
func NewHandler(db *gorm.DB, hasDatabaseURL bool) *Handler {
	return &Handler{db: db, hasDatabaseURL: hasDatabaseURL}
}

// Ping runs SELECT 1 through the pool.
func Ping(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec("SELECT 1").Error
}

// Check always answers 200; an unreachable database shows as dbOk=false.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	response.OK(c, http.StatusOK, Status{
		OK:             true,
		HasDatabaseURL: h.hasDatabaseURL,
		DBOK:           Ping(ctx, h.db) == nil,
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Check)
}

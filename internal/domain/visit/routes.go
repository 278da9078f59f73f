package visit

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, write gin.HandlerFunc) {
	visits := r.Group("/visits")
	{
		visits.GET("", h.List)
		visits.GET("/:id", h.Get)
		visits.GET("/:id/report", h.Report)
		visits.POST("", write, h.Create)
		visits.PUT("/:id", write, h.Update)
		visits.PUT("/:id/summary", write, h.SaveSummary)
		visits.DELETE("/:id", write, h.Delete)
	}
}

package evaluation

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, write gin.HandlerFunc) {
	evaluations := r.Group("/evaluations")
	{
		evaluations.GET("", h.List)
		evaluations.GET("/:id", h.Get)
		evaluations.POST("", write, h.Create)
		evaluations.PUT("/:id", write, h.Update)
		evaluations.DELETE("/:id", write, h.Delete)
	}
}

package plot

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, write gin.HandlerFunc) {
	plots := r.Group("/plots")
	{
		plots.GET("", h.List)
		plots.GET("/:id", h.Get)
		plots.POST("", write, h.Create)
		plots.PUT("/:id", write, h.Update)
		plots.DELETE("/:id", write, h.Delete)
	}
}

package property

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, write gin.HandlerFunc) {
	properties := r.Group("/properties")
	{
		properties.GET("", h.List)
		properties.GET("/:id", h.Get)
		properties.POST("", write, h.Create)
		properties.PUT("/:id", write, h.Update)
		properties.DELETE("/:id", write, h.Delete)
	}
}

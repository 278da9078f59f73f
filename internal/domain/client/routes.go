package client

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts /clients. write guards the mutating routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, write gin.HandlerFunc) {
	clients := r.Group("/clients")
	{
		clients.GET("", h.List)
		clients.GET("/:id", h.Get)
		clients.POST("", write, h.Create)
		clients.PUT("/:id", write, h.Update)
		clients.DELETE("/:id", write, h.Delete)
	}
}

package product

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, write gin.HandlerFunc) {
	products := r.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.POST("", write, h.Create)
		products.PUT("/:id", write, h.Update)
		products.DELETE("/:id", write, h.Delete)
	}
}

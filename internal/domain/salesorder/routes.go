package salesorder

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, write gin.HandlerFunc) {
	orders := r.Group("/sales-orders")
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.POST("", write, h.Create)
		orders.PUT("/:id", write, h.Update)
		orders.DELETE("/:id", write, h.Delete)
	}
}

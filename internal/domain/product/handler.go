package product

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agroconsult/internal/middleware"
	"agroconsult/internal/pkg/pagination"
	"agroconsult/internal/pkg/request"
	"agroconsult/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context(), ListFilter{
		Type:   c.Query("type"),
		Search: c.Query("search"),
		Page:   pagination.FromQuery(c),
	})
	if err != nil {
		response.Internal(c, err, "Failed to fetch products")
		return
	}
	response.OK(c, http.StatusOK, products)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch product")
		return
	}
	response.OK(c, http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	req := CreateRequest{strictTypes: h.service.strictTypes}
	if !request.BindJSON(c, &req) {
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req, middleware.GetActor(c))
	if err != nil {
		fail(c, err, "Failed to create product")
		return
	}
	response.OK(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	req := UpdateRequest{strictTypes: h.service.strictTypes}
	if !request.BindJSON(c, &req) {
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err, "Failed to update product")
		return
	}
	response.OK(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete product")
		return
	}
	response.Deleted(c, "Product")
}

func fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Product")
	case errors.Is(err, ErrNameExists):
		response.Error(c, http.StatusConflict, "Product with this name already exists")
	case errors.Is(err, ErrInUse):
		response.Error(c, http.StatusConflict, "Product is referenced by sales orders")
	default:
		response.Internal(c, err, message)
	}
}

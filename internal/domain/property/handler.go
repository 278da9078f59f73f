package property

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
	items, err := h.service.List(c.Request.Context(), ListFilter{
		ClientID: c.Query("client_id"),
		Page:     pagination.FromQuery(c),
	})
	if err != nil {
		response.Internal(c, err, "Failed to fetch properties")
		return
	}
	response.OK(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch property")
		return
	}
	response.OK(c, http.StatusOK, detail)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	row, err := h.service.Create(c.Request.Context(), &req, middleware.GetActor(c))
	if err != nil {
		fail(c, err, "Failed to create property")
		return
	}
	response.OK(c, http.StatusCreated, row)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	row, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err, "Failed to update property")
		return
	}
	response.OK(c, http.StatusOK, row)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete property")
		return
	}
	response.Deleted(c, "Property")
}

func fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Property")
	case errors.Is(err, ErrClientNotFound):
		response.NotFound(c, "Client")
	default:
		response.Internal(c, err, message)
	}
}

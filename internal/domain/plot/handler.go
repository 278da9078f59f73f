package plot

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
		PropertyID: c.Query("property_id"),
		Page:       pagination.FromQuery(c),
	})
	if err != nil {
		response.Internal(c, err, "Failed to fetch plots")
		return
	}
	response.OK(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch plot")
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
		fail(c, err, "Failed to create plot")
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
		fail(c, err, "Failed to update plot")
		return
	}
	response.OK(c, http.StatusOK, row)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete plot")
		return
	}
	response.Deleted(c, "Plot")
}

func fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Plot")
	case errors.Is(err, ErrPropertyNotFound):
		response.NotFound(c, "Property")
	default:
		response.Internal(c, err, message)
	}
}

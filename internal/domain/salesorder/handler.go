package salesorder

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
		Status:   c.Query("status"),
		ClientID: c.Query("client_id"),
		Page:     pagination.FromQuery(c),
	})
	if err != nil {
		response.Internal(c, err, "Failed to fetch sales orders")
		return
	}
	response.OK(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch sales order")
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
		fail(c, err, "Failed to create sales order")
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
		fail(c, err, "Failed to update sales order")
		return
	}
	response.OK(c, http.StatusOK, row)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete sales order")
		return
	}
	response.Deleted(c, "Sales order")
}

func fail(c *gin.Context, err error, message string) {
	var transition *TransitionError
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Sales order")
	case errors.Is(err, ErrClientNotFound):
		response.NotFound(c, "Client")
	case errors.Is(err, ErrVisitNotFound):
		response.NotFound(c, "Visit")
	case errors.Is(err, ErrProductNotFound):
		response.NotFound(c, "Product")
	case errors.Is(err, ErrVisitMismatch):
		response.Error(c, http.StatusBadRequest, "Visit does not belong to client")
	case errors.As(err, &transition):
		response.Error(c, http.StatusConflict, "Invalid status transition", gin.H{
			"from": transition.From,
			"to":   transition.To,
		})
	default:
		response.Internal(c, err, message)
	}
}

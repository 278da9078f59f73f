package client

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

// List handles GET /api/clients
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), ListFilter{
		Search: c.Query("search"),
		Page:   pagination.FromQuery(c),
	})
	if err != nil {
		response.Internal(c, err, "Failed to fetch clients")
		return
	}
	response.OK(c, http.StatusOK, items)
}

// Get handles GET /api/clients/:id
func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Failed to fetch client")
		return
	}
	response.OK(c, http.StatusOK, detail)
}

// Create handles POST /api/clients
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	client, err := h.service.Create(c.Request.Context(), &req, middleware.GetActor(c))
	if err != nil {
		h.fail(c, err, "Failed to create client")
		return
	}
	response.OK(c, http.StatusCreated, client)
}

// Update handles PUT /api/clients/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	client, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, err, "Failed to update client")
		return
	}
	response.OK(c, http.StatusOK, client)
}

// Delete handles DELETE /api/clients/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete client")
		return
	}
	response.Deleted(c, "Client")
}

func (h *Handler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Client")
	case errors.Is(err, ErrCpfCnpjExists):
		response.Error(c, http.StatusConflict, "CPF/CNPJ already exists")
	default:
		response.Internal(c, err, message)
	}
}

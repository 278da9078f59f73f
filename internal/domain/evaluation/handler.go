package evaluation

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
	rows, err := h.service.List(c.Request.Context(), ListFilter{
		VisitID: c.Query("visit_id"),
		PlotID:  c.Query("plot_id"),
		Page:    pagination.FromQuery(c),
	})
	if err != nil {
		response.Internal(c, err, "Failed to fetch evaluations")
		return
	}
	response.OK(c, http.StatusOK, rows)
}

func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch evaluation")
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
		fail(c, err, "Failed to create evaluation")
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
		fail(c, err, "Failed to update evaluation")
		return
	}
	response.OK(c, http.StatusOK, row)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete evaluation")
		return
	}
	response.Deleted(c, "Evaluation")
}

func fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Evaluation")
	case errors.Is(err, ErrVisitNotFound):
		response.NotFound(c, "Visit")
	case errors.Is(err, ErrPlotNotFound):
		response.NotFound(c, "Plot")
	case errors.Is(err, ErrPlotMismatch):
		response.Error(c, http.StatusBadRequest, "Plot does not belong to the visited property")
	default:
		response.Internal(c, err, message)
	}
}

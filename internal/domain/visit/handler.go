package visit

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agroconsult/internal/middleware"
	"agroconsult/internal/pkg/pagination"
	"agroconsult/internal/pkg/request"
	"agroconsult/internal/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), ListFilter{
		ClientID:   c.Query("client_id"),
		PropertyID: c.Query("property_id"),
		Status:     c.Query("status"),
		Page:       pagination.FromQuery(c),
	})
	if err != nil {
		response.Internal(c, err, "Failed to fetch visits")
		return
	}
	response.OK(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to fetch visit")
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
		fail(c, err, "Failed to create visit")
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
		fail(c, err, "Failed to update visit")
		return
	}
	response.OK(c, http.StatusOK, row)
}

func (h *Handler) SaveSummary(c *gin.Context) {
	var req SummaryRequest
	if !request.BindJSON(c, &req) {
		return
	}

	row, err := h.service.SaveSummary(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err, "Failed to save visit summary")
		return
	}
	response.OK(c, http.StatusOK, row)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete visit")
		return
	}
	response.Deleted(c, "Visit")
}

// Report streams the visit report as an XLSX download.
func (h *Handler) Report(c *gin.Context) {
	f, detail, err := h.service.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to build visit report")
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		response.Internal(c, err, "Failed to build visit report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+reportFilename(detail)+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func fail(c *gin.Context, err error, message string) {
	var transition *TransitionError
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Visit")
	case errors.Is(err, ErrClientNotFound):
		response.NotFound(c, "Client")
	case errors.Is(err, ErrPropertyNotFound):
		response.NotFound(c, "Property")
	case errors.Is(err, ErrPropertyMismatch):
		response.Error(c, http.StatusBadRequest, "Property does not belong to client")
	case errors.As(err, &transition):
		response.Error(c, http.StatusConflict, "Invalid status transition", gin.H{
			"from": transition.From,
			"to":   transition.To,
		})
	default:
		response.Internal(c, err, message)
	}
}

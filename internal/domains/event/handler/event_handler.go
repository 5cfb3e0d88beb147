package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"dacosta-backend/internal/domains/event"
	"dacosta-backend/internal/shared/listing"
	"dacosta-backend/internal/shared/response"
)

type EventHandler struct {
	service event.Service
}

func NewEventHandler(svc event.Service) *EventHandler {
	return &EventHandler{
		service: svc,
	}
}

func respondEventError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationError(c, verrs)
		return
	}
	response.ErrorResponse(c, event.ToHTTPStatus(err), "EVENT_ERROR", err.Error())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /admin/events
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) Create(c *gin.Context) {
	var req event.CreateEventRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondEventError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Event created successfully", created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/v1/events/:id (public) and /admin/events/:id
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondEventError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get event successfully", e)
}

// ════════════════════════════════════════════════════════════════
// READ: ListMonth - GET /api/v1/events?month=&year= (public calendar)
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) ListMonth(c *gin.Context) {
	var q event.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := q.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	events, err := h.service.ListMonth(c.Request.Context(), q.Year, time.Month(q.Month))
	if err != nil {
		respondEventError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get events successfully", events)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /admin/events
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) List(c *gin.Context) {
	var p listing.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	events, meta, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		respondEventError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Get events successfully", events, meta)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /admin/events/:id
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req event.UpdateEventRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondEventError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Event updated successfully", updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /admin/events/:id
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var p listing.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	events, meta, err := h.service.DeleteFromList(c.Request.Context(), id, p)
	if err != nil {
		respondEventError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Event deleted successfully", events, meta)
}

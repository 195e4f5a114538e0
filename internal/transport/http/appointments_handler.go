package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bassemzed/scheduleback/internal/domain"
	"github.com/bassemzed/scheduleback/internal/service/booking"
	"github.com/bassemzed/scheduleback/internal/store"
)

// wireTimeLayout is the timestamp form appointments carry on the wire.
const wireTimeLayout = "2006-01-02T15:04:05"

type bookingService interface {
	Create(ctx context.Context, in booking.SlotInput) (domain.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, in booking.SlotInput) (domain.Appointment, error)
	List(ctx context.Context, dateFrom, dateTo string) ([]domain.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AppointmentsHandler struct {
	svc bookingService
	log *slog.Logger
}

func NewAppointmentsHandler(svc bookingService, log *slog.Logger) *AppointmentsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentsHandler{
		svc: svc,
		log: log.With(slog.String("component", "http.appointments")),
	}
}

type appointmentRequest struct {
	Date      string `json:"date"`
	TimeFrom  string `json:"time_from"`
	TimeTo    string `json:"time_to"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
}

type showAppointmentsRequest struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

type appointmentResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Title        string `json:"title"`
	DateTimeFrom string `json:"date_time_from"`
	DateTimeTo   string `json:"date_time_to"`
}

func (h *AppointmentsHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Booking API"})
}

func (h *AppointmentsHandler) Create(c *gin.Context) {
	log := h.log.With(slog.String("route", "add_appointments"))

	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_body"), slog.Any("err", err))
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "invalid request body"})
		return
	}

	appt, err := h.svc.Create(c.Request.Context(), booking.SlotInput{
		Date:      req.Date,
		TimeFrom:  req.TimeFrom,
		TimeTo:    req.TimeTo,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
	})
	if err != nil {
		h.renderError(c, log, err)
		return
	}

	log.Info(
		"appointment created",
		slog.String("appointment_id", appt.ID.String()),
		slog.Time("date_time_from", appt.DateTimeFrom),
		slog.Time("date_time_to", appt.DateTimeTo),
	)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "you added a new appointment",
		"appointment": toResponse(appt),
	})
}

func (h *AppointmentsHandler) Update(c *gin.Context) {
	log := h.log.With(slog.String("route", "update_appointments"))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_id"), slog.String("id", c.Param("id")))
		c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}

	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_body"), slog.Any("err", err))
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "invalid request body"})
		return
	}

	appt, err := h.svc.Update(c.Request.Context(), id, booking.SlotInput{
		Date:      req.Date,
		TimeFrom:  req.TimeFrom,
		TimeTo:    req.TimeTo,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
	})
	if err != nil {
		h.renderError(c, log, err)
		return
	}

	log.Info("appointment updated", slog.String("appointment_id", appt.ID.String()))
	c.JSON(http.StatusAccepted, gin.H{
		"message":     "you updated an appointment",
		"appointment": toResponse(appt),
	})
}

func (h *AppointmentsHandler) List(c *gin.Context) {
	log := h.log.With(slog.String("route", "show_appointments"))

	var req showAppointmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_body"), slog.Any("err", err))
		c.JSON(http.StatusNotAcceptable, gin.H{"message": "invalid request body"})
		return
	}

	appts, err := h.svc.List(c.Request.Context(), req.DateFrom, req.DateTo)
	if err != nil {
		h.renderError(c, log, err)
		return
	}

	out := make([]appointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toResponse(a))
	}

	log.Debug("appointments listed", slog.Int("count", len(out)))
	c.JSON(http.StatusOK, out)
}

func (h *AppointmentsHandler) Get(c *gin.Context) {
	log := h.log.With(slog.String("route", "appointment_details"))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_id"), slog.String("id", c.Param("id")))
		c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}

	appt, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(appt))
}

func (h *AppointmentsHandler) Delete(c *gin.Context) {
	log := h.log.With(slog.String("route", "delete_appointments"))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_id"), slog.String("id", c.Param("id")))
		c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, log, err)
		return
	}

	log.Info("appointment deleted", slog.String("appointment_id", id.String()))
	c.JSON(http.StatusAccepted, gin.H{"message": "you deleted an appointment"})
}

func (h *AppointmentsHandler) renderError(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Info("record not found")
		c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
	case errors.Is(err, store.ErrConflict):
		log.Info("schedule conflict")
		c.JSON(http.StatusConflict, gin.H{"message": "there is a conflict between your schedule"})
	default:
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.String("reason", string(vErr.Kind)))
			c.JSON(http.StatusNotAcceptable, gin.H{"message": vErr.Error()})
			return
		}
		log.Error("request failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func toResponse(a domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:           a.ID.String(),
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Title:        a.Title,
		DateTimeFrom: a.DateTimeFrom.Format(wireTimeLayout),
		DateTimeTo:   a.DateTimeTo.Format(wireTimeLayout),
	}
}

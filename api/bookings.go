package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dlevchenko/airagency/internal/domain"
	"github.com/dlevchenko/airagency/internal/service/bookings"
)

const bookingDateLayout = "2006-01-02"

type BookingHandler struct {
	service bookings.BookingUseCase
	log     zerolog.Logger
}

type createBookingRequest struct {
	CustomerID int64  `json:"customerId"`
	FlightID   int64  `json:"flightId"`
	Date       string `json:"date"`
}

type bookingResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	FlightID   int64  `json:"flightId"`
	Date       string `json:"date"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		FlightID:   b.FlightID,
		Date:       b.Date.Format(bookingDateLayout),
	}
}

func NewBookingHandler(service bookings.BookingUseCase, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.DELETE("/:id", h.delete)
}

func (h *BookingHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := make([]bookingResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toBookingResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	booking, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Booking dates are day-precision; anything finer is a malformed value.
	date, err := time.ParseInLocation(bookingDateLayout, req.Date, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.FieldErrors{"date": "Please use a date in YYYY-MM-DD format"})
		return
	}

	booking := &domain.Booking{
		CustomerID: req.CustomerID,
		FlightID:   req.FlightID,
		Date:       date,
	}
	if err := h.service.Create(c.Request.Context(), booking); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dlevchenko/airagency/internal/domain"
	"github.com/dlevchenko/airagency/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
	log     zerolog.Logger
}

type createFlightRequest struct {
	Number           string `json:"number"`
	PointOfDeparture string `json:"pointOfDeparture"`
	Destination      string `json:"destination"`
}

type flightResponse struct {
	ID               int64  `json:"id"`
	Number           string `json:"number"`
	PointOfDeparture string `json:"pointOfDeparture"`
	Destination      string `json:"destination"`
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:               f.ID,
		Number:           f.Number,
		PointOfDeparture: f.PointOfDeparture,
		Destination:      f.Destination,
	}
}

func NewFlightHandler(service flights.FlightUseCase, log zerolog.Logger) *FlightHandler {
	return &FlightHandler{service: service, log: log}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.DELETE("/:id", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := make([]flightResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toFlightResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight := &domain.Flight{
		Number:           req.Number,
		PointOfDeparture: req.PointOfDeparture,
		Destination:      req.Destination,
	}
	if err := h.service.Create(c.Request.Context(), flight); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
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

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dlevchenko/airagency/internal/domain"
	"github.com/dlevchenko/airagency/internal/service/customers"
)

type CustomerHandler struct {
	service customers.CustomerUseCase
	log     zerolog.Logger
}

type createCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type customerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func toCustomerResponse(cu *domain.Customer) customerResponse {
	return customerResponse{
		ID:          cu.ID,
		Name:        cu.Name,
		Email:       cu.Email,
		PhoneNumber: cu.PhoneNumber,
	}
}

func NewCustomerHandler(service customers.CustomerUseCase, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{service: service, log: log}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.DELETE("/:id", h.delete)
}

func (h *CustomerHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := make([]customerResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toCustomerResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandler) create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := &domain.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.service.Create(c.Request.Context(), customer); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

func (h *CustomerHandler) delete(c *gin.Context) {
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

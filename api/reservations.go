package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airreservation/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service reservation.ReservationUseCase
}

type makeReservationRequest struct {
	UserID          int64 `json:"userId" binding:"required"`
	AirlineTicketID int64 `json:"airlineTicketId" binding:"required"`
}

func NewReservationHandler(service reservation.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("/reservations", h.create)
	router.GET("/users-sum-price", h.sumPrice)
	router.GET("/username-arrival-location", h.arrivalLocations)
}

func (h *ReservationHandler) create(c *gin.Context) {
	var req makeReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.MakeReservation(c.Request.Context(), reservation.MakeReservationInput{
		UserID:          req.UserID,
		AirlineTicketID: req.AirlineTicketID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ReservationHandler) sumPrice(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user-id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user-id"})
		return
	}

	sum, err := h.service.SumUserFlightCosts(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *ReservationHandler) arrivalLocations(c *gin.Context) {
	username, ok := c.GetQuery("username")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	locations, err := h.service.ListArrivalLocationsByUsername(c.Request.Context(), username)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

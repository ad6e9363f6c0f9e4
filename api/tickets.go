package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airreservation/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service reservation.ReservationUseCase
}

type ticketsResponse struct {
	Tickets []reservation.Ticket `json:"tickets"`
}

func NewTicketHandler(service reservation.ReservationUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("/tickets", h.favoritePlace)
	router.GET("/flight-pageable", h.pageable)
}

func (h *TicketHandler) favoritePlace(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user-Id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user-Id"})
		return
	}
	ticketType, ok := c.GetQuery("airline-ticket-type")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "airline-ticket-type is required"})
		return
	}

	tickets, err := h.service.FindFavoritePlaceTickets(c.Request.Context(), userID, ticketType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticketsResponse{Tickets: tickets})
}

func (h *TicketHandler) pageable(c *gin.Context) {
	ticketType, ok := c.GetQuery("type")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is required"})
		return
	}

	page, err := h.service.ListTicketsByType(c.Request.Context(), ticketType, parsePageRequest(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// parsePageRequest never fails: unusable values fall back to page 0 and the default size.
func parsePageRequest(c *gin.Context) reservation.PageRequest {
	req := reservation.PageRequest{Page: 0, Size: reservation.DefaultPageSize}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		req.Page = page
	}
	if size, err := strconv.Atoi(c.Query("size")); err == nil && size > 0 {
		req.Size = min(size, reservation.MaxPageSize)
	}
	return req
}

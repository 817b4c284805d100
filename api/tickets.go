package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TicketHandler struct {
	service booking.BookingUseCase
}

type bookTicketRequest struct {
	FlightID    int64   `json:"flight_id"`
	PassengerID int64   `json:"passenger_id"`
	Class       string  `json:"class"`
	SeatNumber  string  `json:"seat_number"`
	Price       *string `json:"price,omitempty"`
}

type changeSeatRequest struct {
	Class      string  `json:"class,omitempty"`
	SeatNumber string  `json:"seat_number"`
	Price      *string `json:"price,omitempty"`
}

type ticketResponse struct {
	ID            string `json:"id"`
	FlightID      int64  `json:"flight_id"`
	PassengerID   int64  `json:"passenger_id"`
	Class         string `json:"class"`
	SeatNumber    string `json:"seat_number"`
	Price         string `json:"price"`
	PaymentStatus string `json:"payment_status"`
	CreatedAt     string `json:"created_at"`
}

func NewTicketHandler(service booking.BookingUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.book)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.changeSeat)
	router.DELETE("/:id", h.cancel)
}

func (h *TicketHandler) book(c *gin.Context) {
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.BookTicket(c.Request.Context(), booking.BookTicketInput{
		FlightID:    req.FlightID,
		PassengerID: req.PassengerID,
		Class:       req.Class,
		SeatNumber:  req.SeatNumber,
		Price:       price,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

func (h *TicketHandler) get(c *gin.Context) {
	ticket, err := h.service.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *TicketHandler) changeSeat(c *gin.Context) {
	var req changeSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.ChangeSeat(c.Request.Context(), booking.ChangeSeatInput{
		TicketID:      c.Param("id"),
		NewClass:      req.Class,
		NewSeatNumber: req.SeatNumber,
		Price:         price,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *TicketHandler) cancel(c *gin.Context) {
	ticket, err := h.service.CancelTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func parsePrice(raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	price, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func toTicketResponse(t *domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:            t.ID,
		FlightID:      t.FlightID,
		PassengerID:   t.PassengerID,
		Class:         t.Class.String(),
		SeatNumber:    t.SeatNumber,
		Price:         t.Price.String(),
		PaymentStatus: string(t.PaymentStatus),
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}

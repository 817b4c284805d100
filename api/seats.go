package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/layout"
	"github.com/Domenick1991/airinventory/internal/service/inventory"
	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	service inventory.InventoryUseCase
}

type seatLayoutRequest struct {
	// Distribution maps class name to a fraction of capacity (< 1) or an
	// absolute seat count (>= 1). Empty means the aircraft defaults.
	Distribution map[string]float64 `json:"distribution"`
}

type seatPoolResponse struct {
	Class     string   `json:"class"`
	Available []string `json:"available"`
	Booked    []string `json:"booked"`
}

func NewSeatHandler(service inventory.InventoryUseCase) *SeatHandler {
	return &SeatHandler{service: service}
}

// Register attaches the seat inventory routes to the flights group.
func (h *SeatHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id/seats", h.seatMap)
	router.POST("/:id/seats", h.initialize)
	router.PUT("/:id/seats", h.reconfigure)
	router.GET("/:id/seats/availability", h.availability)
}

func (h *SeatHandler) seatMap(c *gin.Context) {
	flightID, ok := flightIDParam(c)
	if !ok {
		return
	}
	pools, err := h.service.SeatMap(c.Request.Context(), flightID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, poolResponses(pools))
}

func (h *SeatHandler) initialize(c *gin.Context) {
	flightID, ok := flightIDParam(c)
	if !ok {
		return
	}
	var req seatLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dist, err := parseDistribution(req.Distribution)
	if err != nil {
		writeError(c, err)
		return
	}

	pools, err := h.service.InitializeFlight(c.Request.Context(), inventory.InitializeInput{
		FlightID:     flightID,
		Distribution: dist,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, poolResponses(pools))
}

func (h *SeatHandler) reconfigure(c *gin.Context) {
	flightID, ok := flightIDParam(c)
	if !ok {
		return
	}
	var req seatLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dist, err := parseDistribution(req.Distribution)
	if err != nil {
		writeError(c, err)
		return
	}

	pools, err := h.service.Reconfigure(c.Request.Context(), inventory.ReconfigureInput{
		FlightID:     flightID,
		Distribution: dist,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, poolResponses(pools))
}

func (h *SeatHandler) availability(c *gin.Context) {
	flightID, ok := flightIDParam(c)
	if !ok {
		return
	}
	class, err := domain.ParseClass(c.Query("class"))
	if err != nil {
		writeError(c, err)
		return
	}
	seat := c.Query("seat")
	if seat == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seat query parameter is required"})
		return
	}

	available, err := h.service.IsSeatAvailable(c.Request.Context(), flightID, class, seat)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": flightID, "class": class, "seat": seat, "available": available})
}

func flightIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return 0, false
	}
	return id, true
}

func parseDistribution(raw map[string]float64) (layout.Distribution, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dist := make(layout.Distribution, len(raw))
	for name, v := range raw {
		class, err := domain.ParseClass(name)
		if err != nil {
			return nil, err
		}
		dist[class] = v
	}
	return dist, nil
}

func poolResponses(pools []domain.SeatPool) []seatPoolResponse {
	out := make([]seatPoolResponse, 0, len(pools))
	for _, p := range pools {
		out = append(out, seatPoolResponse{
			Class:     p.Class.String(),
			Available: p.Available.Codes(),
			Booked:    p.Booked.Codes(),
		})
	}
	return out
}

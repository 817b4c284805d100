package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/airinventory/api"
	"github.com/Domenick1991/airinventory/config"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run assembles the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, flightHandler *api.FlightHandler, seatHandler *api.SeatHandler, ticketHandler *api.TicketHandler) error {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	v1 := router.Group("/api/v1")
	flightsGroup := v1.Group("/flights")
	flightHandler.Register(flightsGroup)
	seatHandler.Register(flightsGroup)
	ticketHandler.Register(v1.Group("/tickets"))

	if cfg.HTTP.SwaggerFile != "" {
		router.GET("/docs/swagger.json", func(c *gin.Context) {
			c.File(cfg.HTTP.SwaggerFile)
		})
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/docs/swagger.json"),
		)))
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

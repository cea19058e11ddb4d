package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/dlevchenko/airagency/api"
	"github.com/dlevchenko/airagency/config"
	"github.com/dlevchenko/airagency/internal/service/bookings"
	"github.com/dlevchenko/airagency/internal/service/customers"
	"github.com/dlevchenko/airagency/internal/service/flights"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	log zerolog.Logger,
	customerSvc customers.CustomerUseCase,
	flightSvc flights.FlightUseCase,
	bookingSvc bookings.BookingUseCase,
) error {
	engine := newEngine(cfg, log, customerSvc, flightSvc, bookingSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newEngine(
	cfg *config.Config,
	log zerolog.Logger,
	customerSvc customers.CustomerUseCase,
	flightSvc flights.FlightUseCase,
	bookingSvc bookings.BookingUseCase,
) *gin.Engine {
	if cfg.Log.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(api.RateLimit(rate.Limit(2), 4))

	api.NewCustomerHandler(customerSvc, log).Register(engine.Group("/customers"))
	api.NewFlightHandler(flightSvc, log).Register(engine.Group("/flights"))
	api.NewBookingHandler(bookingSvc, log).Register(engine.Group("/bookings"))

	if cfg.HTTP.SwaggerDir != "" {
		engine.StaticFile("/swagger/openapi.json", filepath.Join(cfg.HTTP.SwaggerDir, "openapi.json"))
		engine.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return engine
}

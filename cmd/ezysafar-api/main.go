// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/DHARAV-9/EzySafar/internal/ai"
	"github.com/DHARAV-9/EzySafar/internal/config"
	httptransport "github.com/DHARAV-9/EzySafar/internal/http"
	"github.com/DHARAV-9/EzySafar/internal/infra"
	"github.com/DHARAV-9/EzySafar/internal/modules/account"
	"github.com/DHARAV-9/EzySafar/internal/modules/fare"
	"github.com/DHARAV-9/EzySafar/internal/modules/geo"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	accountStore := account.NewStore(dbPool)
	accountSvc := account.NewService(accountStore)

	fareSvc := fare.NewService()

	geoProvider, err := newGeoProvider(cfg.Geo)
	if err != nil {
		log.Fatal(err)
	}
	geoCache := geo.NewCache(redisClient, cfg.Geo.CacheTTL)
	geoSvc := geo.NewService(geoProvider, geoCache)

	var advisor ai.Advisor
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiAdvisor(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		advisor = gemini
	} else {
		log.Print("GEMINI_API_KEY not set; ride assistant disabled")
	}

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Account:    accountSvc,
		Fare:       fareSvc,
		Geo:        geoSvc,
		Advisor:    advisor,
		CORSOrigin: cfg.HTTP.CORSOrigin,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func newGeoProvider(cfg config.GeoConfig) (geo.Provider, error) {
	switch cfg.Provider {
	case "google":
		return geo.NewGoogleProvider(cfg.GoogleMapsKey)
	default:
		return geo.NewOSMProvider(cfg.NominatimURL, cfg.OpenRouteURL, cfg.OpenRouteKey, cfg.Timeout), nil
	}
}

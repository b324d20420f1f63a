// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DHARAV-9/EzySafar/internal/ai"
	"github.com/DHARAV-9/EzySafar/internal/http/handlers"
	"github.com/DHARAV-9/EzySafar/internal/http/middleware"
	"github.com/DHARAV-9/EzySafar/internal/modules/account"
	"github.com/DHARAV-9/EzySafar/internal/modules/fare"
	"github.com/DHARAV-9/EzySafar/internal/modules/geo"
)

type RouterDeps struct {
	Account *account.Service
	Fare    *fare.Service
	Geo     *geo.Service
	// Advisor may be nil; the assist endpoint then answers 503.
	Advisor    ai.Advisor
	CORSOrigin string
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{deps.CORSOrigin}
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	accountHandler := handlers.NewAccountHandler(deps.Account)
	users := r.Group("/api/users")
	users.POST("/register", accountHandler.Register)
	users.POST("/login", accountHandler.Login)
	users.POST("/search-history", accountHandler.AppendSearchHistory)

	geoHandler := handlers.NewGeoHandler(deps.Geo)
	geoGroup := r.Group("/api/geo")
	geoGroup.GET("/search", geoHandler.Search)
	geoGroup.GET("/reverse", geoHandler.Reverse)
	geoGroup.GET("/distance", geoHandler.Distance)

	fareHandler := handlers.NewFareHandler(deps.Fare, deps.Geo)
	fares := r.Group("/api/fares")
	fares.POST("/estimate", fareHandler.Estimate)
	fares.POST("/compare", fareHandler.Compare)

	assistHandler := handlers.NewAssistHandler(deps.Advisor)
	r.POST("/api/assist/recommend", assistHandler.Recommend)

	return r
}

package api

import (
	"github.com/Domenick1991/missioncontrol/internal/service/launches"
	"github.com/Domenick1991/missioncontrol/internal/service/planets"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Domenick1991/missioncontrol/docs"
)

// NewRouter mounts the v1 API and the Swagger UI at /docs/.
func NewRouter(launchSvc launches.LaunchUseCase, planetSvc planets.PlanetUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	v1 := router.Group("/v1")
	NewLaunchHandler(launchSvc).Register(v1)
	NewPlanetHandler(planetSvc).Register(v1)

	router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/docs/doc.json"))))
	return router
}

package api

import (
	"net/http"

	"github.com/Domenick1991/missioncontrol/internal/service/planets"
	"github.com/gin-gonic/gin"
)

type PlanetHandler struct {
	service planets.PlanetUseCase
}

func NewPlanetHandler(service planets.PlanetUseCase) *PlanetHandler {
	return &PlanetHandler{service: service}
}

func (h *PlanetHandler) Register(router *gin.RouterGroup) {
	router.GET("/planets", h.list)
}

// list godoc
// @Summary List habitable planets
// @Tags    planets
// @Produce json
// @Success 200 {array} domain.Planet
// @Router  /planets [get]
func (h *PlanetHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

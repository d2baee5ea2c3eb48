package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/missioncontrol/internal/domain"
	"github.com/Domenick1991/missioncontrol/internal/service/launches"
	"github.com/gin-gonic/gin"
)

const (
	errMissingProperty  = "Missing required launch property"
	errInvalidDate      = "Invalid Date Format"
	errNoMatchingPlanet = "No matching planet found"
	errLaunchNotFound   = "Launch not found"
	errLaunchNotAborted = "Launch not aborted"
)

type LaunchHandler struct {
	service launches.LaunchUseCase
}

type scheduleLaunchRequest struct {
	Mission    string `json:"mission"`
	Rocket     string `json:"rocket"`
	LaunchDate string `json:"launchDate"`
	Target     string `json:"target"`
}

func NewLaunchHandler(service launches.LaunchUseCase) *LaunchHandler {
	return &LaunchHandler{service: service}
}

func (h *LaunchHandler) Register(router *gin.RouterGroup) {
	router.GET("/launches", h.list)
	router.POST("/launches", h.schedule)
	router.GET("/launches/:id", h.get)
	router.HEAD("/launches/:id", h.exists)
	router.DELETE("/launches/:id", h.abort)
}

// list godoc
// @Summary List launches
// @Tags    launches
// @Produce json
// @Param   page  query int false "page number, starting at 1"
// @Param   limit query int false "page size, 0 for all"
// @Success 200 {array} domain.Launch
// @Router  /launches [get]
func (h *LaunchHandler) list(c *gin.Context) {
	skip, limit, err := pagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// schedule godoc
// @Summary Schedule a launch
// @Tags    launches
// @Accept  json
// @Produce json
// @Param   launch body scheduleLaunchRequest true "launch to schedule"
// @Success 201 {object} domain.Launch
// @Failure 400 {object} map[string]string
// @Router  /launches [post]
func (h *LaunchHandler) schedule(c *gin.Context) {
	var req scheduleLaunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := launches.ParseScheduleRequest(req.Mission, req.Rocket, req.LaunchDate, req.Target)
	switch {
	case errors.Is(err, launches.ErrMissingLaunchProperty):
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingProperty})
		return
	case errors.Is(err, launches.ErrInvalidLaunchDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate})
		return
	}

	launch, err := h.service.Schedule(c.Request.Context(), input)
	switch {
	case errors.Is(err, domain.ErrPlanetNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoMatchingPlanet})
		return
	case errors.Is(err, launches.ErrScheduleBusy):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, launch)
}

// get godoc
// @Summary Get a launch by flight number
// @Tags    launches
// @Produce json
// @Param   id path int true "flight number"
// @Success 200 {object} domain.Launch
// @Failure 404 {object} map[string]string
// @Router  /launches/{id} [get]
func (h *LaunchHandler) get(c *gin.Context) {
	id, ok := flightNumberParam(c)
	if !ok {
		return
	}

	launch, err := h.service.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrLaunchNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errLaunchNotFound})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, launch)
}

func (h *LaunchHandler) exists(c *gin.Context) {
	id, ok := flightNumberParam(c)
	if !ok {
		return
	}

	found, err := h.service.Exists(c.Request.Context(), id)
	switch {
	case err != nil:
		c.Status(http.StatusInternalServerError)
	case !found:
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusOK)
	}
}

// abort godoc
// @Summary Abort a launch
// @Tags    launches
// @Produce json
// @Param   id path int true "flight number"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router  /launches/{id} [delete]
func (h *LaunchHandler) abort(c *gin.Context) {
	id, ok := flightNumberParam(c)
	if !ok {
		return
	}

	found, err := h.service.Exists(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": errLaunchNotFound})
		return
	}

	aborted, err := h.service.Abort(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !aborted {
		c.JSON(http.StatusBadRequest, gin.H{"error": errLaunchNotAborted})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func flightNumberParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight number"})
		return 0, false
	}
	return id, true
}

// pagination converts page/limit query parameters into skip/limit. A missing
// or zero limit returns every launch.
func pagination(c *gin.Context) (int, int, error) {
	page, err := queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return 0, 0, errors.New("invalid page")
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil || limit < 0 {
		return 0, 0, errors.New("invalid limit")
	}
	skip, err := launches.PageOffset(page, limit)
	if err != nil {
		return 0, 0, errors.New("invalid page")
	}
	return skip, limit, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

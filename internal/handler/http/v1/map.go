package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geo_incident_sync/internal/maplayer"
	"github.com/shenikar/geo_incident_sync/internal/models"
)

// @Summary Get the map view
// @Description Current view mode, filter, loading flag and the single active overlay.
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} maplayer.View
// @Router /map [get]
func (h *Handler) getMap(c *gin.Context) {
	c.JSON(http.StatusOK, h.mapView.View())
}

// @Summary Switch the map view mode
// @Description Entering predictions mode fetches trend analysis in the background.
// @Tags Map
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param mode body MapModeRequest true "View mode"
// @Success 200 {object} maplayer.View
// @Failure 400 {object} map[string]string "Unknown mode"
// @Router /map/mode [put]
func (h *Handler) setMapMode(c *gin.Context) {
	var input MapModeRequest
	log := h.logger.WithField("method", "setMapMode")
	if !h.bind(c, log, &input) {
		return
	}
	if err := h.mapView.SetMode(maplayer.Mode(input.Mode)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.mapView.View())
}

// @Summary Filter incidents on the map
// @Tags Map
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param filter body MapFilterRequest true "Filter; empty or All matches everything"
// @Success 200 {object} maplayer.View
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /map/filter [put]
func (h *Handler) setMapFilter(c *gin.Context) {
	var input MapFilterRequest
	if !h.bind(c, h.logger.WithField("method", "setMapFilter"), &input) {
		return
	}
	h.mapView.SetFilter(models.IncidentFilter{
		Category: input.Category,
		Priority: input.Priority,
		Status:   input.Status,
	})
	c.JSON(http.StatusOK, h.mapView.View())
}

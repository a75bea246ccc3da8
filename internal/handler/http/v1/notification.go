package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geo_incident_sync/internal/location"
	"github.com/shenikar/geo_incident_sync/internal/notification"
	"github.com/shenikar/geo_incident_sync/pkg/geo"
)

// @Summary List notifications
// @Description Notifications in arrival order with per-type counts.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} NotificationListResponse
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToNotificationList(h.notifications.Notifications(), h.notifications.Counts()))
}

// @Summary Clear all notifications
// @Tags Notifications
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Router /notifications [delete]
func (h *Handler) clearNotifications(c *gin.Context) {
	h.notifications.ClearAll()
	c.Status(http.StatusNoContent)
}

// @Summary Dismiss a notification
// @Tags Notifications
// @Security ApiKeyAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id} [delete]
func (h *Handler) dismissNotification(c *gin.Context) {
	if !h.notifications.Dismiss(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the visible toast
// @Description The most recent notification while its toast window is open.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} NotificationResponse
// @Success 204 "No toast visible"
// @Router /notifications/toast [get]
func (h *Handler) getToast(c *gin.Context) {
	toast, ok := h.notifications.Toast()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToNotificationResponse(toast))
}

// @Summary Hide the visible toast
// @Tags Notifications
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Router /notifications/toast [delete]
func (h *Handler) hideToast(c *gin.Context) {
	h.notifications.HideToast()
	c.Status(http.StatusNoContent)
}

// @Summary Get area alert settings
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.AlertSettings
// @Router /notifications/settings [get]
func (h *Handler) getAlertSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifications.Settings())
}

// @Summary Update area alert settings
// @Description Enabling registers the user with the incident service for incidents within the radius (1..25 miles).
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param settings body AlertSettingsRequest true "Alert settings"
// @Success 200 {object} models.AlertSettings
// @Failure 400 {object} map[string]string "Invalid radius"
// @Router /notifications/settings [put]
func (h *Handler) updateAlertSettings(c *gin.Context) {
	var input AlertSettingsRequest
	log := h.logger.WithField("method", "updateAlertSettings")
	if !h.bind(c, log, &input) {
		return
	}

	ctx := c.Request.Context()
	current := h.notifications.Settings()
	radius := input.RadiusMiles
	if radius == 0 {
		radius = current.RadiusMiles
	}

	var err error
	switch {
	case !input.Enabled:
		err = h.notifications.Disable(ctx)
	case current.Enabled:
		err = h.notifications.SetRadius(ctx, radius)
	default:
		err = h.notifications.Enable(ctx, radius)
	}
	if err != nil {
		if errors.Is(err, notification.ErrInvalidRadius) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to update alert settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, h.notifications.Settings())
}

// @Summary Get registration statistics
// @Description Number of distinct users registered for area alerts within the configured time window.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 503 {object} map[string]string "Registration journal is not configured"
// @Router /notifications/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "registration journal is not configured"})
		return
	}
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.stats.CountRegisteredUsers(c.Request.Context(), h.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get stats from journal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount, WindowMinutes: h.cfg.StatsTimeWindowMinutes})
}

// @Summary Report the device position
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationRequest true "Current position"
// @Success 200 {object} location.Fix
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	var input LocationRequest
	log := h.logger.WithField("method", "updateLocation")
	if !h.bind(c, log, &input) {
		return
	}

	point := geo.Point{Latitude: *input.Latitude, Longitude: *input.Longitude}
	if err := h.location.Update(point, input.Accuracy); err != nil {
		if errors.Is(err, location.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to update location")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	fix, _ := h.location.Fix()
	c.JSON(http.StatusOK, fix)
}

// @Summary Get the tracked position
// @Tags Location
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} location.Fix
// @Failure 404 {object} map[string]string "Position unknown"
// @Router /location [get]
func (h *Handler) getLocation(c *gin.Context) {
	fix, ok := h.location.Fix()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "location unknown"})
		return
	}
	c.JSON(http.StatusOK, fix)
}

// @Summary Report a positioning failure
// @Description The failure is surfaced as a warning notification.
// @Tags Location
// @Accept json
// @Security ApiKeyAuth
// @Param error body LocationErrorRequest true "Failure reason"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /location/error [post]
func (h *Handler) reportLocationError(c *gin.Context) {
	var input LocationErrorRequest
	if !h.bind(c, h.logger.WithField("method", "reportLocationError"), &input) {
		return
	}
	h.location.Fail(input.Reason)
	c.Status(http.StatusAccepted)
}

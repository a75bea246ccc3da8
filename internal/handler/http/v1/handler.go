package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/geo_incident_sync/internal/collaborator"
	"github.com/shenikar/geo_incident_sync/internal/config"
	"github.com/shenikar/geo_incident_sync/internal/connection"
	"github.com/shenikar/geo_incident_sync/internal/location"
	"github.com/shenikar/geo_incident_sync/internal/maplayer"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/shenikar/geo_incident_sync/internal/notification"
	"github.com/shenikar/geo_incident_sync/internal/service"
	"github.com/shenikar/geo_incident_sync/pkg/geo"
	"github.com/sirupsen/logrus"
)

// NotificationCenter - панель уведомлений и настройки оповещений по области
type NotificationCenter interface {
	Notifications() []models.Notification
	Counts() map[models.NotificationType]int
	Dismiss(id string) bool
	ClearAll()
	Toast() (models.Notification, bool)
	HideToast()
	Settings() models.AlertSettings
	Enable(ctx context.Context, radiusMiles int) error
	SetRadius(ctx context.Context, radiusMiles int) error
	Disable(ctx context.Context) error
}

// LocationUpdater принимает позицию от устройства
type LocationUpdater interface {
	Update(p geo.Point, accuracy float64) error
	Fail(reason string)
	Fix() (location.Fix, bool)
}

// MapController - управление слоем карты
type MapController interface {
	View() maplayer.View
	SetMode(mode maplayer.Mode) error
	SetFilter(f models.IncidentFilter)
}

// RegistrationStats - статистика журнала регистраций
type RegistrationStats interface {
	CountRegisteredUsers(ctx context.Context, minutes int) (int, error)
}

// ConnectionState сообщает состояние канала
type ConnectionState interface {
	State() connection.State
}

// Services - зависимости обработчиков. Stats может отсутствовать, если журнал не настроен.
type Services struct {
	Incidents     service.IncidentService
	Notifications NotificationCenter
	Location      LocationUpdater
	Map           MapController
	Stats         RegistrationStats
	Connection    ConnectionState
}

type Handler struct {
	incidentService service.IncidentService
	notifications   NotificationCenter
	location        LocationUpdater
	mapView         MapController
	stats           RegistrationStats
	connection      ConnectionState
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(svc Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	validate := validator.New()
	_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Known()
	})

	return &Handler{
		incidentService: svc.Incidents,
		notifications:   svc.Notifications,
		location:        svc.Location,
		mapView:         svc.Map,
		stats:           svc.Stats,
		connection:      svc.Connection,
		logger:          logger,
		validate:        validate,
		cfg:             cfg,
	}
}

// @Summary Get a list of incidents
// @Description Get incidents known to the engine, optionally filtered. Highlighted incidents changed priority or status recently.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param category query string false "Category filter" default(All)
// @Param priority query string false "Priority filter" default(All)
// @Param status query string false "Status filter" default(All)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	filter := models.IncidentFilter{
		Category: c.DefaultQuery("category", models.FilterAll),
		Priority: c.DefaultQuery("priority", models.FilterAll),
		Status:   c.DefaultQuery("status", models.FilterAll),
	}
	incidents := h.incidentService.ListIncidents(filter)
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	incident, err := h.incidentService.GetIncident(id)
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "getIncident").WithField("id", id), err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Submit a new incident
// @Description Report an incident. It is visible immediately and replaced by the authoritative record once the incident service confirms it.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident submission"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 502 {object} map[string]string "Incident service error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")
	if !h.bind(c, log, &input) {
		return
	}

	created, err := h.incidentService.SubmitIncident(c.Request.Context(), DTOToIncidentInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(models.IncidentView{Incident: *created}))
}

// @Summary Update an incident
// @Description Change status, priority, category or description of an incident. Requires an admin session.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Fields to change"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Not authenticated or session expired"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 502 {object} map[string]string "Incident service error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	updated, err := h.incidentService.UpdateIncident(c.Request.Context(), id, DTOToIncidentPatch(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(models.IncidentView{Incident: *updated}))
}

// @Summary Delete an incident
// @Description Delete an incident. Requires an admin session.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Not authenticated or session expired"
// @Failure 502 {object} map[string]string "Incident service error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get trend analysis
// @Description Hotspots and predictions for the admin panel.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.TrendAnalysis
// @Failure 401 {object} map[string]string "Session expired"
// @Failure 502 {object} map[string]string "Incident service error"
// @Router /trends [get]
func (h *Handler) getTrends(c *gin.Context) {
	trend, err := h.incidentService.TrendAnalysis(c.Request.Context())
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "getTrends"), err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

// @Summary Log in as administrator
// @Tags Session
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /session/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")
	if !h.bind(c, log, &input) {
		return
	}

	info, err := h.incidentService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(info))
}

// @Summary Log out
// @Tags Session
// @Success 204 "No Content"
// @Router /session/logout [post]
func (h *Handler) logout(c *gin.Context) {
	if err := h.incidentService.Logout(c.Request.Context()); err != nil {
		h.respondError(c, h.logger.WithField("method", "logout"), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get session status
// @Tags Session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (h *Handler) sessionStatus(c *gin.Context) {
	info, err := h.incidentService.SessionStatus(c.Request.Context())
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "sessionStatus"), err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(info))
}

// @Summary Get application health status
// @Description Get health status of the application and the state of the live channel
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if h.connection != nil {
		resp.Connection = string(h.connection.State())
	}
	c.JSON(http.StatusOK, resp)
}

// bind разбирает и валидирует тело запроса; при ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return 0, false
	}
	return id, true
}

// respondError переводит ошибки сервисов в коды ответа
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var apiErr *collaborator.APIError
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		log.Warn("Session expired")
		c.JSON(http.StatusUnauthorized, gin.H{"error": notification.SessionExpiredMessage})
	case errors.Is(err, service.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, collaborator.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.As(err, &apiErr):
		log.WithError(err).Error("Incident service rejected the request")
		c.JSON(http.StatusBadGateway, gin.H{"error": "incident service error"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

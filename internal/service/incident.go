package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/geo_incident_sync/internal/collaborator"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/shenikar/geo_incident_sync/internal/store"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionExpired     = errors.New("service: session expired")
	ErrNotAuthenticated   = errors.New("service: not authenticated")
	ErrIncidentNotFound   = errors.New("service: incident not found")
	ErrInvalidCredentials = errors.New("service: invalid credentials")
)

// Collaborator определяет контракт удаленного REST API
type Collaborator interface {
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	CreateIncident(ctx context.Context, in models.IncidentInput) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id int64, in models.IncidentInput, token string) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id int64, token string) error
	TrendAnalysis(ctx context.Context, token string) (*models.TrendAnalysis, error)
	Login(ctx context.Context, username, password string) (*models.Credential, error)
}

// Session - доступ к учетным данным администратора
type Session interface {
	Token(ctx context.Context) (string, error)
	Establish(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	ForceLogout(ctx context.Context)
	Status(ctx context.Context) (models.SessionInfo, error)
}

// Highlights сообщает, подсвечен ли инцидент
type Highlights interface {
	IsHighlighted(id int64) bool
}

// IncidentService определяет контракт бизнес-логики работы с инцидентами
type IncidentService interface {
	LoadInitial(ctx context.Context) error
	Resync(ctx context.Context) error
	ListIncidents(filter models.IncidentFilter) []models.IncidentView
	GetIncident(id int64) (models.IncidentView, error)
	SubmitIncident(ctx context.Context, in models.IncidentInput) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id int64) error
	Login(ctx context.Context, username, password string) (models.SessionInfo, error)
	Logout(ctx context.Context) error
	SessionStatus(ctx context.Context) (models.SessionInfo, error)
	TrendAnalysis(ctx context.Context) (*models.TrendAnalysis, error)
}

type incidentService struct {
	remote     Collaborator
	store      *store.Store
	highlights Highlights
	session    Session
	logger     *logrus.Logger
}

func NewIncidentService(remote Collaborator, st *store.Store, highlights Highlights, session Session, logger *logrus.Logger) IncidentService {
	return &incidentService{
		remote:     remote,
		store:      st,
		highlights: highlights,
		session:    session,
		logger:     logger,
	}
}

// LoadInitial заполняет хранилище полным списком. При ошибке хранилище не меняется.
func (s *incidentService) LoadInitial(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "LoadInitial",
	})
	log.Info("Loading initial incident list")

	incidents, err := s.remote.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load initial incidents, starting with an empty set")
		return fmt.Errorf("service: could not load incidents: %w", err)
	}
	s.store.ReplaceAll(incidents)

	log.WithField("count", len(incidents)).Info("Initial incidents loaded")
	return nil
}

// Resync сверяет хранилище с сервисом после переподключения
func (s *incidentService) Resync(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Resync",
	})

	// кадры, примененные во время запроса, новее полученного списка
	since := s.store.Revision()
	incidents, err := s.remote.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to resync incidents")
		return fmt.Errorf("service: could not resync incidents: %w", err)
	}
	changed := s.store.ApplyBatch(since, incidents)

	log.WithField("changed", len(changed)).Info("Incidents resynced")
	return nil
}

// ListIncidents возвращает отфильтрованный набор в порядке хранилища
func (s *incidentService) ListIncidents(filter models.IncidentFilter) []models.IncidentView {
	incidents := s.store.Filter(filter)
	views := make([]models.IncidentView, 0, len(incidents))
	for _, inc := range incidents {
		views = append(views, s.view(inc))
	}
	return views
}

func (s *incidentService) GetIncident(id int64) (models.IncidentView, error) {
	inc, ok := s.store.Get(id)
	if !ok {
		return models.IncidentView{}, fmt.Errorf("%w: id %d", ErrIncidentNotFound, id)
	}
	return s.view(inc), nil
}

// SubmitIncident показывает инцидент сразу с временным id и заменяет его ответом сервиса
func (s *incidentService) SubmitIncident(ctx context.Context, in models.IncidentInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "SubmitIncident",
		"category": in.Category,
	})
	log.Info("Attempting to submit a new incident")

	if in.Status == "" {
		in.Status = models.StatusOpen
	}
	p := s.store.BeginProvisional(fromInput(0, in))

	created, err := s.remote.CreateIncident(ctx, in)
	if err != nil {
		s.store.Rollback(p)
		log.WithError(err).Error("Failed to submit incident")
		return nil, fmt.Errorf("service: could not submit incident: %w", err)
	}
	s.store.Commit(p, *created)

	log.WithField("incident_id", created.ID).Info("Incident submitted successfully")
	return created, nil
}

// UpdateIncident отправляет полный набор полей с изменениями из patch.
// Локальное изменение откатывается при любой ошибке; 401 завершает сессию.
func (s *incidentService) UpdateIncident(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	current, ok := s.store.Get(id)
	if !ok {
		log.Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("%w: id %d", ErrIncidentNotFound, id)
	}

	in := patch.Apply(current.Input())
	record := fromInput(id, in)
	record.Address = current.Address
	record.CreatedAt = current.CreatedAt
	record.UpdatedAt = current.UpdatedAt
	p := s.store.BeginProvisional(record)

	updated, err := s.remote.UpdateIncident(ctx, id, in, token)
	if err != nil {
		s.store.Rollback(p)
		if s.expired(ctx, err) {
			log.Warn("Credential rejected while updating incident")
			return nil, ErrSessionExpired
		}
		log.WithError(err).Error("Failed to update incident, local change reverted")
		// сервер мог применить часть изменений; ошибка сверки не заменяет ошибку обновления
		if resyncErr := s.Resync(ctx); resyncErr != nil {
			log.WithError(resyncErr).Warn("Resync after failed update did not complete")
		}
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}
	s.store.Commit(p, *updated)

	log.Info("Incident updated successfully")
	return updated, nil
}

// DeleteIncident удаляет инцидент на сервисе и затем из хранилища
func (s *incidentService) DeleteIncident(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	if err := s.remote.DeleteIncident(ctx, id, token); err != nil {
		if s.expired(ctx, err) {
			log.Warn("Credential rejected while deleting incident")
			return ErrSessionExpired
		}
		log.WithError(err).Error("Failed to delete incident")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}
	s.store.Remove(id)

	log.Info("Incident deleted successfully")
	return nil
}

func (s *incidentService) Login(ctx context.Context, username, password string) (models.SessionInfo, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "Login",
		"username": username,
	})

	cred, err := s.remote.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, collaborator.ErrUnauthorized) {
			log.Warn("Login rejected")
			return models.SessionInfo{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		log.WithError(err).Error("Login failed")
		return models.SessionInfo{}, fmt.Errorf("service: could not log in: %w", err)
	}
	if err := s.session.Establish(ctx, cred.AccessToken); err != nil {
		log.WithError(err).Error("Failed to establish session")
		return models.SessionInfo{}, fmt.Errorf("service: %w", err)
	}

	log.Info("Logged in")
	return s.session.Status(ctx)
}

func (s *incidentService) Logout(ctx context.Context) error {
	if err := s.session.Logout(ctx); err != nil {
		return fmt.Errorf("service: could not log out: %w", err)
	}
	return nil
}

func (s *incidentService) SessionStatus(ctx context.Context) (models.SessionInfo, error) {
	info, err := s.session.Status(ctx)
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("service: could not read session: %w", err)
	}
	return info, nil
}

// TrendAnalysis для админской панели; токен прикладывается, если есть
func (s *incidentService) TrendAnalysis(ctx context.Context) (*models.TrendAnalysis, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	trend, err := s.remote.TrendAnalysis(ctx, token)
	if err != nil {
		if token != "" && s.expired(ctx, err) {
			return nil, ErrSessionExpired
		}
		s.logger.WithError(err).Warn("Failed to load trend analysis")
		return nil, fmt.Errorf("service: could not load trend analysis: %w", err)
	}
	return trend, nil
}

func (s *incidentService) token(ctx context.Context) (string, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// expired обрабатывает отказ в авторизации: сессия завершается принудительно
func (s *incidentService) expired(ctx context.Context, err error) bool {
	if !errors.Is(err, collaborator.ErrUnauthorized) {
		return false
	}
	s.session.ForceLogout(ctx)
	return true
}

func (s *incidentService) view(inc models.Incident) models.IncidentView {
	return models.IncidentView{Incident: inc, Highlighted: s.highlights.IsHighlighted(inc.ID)}
}

func fromInput(id int64, in models.IncidentInput) models.Incident {
	return models.Incident{
		ID:          id,
		Category:    in.Category,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      in.Status,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}
}

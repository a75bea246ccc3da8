// Package session следит за сроком действия сохраненного токена и выполняет принудительный выход.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// Reason - причина выхода
type Reason string

const (
	ReasonUser         Reason = "user"
	ReasonExpired      Reason = "expired"
	ReasonMalformed    Reason = "malformed"
	ReasonUnauthorized Reason = "unauthorized"
)

// Forced сообщает, что выход инициирован системой, а не пользователем
func (r Reason) Forced() bool {
	return r != ReasonUser
}

var errMissingExpiry = errors.New("session: token has no exp claim")

// CredentialStore хранит токен доступа
type CredentialStore interface {
	GetToken(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context) error
}

type LogoutListener func(Reason)

type Monitor struct {
	store    CredentialStore
	clk      clock.Clock
	interval time.Duration
	logger   *logrus.Entry
	parser   *jwt.Parser

	mu        sync.Mutex
	ended     string // токен, по которому выход уже выполнен
	listeners []LogoutListener
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewMonitor(store CredentialStore, clk clock.Clock, interval time.Duration, logger *logrus.Logger) *Monitor {
	return &Monitor{
		store:    store,
		clk:      clk,
		interval: interval,
		logger:   logger.WithField("component", "session"),
		parser:   jwt.NewParser(),
	}
}

// OnLogout регистрирует слушателя выхода
func (m *Monitor) OnLogout(l LogoutListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Start выполняет немедленную проверку и запускает периодическую
func (m *Monitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	m.mu.Lock()
	m.cancel = cancel
	m.done = done
	m.mu.Unlock()

	m.CheckExpiry(ctx)

	ticker := m.clk.Ticker(m.interval)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.CheckExpiry(ctx)
			}
		}
	}()
}

// Stop останавливает периодическую проверку
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// CheckExpiry проверяет сохраненный токен и возвращает true, если был выполнен выход
func (m *Monitor) CheckExpiry(ctx context.Context) bool {
	token, err := m.store.GetToken(ctx)
	if err != nil {
		m.logger.WithError(err).Warn("Failed to read credential")
		return false
	}
	if token == "" {
		return false
	}

	exp, err := m.expiry(token)
	if err != nil {
		m.logger.WithError(err).Warn("Credential is malformed")
		return m.end(ctx, token, ReasonMalformed)
	}
	if !m.clk.Now().Before(exp) {
		m.logger.WithField("expired_at", exp).Info("Credential expired")
		return m.end(ctx, token, ReasonExpired)
	}
	return false
}

// Establish сохраняет новый токен после входа
func (m *Monitor) Establish(ctx context.Context, token string) error {
	if _, err := m.expiry(token); err != nil {
		return fmt.Errorf("session: rejected credential: %w", err)
	}
	if err := m.store.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("session: could not save credential: %w", err)
	}
	m.mu.Lock()
	m.ended = ""
	m.mu.Unlock()
	return nil
}

// Token возвращает сохраненный токен или пустую строку
func (m *Monitor) Token(ctx context.Context) (string, error) {
	token, err := m.store.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("session: could not read credential: %w", err)
	}
	return token, nil
}

// Status описывает текущую сессию
func (m *Monitor) Status(ctx context.Context) (models.SessionInfo, error) {
	token, err := m.Token(ctx)
	if err != nil {
		return models.SessionInfo{}, err
	}
	if token == "" {
		return models.SessionInfo{}, nil
	}
	exp, err := m.expiry(token)
	if err != nil || !m.clk.Now().Before(exp) {
		return models.SessionInfo{}, nil
	}
	return models.SessionInfo{Authenticated: true, ExpiresAt: &exp}, nil
}

// Logout - выход по инициативе пользователя
func (m *Monitor) Logout(ctx context.Context) error {
	token, err := m.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	m.end(ctx, token, ReasonUser)
	return nil
}

// ForceLogout - путь для ответа 401 от сервиса; срабатывает один раз на токен
func (m *Monitor) ForceLogout(ctx context.Context) {
	token, err := m.store.GetToken(ctx)
	if err != nil {
		m.logger.WithError(err).Warn("Failed to read credential")
		return
	}
	if token == "" {
		return
	}
	m.end(ctx, token, ReasonUnauthorized)
}

func (m *Monitor) end(ctx context.Context, token string, reason Reason) bool {
	m.mu.Lock()
	if m.ended == token {
		m.mu.Unlock()
		return false
	}
	m.ended = token
	listeners := m.listeners
	m.mu.Unlock()

	if err := m.store.DeleteToken(ctx); err != nil {
		m.logger.WithError(err).Error("Failed to clear credential")
	}
	m.logger.WithField("reason", reason).Info("Session ended")

	for _, l := range listeners {
		l(reason)
	}
	return true
}

func (m *Monitor) expiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := m.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("session: decode token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("session: decode exp: %w", err)
	}
	if exp == nil {
		return time.Time{}, errMissingExpiry
	}
	return exp.Time, nil
}

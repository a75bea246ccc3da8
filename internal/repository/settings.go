package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_incident_sync/internal/models"
)

const (
	sessionTokenKey  = "geo_sync:session_token"
	alertSettingsKey = "geo_sync:alerts"
	userIDKey        = "geo_sync:user_id"

	fieldEnabled     = "enabled"
	fieldRadiusMiles = "radius_miles"
)

// SettingsRepository хранит состояние клиента в Redis: токен, настройки оповещений и id пользователя
type SettingsRepository struct {
	redisClient *redis.Client
}

func NewSettingsRepository(redisClient *redis.Client) *SettingsRepository {
	return &SettingsRepository{redisClient: redisClient}
}

// GetToken возвращает сохраненный токен; если его нет - пустую строку
func (r *SettingsRepository) GetToken(ctx context.Context) (string, error) {
	return r.getString(ctx, sessionTokenKey)
}

func (r *SettingsRepository) SaveToken(ctx context.Context, token string) error {
	if err := r.redisClient.Set(ctx, sessionTokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

func (r *SettingsRepository) DeleteToken(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, sessionTokenKey).Err(); err != nil {
		return fmt.Errorf("failed to delete session token: %w", err)
	}
	return nil
}

func (r *SettingsRepository) GetUserID(ctx context.Context) (string, error) {
	return r.getString(ctx, userIDKey)
}

func (r *SettingsRepository) SaveUserID(ctx context.Context, userID string) error {
	if err := r.redisClient.Set(ctx, userIDKey, userID, 0).Err(); err != nil {
		return fmt.Errorf("failed to save user id: %w", err)
	}
	return nil
}

// GetAlertSettings возвращает nil, если настройки еще не сохранялись
func (r *SettingsRepository) GetAlertSettings(ctx context.Context) (*models.AlertSettings, error) {
	fields, err := r.redisClient.HGetAll(ctx, alertSettingsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get alert settings: %w", err)
	}
	return parseAlertSettings(fields)
}

func (r *SettingsRepository) SaveAlertSettings(ctx context.Context, settings models.AlertSettings) error {
	err := r.redisClient.HSet(ctx, alertSettingsKey,
		fieldEnabled, strconv.FormatBool(settings.Enabled),
		fieldRadiusMiles, strconv.Itoa(settings.RadiusMiles),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to save alert settings: %w", err)
	}
	return nil
}

func (r *SettingsRepository) getString(ctx context.Context, key string) (string, error) {
	val, err := r.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, nil
}

// parseAlertSettings разбирает хеш настроек; отсутствующие поля остаются нулевыми
func parseAlertSettings(fields map[string]string) (*models.AlertSettings, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	settings := &models.AlertSettings{}
	if raw, ok := fields[fieldEnabled]; ok {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", fieldEnabled, raw, err)
		}
		settings.Enabled = enabled
	}
	if raw, ok := fields[fieldRadiusMiles]; ok {
		miles, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", fieldRadiusMiles, raw, err)
		}
		settings.RadiusMiles = miles
	}
	return settings, nil
}

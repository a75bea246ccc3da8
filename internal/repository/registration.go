package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_incident_sync/internal/models"
)

// RegistrationRepository - журнал отправленных регистраций для оповещений по области
type RegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// SaveRegistration сохраняет запись о регистрации в бд
func (r *RegistrationRepository) SaveRegistration(ctx context.Context, record *models.RegistrationRecord) error {
	query := `
		INSERT INTO location_registrations (user_id, frame_type, latitude, longitude, radius_meters)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, sent_at;
	`
	err := r.db.QueryRow(ctx, query,
		record.UserID,
		string(record.FrameType),
		record.Latitude,
		record.Longitude,
		record.RadiusMeters,
	).Scan(&record.ID, &record.SentAt)
	if err != nil {
		return fmt.Errorf("failed to save registration: %w", err)
	}
	return nil
}

// CountRegisteredUsers возвращает количество уникальных пользователей, зарегистрированных за последние minutes минут
func (r *RegistrationRepository) CountRegisteredUsers(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM location_registrations
		WHERE sent_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count registered users: %w", err)
	}
	return count, nil
}

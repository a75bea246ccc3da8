package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shenikar/geo_incident_sync/internal/collaborator"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/shenikar/geo_incident_sync/internal/service/mocks"
	"github.com/shenikar/geo_incident_sync/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeHighlights запоминает подсвеченные id
type fakeHighlights struct {
	mu  sync.Mutex
	ids map[int64]bool
}

func (f *fakeHighlights) MarkChanged(ids ...int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		f.ids[id] = true
	}
}

func (f *fakeHighlights) IsHighlighted(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ids[id]
}

type testService struct {
	svc        IncidentService
	store      *store.Store
	remote     *mocks.MockCollaborator
	session    *mocks.MockSession
	highlights *fakeHighlights
}

func newTestService(t *testing.T) *testService {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	highlights := &fakeHighlights{ids: make(map[int64]bool)}
	st, err := store.New(64, highlights, logger)
	require.NoError(t, err)

	remote := mocks.NewMockCollaborator(ctrl)
	session := mocks.NewMockSession(ctrl)
	return &testService{
		svc:        NewIncidentService(remote, st, highlights, session, logger),
		store:      st,
		remote:     remote,
		session:    session,
		highlights: highlights,
	}
}

func pothole(id int64, status models.Status) models.Incident {
	return models.Incident{
		ID:          id,
		Category:    models.CategoryPothole,
		Description: "deep one",
		Priority:    models.PriorityMedium,
		Status:      status,
		Latitude:    40.7,
		Longitude:   -74.0,
	}
}

var errUnauthorized = &collaborator.APIError{StatusCode: 401, Detail: "Could not validate credentials"}

func TestLoadInitial(t *testing.T) {
	ts := newTestService(t)
	ts.remote.EXPECT().ListIncidents(gomock.Any()).Return([]models.Incident{pothole(1, models.StatusOpen), pothole(2, models.StatusOpen)}, nil)

	require.NoError(t, ts.svc.LoadInitial(context.Background()))
	assert.Equal(t, 2, ts.store.Len())
}

func TestLoadInitial_FailureLeavesStoreEmpty(t *testing.T) {
	ts := newTestService(t)
	ts.remote.EXPECT().ListIncidents(gomock.Any()).Return(nil, errors.New("connection refused"))

	err := ts.svc.LoadInitial(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, ts.store.Len())
}

func TestResync_AppliesBatch(t *testing.T) {
	ts := newTestService(t)
	ts.store.ReplaceAll([]models.Incident{pothole(1, models.StatusOpen)})
	ts.remote.EXPECT().ListIncidents(gomock.Any()).Return([]models.Incident{pothole(1, models.StatusResolved), pothole(2, models.StatusOpen)}, nil)

	require.NoError(t, ts.svc.Resync(context.Background()))
	assert.Equal(t, 2, ts.store.Len())
	got, ok := ts.store.Get(1)
	require.True(t, ok)
	assert.Equal(t, models.StatusResolved, got.Status)
}

func TestResync_KeepsFramesAppliedDuringRequest(t *testing.T) {
	ts := newTestService(t)
	ts.store.ReplaceAll([]models.Incident{pothole(1, models.StatusOpen)})

	ts.remote.EXPECT().ListIncidents(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Incident, error) {
		// кадры из канала, примененные до ответа на запрос списка
		ts.store.Upsert(pothole(2, models.StatusOpen))
		ts.store.Update(pothole(1, models.StatusResolved))
		return []models.Incident{pothole(1, models.StatusOpen)}, nil
	})

	require.NoError(t, ts.svc.Resync(context.Background()))
	assert.Equal(t, 2, ts.store.Len())
	got, ok := ts.store.Get(1)
	require.True(t, ok)
	assert.Equal(t, models.StatusResolved, got.Status)
	_, ok = ts.store.Get(2)
	assert.True(t, ok)
}

func TestSubmitIncident_ProvisionalThenCommit(t *testing.T) {
	ts := newTestService(t)
	in := pothole(0, "").Input()

	ts.remote.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sent models.IncidentInput) (*models.Incident, error) {
			assert.Equal(t, models.StatusOpen, sent.Status)

			// Запись видна до ответа сервиса
			snapshot := ts.store.Snapshot()
			require.Len(t, snapshot, 1)
			assert.True(t, snapshot[0].Provisional())

			created := pothole(42, models.StatusOpen)
			return &created, nil
		})

	created, err := ts.svc.SubmitIncident(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)

	snapshot := ts.store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, int64(42), snapshot[0].ID)
}

func TestSubmitIncident_EchoBeforeResponse(t *testing.T) {
	ts := newTestService(t)

	ts.remote.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.IncidentInput) (*models.Incident, error) {
			// Кадр new_incident пришел раньше ответа на POST
			ts.store.Upsert(pothole(42, models.StatusOpen))
			created := pothole(42, models.StatusOpen)
			return &created, nil
		})

	_, err := ts.svc.SubmitIncident(context.Background(), pothole(0, "").Input())
	require.NoError(t, err)
	assert.Equal(t, 1, ts.store.Len())
}

func TestSubmitIncident_FailureRollsBack(t *testing.T) {
	ts := newTestService(t)
	ts.remote.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := ts.svc.SubmitIncident(context.Background(), pothole(0, "").Input())
	assert.Error(t, err)
	assert.Equal(t, 0, ts.store.Len())
}

func TestUpdateIncident_Success(t *testing.T) {
	ts := newTestService(t)
	ts.store.ReplaceAll([]models.Incident{pothole(7, models.StatusOpen)})
	ts.session.EXPECT().Token(gomock.Any()).Return("tok", nil)

	resolved := models.StatusResolved
	ts.remote.EXPECT().UpdateIncident(gomock.Any(), int64(7), gomock.Any(), "tok").DoAndReturn(
		func(_ context.Context, _ int64, in models.IncidentInput, _ string) (*models.Incident, error) {
			// Отправляется полный набор полей
			assert.Equal(t, models.CategoryPothole, in.Category)
			assert.Equal(t, "deep one", in.Description)
			assert.Equal(t, models.PriorityMedium, in.Priority)
			assert.Equal(t, models.StatusResolved, in.Status)
			assert.Equal(t, 40.7, in.Latitude)

			updated := pothole(7, models.StatusResolved)
			updated.UpdatedAt = "2024-01-02T10:00:00"
			return &updated, nil
		})

	updated, err := ts.svc.UpdateIncident(context.Background(), 7, models.IncidentPatch{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)

	view, err := ts.svc.GetIncident(7)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02T10:00:00", view.UpdatedAt)
	assert.True(t, view.Highlighted)
}

func TestUpdateIncident_UnauthorizedForcesLogout(t *testing.T) {
	ts := newTestService(t)
	ts.store.ReplaceAll([]models.Incident{pothole(7, models.StatusOpen)})

	ts.session.EXPECT().Token(gomock.Any()).Return("expired", nil)
	ts.remote.EXPECT().UpdateIncident(gomock.Any(), int64(7), gomock.Any(), "expired").Return(nil, errUnauthorized)
	ts.session.EXPECT().ForceLogout(gomock.Any()).Times(1)

	resolved := models.StatusResolved
	_, err := ts.svc.UpdateIncident(context.Background(), 7, models.IncidentPatch{Status: &resolved})
	assert.ErrorIs(t, err, ErrSessionExpired)

	got, ok := ts.store.Get(7)
	require.True(t, ok)
	assert.Equal(t, models.StatusOpen, got.Status)
}

func TestUpdateIncident_UnauthorizedKeepsConcurrentFrame(t *testing.T) {
	ts := newTestService(t)
	ts.store.ReplaceAll([]models.Incident{pothole(7, models.StatusOpen)})

	ts.session.EXPECT().Token(gomock.Any()).Return("expired", nil)
	ts.remote.EXPECT().UpdateIncident(gomock.Any(), int64(7), gomock.Any(), "expired").
		DoAndReturn(func(context.Context, int64, models.IncidentInput, string) (*models.Incident, error) {
			// другой клиент закрыл инцидент, пока шел запрос
			ts.store.Update(pothole(7, models.StatusResolved))
			return nil, errUnauthorized
		})
	ts.session.EXPECT().ForceLogout(gomock.Any()).Times(1)

	high := models.PriorityHigh
	_, err := ts.svc.UpdateIncident(context.Background(), 7, models.IncidentPatch{Priority: &high})
	assert.ErrorIs(t, err, ErrSessionExpired)

	got, ok := ts.store.Get(7)
	require.True(t, ok)
	assert.Equal(t, models.StatusResolved, got.Status)
	assert.Equal(t, models.PriorityMedium, got.Priority)
}

func TestUpdateIncident_FailureRevertsAndResyncs(t *testing.T) {
	ts := newTestService(t)
	ts.store.ReplaceAll([]models.Incident{pothole(7, models.StatusOpen)})

	ts.session.EXPECT().Token(gomock.Any()).Return("tok", nil)
	ts.remote.EXPECT().UpdateIncident(gomock.Any(), int64(7), gomock.Any(), "tok").Return(nil, &collaborator.APIError{StatusCode: 500})
	ts.remote.EXPECT().ListIncidents(gomock.Any()).Return(nil, errors.New("still down"))

	high := models.PriorityHigh
	_, err := ts.svc.UpdateIncident(context.Background(), 7, models.IncidentPatch{Priority: &high})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)

	got, ok := ts.store.Get(7)
	require.True(t, ok)
	assert.Equal(t, models.PriorityMedium, got.Priority)
}

func TestUpdateIncident_Preconditions(t *testing.T) {
	ts := newTestService(t)

	ts.session.EXPECT().Token(gomock.Any()).Return("", nil)
	_, err := ts.svc.UpdateIncident(context.Background(), 7, models.IncidentPatch{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	ts.session.EXPECT().Token(gomock.Any()).Return("tok", nil)
	_, err = ts.svc.UpdateIncident(context.Background(), 7, models.IncidentPatch{})
	assert.ErrorIs(t, err, ErrIncidentNotFound)
}

func TestDeleteIncident(t *testing.T) {
	ts := newTestService(t)
	ts.store.ReplaceAll([]models.Incident{pothole(7, models.StatusOpen)})

	ts.session.EXPECT().Token(gomock.Any()).Return("tok", nil)
	ts.remote.EXPECT().DeleteIncident(gomock.Any(), int64(7), "tok").Return(nil)

	require.NoError(t, ts.svc.DeleteIncident(context.Background(), 7))
	assert.Equal(t, 0, ts.store.Len())

	// Запоздалый кадр не воскрешает удаленный инцидент
	ts.store.Upsert(pothole(7, models.StatusOpen))
	assert.Equal(t, 0, ts.store.Len())
}

func TestDeleteIncident_Unauthorized(t *testing.T) {
	ts := newTestService(t)
	ts.store.ReplaceAll([]models.Incident{pothole(7, models.StatusOpen)})

	ts.session.EXPECT().Token(gomock.Any()).Return("expired", nil)
	ts.remote.EXPECT().DeleteIncident(gomock.Any(), int64(7), "expired").Return(errUnauthorized)
	ts.session.EXPECT().ForceLogout(gomock.Any())

	err := ts.svc.DeleteIncident(context.Background(), 7)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, 1, ts.store.Len())
}

func TestLogin(t *testing.T) {
	ts := newTestService(t)

	ts.remote.EXPECT().Login(gomock.Any(), "admin", "wrong").Return(nil, errUnauthorized)
	_, err := ts.svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	ts.remote.EXPECT().Login(gomock.Any(), "admin", "secret").Return(&models.Credential{AccessToken: "jwt"}, nil)
	ts.session.EXPECT().Establish(gomock.Any(), "jwt").Return(nil)
	ts.session.EXPECT().Status(gomock.Any()).Return(models.SessionInfo{Authenticated: true}, nil)

	info, err := ts.svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.True(t, info.Authenticated)
}

func TestTrendAnalysis_UnauthorizedWithToken(t *testing.T) {
	ts := newTestService(t)

	ts.session.EXPECT().Token(gomock.Any()).Return("expired", nil)
	ts.remote.EXPECT().TrendAnalysis(gomock.Any(), "expired").Return(nil, errUnauthorized)
	ts.session.EXPECT().ForceLogout(gomock.Any())

	_, err := ts.svc.TrendAnalysis(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestListIncidents_FilterAndHighlight(t *testing.T) {
	ts := newTestService(t)
	ts.store.ReplaceAll([]models.Incident{pothole(1, models.StatusOpen), pothole(2, models.StatusResolved)})
	ts.highlights.MarkChanged(2)

	views := ts.svc.ListIncidents(models.IncidentFilter{Status: string(models.StatusResolved)})
	require.Len(t, views, 1)
	assert.Equal(t, int64(2), views[0].ID)
	assert.True(t, views[0].Highlighted)

	assert.Len(t, ts.svc.ListIncidents(models.IncidentFilter{Status: models.FilterAll}), 2)
}

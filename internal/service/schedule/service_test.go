package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rms-platform/table-service/internal/domain"
	restaurantRepo "github.com/rms-platform/table-service/internal/infra/storage/restaurant"
	"github.com/rms-platform/table-service/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	week  []*domain.OperatingHours
	saved *domain.OperatingHours
}

func (f *fakeScheduleRepo) GetWeek(_ context.Context, _ int64) ([]*domain.OperatingHours, error) {
	return f.week, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error) {
	f.saved = hours
	return hours, nil
}

type fakeRestaurantRepo struct {
	err error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Restaurant{ID: 1, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_GetWeek(t *testing.T) {
	repo := &fakeScheduleRepo{week: []*domain.OperatingHours{
		{Weekday: 1, OpenTime: "11:00", CloseTime: "22:00"},
		{Weekday: 2, Closed: true},
	}}
	svc := NewService(repo, &fakeRestaurantRepo{}, nopLogger{})

	week, err := svc.GetWeek(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, week.Days, 2)

	assert.Equal(t, "11:00", week.Days[0].OpenTime)
	// У закрытого дня времена не отдаются
	assert.True(t, week.Days[1].Closed)
	assert.Empty(t, week.Days[1].OpenTime)
}

func TestService_GetWeek_RestaurantNotFound(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeRestaurantRepo{err: restaurantRepo.ErrRestaurantNotFound}, nopLogger{})

	_, err := svc.GetWeek(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestService_UpsertDay(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, &fakeRestaurantRepo{}, nopLogger{})

	day, err := svc.UpsertDay(context.Background(), &models.UpsertDayRequest{
		RestaurantID: 1,
		Weekday:      5,
		OpenTime:     "11:00 AM",
		CloseTime:    "10:00 PM",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, day.Weekday)
	// Времена хранятся как введены, нормализация на границе расчета
	require.NotNil(t, repo.saved)
	assert.Equal(t, "11:00 AM", repo.saved.OpenTime)
	assert.Equal(t, "10:00 PM", repo.saved.CloseTime)
}

func TestService_UpsertDay_Validation(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeRestaurantRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.UpsertDayRequest
	}{
		{name: "weekday_too_small", req: &models.UpsertDayRequest{RestaurantID: 1, Weekday: -1, OpenTime: "11:00", CloseTime: "22:00"}},
		{name: "weekday_too_big", req: &models.UpsertDayRequest{RestaurantID: 1, Weekday: 7, OpenTime: "11:00", CloseTime: "22:00"}},
		{name: "bad_open_time", req: &models.UpsertDayRequest{RestaurantID: 1, Weekday: 1, OpenTime: "25:00", CloseTime: "22:00"}},
		{name: "bad_close_time", req: &models.UpsertDayRequest{RestaurantID: 1, Weekday: 1, OpenTime: "11:00", CloseTime: "nope"}},
		{name: "open_after_close", req: &models.UpsertDayRequest{RestaurantID: 1, Weekday: 1, OpenTime: "22:00", CloseTime: "11:00"}},
		{name: "open_equals_close", req: &models.UpsertDayRequest{RestaurantID: 1, Weekday: 1, OpenTime: "11:00", CloseTime: "11:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertDay(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_UpsertDay_ClosedSkipsTimeValidation(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, &fakeRestaurantRepo{}, nopLogger{})

	day, err := svc.UpsertDay(context.Background(), &models.UpsertDayRequest{
		RestaurantID: 1,
		Weekday:      0,
		Closed:       true,
	})
	require.NoError(t, err)
	assert.True(t, day.Closed)
}

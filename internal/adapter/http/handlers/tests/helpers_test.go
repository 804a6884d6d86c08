package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"dayplanner/internal/core/domain"
	"dayplanner/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, day domain.Date) ([]domain.Task, error) {
	args := m.Called(ctx, day)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, title string) (domain.Task, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) SetCompletion(ctx context.Context, id uint64, completed bool) (domain.Task, error) {
	args := m.Called(ctx, id, completed)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type timeBlockServiceMock struct {
	mock.Mock
}

func (m *timeBlockServiceMock) ListTimeBlocks(ctx context.Context, taskID uint64, day domain.Date) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, taskID, day)

	var blocks []domain.TimeBlock
	if value := args.Get(0); value != nil {
		blocks = value.([]domain.TimeBlock)
	}
	return blocks, args.Error(1)
}

func (m *timeBlockServiceMock) CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput) (domain.TimeBlock, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.TimeBlock), args.Error(1)
}

func (m *timeBlockServiceMock) DeleteTimeBlock(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type statsServiceMock struct {
	mock.Mock
}

func (m *statsServiceMock) DayStats(ctx context.Context, day domain.Date) (domain.DayStats, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(domain.DayStats), args.Error(1)
}

// testCalendar is pinned to 2024-05-10 10:00 in Shanghai.
func testCalendar(t *testing.T) *domain.Calendar {
	t.Helper()
	cal, err := domain.LoadCalendar(domain.DefaultTimezone)
	require.NoError(t, err)
	now := time.Date(2024, 5, 10, 10, 0, 0, 0, cal.Location())
	return cal.WithClock(func() time.Time { return now })
}

func day(y int, m time.Month, d int) domain.Date {
	return domain.Date{Year: y, Month: m, Day: d}
}

func serve(router *gin.Engine, method, target, body, lang string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, key, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, status, got.ErrDetails.Code)
	require.Equal(t, key, got.ErrDetails.Key)
	if message != "" {
		require.Equal(t, message, got.ErrDetails.Message)
	}
}

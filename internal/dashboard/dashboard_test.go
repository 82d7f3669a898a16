package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/crm-console/internal/entity"
)

type MockReportAPI struct {
	mock.Mock
}

func (m *MockReportAPI) ConversionRate(ctx context.Context) (*entity.ConversionRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ConversionRate), args.Error(1)
}

func (m *MockReportAPI) TodayFollowups(ctx context.Context) ([]entity.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockReportAPI) UpcomingFollowups(ctx context.Context, days int) ([]entity.Appointment, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockReportAPI) LeadsWeekly(ctx context.Context, start, end string) ([]entity.WeeklyLeadCount, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WeeklyLeadCount), args.Error(1)
}

func (m *MockReportAPI) LeadsByStage(ctx context.Context) ([]entity.StageCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StageCount), args.Error(1)
}

func (m *MockReportAPI) ConversionTrend(ctx context.Context) ([]entity.ConversionPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ConversionPoint), args.Error(1)
}

func (m *MockReportAPI) SourcePerformance(ctx context.Context) ([]entity.SourcePerformance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SourcePerformance), args.Error(1)
}

func healthyMock() *MockReportAPI {
	m := new(MockReportAPI)
	m.On("ConversionRate", mock.Anything).Return(&entity.ConversionRate{Rate: 0.25}, nil)
	m.On("TodayFollowups", mock.Anything).Return([]entity.Appointment{{ID: "a1"}}, nil)
	m.On("UpcomingFollowups", mock.Anything, 7).Return([]entity.Appointment{{ID: "a1"}, {ID: "a2"}}, nil)
	m.On("LeadsWeekly", mock.Anything, mock.Anything, mock.Anything).Return([]entity.WeeklyLeadCount{{Week: "W24", Count: 5}}, nil)
	m.On("LeadsByStage", mock.Anything).Return([]entity.StageCount{{Stage: "New", Count: 3}}, nil)
	m.On("ConversionTrend", mock.Anything).Return([]entity.ConversionPoint{{Month: "Jun", Leads: 10, Converted: 2, Rate: 0.2}}, nil)
	m.On("SourcePerformance", mock.Anything).Return([]entity.SourcePerformance{{Source: "Website", Leads: 8}}, nil)
	return m
}

func TestLoadAllSectionsSucceed(t *testing.T) {
	m := healthyMock()

	d := Load(context.Background(), m, Bounds{Start: "2025-06-09", End: "2025-06-15"})

	assert.Empty(t, d.KPIErr)
	assert.Equal(t, 0.25, d.KPI.ConversionRate)
	assert.Equal(t, 1, d.KPI.TodayFollowups)
	assert.Equal(t, 2, d.KPI.UpcomingFollowups)
	assert.Len(t, d.Weekly, 1)
	assert.Len(t, d.Stages, 1)
	assert.Len(t, d.Trend, 1)
	assert.Len(t, d.Sources, 1)

	m.AssertCalled(t, "LeadsWeekly", mock.Anything, "2025-06-09", "2025-06-15")
}

func TestFailedKPIDoesNotBlockWeeklyChart(t *testing.T) {
	m := new(MockReportAPI)
	m.On("ConversionRate", mock.Anything).Return(nil, errors.New("kpi service down"))
	m.On("LeadsWeekly", mock.Anything, mock.Anything, mock.Anything).Return([]entity.WeeklyLeadCount{{Week: "W24", Count: 5}}, nil)
	m.On("LeadsByStage", mock.Anything).Return([]entity.StageCount{}, nil)
	m.On("ConversionTrend", mock.Anything).Return([]entity.ConversionPoint{}, nil)
	m.On("SourcePerformance", mock.Anything).Return([]entity.SourcePerformance{}, nil)

	d := Load(context.Background(), m, Bounds{})

	assert.Nil(t, d.KPI)
	assert.Contains(t, d.KPIErr, "kpi service down")
	assert.Equal(t, []entity.WeeklyLeadCount{{Week: "W24", Count: 5}}, d.Weekly, "weekly chart still renders with server data")
	assert.Empty(t, d.WeeklyErr)
}

func TestEverySectionFailsIndependently(t *testing.T) {
	m := healthyMock()
	// Override one section with a failure; the rest keep succeeding.
	m.ExpectedCalls = nil
	m.On("ConversionRate", mock.Anything).Return(&entity.ConversionRate{Rate: 0.5}, nil)
	m.On("TodayFollowups", mock.Anything).Return([]entity.Appointment{}, nil)
	m.On("UpcomingFollowups", mock.Anything, 7).Return([]entity.Appointment{}, nil)
	m.On("LeadsWeekly", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("weekly broken"))
	m.On("LeadsByStage", mock.Anything).Return([]entity.StageCount{{Stage: "New", Count: 1}}, nil)
	m.On("ConversionTrend", mock.Anything).Return([]entity.ConversionPoint{}, nil)
	m.On("SourcePerformance", mock.Anything).Return([]entity.SourcePerformance{}, nil)

	d := Load(context.Background(), m, Bounds{})

	assert.Contains(t, d.WeeklyErr, "weekly broken")
	assert.NotNil(t, d.KPI)
	assert.Len(t, d.Stages, 1)
}

func TestPresetBounds(t *testing.T) {
	// 2025-06-15 is a Sunday.
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	b := PresetBounds(PresetToday, "", "", now)
	assert.Equal(t, Bounds{Start: "2025-06-15", End: "2025-06-15"}, b)

	b = PresetBounds(PresetWeek, "", "", now)
	assert.Equal(t, Bounds{Start: "2025-06-09", End: "2025-06-15"}, b, "week starts on Monday")

	b = PresetBounds(PresetMonth, "", "", now)
	assert.Equal(t, Bounds{Start: "2025-06-01", End: "2025-06-15"}, b)

	b = PresetBounds(PresetYear, "", "", now)
	assert.Equal(t, Bounds{Start: "2025-01-01", End: "2025-06-15"}, b)

	b = PresetBounds(PresetCustom, "2025-02-01", "2025-02-28", now)
	assert.Equal(t, Bounds{Start: "2025-02-01", End: "2025-02-28"}, b)
}

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func TestMetricService_RecordUsesProfileHeight(t *testing.T) {
	users := &fakeUsers{users: map[int64]*domain.User{3: {ID: 3, AccountID: 1, Height: floatPtr(180)}}}
	metrics := &fakeMetrics{}
	svc := NewMetricService(metrics, users)

	first, err := svc.Record(1, 3, domain.MetricRequest{Date: "2026-01-10", Weight: 85})
	require.NoError(t, err)
	assert.Equal(t, 180.0, first.Height)
	assert.InDelta(t, 26.23, first.BMI, 0.005)
	assert.Equal(t, domain.Overweight, first.BodyMetric)
	assert.Nil(t, first.WeightDiff)
	assert.Equal(t, int64(1), first.ID)

	second, err := svc.Record(1, 3, domain.MetricRequest{Date: "2026-01-17", Weight: 79.5})
	require.NoError(t, err)
	require.NotNil(t, second.WeightDiff)
	assert.InDelta(t, -5.5, *second.WeightDiff, 0.0001)
	assert.Equal(t, domain.NormalWeight, second.BodyMetric)
}

func TestMetricService_RecordExplicitHeight(t *testing.T) {
	users := &fakeUsers{users: map[int64]*domain.User{3: {ID: 3, AccountID: 1}}}
	svc := NewMetricService(&fakeMetrics{}, users)

	m, err := svc.Record(1, 3, domain.MetricRequest{Date: "2026-01-10", Weight: 40, Height: floatPtr(100)})
	require.NoError(t, err)
	assert.Equal(t, domain.ObesityIII, m.BodyMetric)
}

func TestMetricService_RecordErrors(t *testing.T) {
	users := &fakeUsers{users: map[int64]*domain.User{3: {ID: 3, AccountID: 1}}}
	svc := NewMetricService(&fakeMetrics{}, users)

	_, err := svc.Record(1, 3, domain.MetricRequest{Date: "2026-01-10", Weight: 70})
	assert.ErrorIs(t, err, ErrHeightRequired)

	_, err = svc.Record(1, 4, domain.MetricRequest{Date: "2026-01-10", Weight: 70})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Record(1, 3, domain.MetricRequest{Date: "10/01/2026", Weight: 70})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "date")

	_, err = svc.Record(1, 3, domain.MetricRequest{Date: "2026-01-10", Weight: 0, Height: floatPtr(170)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMetricService_ListEmpty(t *testing.T) {
	users := &fakeUsers{users: map[int64]*domain.User{3: {ID: 3, AccountID: 1}}}
	svc := NewMetricService(&fakeMetrics{}, users)

	list, err := svc.List(1, 3)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

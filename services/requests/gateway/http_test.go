package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

func TestMapStatus_NormalizesLegacySpellings(t *testing.T) {
	tests := []struct {
		raw  string
		want models.RequestStatus
	}{
		{"open", models.RequestNew},
		{"created", models.RequestNew},
		{"accepted", models.RequestPending},
		{"in-progress", models.RequestInProgress},
		{"in_progress", models.RequestInProgress},
		{"done", models.RequestCompleted},
		{"canceled", models.RequestCancelled},
		{"cancelled", models.RequestCancelled},
		{"", models.RequestNew},
		{"garbage", models.RequestNew},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapStatus(tt.raw), "raw status %q", tt.raw)
	}
}

func TestMapRequest_Totality(t *testing.T) {
	r, err := mapRequest(requestRecord{
		ID:          "r-1",
		ServiceName: "Oil change",
		Status:      "accepted",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, r.Status)
	assert.Nil(t, r.Price)
	assert.Nil(t, r.ScheduledAt)
	assert.True(t, r.RequestedAt.IsZero())
}

func TestMapRequest_MissingIDFailsLoudly(t *testing.T) {
	_, err := mapRequest(requestRecord{ServiceName: "ghost"})

	require.Error(t, err)
	assert.Equal(t, apierr.KindDecode, apierr.KindOf(err))
}

func TestMapRequest_Idempotent(t *testing.T) {
	sched := "2026-06-01T10:00:00Z"
	price := 450.0
	rec := requestRecord{
		ID:          "r-2",
		CustomerID:  "u-1",
		ServiceName: "Brake pads",
		Status:      "in_progress",
		Price:       &price,
		ScheduledAt: &sched,
		RequestedAt: "2026-05-28T09:00:00Z",
	}

	first, err := mapRequest(rec)
	require.NoError(t, err)
	second, err := mapRequest(rec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NotNil(t, first.ScheduledAt)
	assert.Equal(t, 450.0, *first.Price)
}

func TestCreate_IsRejected(t *testing.T) {
	gw := NewRequestGW(nil)
	_, err := gw.Create(context.Background(), models.ServiceRequest{})

	require.Error(t, err)
	assert.Equal(t, apierr.KindPrecondition, apierr.KindOf(err))
}

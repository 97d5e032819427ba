package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler(nil)
	c, rec := newContext(http.MethodGet, "/health", "")

	require.NoError(t, h.Liveness(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := PingerFunc(func(context.Context) error { return nil })
	down := PingerFunc(func(context.Context) error { return errors.New("connection refused") })

	h := NewHealthHandler(map[string]Pinger{"mongodb": ok, "redis": ok})
	c, rec := newContext(http.MethodGet, "/health/ready", "")
	require.NoError(t, h.Readiness(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	h = NewHealthHandler(map[string]Pinger{"mongodb": ok, "redis": down})
	c, rec = newContext(http.MethodGet, "/health/ready", "")
	require.NoError(t, h.Readiness(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "ok", body.Dependencies["mongodb"].Status)
	assert.Equal(t, "unhealthy", body.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", body.Dependencies["redis"].Error)
}

type stubStats struct {
	st *ports.Stats
}

func (s stubStats) Snapshot(context.Context) (*ports.Stats, error) { return s.st, nil }

func TestAdminHandler_Stats(t *testing.T) {
	h := NewAdminHandler(stubStats{st: &ports.Stats{
		TotalUsers:          3,
		ActiveUsers:         2,
		UsersWithLocation:   1,
		FriendshipsByStatus: map[domain.FriendshipStatus]int64{domain.StatusPending: 1, domain.StatusAccepted: 0},
	}})
	c, rec := newContext(http.MethodGet, "/v1/admin/stats", "")

	require.NoError(t, h.Stats(c))
	assert.JSONEq(t, `{
		"total_users": 3,
		"active_users": 2,
		"users_with_location": 1,
		"friendships_by_status": {"pending": 1, "accepted": 0}
	}`, rec.Body.String())
}

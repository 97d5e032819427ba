package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCleanupTask(t *testing.T) {
	late := time.Date(2024, 6, 15, 23, 30, 0, 0, time.FixedZone("UTC-3", -3*60*60))
	task := NewCleanupTask(late)

	assert.Equal(t, TaskCleanupInactive, task.Type)
	assert.Equal(t, "user.cleanup_inactive:2024-06-16", task.ID)
	assert.Equal(t, time.UTC, task.CreatedAt.Location())
	assert.Empty(t, task.UserID)

	sameDay := NewCleanupTask(time.Date(2024, 6, 16, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, task.ID, sameDay.ID)
	assert.NotEqual(t, task.ID, NewCleanupTask(late.AddDate(0, 0, 1)).ID)
}

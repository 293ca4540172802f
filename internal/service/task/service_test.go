package task

import (
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStatusCompletedStampsTime(t *testing.T) {
	created := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.March, 5, 17, 30, 0, 0, time.UTC)

	tk := &task.Task{Status: task.StatusInProgress, CreatedAt: created}
	applyStatus(tk, task.StatusCompleted, now)

	assert.Equal(t, task.StatusCompleted, tk.Status)
	require.NotNil(t, tk.CompletedAt)
	assert.Equal(t, now, *tk.CompletedAt)
	assert.False(t, tk.CompletedAt.Before(tk.CreatedAt))
}

func TestApplyStatusProgression(t *testing.T) {
	now := time.Now()
	tk := &task.Task{Status: task.StatusPending}

	applyStatus(tk, task.StatusInProgress, now)
	assert.Equal(t, task.StatusInProgress, tk.Status)
	assert.Nil(t, tk.CompletedAt)

	applyStatus(tk, task.StatusCompleted, now)
	assert.Equal(t, task.StatusCompleted, tk.Status)
	assert.NotNil(t, tk.CompletedAt)
}

func TestApplyStatusReopeningClearsCompletedAt(t *testing.T) {
	now := time.Now()
	tk := &task.Task{Status: task.StatusPending}

	applyStatus(tk, task.StatusCompleted, now)
	require.NotNil(t, tk.CompletedAt)

	applyStatus(tk, task.StatusInProgress, now)
	assert.Nil(t, tk.CompletedAt)
}

func TestApplyStatusNoopOnSameStatus(t *testing.T) {
	stamped := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	tk := &task.Task{Status: task.StatusCompleted, CompletedAt: &stamped}

	applyStatus(tk, task.StatusCompleted, time.Now())
	assert.Equal(t, stamped, *tk.CompletedAt)
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itexe-marketplace-api/internal/model"
)

func TestNotifyQueuesInOrder(t *testing.T) {
	svc := NewNotificationService(time.Minute)

	svc.Notify("first", model.NotifySuccess)
	svc.Notify("second", model.NotifyError)

	active := svc.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Message)
	assert.Equal(t, model.NotifySuccess, active[0].Kind)
	assert.Equal(t, "second", active[1].Message)
	assert.Equal(t, model.NotifyError, active[1].Kind)
}

func TestNotifyIDsAreUnique(t *testing.T) {
	svc := NewNotificationService(time.Minute)

	seen := make(map[int64]bool)
	var prev int64
	for i := 0; i < 10; i++ {
		n := svc.Notify("msg", model.NotifyInfo)
		assert.False(t, seen[n.ID], "id %d assigned twice", n.ID)
		assert.Greater(t, n.ID, prev)
		seen[n.ID] = true
		prev = n.ID
	}
}

func TestNotificationAutoExpires(t *testing.T) {
	svc := NewNotificationService(30 * time.Millisecond)

	svc.Notify("short lived", model.NotifyInfo)
	require.Len(t, svc.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(svc.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestDismissRemovesEarly(t *testing.T) {
	svc := NewNotificationService(time.Minute)

	n := svc.Notify("dismiss me", model.NotifyInfo)
	svc.Notify("keep me", model.NotifyInfo)

	svc.Dismiss(n.ID)

	active := svc.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "keep me", active[0].Message)
}

func TestDismissUnknownIDIsNoop(t *testing.T) {
	svc := NewNotificationService(time.Minute)
	svc.Notify("still here", model.NotifyInfo)

	svc.Dismiss(12345)

	assert.Len(t, svc.Active(), 1)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	svc := NewNotificationService(0)
	assert.Equal(t, DefaultNotificationTTL, svc.ttl)
}

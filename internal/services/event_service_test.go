package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndGetRecentEvents(t *testing.T) {
	svc := NewEventService(newTestDB(t))

	actor := "abdullah"
	require.NoError(t, svc.RecordEvent("auth.signup", "info", "user abdullah signed up", &actor))
	require.NoError(t, svc.RecordEvent("auth.signin", "warn", "failed signin for ghost", nil))

	events, err := svc.GetRecentEvents(10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	types := []string{events[0].Type, events[1].Type}
	assert.Contains(t, types, "auth.signup")
	assert.Contains(t, types, "auth.signin")
	for _, e := range events {
		assert.NotEmpty(t, e.ID)
		if e.Type == "auth.signin" {
			assert.Nil(t, e.Actor)
		}
	}
}

func TestGetRecentEvents_Limit(t *testing.T) {
	svc := NewEventService(newTestDB(t))

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.RecordEvent("auth.signin", "info", "signin", nil))
	}

	events, err := svc.GetRecentEvents(3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusSetArchivesCurrent(t *testing.T) {
	s := NewStatus()

	s.Set(InfoMessage("first"))
	require.NotNil(t, s.Current())
	assert.Empty(t, s.History())

	s.Set(InfoMessage("second"))
	assert.Equal(t, "second", s.Current().Text)
	require.Len(t, s.History(), 1)
	assert.Equal(t, "first", s.History()[0].Text)
}

func TestStatusHistoryBound(t *testing.T) {
	s := NewStatus()

	for i := 0; i < historyLimit+10; i++ {
		s.Set(InfoMessage(fmt.Sprintf("message %d", i)))
	}
	s.Clear()

	require.Len(t, s.History(), historyLimit)
	// Oldest entries are evicted first.
	assert.Equal(t, fmt.Sprintf("message %d", 10), s.History()[0].Text)
	assert.Equal(t, fmt.Sprintf("message %d", historyLimit+9), s.History()[historyLimit-1].Text)
}

func TestStatusTickDismissesExpired(t *testing.T) {
	s := NewStatus()

	s.Set(SuccessMessage("done"))
	s.current.Timestamp = time.Now().Add(-time.Minute)

	s.Tick()

	assert.Nil(t, s.Current())
	require.Len(t, s.History(), 1)
}

func TestStatusTickKeepsPersistentLevels(t *testing.T) {
	tests := []struct {
		name    string
		message StatusMessage
	}{
		{name: "loading persists until replaced", message: LoadingMessage("working")},
		{name: "errors persist until dismissed", message: ErrorMessage("broken")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStatus()
			s.Set(tt.message)
			s.current.Timestamp = time.Now().Add(-time.Hour)

			s.Tick()

			assert.NotNil(t, s.Current())
		})
	}
}

func TestStatusMessageDismissAges(t *testing.T) {
	assert.Equal(t, 5*time.Second, InfoMessage("x").AutoDismissAfter)
	assert.Equal(t, 3*time.Second, SuccessMessage("x").AutoDismissAfter)
	assert.Equal(t, 5*time.Second, WarningMessage("x").AutoDismissAfter)
	assert.Zero(t, ErrorMessage("x").AutoDismissAfter)
	assert.Zero(t, LoadingMessage("x").AutoDismissAfter)
}

func TestStatusUpdateActions(t *testing.T) {
	s := NewStatus()

	s.Update(ShowStatus{Message: InfoMessage("hello")})
	require.NotNil(t, s.Current())

	s.Update(DismissStatus{})
	assert.Nil(t, s.Current())
	assert.Len(t, s.History(), 1)

	assert.False(t, s.HistoryOpen())
	s.Update(ShowStatusHistory{})
	assert.True(t, s.HistoryOpen())
	s.Update(ShowStatusHistory{})
	assert.False(t, s.HistoryOpen())
}

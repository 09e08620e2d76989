package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolplanner/internal/domain"
)

func TestProject_StaggeredPair(t *testing.T) {
	sessions := []domain.ScheduledSession{
		mkSession("a", domain.Monday, "09:00", 60),
		mkSession("b", domain.Monday, "09:30", 60),
	}
	geo := Project(sessions)
	require.Len(t, geo, 2)

	a, b := geo["a"], geo["b"]
	assert.Equal(t, 60*PixelsPerMinute, a.Top)
	assert.Equal(t, 60*PixelsPerMinute, a.Height)
	assert.Equal(t, 90*PixelsPerMinute, b.Top)

	assert.Equal(t, 2, a.Columns)
	assert.Equal(t, 0, a.Column)
	assert.Equal(t, 1, b.Column)
	assert.Equal(t, 0.0, a.LeftPct)
	assert.Equal(t, 50.0, b.LeftPct)
	assert.Equal(t, 50.0-GutterPct, a.WidthPct)
}

func TestProject_BackToBackFullWidth(t *testing.T) {
	sessions := []domain.ScheduledSession{
		mkSession("a", domain.Monday, "09:00", 60),
		mkSession("b", domain.Monday, "10:00", 30),
	}
	geo := Project(sessions)
	for id, g := range geo {
		assert.Equal(t, 1, g.Columns, "session %s must not be forced side-by-side", id)
		assert.Equal(t, 100.0, g.WidthPct, "no gutter on single columns")
		assert.Equal(t, 0.0, g.LeftPct)
	}
}

func TestProject_TripleSameSlot(t *testing.T) {
	sessions := []domain.ScheduledSession{
		mkSession("a", domain.Monday, "09:00", 30),
		mkSession("b", domain.Monday, "09:00", 30),
		mkSession("c", domain.Monday, "09:00", 30),
	}
	geo := Project(sessions)
	require.Len(t, geo, 3)
	for _, g := range geo {
		assert.Equal(t, 3, g.Columns)
		assert.InDelta(t, 100.0/3-GutterPct, g.WidthPct, 1e-9)
	}
}

func TestProject_DaysIndependent(t *testing.T) {
	// Same slot on different days never collides.
	sessions := []domain.ScheduledSession{
		mkSession("mon", domain.Monday, "09:00", 60),
		mkSession("tue", domain.Tuesday, "09:00", 60),
	}
	geo := Project(sessions)
	assert.Equal(t, 1, geo["mon"].Columns)
	assert.Equal(t, 1, geo["tue"].Columns)
}

func TestProject_CoversEverySession(t *testing.T) {
	var sessions []domain.ScheduledSession
	for i, day := range domain.WeekDays {
		sessions = append(sessions,
			mkSession("x"+string(day), day, "09:00", 60+30*i),
			mkSession("y"+string(day), day, "09:00", 30),
		)
	}
	geo := Project(sessions)
	require.Len(t, geo, len(sessions), "no session may be silently dropped")
	for _, s := range sessions {
		_, ok := geo[s.ID]
		assert.True(t, ok, "missing geometry for %s", s.ID)
	}
}

func TestProject_Empty(t *testing.T) {
	assert.Empty(t, Project(nil))
}

package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolplanner/internal/domain"
	"schoolplanner/internal/repository/memory"
)

// failingStore wraps the in-memory store to force errors on demand.
type failingStore struct {
	*memory.ScheduleStore
	getErr     error
	replaceErr error
}

func (f *failingStore) GetSchedule(ctx context.Context, schoolID string) ([]domain.ScheduledSession, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.ScheduleStore.GetSchedule(ctx, schoolID)
}

func (f *failingStore) ReplaceSchedule(ctx context.Context, schoolID string, sessions []domain.ScheduledSession) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	return f.ScheduleStore.ReplaceSchedule(ctx, schoolID, sessions)
}

func newLoadedEditor(t *testing.T, seed ...domain.ScheduledSession) (*Editor, *memory.ScheduleStore) {
	t.Helper()
	store := memory.NewScheduleStore()
	require.NoError(t, store.ReplaceSchedule(context.Background(), "school-1", seed))
	e := NewEditor(store)
	require.NoError(t, e.Load(context.Background(), "school-1"))
	require.False(t, e.Dirty())
	return e, store
}

func draft(day domain.Weekday, slot string) domain.ScheduledSession {
	return domain.NewScheduledSession(day, slot, "B2", 60, domain.SubjectRef("subj-1"))
}

func TestEditor_AddAssignsFreshID(t *testing.T) {
	e, _ := newLoadedEditor(t)

	added, err := e.Add(draft(domain.Monday, "09:00"))
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.True(t, e.Dirty())
	require.Len(t, e.Sessions(), 1)

	second, err := e.Add(draft(domain.Monday, "09:00"))
	require.NoError(t, err)
	assert.NotEqual(t, added.ID, second.ID)
	assert.Len(t, e.Sessions(), 2)
}

func TestEditor_AddValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.ScheduledSession
	}{
		{name: "missing reference", draft: domain.NewScheduledSession(domain.Monday, "09:00", "B2", 60, domain.SessionRef{})},
		{name: "missing classroom", draft: domain.NewScheduledSession(domain.Monday, "09:00", "", 60, domain.SubjectRef("s"))},
		{name: "bad day", draft: domain.NewScheduledSession("someday", "09:00", "B2", 60, domain.SubjectRef("s"))},
		{name: "missing time slot", draft: domain.NewScheduledSession(domain.Monday, "", "B2", 60, domain.SubjectRef("s"))},
		{name: "non-positive duration", draft: domain.NewScheduledSession(domain.Monday, "09:00", "B2", 0, domain.SubjectRef("s"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newLoadedEditor(t)
			_, err := e.Add(tt.draft)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, e.Sessions(), "failed add must not touch the working list")
			assert.False(t, e.Dirty(), "failed add must not dirty the editor")
		})
	}
}

func TestEditor_EditReplacesFieldsAndReference(t *testing.T) {
	seed := domain.ScheduledSession{
		ID: "s1", Day: domain.Monday, TimeSlot: "09:00", Classroom: "A1",
		Duration: 60, Ref: domain.SubjectRef("subj-1"),
	}
	e, _ := newLoadedEditor(t, seed)

	replacement := domain.NewScheduledSession(domain.Tuesday, "10:00", "C3", 90, domain.CourseRef("course-7"))
	require.NoError(t, e.Edit("s1", replacement))

	got := e.Sessions()[0]
	assert.Equal(t, "s1", got.ID, "edit preserves the id")
	assert.Equal(t, domain.Tuesday, got.Day)
	assert.Equal(t, "C3", got.Classroom)
	assert.Equal(t, domain.RefCourse, got.Ref.Kind(), "switching entity type clears the subject reference")
	assert.Equal(t, "course-7", got.Ref.EntityID())
	assert.True(t, e.Dirty())
}

func TestEditor_EditUnknownID(t *testing.T) {
	e, _ := newLoadedEditor(t)
	err := e.Edit("ghost", draft(domain.Monday, "09:00"))
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, e.Dirty())
}

func TestEditor_Duplicate(t *testing.T) {
	seed := domain.ScheduledSession{
		ID: "s1", Day: domain.Wednesday, TimeSlot: "11:00", Classroom: "Lab",
		Duration: 120, Ref: domain.CourseRef("course-1"),
	}
	e, _ := newLoadedEditor(t, seed)

	clone, err := e.Duplicate("s1")
	require.NoError(t, err)
	assert.NotEqual(t, "s1", clone.ID)
	assert.Equal(t, seed.Day, clone.Day)
	assert.Equal(t, seed.TimeSlot, clone.TimeSlot)
	assert.Equal(t, seed.Classroom, clone.Classroom)
	assert.Equal(t, seed.Duration, clone.Duration)
	assert.Equal(t, seed.Ref, clone.Ref)
	assert.Len(t, e.Sessions(), 2)
	assert.True(t, e.Dirty())

	_, err = e.Duplicate("ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditor_Delete(t *testing.T) {
	e, _ := newLoadedEditor(t,
		domain.ScheduledSession{ID: "s1", Day: domain.Monday, TimeSlot: "09:00", Classroom: "A1", Duration: 60, Ref: domain.SubjectRef("x")},
		domain.ScheduledSession{ID: "s2", Day: domain.Monday, TimeSlot: "10:00", Classroom: "A1", Duration: 60, Ref: domain.SubjectRef("x")},
	)

	e.Delete("s1")
	require.Len(t, e.Sessions(), 1)
	assert.Equal(t, "s2", e.Sessions()[0].ID)
	assert.True(t, e.Dirty())
}

func TestEditor_DeleteUnknownIDIsNoop(t *testing.T) {
	e, _ := newLoadedEditor(t,
		domain.ScheduledSession{ID: "s1", Day: domain.Monday, TimeSlot: "09:00", Classroom: "A1", Duration: 60, Ref: domain.SubjectRef("x")},
	)
	e.Delete("ghost")
	assert.Len(t, e.Sessions(), 1)
	assert.False(t, e.Dirty(), "no-op delete must not dirty the editor")
}

func TestEditor_Move(t *testing.T) {
	seed := domain.ScheduledSession{ID: "s1", Day: domain.Monday, TimeSlot: "09:00", Classroom: "A1", Duration: 60, Ref: domain.SubjectRef("x")}
	e, _ := newLoadedEditor(t, seed)

	require.NoError(t, e.Move("s1", domain.Thursday, "14:30"))
	got := e.Sessions()[0]
	assert.Equal(t, domain.Thursday, got.Day)
	assert.Equal(t, "14:30", got.TimeSlot)
	assert.True(t, e.Dirty())
}

func TestEditor_MoveToSameSlotStaysClean(t *testing.T) {
	seed := domain.ScheduledSession{ID: "s1", Day: domain.Monday, TimeSlot: "09:00", Classroom: "A1", Duration: 60, Ref: domain.SubjectRef("x")}
	e, _ := newLoadedEditor(t, seed)

	require.NoError(t, e.Move("s1", domain.Monday, "09:00"))
	assert.False(t, e.Dirty(), "dropping onto the current slot must not dirty the editor")
	assert.Equal(t, seed, e.Sessions()[0])
}

func TestEditor_MoveValidation(t *testing.T) {
	seed := domain.ScheduledSession{ID: "s1", Day: domain.Monday, TimeSlot: "09:00", Classroom: "A1", Duration: 60, Ref: domain.SubjectRef("x")}
	e, _ := newLoadedEditor(t, seed)

	assert.ErrorIs(t, e.Move("ghost", domain.Monday, "10:00"), domain.ErrNotFound)
	assert.ErrorIs(t, e.Move("s1", "funday", "10:00"), domain.ErrValidation)
	assert.ErrorIs(t, e.Move("s1", domain.Monday, "09:15"), domain.ErrValidation)
	assert.False(t, e.Dirty())
}

func TestEditor_SaveRoundTrip(t *testing.T) {
	e, store := newLoadedEditor(t)

	added, err := e.Add(draft(domain.Friday, "16:00"))
	require.NoError(t, err)
	require.NoError(t, e.Save(context.Background()))
	assert.False(t, e.Dirty())

	// Reloading from the store yields the saved list.
	e2 := NewEditor(store)
	require.NoError(t, e2.Load(context.Background(), "school-1"))
	require.Len(t, e2.Sessions(), 1)
	assert.Equal(t, added, e2.Sessions()[0])
}

func TestEditor_SaveErrorStaysDirty(t *testing.T) {
	store := &failingStore{ScheduleStore: memory.NewScheduleStore(), replaceErr: errors.New("db down")}
	e := NewEditor(store)
	require.NoError(t, e.Load(context.Background(), "school-1"))
	_, err := e.Add(draft(domain.Monday, "09:00"))
	require.NoError(t, err)

	require.Error(t, e.Save(context.Background()))
	assert.True(t, e.Dirty(), "a failed save must not pretend to be clean")
}

func TestEditor_ReloadDiscardsUncommittedEdits(t *testing.T) {
	e, _ := newLoadedEditor(t)
	_, err := e.Add(draft(domain.Monday, "09:00"))
	require.NoError(t, err)
	require.True(t, e.Dirty())

	require.NoError(t, e.Load(context.Background(), "school-1"))
	assert.False(t, e.Dirty())
	assert.Empty(t, e.Sessions(), "unsaved edits are lost on reload")
}

func TestEditor_LoadError(t *testing.T) {
	store := &failingStore{ScheduleStore: memory.NewScheduleStore(), getErr: errors.New("db down")}
	e := NewEditor(store)
	require.Error(t, e.Load(context.Background(), "school-1"))
}

func TestEditor_LayoutTracksWorkingList(t *testing.T) {
	e, _ := newLoadedEditor(t)
	a, err := e.Add(draft(domain.Monday, "09:00"))
	require.NoError(t, err)
	b, err := e.Add(draft(domain.Monday, "09:30"))
	require.NoError(t, err)

	geo := e.Layout()
	require.Len(t, geo, 2)
	assert.Equal(t, 2, geo[a.ID].Columns)
	assert.Equal(t, 2, geo[b.ID].Columns)

	e.Delete(b.ID)
	geo = e.Layout()
	require.Len(t, geo, 1)
	assert.Equal(t, 1, geo[a.ID].Columns, "layout is recomputed from the working list")
}

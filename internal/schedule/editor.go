package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"schoolplanner/internal/domain"
)

// Editor is the in-memory edit session for one school's weekly schedule. It
// holds a working copy of the committed session list plus a dirty flag;
// nothing reaches the store until Save. The editor is single-context by
// design (one user editing one schedule), so it carries no locking. Every
// mutation replaces the working slice rather than mutating it in place.
type Editor struct {
	store    domain.ScheduleStore
	schoolID string
	working  []domain.ScheduledSession
	dirty    bool
	newID    func() string
}

// NewEditor returns an editor bound to the given store. Call Load before any
// other operation.
func NewEditor(store domain.ScheduleStore) *Editor {
	return &Editor{store: store, newID: uuid.NewString}
}

// Load initializes (or re-initializes) the working list from the committed
// schedule of the given school and resets the editor to clean. Any
// uncommitted edits are discarded without warning.
func (e *Editor) Load(ctx context.Context, schoolID string) error {
	sessions, err := e.store.GetSchedule(ctx, schoolID)
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}
	e.schoolID = schoolID
	e.working = sessions
	e.dirty = false
	return nil
}

// Sessions returns a copy of the working list.
func (e *Editor) Sessions() []domain.ScheduledSession {
	out := make([]domain.ScheduledSession, len(e.working))
	copy(out, e.working)
	return out
}

// Dirty reports whether the working list has uncommitted mutations.
func (e *Editor) Dirty() bool { return e.dirty }

// Add validates the draft, assigns it a fresh id, and appends it to the
// working list. On validation failure the working list is untouched.
func (e *Editor) Add(draft domain.ScheduledSession) (domain.ScheduledSession, error) {
	if err := draft.Validate(); err != nil {
		return domain.ScheduledSession{}, err
	}
	draft.ID = e.newID()
	e.working = append(e.Sessions(), draft)
	e.dirty = true
	return draft, nil
}

// Edit replaces the fields of the session with the given id. The id is
// preserved; the replacement is validated first, so a failed edit leaves the
// list untouched. Switching the entity reference from subject to course (or
// back) replaces the whole reference, so the other id cannot linger.
func (e *Editor) Edit(id string, replacement domain.ScheduledSession) error {
	if err := replacement.Validate(); err != nil {
		return err
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("edit session %s: %w", id, domain.ErrNotFound)
	}
	replacement.ID = id
	next := e.Sessions()
	next[idx] = replacement
	e.working = next
	e.dirty = true
	return nil
}

// Duplicate clones the session with the given id under a fresh id, keeping
// day, time, duration, classroom and entity reference.
func (e *Editor) Duplicate(id string) (domain.ScheduledSession, error) {
	idx := e.indexOf(id)
	if idx < 0 {
		return domain.ScheduledSession{}, fmt.Errorf("duplicate session %s: %w", id, domain.ErrNotFound)
	}
	clone := e.working[idx]
	clone.ID = e.newID()
	e.working = append(e.Sessions(), clone)
	e.dirty = true
	return clone, nil
}

// Delete removes the session with the given id. Deleting an unknown id is a
// no-op, not an error.
func (e *Editor) Delete(id string) {
	idx := e.indexOf(id)
	if idx < 0 {
		return
	}
	next := make([]domain.ScheduledSession, 0, len(e.working)-1)
	next = append(next, e.working[:idx]...)
	next = append(next, e.working[idx+1:]...)
	e.working = next
	e.dirty = true
}

// Move reschedules the session with the given id to a new day and time slot.
// Dropping a session onto its current slot is a no-op and, critically, does
// not mark the editor dirty.
func (e *Editor) Move(id string, day domain.Weekday, timeSlot string) error {
	idx := e.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("move session %s: %w", id, domain.ErrNotFound)
	}
	if !day.Valid() {
		return fmt.Errorf("%w: day %q is not a weekday", domain.ErrValidation, day)
	}
	if !IsSlotTime(timeSlot) {
		return fmt.Errorf("%w: time slot %q is not on the grid", domain.ErrValidation, timeSlot)
	}
	cur := e.working[idx]
	if cur.Day == day && cur.TimeSlot == timeSlot {
		return nil
	}
	cur.Day = day
	cur.TimeSlot = timeSlot
	next := e.Sessions()
	next[idx] = cur
	e.working = next
	e.dirty = true
	return nil
}

// Save commits the working list verbatim to the store and resets the editor
// to clean. This is the only path that mutates persisted state.
func (e *Editor) Save(ctx context.Context) error {
	if err := e.store.ReplaceSchedule(ctx, e.schoolID, e.Sessions()); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	e.dirty = false
	return nil
}

// Layout projects the current working list into per-session geometry.
func (e *Editor) Layout() map[string]Geometry {
	return Project(e.working)
}

func (e *Editor) indexOf(id string) int {
	for i, s := range e.working {
		if s.ID == id {
			return i
		}
	}
	return -1
}

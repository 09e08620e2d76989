package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

// Weekday is a day-of-week tag for the weekly schedule grid.
// The school week starts on Saturday.
type Weekday string

const (
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// WeekDays lists the days of the school week in display order.
var WeekDays = []Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid reports whether d is one of the seven known weekday tags.
func (d Weekday) Valid() bool {
	for _, day := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

// RefKind discriminates what a session reference points at.
type RefKind string

const (
	RefSubject RefKind = "subject"
	RefCourse  RefKind = "course"
)

// SessionRef points a scheduled session at exactly one schedulable entity:
// a subject or a course, never both. The zero value means "unset" and fails
// validation, so the "both set" and "both unset" states cannot be built.
type SessionRef struct {
	kind RefKind
	id   string
}

// SubjectRef returns a reference to the subject with the given id.
func SubjectRef(id string) SessionRef { return SessionRef{kind: RefSubject, id: id} }

// CourseRef returns a reference to the course with the given id.
func CourseRef(id string) SessionRef { return SessionRef{kind: RefCourse, id: id} }

// Kind returns what kind of entity the reference points at.
func (r SessionRef) Kind() RefKind { return r.kind }

// EntityID returns the referenced subject or course id.
func (r SessionRef) EntityID() string { return r.id }

// IsZero reports whether the reference is unset.
func (r SessionRef) IsZero() bool { return r.kind == "" || r.id == "" }

// ScheduledSession is a single weekly occurrence of a subject or course on
// one day at one time slot, with a duration and classroom.
// swagger:model ScheduledSession
type ScheduledSession struct {
	ID        string
	Day       Weekday
	TimeSlot  string // "HH:MM", aligned to the grid interval
	Classroom string
	Duration  int // minutes
	Ref       SessionRef
}

// NewScheduledSession returns a session with the given fields. ID is assigned
// by the schedule editor (or repository) on create.
func NewScheduledSession(day Weekday, timeSlot, classroom string, duration int, ref SessionRef) ScheduledSession {
	return ScheduledSession{
		Day:       day,
		TimeSlot:  timeSlot,
		Classroom: classroom,
		Duration:  duration,
		Ref:       ref,
	}
}

// Validate checks the required fields of a session. The returned error wraps
// ErrValidation and names the first offending field.
func (s ScheduledSession) Validate() error {
	if s.Ref.IsZero() {
		return fmt.Errorf("%w: subject or course reference is required", ErrValidation)
	}
	if !s.Day.Valid() {
		return fmt.Errorf("%w: day %q is not a weekday", ErrValidation, s.Day)
	}
	if s.TimeSlot == "" {
		return fmt.Errorf("%w: time slot is required", ErrValidation)
	}
	if s.Classroom == "" {
		return fmt.Errorf("%w: classroom is required", ErrValidation)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	return nil
}

// sessionJSON is the wire shape of a ScheduledSession. Exactly one of
// subject_id and course_id is set.
type sessionJSON struct {
	ID        string  `json:"id"`
	Day       Weekday `json:"day"`
	TimeSlot  string  `json:"time_slot"`
	Classroom string  `json:"classroom"`
	Duration  int     `json:"duration"`
	SubjectID string  `json:"subject_id,omitempty"`
	CourseID  string  `json:"course_id,omitempty"`
}

// MarshalJSON flattens the session reference into subject_id or course_id.
func (s ScheduledSession) MarshalJSON() ([]byte, error) {
	out := sessionJSON{
		ID:        s.ID,
		Day:       s.Day,
		TimeSlot:  s.TimeSlot,
		Classroom: s.Classroom,
		Duration:  s.Duration,
	}
	switch s.Ref.Kind() {
	case RefSubject:
		out.SubjectID = s.Ref.EntityID()
	case RefCourse:
		out.CourseID = s.Ref.EntityID()
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the session reference from subject_id/course_id.
// A body carrying both ids is rejected.
func (s *ScheduledSession) UnmarshalJSON(data []byte) error {
	var in sessionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.SubjectID != "" && in.CourseID != "" {
		return fmt.Errorf("%w: session cannot reference both a subject and a course", ErrValidation)
	}
	*s = ScheduledSession{
		ID:        in.ID,
		Day:       in.Day,
		TimeSlot:  in.TimeSlot,
		Classroom: in.Classroom,
		Duration:  in.Duration,
	}
	switch {
	case in.SubjectID != "":
		s.Ref = SubjectRef(in.SubjectID)
	case in.CourseID != "":
		s.Ref = CourseRef(in.CourseID)
	}
	return nil
}

// ScheduleStore is the persistence boundary for a school's committed session
// list. Replace swaps the whole list atomically; the schedule editor never
// performs partial writes.
type ScheduleStore interface {
	GetSchedule(ctx context.Context, schoolID string) ([]ScheduledSession, error)
	ReplaceSchedule(ctx context.Context, schoolID string, sessions []ScheduledSession) error
}

// ScheduleService defines the business logic for reading and committing a
// school's weekly schedule. ReplaceSchedule validates every session, fills
// in missing ids, and commits the list verbatim; it returns the normalized
// list as stored.
type ScheduleService interface {
	GetSchedule(ctx context.Context, schoolID string) ([]ScheduledSession, error)
	ReplaceSchedule(ctx context.Context, schoolID string, sessions []ScheduledSession) ([]ScheduledSession, error)
}

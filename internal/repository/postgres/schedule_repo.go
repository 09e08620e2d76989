package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"schoolplanner/internal/domain"
)

// ScheduleRepository persists committed session lists. It implements
// domain.ScheduleStore: the whole list is always replaced in one
// transaction, never patched.
type ScheduleRepository struct {
	DB *sql.DB
}

func NewScheduleRepository(db *sql.DB) domain.ScheduleStore {
	return &ScheduleRepository{DB: db}
}

func (r *ScheduleRepository) GetSchedule(ctx context.Context, schoolID string) ([]domain.ScheduledSession, error) {
	query := `
		SELECT id, day, time_slot, classroom, duration, subject_id, course_id
		FROM scheduled_sessions
		WHERE school_id = $1
		ORDER BY day, time_slot, id
	`
	rows, err := r.DB.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sessions []domain.ScheduledSession
	for rows.Next() {
		var (
			s         domain.ScheduledSession
			subjectID sql.NullString
			courseID  sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Day, &s.TimeSlot, &s.Classroom, &s.Duration, &subjectID, &courseID); err != nil {
			return nil, err
		}
		switch {
		case subjectID.Valid:
			s.Ref = domain.SubjectRef(subjectID.String)
		case courseID.Valid:
			s.Ref = domain.CourseRef(courseID.String)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *ScheduleRepository) ReplaceSchedule(ctx context.Context, schoolID string, sessions []domain.ScheduledSession) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace schedule: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM scheduled_sessions WHERE school_id = $1`, schoolID); err != nil {
		return fmt.Errorf("clear schedule: %w", err)
	}

	query := `
		INSERT INTO scheduled_sessions (id, school_id, day, time_slot, classroom, duration, subject_id, course_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, s := range sessions {
		var subjectID, courseID sql.NullString
		switch s.Ref.Kind() {
		case domain.RefSubject:
			subjectID = sql.NullString{String: s.Ref.EntityID(), Valid: true}
		case domain.RefCourse:
			courseID = sql.NullString{String: s.Ref.EntityID(), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, query, s.ID, schoolID, s.Day, s.TimeSlot, s.Classroom, s.Duration, subjectID, courseID); err != nil {
			return fmt.Errorf("insert session %s: %w", s.ID, err)
		}
	}

	return tx.Commit()
}

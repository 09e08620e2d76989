package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolplanner/internal/domain"
)

func TestScheduleRepository_GetSchedule(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    []domain.ScheduledSession
		wantErr bool
	}{
		{
			name: "mixed subject and course sessions",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "day", "time_slot", "classroom", "duration", "subject_id", "course_id"}).
					AddRow("s1", "monday", "09:00", "A1", 60, "subj-1", nil).
					AddRow("s2", "tuesday", "10:30", "Lab", 90, nil, "course-1")
				mock.ExpectQuery(`SELECT id, day, time_slot, classroom, duration, subject_id, course_id`).
					WithArgs("school-1").
					WillReturnRows(rows)
			},
			want: []domain.ScheduledSession{
				{ID: "s1", Day: domain.Monday, TimeSlot: "09:00", Classroom: "A1", Duration: 60, Ref: domain.SubjectRef("subj-1")},
				{ID: "s2", Day: domain.Tuesday, TimeSlot: "10:30", Classroom: "Lab", Duration: 90, Ref: domain.CourseRef("course-1")},
			},
		},
		{
			name: "empty schedule",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, day, time_slot, classroom, duration, subject_id, course_id`).
					WithArgs("school-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "day", "time_slot", "classroom", "duration", "subject_id", "course_id"}))
			},
			want: nil,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, day, time_slot, classroom, duration, subject_id, course_id`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewScheduleRepository(db)
			got, err := repo.GetSchedule(ctx, "school-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScheduleRepository_ReplaceSchedule(t *testing.T) {
	ctx := context.Background()
	sessions := []domain.ScheduledSession{
		{ID: "s1", Day: domain.Monday, TimeSlot: "09:00", Classroom: "A1", Duration: 60, Ref: domain.SubjectRef("subj-1")},
		{ID: "s2", Day: domain.Monday, TimeSlot: "09:30", Classroom: "A2", Duration: 60, Ref: domain.CourseRef("course-1")},
	}

	t.Run("commits delete and inserts in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM scheduled_sessions`).
			WithArgs("school-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`INSERT INTO scheduled_sessions`).
			WithArgs("s1", "school-1", "monday", "09:00", "A1", 60, sql.NullString{String: "subj-1", Valid: true}, sql.NullString{}).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO scheduled_sessions`).
			WithArgs("s2", "school-1", "monday", "09:30", "A2", 60, sql.NullString{}, sql.NullString{String: "course-1", Valid: true}).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewScheduleRepository(db)
		require.NoError(t, repo.ReplaceSchedule(ctx, "school-1", sessions))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on insert failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM scheduled_sessions`).
			WithArgs("school-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO scheduled_sessions`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewScheduleRepository(db)
		require.Error(t, repo.ReplaceSchedule(ctx, "school-1", sessions))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty list clears the schedule", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM scheduled_sessions`).
			WithArgs("school-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		repo := NewScheduleRepository(db)
		require.NoError(t, repo.ReplaceSchedule(ctx, "school-1", nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

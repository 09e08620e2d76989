package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"schoolplanner/internal/domain"
)

type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) domain.CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) CreateLevel(ctx context.Context, level *domain.Level) error {
	query := `INSERT INTO levels (school_id, name) VALUES ($1, $2) RETURNING id`
	return r.DB.QueryRowContext(ctx, query, level.SchoolID, level.Name).Scan(&level.ID)
}

func (r *CatalogRepository) ListLevels(ctx context.Context, schoolID string) ([]*domain.Level, error) {
	query := `SELECT id, school_id, name FROM levels WHERE school_id = $1 ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var levels []*domain.Level
	for rows.Next() {
		level := &domain.Level{}
		if err := rows.Scan(&level.ID, &level.SchoolID, &level.Name); err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

func (r *CatalogRepository) DeleteLevel(ctx context.Context, schoolID, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM levels WHERE school_id = $1 AND id = $2`, schoolID, id)
	return err
}

func (r *CatalogRepository) CreateGroup(ctx context.Context, group *domain.Group) error {
	query := `INSERT INTO groups (school_id, name, level_id) VALUES ($1, $2, $3) RETURNING id`
	return r.DB.QueryRowContext(ctx, query, group.SchoolID, group.Name, group.LevelID).Scan(&group.ID)
}

func (r *CatalogRepository) ListGroups(ctx context.Context, schoolID string) ([]*domain.Group, error) {
	query := `SELECT id, school_id, name, level_id FROM groups WHERE school_id = $1 ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var groups []*domain.Group
	for rows.Next() {
		group := &domain.Group{}
		if err := rows.Scan(&group.ID, &group.SchoolID, &group.Name, &group.LevelID); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

func (r *CatalogRepository) DeleteGroup(ctx context.Context, schoolID, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM groups WHERE school_id = $1 AND id = $2`, schoolID, id)
	return err
}

func (r *CatalogRepository) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	query := `
		INSERT INTO subjects (school_id, name, fee, sessions_per_month, classroom, level_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, subject.SchoolID, subject.Name, subject.Fee,
		subject.SessionsPerMonth, subject.Classroom, subject.LevelID).Scan(&subject.ID)
}

func (r *CatalogRepository) UpdateSubject(ctx context.Context, subject *domain.Subject) error {
	query := `
		UPDATE subjects
		SET name = $3, fee = $4, sessions_per_month = $5, classroom = $6, level_id = $7
		WHERE school_id = $1 AND id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, subject.SchoolID, subject.ID, subject.Name,
		subject.Fee, subject.SessionsPerMonth, subject.Classroom, subject.LevelID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) ListSubjects(ctx context.Context, schoolID string) ([]*domain.Subject, error) {
	query := `
		SELECT id, school_id, name, fee, sessions_per_month, classroom, level_id
		FROM subjects
		WHERE school_id = $1
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var subjects []*domain.Subject
	for rows.Next() {
		subject := &domain.Subject{}
		if err := rows.Scan(&subject.ID, &subject.SchoolID, &subject.Name, &subject.Fee,
			&subject.SessionsPerMonth, &subject.Classroom, &subject.LevelID); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

func (r *CatalogRepository) DeleteSubject(ctx context.Context, schoolID, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM subjects WHERE school_id = $1 AND id = $2`, schoolID, id)
	return err
}

func (r *CatalogRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	query := `
		INSERT INTO courses (school_id, name, fee, teacher_ids)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, course.SchoolID, course.Name, course.Fee,
		pq.Array(course.TeacherIDs)).Scan(&course.ID)
}

func (r *CatalogRepository) UpdateCourse(ctx context.Context, course *domain.Course) error {
	query := `
		UPDATE courses
		SET name = $3, fee = $4, teacher_ids = $5
		WHERE school_id = $1 AND id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, course.SchoolID, course.ID, course.Name, course.Fee, pq.Array(course.TeacherIDs))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) ListCourses(ctx context.Context, schoolID string) ([]*domain.Course, error) {
	query := `SELECT id, school_id, name, fee, teacher_ids FROM courses WHERE school_id = $1 ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var courses []*domain.Course
	for rows.Next() {
		course := &domain.Course{}
		if err := rows.Scan(&course.ID, &course.SchoolID, &course.Name, &course.Fee,
			pq.Array(&course.TeacherIDs)); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *CatalogRepository) DeleteCourse(ctx context.Context, schoolID, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM courses WHERE school_id = $1 AND id = $2`, schoolID, id)
	return err
}

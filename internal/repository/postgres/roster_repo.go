package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"schoolplanner/internal/domain"
)

type RosterRepository struct {
	DB *sql.DB
}

func NewRosterRepository(db *sql.DB) domain.RosterRepository {
	return &RosterRepository{DB: db}
}

func (r *RosterRepository) CreateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	query := `
		INSERT INTO teachers (school_id, name, phone, subject_ids, level_ids, course_ids, salary_type, salary_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, teacher.SchoolID, teacher.Name, teacher.Phone,
		pq.Array(teacher.SubjectIDs), pq.Array(teacher.LevelIDs), pq.Array(teacher.CourseIDs),
		teacher.SalaryType, teacher.SalaryValue).Scan(&teacher.ID)
}

func (r *RosterRepository) UpdateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	query := `
		UPDATE teachers
		SET name = $3, phone = $4, subject_ids = $5, level_ids = $6, course_ids = $7, salary_type = $8, salary_value = $9
		WHERE school_id = $1 AND id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, teacher.SchoolID, teacher.ID, teacher.Name, teacher.Phone,
		pq.Array(teacher.SubjectIDs), pq.Array(teacher.LevelIDs), pq.Array(teacher.CourseIDs),
		teacher.SalaryType, teacher.SalaryValue)
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

func (r *RosterRepository) ListTeachers(ctx context.Context, schoolID string) ([]*domain.Teacher, error) {
	query := `
		SELECT id, school_id, name, phone, subject_ids, level_ids, course_ids, salary_type, salary_value
		FROM teachers
		WHERE school_id = $1
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var teachers []*domain.Teacher
	for rows.Next() {
		teacher := &domain.Teacher{}
		if err := rows.Scan(&teacher.ID, &teacher.SchoolID, &teacher.Name, &teacher.Phone,
			pq.Array(&teacher.SubjectIDs), pq.Array(&teacher.LevelIDs), pq.Array(&teacher.CourseIDs),
			&teacher.SalaryType, &teacher.SalaryValue); err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}
	return teachers, rows.Err()
}

func (r *RosterRepository) DeleteTeacher(ctx context.Context, schoolID, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM teachers WHERE school_id = $1 AND id = $2`, schoolID, id)
	return err
}

func (r *RosterRepository) CreateStudent(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (school_id, name, parent_phone, level_id, group_ids, subject_ids, course_ids, registration_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, student.SchoolID, student.Name, student.ParentPhone,
		student.LevelID, pq.Array(student.GroupIDs), pq.Array(student.SubjectIDs), pq.Array(student.CourseIDs),
		student.RegistrationDate).Scan(&student.ID)
}

func (r *RosterRepository) UpdateStudent(ctx context.Context, student *domain.Student) error {
	query := `
		UPDATE students
		SET name = $3, parent_phone = $4, level_id = $5, group_ids = $6, subject_ids = $7, course_ids = $8
		WHERE school_id = $1 AND id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, student.SchoolID, student.ID, student.Name, student.ParentPhone,
		student.LevelID, pq.Array(student.GroupIDs), pq.Array(student.SubjectIDs), pq.Array(student.CourseIDs))
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

func (r *RosterRepository) ListStudents(ctx context.Context, schoolID string) ([]*domain.Student, error) {
	query := `
		SELECT id, school_id, name, parent_phone, level_id, group_ids, subject_ids, course_ids, registration_date
		FROM students
		WHERE school_id = $1
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var students []*domain.Student
	for rows.Next() {
		student := &domain.Student{}
		if err := rows.Scan(&student.ID, &student.SchoolID, &student.Name, &student.ParentPhone,
			&student.LevelID, pq.Array(&student.GroupIDs), pq.Array(&student.SubjectIDs),
			pq.Array(&student.CourseIDs), &student.RegistrationDate); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func (r *RosterRepository) DeleteStudent(ctx context.Context, schoolID, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM students WHERE school_id = $1 AND id = $2`, schoolID, id)
	return err
}

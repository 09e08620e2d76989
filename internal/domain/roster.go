package domain

import (
	"context"
	"time"
)

// SalaryType enumerates how a teacher is paid.
type SalaryType string

const (
	SalaryFixed      SalaryType = "fixed"
	SalaryPercentage SalaryType = "percentage"
	SalaryPerSession SalaryType = "per_session"
)

// Valid reports whether t is a known salary type.
func (t SalaryType) Valid() bool {
	switch t {
	case SalaryFixed, SalaryPercentage, SalaryPerSession:
		return true
	}
	return false
}

// Teacher is a school staff member assigned to subjects and/or courses.
// swagger:model Teacher
type Teacher struct {
	ID          string     `json:"id"`
	SchoolID    string     `json:"school_id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	SubjectIDs  []string   `json:"subject_ids"`
	LevelIDs    []string   `json:"level_ids"`
	CourseIDs   []string   `json:"course_ids"`
	SalaryType  SalaryType `json:"salary_type"`
	SalaryValue float64    `json:"salary_value"`
}

// Student is an enrolled student.
// swagger:model Student
type Student struct {
	ID               string    `json:"id"`
	SchoolID         string    `json:"school_id"`
	Name             string    `json:"name"`
	ParentPhone      string    `json:"parent_phone"`
	LevelID          string    `json:"level_id"`
	GroupIDs         []string  `json:"group_ids"`
	SubjectIDs       []string  `json:"subject_ids"`
	CourseIDs        []string  `json:"course_ids"`
	RegistrationDate time.Time `json:"registration_date"`
}

// RosterRepository stores a school's teachers and students.
type RosterRepository interface {
	CreateTeacher(ctx context.Context, teacher *Teacher) error
	UpdateTeacher(ctx context.Context, teacher *Teacher) error
	ListTeachers(ctx context.Context, schoolID string) ([]*Teacher, error)
	DeleteTeacher(ctx context.Context, schoolID, id string) error

	CreateStudent(ctx context.Context, student *Student) error
	UpdateStudent(ctx context.Context, student *Student) error
	ListStudents(ctx context.Context, schoolID string) ([]*Student, error)
	DeleteStudent(ctx context.Context, schoolID, id string) error
}

// RosterService defines teacher and student management for a school.
type RosterService interface {
	AddTeacher(ctx context.Context, teacher *Teacher) (*Teacher, error)
	UpdateTeacher(ctx context.Context, teacher *Teacher) (*Teacher, error)
	ListTeachers(ctx context.Context, schoolID string) ([]*Teacher, error)
	DeleteTeacher(ctx context.Context, schoolID, id string) error

	AddStudent(ctx context.Context, student *Student) (*Student, error)
	UpdateStudent(ctx context.Context, student *Student) (*Student, error)
	ListStudents(ctx context.Context, schoolID string) ([]*Student, error)
	DeleteStudent(ctx context.Context, schoolID, id string) error
}

package domain

import "context"

// Level is a school grade level (e.g. "Grade 7").
// swagger:model Level
type Level struct {
	ID       string `json:"id"`
	SchoolID string `json:"school_id"`
	Name     string `json:"name"`
}

// Group is a named student group within a level.
// swagger:model Group
type Group struct {
	ID       string `json:"id"`
	SchoolID string `json:"school_id"`
	Name     string `json:"name"`
	LevelID  string `json:"level_id"`
}

// Subject is a level-bound recurring class with a monthly fee and a default
// classroom.
// swagger:model Subject
type Subject struct {
	ID               string  `json:"id"`
	SchoolID         string  `json:"school_id"`
	Name             string  `json:"name"`
	Fee              float64 `json:"fee"`
	SessionsPerMonth int     `json:"sessions_per_month"`
	Classroom        string  `json:"classroom"`
	LevelID          string  `json:"level_id"`
}

// Course is a standalone training course, not bound to a level.
// swagger:model Course
type Course struct {
	ID         string   `json:"id"`
	SchoolID   string   `json:"school_id"`
	Name       string   `json:"name"`
	Fee        float64  `json:"fee"`
	TeacherIDs []string `json:"teacher_ids"`
}

// CatalogRepository stores the schedulable entities of a school: levels,
// groups, subjects and courses.
type CatalogRepository interface {
	CreateLevel(ctx context.Context, level *Level) error
	ListLevels(ctx context.Context, schoolID string) ([]*Level, error)
	DeleteLevel(ctx context.Context, schoolID, id string) error

	CreateGroup(ctx context.Context, group *Group) error
	ListGroups(ctx context.Context, schoolID string) ([]*Group, error)
	DeleteGroup(ctx context.Context, schoolID, id string) error

	CreateSubject(ctx context.Context, subject *Subject) error
	UpdateSubject(ctx context.Context, subject *Subject) error
	ListSubjects(ctx context.Context, schoolID string) ([]*Subject, error)
	DeleteSubject(ctx context.Context, schoolID, id string) error

	CreateCourse(ctx context.Context, course *Course) error
	UpdateCourse(ctx context.Context, course *Course) error
	ListCourses(ctx context.Context, schoolID string) ([]*Course, error)
	DeleteCourse(ctx context.Context, schoolID, id string) error
}

// CatalogService defines level/group/subject/course management for a school.
type CatalogService interface {
	AddLevel(ctx context.Context, schoolID, name string) (*Level, error)
	ListLevels(ctx context.Context, schoolID string) ([]*Level, error)
	DeleteLevel(ctx context.Context, schoolID, id string) error

	AddGroup(ctx context.Context, schoolID, name, levelID string) (*Group, error)
	ListGroups(ctx context.Context, schoolID string) ([]*Group, error)
	DeleteGroup(ctx context.Context, schoolID, id string) error

	AddSubject(ctx context.Context, subject *Subject) (*Subject, error)
	UpdateSubject(ctx context.Context, subject *Subject) (*Subject, error)
	ListSubjects(ctx context.Context, schoolID string) ([]*Subject, error)
	DeleteSubject(ctx context.Context, schoolID, id string) error

	AddCourse(ctx context.Context, course *Course) (*Course, error)
	UpdateCourse(ctx context.Context, course *Course) (*Course, error)
	ListCourses(ctx context.Context, schoolID string) ([]*Course, error)
	DeleteCourse(ctx context.Context, schoolID, id string) error
}

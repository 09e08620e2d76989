package postgres

import (
	"context"
	"database/sql"

	"schoolplanner/internal/domain"
)

type SchoolRepository struct {
	DB *sql.DB
}

func NewSchoolRepository(db *sql.DB) domain.SchoolRepository {
	return &SchoolRepository{DB: db}
}

const schoolColumns = `id, name, logo, owner_code_hash, staff_code_hash, is_active, trial_end_date, created_at, updated_at`

func scanSchool(row interface{ Scan(...any) error }) (*domain.School, error) {
	school := &domain.School{}
	var trialEnd sql.NullTime
	err := row.Scan(&school.ID, &school.Name, &school.Logo, &school.OwnerCodeHash, &school.StaffCodeHash,
		&school.IsActive, &trialEnd, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if trialEnd.Valid {
		school.TrialEndDate = trialEnd.Time
	}
	return school, nil
}

func (r *SchoolRepository) Create(ctx context.Context, school *domain.School) error {
	query := `
		INSERT INTO schools (name, logo, owner_code_hash, staff_code_hash, is_active, trial_end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var trialEnd sql.NullTime
	if !school.TrialEndDate.IsZero() {
		trialEnd = sql.NullTime{Time: school.TrialEndDate, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query, school.Name, school.Logo, school.OwnerCodeHash, school.StaffCodeHash,
		school.IsActive, trialEnd, school.CreatedAt, school.UpdatedAt).Scan(&school.ID)
}

func (r *SchoolRepository) GetByID(ctx context.Context, id string) (*domain.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools WHERE id = $1`
	school, err := scanSchool(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return school, nil
}

func (r *SchoolRepository) List(ctx context.Context) ([]*domain.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var schools []*domain.School
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, err
		}
		schools = append(schools, school)
	}
	return schools, rows.Err()
}

func (r *SchoolRepository) UpdateDetails(ctx context.Context, id, name, logo string) (*domain.School, error) {
	query := `
		UPDATE schools
		SET name = $2, logo = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + schoolColumns
	school, err := scanSchool(r.DB.QueryRowContext(ctx, query, id, name, logo))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return school, nil
}

func (r *SchoolRepository) SetActive(ctx context.Context, id string, active bool) (*domain.School, error) {
	query := `
		UPDATE schools
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + schoolColumns
	school, err := scanSchool(r.DB.QueryRowContext(ctx, query, id, active))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return school, nil
}

func (r *SchoolRepository) UpdateCodes(ctx context.Context, id, ownerCodeHash, staffCodeHash string) error {
	query := `
		UPDATE schools
		SET owner_code_hash = $2, staff_code_hash = $3, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, id, ownerCodeHash, staffCodeHash)
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

func (r *SchoolRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM schools WHERE id = $1`, id)
	return err
}

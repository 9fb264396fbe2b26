package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/dberrors"
)

// TechnologyRepository handles database operations for technology tags
type TechnologyRepository struct {
	db *pgxpool.Pool
}

// NewTechnologyRepository creates a new technology repository
func NewTechnologyRepository(db *pgxpool.Pool) *TechnologyRepository {
	return &TechnologyRepository{db: db}
}

// CreateTechnology inserts a new technology tag
func (r *TechnologyRepository) CreateTechnology(ctx context.Context, tech *models.Technology) (*models.Technology, error) {
	query := `INSERT INTO technologies (name, description) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRow(ctx, query, tech.Name, tech.Description).Scan(&tech.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrTechnologyAlreadyExists
		}
		return nil, err
	}
	return tech, nil
}

// GetTechnologyByID retrieves a technology by ID
func (r *TechnologyRepository) GetTechnologyByID(ctx context.Context, id int64) (*models.Technology, error) {
	query := `SELECT id, name, description FROM technologies WHERE id = $1`

	var tech models.Technology
	err := r.db.QueryRow(ctx, query, id).Scan(&tech.ID, &tech.Name, &tech.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTechnologyNotFound
		}
		return nil, err
	}
	return &tech, nil
}

// ListTechnologies retrieves all technology tags ordered by name
func (r *TechnologyRepository) ListTechnologies(ctx context.Context) ([]*models.Technology, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, description FROM technologies ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var technologies []*models.Technology
	for rows.Next() {
		var tech models.Technology
		if err := rows.Scan(&tech.ID, &tech.Name, &tech.Description); err != nil {
			return nil, err
		}
		technologies = append(technologies, &tech)
	}
	return technologies, rows.Err()
}

// ListTechnologiesByCourse retrieves the technology tags linked to a course
func (r *TechnologyRepository) ListTechnologiesByCourse(ctx context.Context, courseID int64) ([]*models.Technology, error) {
	query := `
		SELECT t.id, t.name, t.description
		FROM technologies t
		JOIN course_technologies ct ON ct.technology_id = t.id
		WHERE ct.course_id = $1
		ORDER BY t.name`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var technologies []*models.Technology
	for rows.Next() {
		var tech models.Technology
		if err := rows.Scan(&tech.ID, &tech.Name, &tech.Description); err != nil {
			return nil, err
		}
		technologies = append(technologies, &tech)
	}
	return technologies, rows.Err()
}

// UpdateTechnology persists changed technology fields
func (r *TechnologyRepository) UpdateTechnology(ctx context.Context, tech *models.Technology) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE technologies SET name = $1, description = $2 WHERE id = $3",
		tech.Name, tech.Description, tech.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTechnologyAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTechnologyNotFound
	}
	return nil
}

// DeleteTechnology removes a technology tag and its course links
func (r *TechnologyRepository) DeleteTechnology(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM technologies WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTechnologyNotFound
	}
	return nil
}

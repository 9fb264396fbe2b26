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

// AssignmentRepository handles database operations for course assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateAssignment inserts a new assignment
func (r *AssignmentRepository) CreateAssignment(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	query := `
		INSERT INTO assignments (course_id, title, type, total_points, passing_score, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		assignment.CourseID,
		assignment.Title,
		assignment.Type,
		assignment.TotalPoints,
		assignment.PassingScore,
		assignment.Description,
	).Scan(&assignment.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return assignment, nil
}

// GetAssignmentByID retrieves an assignment by ID
func (r *AssignmentRepository) GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error) {
	query := `
		SELECT id, course_id, title, type, total_points, passing_score, description
		FROM assignments
		WHERE id = $1`

	var assignment models.Assignment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.CourseID,
		&assignment.Title,
		&assignment.Type,
		&assignment.TotalPoints,
		&assignment.PassingScore,
		&assignment.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// ListAssignmentsByCourse retrieves all assignments attached to a course
func (r *AssignmentRepository) ListAssignmentsByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error) {
	query := `
		SELECT id, course_id, title, type, total_points, passing_score, description
		FROM assignments
		WHERE course_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		var assignment models.Assignment
		err := rows.Scan(
			&assignment.ID,
			&assignment.CourseID,
			&assignment.Title,
			&assignment.Type,
			&assignment.TotalPoints,
			&assignment.PassingScore,
			&assignment.Description,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, &assignment)
	}
	return assignments, rows.Err()
}

// UpdateAssignment persists changed assignment fields
func (r *AssignmentRepository) UpdateAssignment(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET title = $1, type = $2, total_points = $3, passing_score = $4, description = $5
		WHERE id = $6`

	tag, err := r.db.Exec(ctx, query,
		assignment.Title,
		assignment.Type,
		assignment.TotalPoints,
		assignment.PassingScore,
		assignment.Description,
		assignment.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

// DeleteAssignment removes an assignment
func (r *AssignmentRepository) DeleteAssignment(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM assignments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

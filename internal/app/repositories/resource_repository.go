package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/dberrors"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/helpers"
)

// ResourceRepository handles database operations for lesson resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// CreateResource appends a resource at the end of its lesson
func (r *ResourceRepository) CreateResource(ctx context.Context, resource *models.Resource) (*models.Resource, error) {
	query := `
		INSERT INTO resources (lesson_id, title, type, url, path, storage_provider, description, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, (SELECT COALESCE(MAX(position), 0) + 1 FROM resources WHERE lesson_id = $1))
		RETURNING id, position`

	err := r.db.QueryRow(ctx, query,
		resource.LessonID,
		resource.Title,
		resource.Type,
		helpers.GetNullString(resource.URL),
		helpers.GetNullString(resource.Path),
		resource.StorageProvider,
		resource.Description,
	).Scan(&resource.ID, &resource.Position)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, err
	}
	return resource, nil
}

// GetResourceByID retrieves a resource by ID
func (r *ResourceRepository) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	query := `
		SELECT id, lesson_id, title, type, url, path, storage_provider, description, position
		FROM resources
		WHERE id = $1`

	var resource models.Resource
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resource.ID,
		&resource.LessonID,
		&resource.Title,
		&resource.Type,
		&resource.URL,
		&resource.Path,
		&resource.StorageProvider,
		&resource.Description,
		&resource.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonResourceNotFound
		}
		return nil, err
	}
	return &resource, nil
}

// ListResourcesByLesson retrieves all resources of a lesson in position order
func (r *ResourceRepository) ListResourcesByLesson(ctx context.Context, lessonID int64) ([]*models.Resource, error) {
	query := `
		SELECT id, lesson_id, title, type, url, path, storage_provider, description, position
		FROM resources
		WHERE lesson_id = $1
		ORDER BY position`

	rows, err := r.db.Query(ctx, query, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		var resource models.Resource
		err := rows.Scan(
			&resource.ID,
			&resource.LessonID,
			&resource.Title,
			&resource.Type,
			&resource.URL,
			&resource.Path,
			&resource.StorageProvider,
			&resource.Description,
			&resource.Position,
		)
		if err != nil {
			return nil, err
		}
		resources = append(resources, &resource)
	}
	return resources, rows.Err()
}

// ListResourcesByCourse retrieves all resources of a course keyed by lesson.
// Used when assembling the full course tree.
func (r *ResourceRepository) ListResourcesByCourse(ctx context.Context, courseID int64) (map[int64][]*models.Resource, error) {
	query := `
		SELECT rs.id, rs.lesson_id, rs.title, rs.type, rs.url, rs.path, rs.storage_provider, rs.description, rs.position
		FROM resources rs
		JOIN lessons l ON l.id = rs.lesson_id
		JOIN chapters ch ON ch.id = l.chapter_id
		WHERE ch.course_id = $1
		ORDER BY rs.lesson_id, rs.position`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byLesson := make(map[int64][]*models.Resource)
	for rows.Next() {
		var resource models.Resource
		err := rows.Scan(
			&resource.ID,
			&resource.LessonID,
			&resource.Title,
			&resource.Type,
			&resource.URL,
			&resource.Path,
			&resource.StorageProvider,
			&resource.Description,
			&resource.Position,
		)
		if err != nil {
			return nil, err
		}
		byLesson[resource.LessonID] = append(byLesson[resource.LessonID], &resource)
	}
	return byLesson, rows.Err()
}

// UpdateResource persists changed resource fields
func (r *ResourceRepository) UpdateResource(ctx context.Context, resource *models.Resource) error {
	query := `
		UPDATE resources
		SET title = $1, type = $2, url = $3, path = $4, storage_provider = $5, description = $6
		WHERE id = $7`

	tag, err := r.db.Exec(ctx, query,
		resource.Title,
		resource.Type,
		helpers.GetNullString(resource.URL),
		helpers.GetNullString(resource.Path),
		resource.StorageProvider,
		resource.Description,
		resource.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLessonResourceNotFound
	}
	return nil
}

// DeleteResource removes a resource and closes the position gap among its siblings
func (r *ResourceRepository) DeleteResource(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var lessonID int64
	var position int
	err = tx.QueryRow(ctx, "DELETE FROM resources WHERE id = $1 RETURNING lesson_id, position", id).
		Scan(&lessonID, &position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrLessonResourceNotFound
		}
		return err
	}

	_, err = tx.Exec(ctx,
		"UPDATE resources SET position = position - 1 WHERE lesson_id = $1 AND position > $2",
		lessonID, position)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

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

// ChapterRepository handles database operations for chapters
type ChapterRepository struct {
	db *pgxpool.Pool
}

// NewChapterRepository creates a new chapter repository
func NewChapterRepository(db *pgxpool.Pool) *ChapterRepository {
	return &ChapterRepository{db: db}
}

// CreateChapter appends a chapter at the end of its course
func (r *ChapterRepository) CreateChapter(ctx context.Context, chapter *models.Chapter) (*models.Chapter, error) {
	query := `
		INSERT INTO chapters (course_id, title, status, position)
		VALUES ($1, $2, $3, (SELECT COALESCE(MAX(position), 0) + 1 FROM chapters WHERE course_id = $1))
		RETURNING id, position`

	err := r.db.QueryRow(ctx, query,
		chapter.CourseID,
		chapter.Title,
		chapter.Status,
	).Scan(&chapter.ID, &chapter.Position)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return chapter, nil
}

// GetChapterByID retrieves a chapter by ID
func (r *ChapterRepository) GetChapterByID(ctx context.Context, id int64) (*models.Chapter, error) {
	query := `SELECT id, course_id, title, status, position FROM chapters WHERE id = $1`

	var chapter models.Chapter
	err := r.db.QueryRow(ctx, query, id).Scan(
		&chapter.ID,
		&chapter.CourseID,
		&chapter.Title,
		&chapter.Status,
		&chapter.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChapterNotFound
		}
		return nil, err
	}
	return &chapter, nil
}

// ListChaptersByCourse retrieves all chapters of a course in position order
func (r *ChapterRepository) ListChaptersByCourse(ctx context.Context, courseID int64) ([]*models.Chapter, error) {
	query := `SELECT id, course_id, title, status, position FROM chapters WHERE course_id = $1 ORDER BY position`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*models.Chapter
	for rows.Next() {
		var chapter models.Chapter
		err := rows.Scan(
			&chapter.ID,
			&chapter.CourseID,
			&chapter.Title,
			&chapter.Status,
			&chapter.Position,
		)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, &chapter)
	}
	return chapters, rows.Err()
}

// UpdateChapter persists changed chapter fields
func (r *ChapterRepository) UpdateChapter(ctx context.Context, chapter *models.Chapter) error {
	query := `UPDATE chapters SET title = $1, status = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, chapter.Title, chapter.Status, chapter.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrChapterNotFound
	}
	return nil
}

// DeleteChapter removes a chapter and closes the position gap among
// its siblings. Lessons and resources cascade away with it.
func (r *ChapterRepository) DeleteChapter(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var courseID int64
	var position int
	err = tx.QueryRow(ctx, "DELETE FROM chapters WHERE id = $1 RETURNING course_id, position", id).
		Scan(&courseID, &position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrChapterNotFound
		}
		return err
	}

	_, err = tx.Exec(ctx,
		"UPDATE chapters SET position = position - 1 WHERE course_id = $1 AND position > $2",
		courseID, position)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

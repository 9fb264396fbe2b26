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

// LessonRepository handles database operations for lessons
type LessonRepository struct {
	db *pgxpool.Pool
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{db: db}
}

// CreateLesson appends a lesson at the end of its chapter
func (r *LessonRepository) CreateLesson(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	query := `
		INSERT INTO lessons (chapter_id, title, description, status, video_url, duration, is_preview, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, (SELECT COALESCE(MAX(position), 0) + 1 FROM lessons WHERE chapter_id = $1))
		RETURNING id, position`

	err := r.db.QueryRow(ctx, query,
		lesson.ChapterID,
		lesson.Title,
		lesson.Description,
		lesson.Status,
		helpers.GetNullString(lesson.VideoURL),
		lesson.Duration,
		lesson.IsPreview,
	).Scan(&lesson.ID, &lesson.Position)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrChapterNotFound
		}
		return nil, err
	}
	return lesson, nil
}

// GetLessonByID retrieves a lesson by ID
func (r *LessonRepository) GetLessonByID(ctx context.Context, id int64) (*models.Lesson, error) {
	query := `
		SELECT id, chapter_id, title, description, status, video_url, duration, is_preview, position
		FROM lessons
		WHERE id = $1`

	var lesson models.Lesson
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.ChapterID,
		&lesson.Title,
		&lesson.Description,
		&lesson.Status,
		&lesson.VideoURL,
		&lesson.Duration,
		&lesson.IsPreview,
		&lesson.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

// ListLessonsByChapter retrieves all lessons of a chapter in position order
func (r *LessonRepository) ListLessonsByChapter(ctx context.Context, chapterID int64) ([]*models.Lesson, error) {
	query := `
		SELECT id, chapter_id, title, description, status, video_url, duration, is_preview, position
		FROM lessons
		WHERE chapter_id = $1
		ORDER BY position`

	rows, err := r.db.Query(ctx, query, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []*models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.ChapterID,
			&lesson.Title,
			&lesson.Description,
			&lesson.Status,
			&lesson.VideoURL,
			&lesson.Duration,
			&lesson.IsPreview,
			&lesson.Position,
		)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, &lesson)
	}
	return lessons, rows.Err()
}

// ListLessonsByCourse retrieves all lessons of a course keyed by chapter.
// Used when assembling the full course tree.
func (r *LessonRepository) ListLessonsByCourse(ctx context.Context, courseID int64) (map[int64][]*models.Lesson, error) {
	query := `
		SELECT l.id, l.chapter_id, l.title, l.description, l.status, l.video_url, l.duration, l.is_preview, l.position
		FROM lessons l
		JOIN chapters ch ON ch.id = l.chapter_id
		WHERE ch.course_id = $1
		ORDER BY l.chapter_id, l.position`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byChapter := make(map[int64][]*models.Lesson)
	for rows.Next() {
		var lesson models.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.ChapterID,
			&lesson.Title,
			&lesson.Description,
			&lesson.Status,
			&lesson.VideoURL,
			&lesson.Duration,
			&lesson.IsPreview,
			&lesson.Position,
		)
		if err != nil {
			return nil, err
		}
		byChapter[lesson.ChapterID] = append(byChapter[lesson.ChapterID], &lesson)
	}
	return byChapter, rows.Err()
}

// UpdateLesson persists changed lesson fields
func (r *LessonRepository) UpdateLesson(ctx context.Context, lesson *models.Lesson) error {
	query := `
		UPDATE lessons
		SET title = $1, description = $2, status = $3, video_url = $4, duration = $5, is_preview = $6
		WHERE id = $7`

	tag, err := r.db.Exec(ctx, query,
		lesson.Title,
		lesson.Description,
		lesson.Status,
		helpers.GetNullString(lesson.VideoURL),
		lesson.Duration,
		lesson.IsPreview,
		lesson.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLessonNotFound
	}
	return nil
}

// DeleteLesson removes a lesson and closes the position gap among its
// siblings. Resources cascade away with it.
func (r *LessonRepository) DeleteLesson(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var chapterID int64
	var position int
	err = tx.QueryRow(ctx, "DELETE FROM lessons WHERE id = $1 RETURNING chapter_id, position", id).
		Scan(&chapterID, &position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrLessonNotFound
		}
		return err
	}

	_, err = tx.Exec(ctx,
		"UPDATE lessons SET position = position - 1 WHERE chapter_id = $1 AND position > $2",
		chapterID, position)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

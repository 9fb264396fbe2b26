package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/dberrors"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/helpers"
)

// CatalogQuery carries the filter and sort parameters for catalog listings.
type CatalogQuery struct {
	SearchQuery string
	Category    string
	PriceMin    float64
	PriceMax    float64
	Levels      []models.CourseLevel
	Sort        models.CatalogSort
	Page        int
	PageSize    int
}

// catalogNewWindow is how long a course counts as "new" after publication.
const catalogNewWindow = 30 * 24 * time.Hour

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCourse inserts a new course and returns it with the generated ID
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	query := `
		INSERT INTO courses (title, slug, short_summary, thumbnail, category, price, is_free, level, status, teacher_id, institute_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		course.Title,
		course.Slug,
		course.ShortSummary,
		helpers.GetNullString(course.Thumbnail),
		course.Category,
		course.Price,
		course.IsFree,
		course.Level,
		course.Status,
		course.TeacherID,
		helpers.GetNullInt64(course.InstituteID),
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_slug_key") {
			return nil, apperrors.ErrSlugAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrInstituteNotFound
		}
		return nil, err
	}
	return course, nil
}

// GetCourseByID retrieves a course row without relations
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, title, slug, short_summary, thumbnail, category, price, is_free, level, status, teacher_id, institute_id, created_at, updated_at
		FROM courses
		WHERE id = $1`

	course, err := r.scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// GetCourseBySlug retrieves a course row by its slug
func (r *CourseRepository) GetCourseBySlug(ctx context.Context, slug string) (*models.Course, error) {
	query := `
		SELECT id, title, slug, short_summary, thumbnail, category, price, is_free, level, status, teacher_id, institute_id, created_at, updated_at
		FROM courses
		WHERE slug = $1`

	course, err := r.scanCourse(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// SlugExists checks whether a slug is already taken
func (r *CourseRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM courses WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// ListCatalog retrieves published courses matching the catalog filters.
// Rating and enrolled counts are aggregated from reviews and enrollments.
func (r *CourseRepository) ListCatalog(ctx context.Context, q CatalogQuery) ([]*models.CatalogEntry, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.PageSize)

	query := r.sb.Select(
		"c.id", "c.title", "c.slug",
		"u.first_name || ' ' || u.last_name AS teacher_name",
		"c.category", "c.price", "c.is_free", "c.level", "c.thumbnail", "c.created_at",
		"COALESCE(AVG(rv.rating), 0) AS rating",
		"COUNT(DISTINCT e.id) AS enrolled_count",
	).
		Column("COUNT(*) OVER() AS total_count").
		From("courses c").
		Join("users u ON u.id = c.teacher_id").
		LeftJoin("reviews rv ON rv.course_id = c.id").
		LeftJoin("enrollments e ON e.course_id = c.id").
		Where(squirrel.Eq{"c.status": models.StatusPublished}).
		GroupBy("c.id", "u.first_name", "u.last_name")

	if q.SearchQuery != "" {
		pattern := "%" + q.SearchQuery + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"c.title": pattern},
			squirrel.ILike{"u.first_name || ' ' || u.last_name": pattern},
		})
	}
	if q.Category != "" && q.Category != "All" {
		query = query.Where(squirrel.Eq{"c.category": q.Category})
	}
	query = query.Where(squirrel.GtOrEq{"c.price": q.PriceMin})
	query = query.Where(squirrel.LtOrEq{"c.price": q.PriceMax})
	if len(q.Levels) > 0 {
		query = query.Where(squirrel.Eq{"c.level": q.Levels})
	}

	switch q.Sort {
	case models.SortNew:
		query = query.OrderBy("c.created_at DESC")
	case models.SortRating:
		query = query.OrderBy("rating DESC", "c.created_at DESC")
	case models.SortPriceLow:
		query = query.OrderBy("c.price ASC", "c.created_at DESC")
	case models.SortPriceHigh:
		query = query.OrderBy("c.price DESC", "c.created_at DESC")
	default: // popularity
		query = query.OrderBy("enrolled_count DESC", "c.created_at DESC")
	}

	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	newCutoff := time.Now().Add(-catalogNewWindow)

	var entries []*models.CatalogEntry
	var total int64
	for rows.Next() {
		var e models.CatalogEntry
		err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Slug,
			&e.TeacherName,
			&e.Category,
			&e.Price,
			&e.IsFree,
			&e.Level,
			&e.Thumbnail,
			&e.CreatedAt,
			&e.Rating,
			&e.EnrolledCount,
			&total,
		)
		if err != nil {
			return nil, 0, err
		}
		e.IsNew = e.CreatedAt.After(newCutoff)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// ListCoursesByTeacher retrieves all courses owned by a teacher, paginated
func (r *CourseRepository) ListCoursesByTeacher(ctx context.Context, teacherID int64, page, pageSize int) ([]*models.Course, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	query := r.sb.Select(
		"id", "title", "slug", "short_summary", "thumbnail", "category", "price",
		"is_free", "level", "status", "teacher_id", "institute_id", "created_at", "updated_at",
	).
		Column("COUNT(*) OVER() AS total_count").
		From("courses").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courses []*models.Course
	var total int64
	for rows.Next() {
		var c models.Course
		err := rows.Scan(
			&c.ID, &c.Title, &c.Slug, &c.ShortSummary, &c.Thumbnail, &c.Category,
			&c.Price, &c.IsFree, &c.Level, &c.Status, &c.TeacherID, &c.InstituteID,
			&c.CreatedAt, &c.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// UpdateCourse persists changed course fields. The slug is never rewritten.
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, short_summary = $2, thumbnail = $3, category = $4, price = $5,
		    is_free = $6, level = $7, status = $8, institute_id = $9, updated_at = NOW()
		WHERE id = $10`

	tag, err := r.db.Exec(ctx, query,
		course.Title,
		course.ShortSummary,
		helpers.GetNullString(course.Thumbnail),
		course.Category,
		course.Price,
		course.IsFree,
		course.Level,
		course.Status,
		helpers.GetNullInt64(course.InstituteID),
		course.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInstituteNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// DeleteCourse removes a course. Chapters, lessons, resources and
// assignments go with it via ON DELETE CASCADE.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// SetCourseTechnologies replaces the technology tags linked to a course
func (r *CourseRepository) SetCourseTechnologies(ctx context.Context, courseID int64, technologyIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM course_technologies WHERE course_id = $1", courseID); err != nil {
		return err
	}
	for _, techID := range technologyIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO course_technologies (course_id, technology_id) VALUES ($1, $2)",
			courseID, techID)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrTechnologyNotFound
			}
			return err
		}
	}
	return tx.Commit(ctx)
}

// CreateCourseTree persists a full in-memory course outline in one
// transaction. Used by the import endpoint after outline validation.
func (r *CourseRepository) CreateCourseTree(ctx context.Context, course *models.Course) (*models.Course, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO courses (title, slug, short_summary, thumbnail, category, price, is_free, level, status, teacher_id, institute_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		course.Title, course.Slug, course.ShortSummary,
		helpers.GetNullString(course.Thumbnail),
		course.Category, course.Price, course.IsFree, course.Level, course.Status,
		course.TeacherID, helpers.GetNullInt64(course.InstituteID),
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_slug_key") {
			return nil, apperrors.ErrSlugAlreadyExists
		}
		return nil, err
	}

	for _, chapter := range course.Chapters {
		chapter.CourseID = course.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO chapters (course_id, title, status, position)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			chapter.CourseID, chapter.Title, chapter.Status, chapter.Position,
		).Scan(&chapter.ID)
		if err != nil {
			return nil, err
		}

		for _, lesson := range chapter.Lessons {
			lesson.ChapterID = chapter.ID
			err = tx.QueryRow(ctx, `
				INSERT INTO lessons (chapter_id, title, description, status, video_url, duration, is_preview, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id`,
				lesson.ChapterID, lesson.Title, lesson.Description, lesson.Status,
				helpers.GetNullString(lesson.VideoURL), lesson.Duration, lesson.IsPreview, lesson.Position,
			).Scan(&lesson.ID)
			if err != nil {
				return nil, err
			}

			for _, resource := range lesson.Resources {
				resource.LessonID = lesson.ID
				err = tx.QueryRow(ctx, `
					INSERT INTO resources (lesson_id, title, type, url, path, storage_provider, description, position)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
					RETURNING id`,
					resource.LessonID, resource.Title, resource.Type,
					helpers.GetNullString(resource.URL), helpers.GetNullString(resource.Path),
					resource.StorageProvider, resource.Description, resource.Position,
				).Scan(&resource.ID)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	for _, assignment := range course.Assignments {
		assignment.CourseID = course.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO assignments (course_id, title, type, total_points, passing_score, description)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			assignment.CourseID, assignment.Title, assignment.Type,
			assignment.TotalPoints, assignment.PassingScore, assignment.Description,
		).Scan(&assignment.ID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return course, nil
}

// ListCategories returns the distinct categories of published courses
func (r *CourseRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT DISTINCT category FROM courses WHERE status = $1 ORDER BY category",
		models.StatusPublished)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CourseRepository) scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Slug,
		&c.ShortSummary,
		&c.Thumbnail,
		&c.Category,
		&c.Price,
		&c.IsFree,
		&c.Level,
		&c.Status,
		&c.TeacherID,
		&c.InstituteID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

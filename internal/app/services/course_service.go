package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/repositories"
	"github.com/kimhouy1997/lms-portal-sub000/internal/domain"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
)

// CourseService handles course authoring and catalog operations
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	chapterRepo    *repositories.ChapterRepository
	lessonRepo     *repositories.LessonRepository
	resourceRepo   *repositories.ResourceRepository
	assignmentRepo *repositories.AssignmentRepository
	technologyRepo *repositories.TechnologyRepository
	logger         zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	chapterRepo *repositories.ChapterRepository,
	lessonRepo *repositories.LessonRepository,
	resourceRepo *repositories.ResourceRepository,
	assignmentRepo *repositories.AssignmentRepository,
	technologyRepo *repositories.TechnologyRepository,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		chapterRepo:    chapterRepo,
		lessonRepo:     lessonRepo,
		resourceRepo:   resourceRepo,
		assignmentRepo: assignmentRepo,
		technologyRepo: technologyRepo,
		logger:         logger,
	}
}

// mapDomainError translates outline rule errors onto the API taxonomy.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return apperrors.NewCustomError(apperrors.ErrMissingField, err.Error())
	case errors.Is(err, domain.ErrInvalidRange):
		return apperrors.NewCustomError(apperrors.ErrInvalidRange, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return apperrors.NewResourceNotFoundError(err.Error())
	default:
		return err
	}
}

// authorizeCourseWrite rejects teachers touching courses they do not own.
// Admins may edit any course.
func (s *CourseService) authorizeCourseWrite(course *models.Course, actorID int64, actorRole models.RoleType) error {
	if actorRole == models.RoleAdmin {
		return nil
	}
	if course.TeacherID != actorID {
		return apperrors.NewForbiddenError("course belongs to another teacher")
	}
	return nil
}

// ListCatalog returns the published catalog page matching the filters
func (s *CourseService) ListCatalog(ctx context.Context, q repositories.CatalogQuery) ([]*models.CatalogEntry, int64, error) {
	if q.Sort != "" && !q.Sort.IsValid() {
		return nil, 0, apperrors.NewCustomError(apperrors.ErrInvalidRange, "unknown sort key").WithField("sortBy")
	}
	for _, level := range q.Levels {
		if !level.IsValid() {
			return nil, 0, apperrors.NewCustomError(apperrors.ErrInvalidRange, "unknown course level").WithField("levels")
		}
	}
	if q.PriceMin > q.PriceMax {
		return nil, 0, apperrors.NewCustomError(apperrors.ErrInvalidRange, "price range is inverted").WithField("priceRange")
	}
	return s.courseRepo.ListCatalog(ctx, q)
}

// ListCategories returns the distinct categories of published courses
func (s *CourseService) ListCategories(ctx context.Context) ([]string, error) {
	return s.courseRepo.ListCategories(ctx)
}

// ListCoursesByTeacher returns the authoring list for a teacher
func (s *CourseService) ListCoursesByTeacher(ctx context.Context, teacherID int64, page, pageSize int) ([]*models.Course, int64, error) {
	return s.courseRepo.ListCoursesByTeacher(ctx, teacherID, page, pageSize)
}

// GetCourseTree returns a course with chapters, lessons, resources,
// assignments and technology tags attached in display order.
func (s *CourseService) GetCourseTree(ctx context.Context, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	chapters, err := s.chapterRepo.ListChaptersByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	lessonsByChapter, err := s.lessonRepo.ListLessonsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	resourcesByLesson, err := s.resourceRepo.ListResourcesByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	for _, chapter := range chapters {
		chapter.Lessons = lessonsByChapter[chapter.ID]
		for _, lesson := range chapter.Lessons {
			lesson.Resources = resourcesByLesson[lesson.ID]
		}
	}
	course.Chapters = chapters

	course.Assignments, err = s.assignmentRepo.ListAssignmentsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	course.Technologies, err = s.technologyRepo.ListTechnologiesByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// CreateCourse creates a new draft course for a teacher
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, teacherID int64) (*models.Course, error) {
	input := domain.CourseInput{
		Title:        req.Title,
		ShortSummary: req.ShortSummary,
		Thumbnail:    req.Thumbnail,
		Category:     req.Category,
		Price:        req.Price,
		IsFree:       req.IsFree,
		Level:        req.Level,
		InstituteID:  req.InstituteID,
	}
	if err := domain.ValidateCourseInput(&input); err != nil {
		return nil, mapDomainError(err)
	}

	slug := domain.Slugify(input.Title)
	taken, err := s.courseRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrSlugAlreadyExists
	}

	course := &models.Course{
		Title:        input.Title,
		Slug:         slug,
		ShortSummary: input.ShortSummary,
		Thumbnail:    input.Thumbnail,
		Category:     input.Category,
		Price:        input.Price,
		IsFree:       input.IsFree,
		Level:        input.Level,
		Status:       models.StatusDraft,
		TeacherID:    teacherID,
		InstituteID:  input.InstituteID,
	}

	course, err = s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}

	if len(req.Technologies) > 0 {
		if err := s.courseRepo.SetCourseTechnologies(ctx, course.ID, req.Technologies); err != nil {
			return nil, err
		}
		course.Technologies, err = s.technologyRepo.ListTechnologiesByCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info().Int64("courseId", course.ID).Str("slug", course.Slug).Msg("Course created")
	return course, nil
}

// UpdateCourse merges a partial update into an existing course. The
// slug is never regenerated, even when the title changes.
func (s *CourseService) UpdateCourse(ctx context.Context, courseID int64, req *dto.UpdateCourseRequest, actorID int64, actorRole models.RoleType) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCourseWrite(course, actorID, actorRole); err != nil {
		return nil, err
	}

	editor := domain.NewOutlineEditor(course)
	patch := domain.CoursePatch{
		Title:        req.Title,
		ShortSummary: req.ShortSummary,
		Thumbnail:    req.Thumbnail,
		Category:     req.Category,
		Price:        req.Price,
		IsFree:       req.IsFree,
		Level:        req.Level,
		Status:       req.Status,
	}
	course, err = editor.UpdateCourse(courseID, patch)
	if err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}

	if req.Technologies != nil {
		if err := s.courseRepo.SetCourseTechnologies(ctx, course.ID, req.Technologies); err != nil {
			return nil, err
		}
	}
	course.Technologies, err = s.technologyRepo.ListTechnologiesByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course and every descendant chapter, lesson,
// resource and assignment. There is no undo.
func (s *CourseService) DeleteCourse(ctx context.Context, courseID int64, actorID int64, actorRole models.RoleType) error {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return err
	}
	if err := s.authorizeCourseWrite(course, actorID, actorRole); err != nil {
		return err
	}

	if err := s.courseRepo.DeleteCourse(ctx, courseID); err != nil {
		return err
	}
	s.logger.Info().Int64("courseId", courseID).Msg("Course deleted")
	return nil
}

// ImportCourse accepts a whole nested course payload, assembles it
// through the outline editor so every rule runs before any SQL, then
// persists the tree in one transaction.
func (s *CourseService) ImportCourse(ctx context.Context, req *dto.ImportCourseRequest, teacherID int64) (*models.Course, error) {
	editor := domain.NewOutlineEditor()

	course, err := editor.CreateCourse(domain.CourseInput{
		Title:        req.Course.Title,
		ShortSummary: req.Course.ShortSummary,
		Thumbnail:    req.Course.Thumbnail,
		Category:     req.Course.Category,
		Price:        req.Course.Price,
		IsFree:       req.Course.IsFree,
		Level:        req.Course.Level,
		InstituteID:  req.Course.InstituteID,
	})
	if err != nil {
		return nil, mapDomainError(err)
	}

	for _, chapterReq := range req.Chapters {
		chapter, err := editor.AddChapter(course.ID, domain.ChapterInput{Title: chapterReq.Chapter.Title})
		if err != nil {
			return nil, mapDomainError(err)
		}
		for _, lessonReq := range chapterReq.Lessons {
			lesson, err := editor.AddLesson(chapter.ID, domain.LessonInput{
				Title:       lessonReq.Lesson.Title,
				Description: lessonReq.Lesson.Description,
				VideoURL:    lessonReq.Lesson.VideoURL,
				Duration:    lessonReq.Lesson.Duration,
				IsPreview:   lessonReq.Lesson.IsPreview,
			})
			if err != nil {
				return nil, mapDomainError(err)
			}
			for _, resourceReq := range lessonReq.Resources {
				_, err := editor.AddResource(lesson.ID, domain.ResourceInput{
					Title:           resourceReq.Title,
					Type:            resourceReq.Type,
					URL:             resourceReq.URL,
					Path:            resourceReq.Path,
					StorageProvider: resourceReq.StorageProvider,
					Description:     resourceReq.Description,
				})
				if err != nil {
					return nil, mapDomainError(err)
				}
			}
		}
	}

	slug := domain.Slugify(req.Course.Title)
	taken, err := s.courseRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrSlugAlreadyExists
	}

	course.TeacherID = teacherID
	course, err = s.courseRepo.CreateCourseTree(ctx, course)
	if err != nil {
		return nil, err
	}

	if len(req.Course.Technologies) > 0 {
		if err := s.courseRepo.SetCourseTechnologies(ctx, course.ID, req.Course.Technologies); err != nil {
			return nil, err
		}
	}

	s.logger.Info().
		Int64("courseId", course.ID).
		Int("chapters", len(course.Chapters)).
		Msg("Course imported")
	return course, nil
}

// AddChapter appends a chapter at the end of a course
func (s *CourseService) AddChapter(ctx context.Context, courseID int64, req *dto.CreateChapterRequest, actorID int64, actorRole models.RoleType) (*models.Chapter, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCourseWrite(course, actorID, actorRole); err != nil {
		return nil, err
	}

	input := domain.ChapterInput{Title: req.Title}
	if err := domain.ValidateChapterInput(&input); err != nil {
		return nil, mapDomainError(err)
	}

	chapter := &models.Chapter{
		CourseID: courseID,
		Title:    input.Title,
		Status:   models.StatusDraft,
	}
	return s.chapterRepo.CreateChapter(ctx, chapter)
}

// UpdateChapter merges a partial update into a chapter
func (s *CourseService) UpdateChapter(ctx context.Context, chapterID int64, req *dto.UpdateChapterRequest, actorID int64, actorRole models.RoleType) (*models.Chapter, error) {
	chapter, err := s.chapterRepo.GetChapterByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeParentCourse(ctx, chapter.CourseID, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Title != nil {
		input := domain.ChapterInput{Title: *req.Title}
		if err := domain.ValidateChapterInput(&input); err != nil {
			return nil, mapDomainError(err)
		}
		chapter.Title = input.Title
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidRange, "unknown status").WithField("status")
		}
		chapter.Status = *req.Status
	}

	if err := s.chapterRepo.UpdateChapter(ctx, chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

// DeleteChapter removes a chapter with its lessons and resources
func (s *CourseService) DeleteChapter(ctx context.Context, chapterID int64, actorID int64, actorRole models.RoleType) error {
	chapter, err := s.chapterRepo.GetChapterByID(ctx, chapterID)
	if err != nil {
		return err
	}
	if _, err := s.authorizeParentCourse(ctx, chapter.CourseID, actorID, actorRole); err != nil {
		return err
	}
	return s.chapterRepo.DeleteChapter(ctx, chapterID)
}

// AddLesson appends a lesson at the end of a chapter
func (s *CourseService) AddLesson(ctx context.Context, chapterID int64, req *dto.CreateLessonRequest, actorID int64, actorRole models.RoleType) (*models.Lesson, error) {
	chapter, err := s.chapterRepo.GetChapterByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeParentCourse(ctx, chapter.CourseID, actorID, actorRole); err != nil {
		return nil, err
	}

	input := domain.LessonInput{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Duration:    req.Duration,
		IsPreview:   req.IsPreview,
	}
	if err := domain.ValidateLessonInput(&input); err != nil {
		return nil, mapDomainError(err)
	}

	lesson := &models.Lesson{
		ChapterID:   chapterID,
		Title:       input.Title,
		Description: input.Description,
		Status:      models.StatusDraft,
		VideoURL:    input.VideoURL,
		Duration:    input.Duration,
		IsPreview:   input.IsPreview,
	}
	return s.lessonRepo.CreateLesson(ctx, lesson)
}

// UpdateLesson merges a partial update into a lesson
func (s *CourseService) UpdateLesson(ctx context.Context, lessonID int64, req *dto.UpdateLessonRequest, actorID int64, actorRole models.RoleType) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	chapter, err := s.chapterRepo.GetChapterByID(ctx, lesson.ChapterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeParentCourse(ctx, chapter.CourseID, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Status != nil {
		lesson.Status = *req.Status
	}
	if req.VideoURL != nil {
		lesson.VideoURL = req.VideoURL
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.IsPreview != nil {
		lesson.IsPreview = *req.IsPreview
	}

	input := domain.LessonInput{
		Title:       lesson.Title,
		Description: lesson.Description,
		VideoURL:    lesson.VideoURL,
		Duration:    lesson.Duration,
		IsPreview:   lesson.IsPreview,
	}
	if err := domain.ValidateLessonInput(&input); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.lessonRepo.UpdateLesson(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// DeleteLesson removes a lesson with its resources
func (s *CourseService) DeleteLesson(ctx context.Context, lessonID int64, actorID int64, actorRole models.RoleType) error {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}
	chapter, err := s.chapterRepo.GetChapterByID(ctx, lesson.ChapterID)
	if err != nil {
		return err
	}
	if _, err := s.authorizeParentCourse(ctx, chapter.CourseID, actorID, actorRole); err != nil {
		return err
	}
	return s.lessonRepo.DeleteLesson(ctx, lessonID)
}

// AddResource appends a resource at the end of a lesson
func (s *CourseService) AddResource(ctx context.Context, lessonID int64, req *dto.CreateResourceRequest, actorID int64, actorRole models.RoleType) (*models.Resource, error) {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	chapter, err := s.chapterRepo.GetChapterByID(ctx, lesson.ChapterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeParentCourse(ctx, chapter.CourseID, actorID, actorRole); err != nil {
		return nil, err
	}

	input := domain.ResourceInput{
		Title:           req.Title,
		Type:            req.Type,
		URL:             req.URL,
		Path:            req.Path,
		StorageProvider: req.StorageProvider,
		Description:     req.Description,
	}
	if err := domain.ValidateResourceInput(&input); err != nil {
		return nil, mapDomainError(err)
	}

	resource := &models.Resource{
		LessonID:        lessonID,
		Title:           input.Title,
		Type:            input.Type,
		URL:             input.URL,
		Path:            input.Path,
		StorageProvider: input.StorageProvider,
		Description:     input.Description,
	}
	return s.resourceRepo.CreateResource(ctx, resource)
}

// UpdateResource merges a partial update into a resource
func (s *CourseService) UpdateResource(ctx context.Context, resourceID int64, req *dto.UpdateResourceRequest, actorID int64, actorRole models.RoleType) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeLessonCourse(ctx, resource.LessonID, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Title != nil {
		resource.Title = *req.Title
	}
	if req.Type != nil {
		resource.Type = *req.Type
	}
	if req.URL != nil {
		resource.URL = req.URL
	}
	if req.Path != nil {
		resource.Path = req.Path
	}
	if req.StorageProvider != nil {
		resource.StorageProvider = *req.StorageProvider
	}
	if req.Description != nil {
		resource.Description = *req.Description
	}

	input := domain.ResourceInput{
		Title:           resource.Title,
		Type:            resource.Type,
		URL:             resource.URL,
		Path:            resource.Path,
		StorageProvider: resource.StorageProvider,
		Description:     resource.Description,
	}
	if err := domain.ValidateResourceInput(&input); err != nil {
		return nil, mapDomainError(err)
	}
	resource.StorageProvider = input.StorageProvider

	if err := s.resourceRepo.UpdateResource(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// DeleteResource removes a resource
func (s *CourseService) DeleteResource(ctx context.Context, resourceID int64, actorID int64, actorRole models.RoleType) error {
	resource, err := s.resourceRepo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return err
	}
	if err := s.authorizeLessonCourse(ctx, resource.LessonID, actorID, actorRole); err != nil {
		return err
	}
	return s.resourceRepo.DeleteResource(ctx, resourceID)
}

// AddAssignment attaches a graded assignment to a course
func (s *CourseService) AddAssignment(ctx context.Context, courseID int64, req *dto.CreateAssignmentRequest, actorID int64, actorRole models.RoleType) (*models.Assignment, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCourseWrite(course, actorID, actorRole); err != nil {
		return nil, err
	}

	input := domain.AssignmentInput{
		Title:        req.Title,
		Type:         req.Type,
		TotalPoints:  req.TotalPoints,
		PassingScore: req.PassingScore,
		Description:  req.Description,
	}
	if err := domain.ValidateAssignmentInput(&input); err != nil {
		return nil, mapDomainError(err)
	}

	assignment := &models.Assignment{
		CourseID:     courseID,
		Title:        input.Title,
		Type:         input.Type,
		TotalPoints:  input.TotalPoints,
		PassingScore: input.PassingScore,
		Description:  input.Description,
	}
	return s.assignmentRepo.CreateAssignment(ctx, assignment)
}

// UpdateAssignment merges a partial update into an assignment. The
// passing score bound is re-checked against the merged values.
func (s *CourseService) UpdateAssignment(ctx context.Context, assignmentID int64, req *dto.UpdateAssignmentRequest, actorID int64, actorRole models.RoleType) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeParentCourse(ctx, assignment.CourseID, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Type != nil {
		assignment.Type = *req.Type
	}
	if req.TotalPoints != nil {
		assignment.TotalPoints = *req.TotalPoints
	}
	if req.PassingScore != nil {
		assignment.PassingScore = *req.PassingScore
	}
	if req.Description != nil {
		assignment.Description = *req.Description
	}

	input := domain.AssignmentInput{
		Title:        assignment.Title,
		Type:         assignment.Type,
		TotalPoints:  assignment.TotalPoints,
		PassingScore: assignment.PassingScore,
		Description:  assignment.Description,
	}
	if err := domain.ValidateAssignmentInput(&input); err != nil {
		return nil, mapDomainError(err)
	}

	if err := s.assignmentRepo.UpdateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// DeleteAssignment removes an assignment from a course
func (s *CourseService) DeleteAssignment(ctx context.Context, assignmentID int64, actorID int64, actorRole models.RoleType) error {
	assignment, err := s.assignmentRepo.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if _, err := s.authorizeParentCourse(ctx, assignment.CourseID, actorID, actorRole); err != nil {
		return err
	}
	return s.assignmentRepo.DeleteAssignment(ctx, assignmentID)
}

// SetCourseTechnologies replaces a course's technology tags
func (s *CourseService) SetCourseTechnologies(ctx context.Context, courseID int64, technologyIDs []int64, actorID int64, actorRole models.RoleType) ([]*models.Technology, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCourseWrite(course, actorID, actorRole); err != nil {
		return nil, err
	}
	if err := s.courseRepo.SetCourseTechnologies(ctx, courseID, technologyIDs); err != nil {
		return nil, err
	}
	return s.technologyRepo.ListTechnologiesByCourse(ctx, courseID)
}

func (s *CourseService) authorizeParentCourse(ctx context.Context, courseID, actorID int64, actorRole models.RoleType) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCourseWrite(course, actorID, actorRole); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) authorizeLessonCourse(ctx context.Context, lessonID, actorID int64, actorRole models.RoleType) error {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}
	chapter, err := s.chapterRepo.GetChapterByID(ctx, lesson.ChapterID)
	if err != nil {
		return err
	}
	_, err = s.authorizeParentCourse(ctx, chapter.CourseID, actorID, actorRole)
	return err
}

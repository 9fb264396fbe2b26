package domain

import (
	"fmt"
	"time"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

// OutlineEditor performs create/update/delete over the in-memory
// Course → Chapter → Lesson → Resource tree while preserving its
// invariants: exclusive parent ownership, ordered children, ids assigned
// max(existing)+1 per entity kind, and cascading deletes. Nothing is
// persisted until the caller hands the tree to a repository.
//
// The editor is not safe for concurrent use; callers own serialization.
type OutlineEditor struct {
	courses []*models.Course
}

// NewOutlineEditor creates an editor over an existing course list. The
// slice is adopted, not copied.
func NewOutlineEditor(courses ...*models.Course) *OutlineEditor {
	return &OutlineEditor{courses: courses}
}

// Courses returns the edited course list in order.
func (e *OutlineEditor) Courses() []*models.Course {
	return e.courses
}

// FindCourse returns the course with the given id.
func (e *OutlineEditor) FindCourse(id int64) (*models.Course, error) {
	for _, c := range e.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: course %d", ErrNotFound, id)
}

// CreateCourse validates the input and appends a new course with a fresh
// id, a slug derived from the title, empty child collections and current
// timestamps.
func (e *OutlineEditor) CreateCourse(input CourseInput) (*models.Course, error) {
	if err := ValidateCourseInput(&input); err != nil {
		return nil, err
	}

	now := time.Now()
	course := &models.Course{
		ID:           e.nextCourseID(),
		Title:        input.Title,
		Slug:         Slugify(input.Title),
		ShortSummary: input.ShortSummary,
		Thumbnail:    input.Thumbnail,
		Category:     input.Category,
		Price:        input.Price,
		IsFree:       input.IsFree,
		Level:        input.Level,
		Status:       models.StatusDraft,
		InstituteID:  input.InstituteID,
		CreatedAt:    now,
		UpdatedAt:    now,
		Chapters:     []*models.Chapter{},
		Technologies: []*models.Technology{},
		Assignments:  []*models.Assignment{},
	}
	e.courses = append(e.courses, course)
	return course, nil
}

// UpdateCourse merges non-nil patch fields into an existing course and
// refreshes UpdatedAt. The slug is never regenerated: it froze at
// creation even if the title changes. Toggling IsFree on forces the
// price to zero in the same operation.
func (e *OutlineEditor) UpdateCourse(id int64, patch CoursePatch) (*models.Course, error) {
	course, err := e.FindCourse(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title", ErrMissingField)
		}
		if len(*patch.Title) > MaxTitleLen {
			return nil, fmt.Errorf("%w: title exceeds %d characters", ErrInvalidRange, MaxTitleLen)
		}
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidRange)
	}
	if patch.Level != nil && !patch.Level.IsValid() {
		return nil, fmt.Errorf("%w: level %q", ErrInvalidRange, *patch.Level)
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidRange, *patch.Status)
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.ShortSummary != nil {
		course.ShortSummary = *patch.ShortSummary
	}
	if patch.Thumbnail != nil {
		course.Thumbnail = patch.Thumbnail
	}
	if patch.Category != nil {
		course.Category = *patch.Category
	}
	if patch.Price != nil {
		course.Price = *patch.Price
	}
	if patch.IsFree != nil {
		course.IsFree = *patch.IsFree
	}
	if patch.Level != nil {
		course.Level = *patch.Level
	}
	if patch.Status != nil {
		course.Status = *patch.Status
	}
	if course.IsFree {
		course.Price = 0
	}
	course.UpdatedAt = time.Now()
	return course, nil
}

// DeleteCourse removes a course and, transitively, every chapter, lesson
// and resource under it. Irreversible.
func (e *OutlineEditor) DeleteCourse(id int64) error {
	for i, c := range e.courses {
		if c.ID == id {
			e.courses = append(e.courses[:i], e.courses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: course %d", ErrNotFound, id)
}

// AddChapter validates the input and appends a new chapter to the
// course's ordered chapter sequence.
func (e *OutlineEditor) AddChapter(courseID int64, input ChapterInput) (*models.Chapter, error) {
	course, err := e.FindCourse(courseID)
	if err != nil {
		return nil, err
	}
	if err := ValidateChapterInput(&input); err != nil {
		return nil, err
	}

	chapter := &models.Chapter{
		ID:       e.nextChapterID(),
		CourseID: course.ID,
		Title:    input.Title,
		Status:   models.StatusDraft,
		Position: len(course.Chapters),
		Lessons:  []*models.Lesson{},
	}
	course.Chapters = append(course.Chapters, chapter)
	e.touch(course)
	return chapter, nil
}

// UpdateChapter merges non-nil patch fields into an existing chapter.
func (e *OutlineEditor) UpdateChapter(chapterID int64, patch ChapterPatch) (*models.Chapter, error) {
	course, chapter, err := e.findChapter(chapterID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title", ErrMissingField)
		}
		if len(*patch.Title) > MaxTitleLen {
			return nil, fmt.Errorf("%w: title exceeds %d characters", ErrInvalidRange, MaxTitleLen)
		}
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidRange, *patch.Status)
	}

	if patch.Title != nil {
		chapter.Title = *patch.Title
	}
	if patch.Status != nil {
		chapter.Status = *patch.Status
	}
	e.touch(course)
	return chapter, nil
}

// DeleteChapter removes a chapter and all its lessons and resources.
func (e *OutlineEditor) DeleteChapter(chapterID int64) error {
	for _, course := range e.courses {
		for i, chapter := range course.Chapters {
			if chapter.ID == chapterID {
				course.Chapters = append(course.Chapters[:i], course.Chapters[i+1:]...)
				renumberChapters(course.Chapters)
				e.touch(course)
				return nil
			}
		}
	}
	return fmt.Errorf("%w: chapter %d", ErrNotFound, chapterID)
}

// AddLesson validates the input and appends a new lesson to the
// chapter's ordered lesson sequence. A rejected lesson is never appended.
func (e *OutlineEditor) AddLesson(chapterID int64, input LessonInput) (*models.Lesson, error) {
	course, chapter, err := e.findChapter(chapterID)
	if err != nil {
		return nil, err
	}
	if err := ValidateLessonInput(&input); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		ID:          e.nextLessonID(),
		ChapterID:   chapter.ID,
		Title:       input.Title,
		Description: input.Description,
		Status:      models.StatusDraft,
		VideoURL:    input.VideoURL,
		Duration:    input.Duration,
		IsPreview:   input.IsPreview,
		Position:    len(chapter.Lessons),
		Resources:   []*models.Resource{},
	}
	chapter.Lessons = append(chapter.Lessons, lesson)
	e.touch(course)
	return lesson, nil
}

// UpdateLesson merges non-nil patch fields into an existing lesson.
// IsPreview is an independent toggle with no cross-field invariant.
func (e *OutlineEditor) UpdateLesson(lessonID int64, patch LessonPatch) (*models.Lesson, error) {
	course, _, lesson, err := e.findLesson(lessonID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title", ErrMissingField)
		}
		if len(*patch.Title) > MaxTitleLen {
			return nil, fmt.Errorf("%w: title exceeds %d characters", ErrInvalidRange, MaxTitleLen)
		}
	}
	if patch.Description != nil && len(*patch.Description) > MaxLessonDescriptionLen {
		return nil, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidRange, MaxLessonDescriptionLen)
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidRange, *patch.Status)
	}

	if patch.Title != nil {
		lesson.Title = *patch.Title
	}
	if patch.Description != nil {
		lesson.Description = *patch.Description
	}
	if patch.Status != nil {
		lesson.Status = *patch.Status
	}
	if patch.VideoURL != nil {
		lesson.VideoURL = patch.VideoURL
	}
	if patch.Duration != nil {
		lesson.Duration = *patch.Duration
	}
	if patch.IsPreview != nil {
		lesson.IsPreview = *patch.IsPreview
	}
	e.touch(course)
	return lesson, nil
}

// DeleteLesson removes a lesson and its resources.
func (e *OutlineEditor) DeleteLesson(lessonID int64) error {
	for _, course := range e.courses {
		for _, chapter := range course.Chapters {
			for i, lesson := range chapter.Lessons {
				if lesson.ID == lessonID {
					chapter.Lessons = append(chapter.Lessons[:i], chapter.Lessons[i+1:]...)
					renumberLessons(chapter.Lessons)
					e.touch(course)
					return nil
				}
			}
		}
	}
	return fmt.Errorf("%w: lesson %d", ErrNotFound, lessonID)
}

// AddResource validates the input and appends a new resource to the
// lesson's ordered resource sequence.
func (e *OutlineEditor) AddResource(lessonID int64, input ResourceInput) (*models.Resource, error) {
	course, _, lesson, err := e.findLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if err := ValidateResourceInput(&input); err != nil {
		return nil, err
	}

	resource := &models.Resource{
		ID:              e.nextResourceID(),
		LessonID:        lesson.ID,
		Title:           input.Title,
		Type:            input.Type,
		URL:             input.URL,
		Path:            input.Path,
		StorageProvider: input.StorageProvider,
		Description:     input.Description,
		Position:        len(lesson.Resources),
	}
	lesson.Resources = append(lesson.Resources, resource)
	e.touch(course)
	return resource, nil
}

// UpdateResource merges non-nil patch fields into an existing resource.
func (e *OutlineEditor) UpdateResource(resourceID int64, patch ResourcePatch) (*models.Resource, error) {
	course, resource, err := e.findResource(resourceID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title", ErrMissingField)
		}
		if len(*patch.Title) > MaxTitleLen {
			return nil, fmt.Errorf("%w: title exceeds %d characters", ErrInvalidRange, MaxTitleLen)
		}
	}
	if patch.Type != nil && !patch.Type.IsValid() {
		return nil, fmt.Errorf("%w: resource type %q", ErrInvalidRange, *patch.Type)
	}
	if patch.Path != nil && len(*patch.Path) > MaxResourcePathLen {
		return nil, fmt.Errorf("%w: path exceeds %d characters", ErrInvalidRange, MaxResourcePathLen)
	}
	if patch.Description != nil && len(*patch.Description) > MaxResourceDescriptionLen {
		return nil, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidRange, MaxResourceDescriptionLen)
	}

	if patch.Title != nil {
		resource.Title = *patch.Title
	}
	if patch.Type != nil {
		resource.Type = *patch.Type
	}
	if patch.URL != nil {
		resource.URL = patch.URL
	}
	if patch.Path != nil {
		resource.Path = patch.Path
	}
	if patch.StorageProvider != nil {
		resource.StorageProvider = *patch.StorageProvider
	}
	if patch.Description != nil {
		resource.Description = *patch.Description
	}
	e.touch(course)
	return resource, nil
}

// DeleteResource removes a resource from its lesson.
func (e *OutlineEditor) DeleteResource(resourceID int64) error {
	for _, course := range e.courses {
		for _, chapter := range course.Chapters {
			for _, lesson := range chapter.Lessons {
				for i, resource := range lesson.Resources {
					if resource.ID == resourceID {
						lesson.Resources = append(lesson.Resources[:i], lesson.Resources[i+1:]...)
						renumberResources(lesson.Resources)
						e.touch(course)
						return nil
					}
				}
			}
		}
	}
	return fmt.Errorf("%w: resource %d", ErrNotFound, resourceID)
}

// AddAssignment validates the input and appends a new assignment to the course.
func (e *OutlineEditor) AddAssignment(courseID int64, input AssignmentInput) (*models.Assignment, error) {
	course, err := e.FindCourse(courseID)
	if err != nil {
		return nil, err
	}
	if err := ValidateAssignmentInput(&input); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		ID:           e.nextAssignmentID(),
		CourseID:     course.ID,
		Title:        input.Title,
		Type:         input.Type,
		TotalPoints:  input.TotalPoints,
		PassingScore: input.PassingScore,
		Description:  input.Description,
	}
	course.Assignments = append(course.Assignments, assignment)
	e.touch(course)
	return assignment, nil
}

// UpdateAssignment merges non-nil patch fields into an existing
// assignment and re-checks the passing-score bound.
func (e *OutlineEditor) UpdateAssignment(assignmentID int64, patch AssignmentPatch) (*models.Assignment, error) {
	course, assignment, err := e.findAssignment(assignmentID)
	if err != nil {
		return nil, err
	}

	total := assignment.TotalPoints
	passing := assignment.PassingScore
	if patch.TotalPoints != nil {
		total = *patch.TotalPoints
	}
	if patch.PassingScore != nil {
		passing = *patch.PassingScore
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: total points must be positive", ErrInvalidRange)
	}
	if passing < 0 || passing > total {
		return nil, fmt.Errorf("%w: passing score exceeds total points", ErrInvalidRange)
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title", ErrMissingField)
		}
		if len(*patch.Title) > MaxTitleLen {
			return nil, fmt.Errorf("%w: title exceeds %d characters", ErrInvalidRange, MaxTitleLen)
		}
	}
	if patch.Type != nil && !patch.Type.IsValid() {
		return nil, fmt.Errorf("%w: assignment type %q", ErrInvalidRange, *patch.Type)
	}

	if patch.Title != nil {
		assignment.Title = *patch.Title
	}
	if patch.Type != nil {
		assignment.Type = *patch.Type
	}
	assignment.TotalPoints = total
	assignment.PassingScore = passing
	if patch.Description != nil {
		assignment.Description = *patch.Description
	}
	e.touch(course)
	return assignment, nil
}

// DeleteAssignment removes an assignment from its course.
func (e *OutlineEditor) DeleteAssignment(assignmentID int64) error {
	for _, course := range e.courses {
		for i, assignment := range course.Assignments {
			if assignment.ID == assignmentID {
				course.Assignments = append(course.Assignments[:i], course.Assignments[i+1:]...)
				e.touch(course)
				return nil
			}
		}
	}
	return fmt.Errorf("%w: assignment %d", ErrNotFound, assignmentID)
}

func (e *OutlineEditor) touch(course *models.Course) {
	course.UpdatedAt = time.Now()
}

func (e *OutlineEditor) findChapter(chapterID int64) (*models.Course, *models.Chapter, error) {
	for _, course := range e.courses {
		for _, chapter := range course.Chapters {
			if chapter.ID == chapterID {
				return course, chapter, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: chapter %d", ErrNotFound, chapterID)
}

func (e *OutlineEditor) findLesson(lessonID int64) (*models.Course, *models.Chapter, *models.Lesson, error) {
	for _, course := range e.courses {
		for _, chapter := range course.Chapters {
			for _, lesson := range chapter.Lessons {
				if lesson.ID == lessonID {
					return course, chapter, lesson, nil
				}
			}
		}
	}
	return nil, nil, nil, fmt.Errorf("%w: lesson %d", ErrNotFound, lessonID)
}

func (e *OutlineEditor) findResource(resourceID int64) (*models.Course, *models.Resource, error) {
	for _, course := range e.courses {
		for _, chapter := range course.Chapters {
			for _, lesson := range chapter.Lessons {
				for _, resource := range lesson.Resources {
					if resource.ID == resourceID {
						return course, resource, nil
					}
				}
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: resource %d", ErrNotFound, resourceID)
}

func (e *OutlineEditor) findAssignment(assignmentID int64) (*models.Course, *models.Assignment, error) {
	for _, course := range e.courses {
		for _, assignment := range course.Assignments {
			if assignment.ID == assignmentID {
				return course, assignment, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: assignment %d", ErrNotFound, assignmentID)
}

// Id assignment mirrors the mock-backend convention: max(existing)+1 per
// entity kind, scanned over the whole tree so a new id is strictly
// greater than every id that ever appeared in the list.
func (e *OutlineEditor) nextCourseID() int64 {
	var max int64
	for _, c := range e.courses {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func (e *OutlineEditor) nextChapterID() int64 {
	var max int64
	for _, c := range e.courses {
		for _, ch := range c.Chapters {
			if ch.ID > max {
				max = ch.ID
			}
		}
	}
	return max + 1
}

func (e *OutlineEditor) nextLessonID() int64 {
	var max int64
	for _, c := range e.courses {
		for _, ch := range c.Chapters {
			for _, l := range ch.Lessons {
				if l.ID > max {
					max = l.ID
				}
			}
		}
	}
	return max + 1
}

func (e *OutlineEditor) nextResourceID() int64 {
	var max int64
	for _, c := range e.courses {
		for _, ch := range c.Chapters {
			for _, l := range ch.Lessons {
				for _, r := range l.Resources {
					if r.ID > max {
						max = r.ID
					}
				}
			}
		}
	}
	return max + 1
}

func (e *OutlineEditor) nextAssignmentID() int64 {
	var max int64
	for _, c := range e.courses {
		for _, a := range c.Assignments {
			if a.ID > max {
				max = a.ID
			}
		}
	}
	return max + 1
}

func renumberChapters(chapters []*models.Chapter) {
	for i, ch := range chapters {
		ch.Position = i
	}
}

func renumberLessons(lessons []*models.Lesson) {
	for i, l := range lessons {
		l.Position = i
	}
}

func renumberResources(resources []*models.Resource) {
	for i, r := range resources {
		r.Position = i
	}
}

package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

// Domain rule errors. Services map these onto the API error taxonomy.
var (
	ErrNotFound     = errors.New("entity not found")
	ErrMissingField = errors.New("required field missing")
	ErrInvalidRange = errors.New("value out of range")
)

// Field length limits enforced before a create/update is accepted.
const (
	MaxTitleLen               = 255
	MaxLessonDescriptionLen   = 3000
	MaxResourceDescriptionLen = 2000
	MaxResourcePathLen        = 500
)

// CourseInput carries the fields accepted when creating a course.
type CourseInput struct {
	Title        string
	ShortSummary string
	Thumbnail    *string
	Category     string
	Price        float64
	IsFree       bool
	Level        models.CourseLevel
	InstituteID  *int64
}

// CoursePatch carries a partial course update. Nil fields are left untouched.
type CoursePatch struct {
	Title        *string
	ShortSummary *string
	Thumbnail    *string
	Category     *string
	Price        *float64
	IsFree       *bool
	Level        *models.CourseLevel
	Status       *models.ContentStatus
}

// ChapterInput carries the fields accepted when creating a chapter.
type ChapterInput struct {
	Title string
}

// ChapterPatch carries a partial chapter update.
type ChapterPatch struct {
	Title  *string
	Status *models.ContentStatus
}

// LessonInput carries the fields accepted when creating a lesson.
type LessonInput struct {
	Title       string
	Description string
	VideoURL    *string
	Duration    string
	IsPreview   bool
}

// LessonPatch carries a partial lesson update.
type LessonPatch struct {
	Title       *string
	Description *string
	Status      *models.ContentStatus
	VideoURL    *string
	Duration    *string
	IsPreview   *bool
}

// ResourceInput carries the fields accepted when creating a resource.
type ResourceInput struct {
	Title           string
	Type            models.ResourceType
	URL             *string
	Path            *string
	StorageProvider string
	Description     string
}

// ResourcePatch carries a partial resource update.
type ResourcePatch struct {
	Title           *string
	Type            *models.ResourceType
	URL             *string
	Path            *string
	StorageProvider *string
	Description     *string
}

// AssignmentInput carries the fields accepted when creating an assignment.
type AssignmentInput struct {
	Title        string
	Type         models.AssignmentType
	TotalPoints  int
	PassingScore int
	Description  string
}

// AssignmentPatch carries a partial assignment update.
type AssignmentPatch struct {
	Title        *string
	Type         *models.AssignmentType
	TotalPoints  *int
	PassingScore *int
	Description  *string
}

// ValidateCourseInput checks a course create payload and normalizes the
// price of free courses to zero. A free course never carries a price.
func ValidateCourseInput(input *CourseInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if len(input.Title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidRange, MaxTitleLen)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidRange)
	}
	if !input.Level.IsValid() {
		return fmt.Errorf("%w: level %q", ErrInvalidRange, input.Level)
	}
	if input.IsFree {
		input.Price = 0
	}
	return nil
}

// ValidateChapterInput checks a chapter create payload.
func ValidateChapterInput(input *ChapterInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if len(input.Title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidRange, MaxTitleLen)
	}
	return nil
}

// ValidateLessonInput checks a lesson create payload.
func ValidateLessonInput(input *LessonInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if len(input.Title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidRange, MaxTitleLen)
	}
	if len(input.Description) > MaxLessonDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidRange, MaxLessonDescriptionLen)
	}
	return nil
}

// ValidateResourceInput checks a resource create payload and fills in the
// default storage provider.
func ValidateResourceInput(input *ResourceInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if len(input.Title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidRange, MaxTitleLen)
	}
	if !input.Type.IsValid() {
		return fmt.Errorf("%w: resource type %q", ErrInvalidRange, input.Type)
	}
	if input.Path != nil && len(*input.Path) > MaxResourcePathLen {
		return fmt.Errorf("%w: path exceeds %d characters", ErrInvalidRange, MaxResourcePathLen)
	}
	if len(input.Description) > MaxResourceDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidRange, MaxResourceDescriptionLen)
	}
	if input.StorageProvider == "" {
		input.StorageProvider = models.DefaultStorageProvider
	}
	return nil
}

// ValidateAssignmentInput checks an assignment create payload. The passing
// score may never exceed the total points.
func ValidateAssignmentInput(input *AssignmentInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if !input.Type.IsValid() {
		return fmt.Errorf("%w: assignment type %q", ErrInvalidRange, input.Type)
	}
	if input.TotalPoints <= 0 {
		return fmt.Errorf("%w: total points must be positive", ErrInvalidRange)
	}
	if input.PassingScore < 0 {
		return fmt.Errorf("%w: passing score must not be negative", ErrInvalidRange)
	}
	if input.PassingScore > input.TotalPoints {
		return fmt.Errorf("%w: passing score exceeds total points", ErrInvalidRange)
	}
	return nil
}

// Slugify derives a URL slug from a course title: lowercased, spaces
// collapsed to single hyphens, everything but letters, digits and hyphens
// dropped. The slug is generated once at creation and stays stable across
// later title edits.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

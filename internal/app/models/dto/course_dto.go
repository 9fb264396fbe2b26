package dto

import (
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title        string             `json:"title" binding:"required,max=255"`
	ShortSummary string             `json:"shortSummary" binding:"max=3000"`
	Thumbnail    *string            `json:"thumbnail,omitempty"`
	Category     string             `json:"category" binding:"required"`
	Price        float64            `json:"price" binding:"gte=0"`
	IsFree       bool               `json:"isFree"`
	Level        models.CourseLevel `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	InstituteID  *int64             `json:"instituteId,omitempty" binding:"omitempty,gt=0"`
	Technologies []int64            `json:"technologies,omitempty"`
}

// UpdateCourseRequest represents a partial course update. Only non-nil
// fields are merged into the existing course; the slug never changes.
type UpdateCourseRequest struct {
	Title        *string               `json:"title,omitempty" binding:"omitempty,max=255"`
	ShortSummary *string               `json:"shortSummary,omitempty" binding:"omitempty,max=3000"`
	Thumbnail    *string               `json:"thumbnail,omitempty"`
	Category     *string               `json:"category,omitempty"`
	Price        *float64              `json:"price,omitempty" binding:"omitempty,gte=0"`
	IsFree       *bool                 `json:"isFree,omitempty"`
	Level        *models.CourseLevel   `json:"level,omitempty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Status       *models.ContentStatus `json:"status,omitempty" binding:"omitempty,oneof=draft published archived"`
	Technologies []int64               `json:"technologies,omitempty"`
}

// CreateChapterRequest represents chapter creation data
type CreateChapterRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

// UpdateChapterRequest represents a partial chapter update
type UpdateChapterRequest struct {
	Title  *string               `json:"title,omitempty" binding:"omitempty,max=255"`
	Status *models.ContentStatus `json:"status,omitempty" binding:"omitempty,oneof=draft published archived"`
}

// CreateLessonRequest represents lesson creation data
type CreateLessonRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=3000"`
	VideoURL    *string `json:"videoUrl,omitempty"`
	Duration    string  `json:"duration"`
	IsPreview   bool    `json:"isPreview"`
}

// UpdateLessonRequest represents a partial lesson update
type UpdateLessonRequest struct {
	Title       *string               `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string               `json:"description,omitempty" binding:"omitempty,max=3000"`
	Status      *models.ContentStatus `json:"status,omitempty" binding:"omitempty,oneof=draft published archived"`
	VideoURL    *string               `json:"videoUrl,omitempty"`
	Duration    *string               `json:"duration,omitempty"`
	IsPreview   *bool                 `json:"isPreview,omitempty"`
}

// CreateResourceRequest represents resource creation data
type CreateResourceRequest struct {
	Title           string              `json:"title" binding:"required,max=255"`
	Type            models.ResourceType `json:"type" binding:"required,oneof=text video pdf quiz assignment"`
	URL             *string             `json:"url,omitempty"`
	Path            *string             `json:"path,omitempty" binding:"omitempty,max=500"`
	StorageProvider string              `json:"storageProvider"`
	Description     string              `json:"description" binding:"max=2000"`
}

// UpdateResourceRequest represents a partial resource update
type UpdateResourceRequest struct {
	Title           *string              `json:"title,omitempty" binding:"omitempty,max=255"`
	Type            *models.ResourceType `json:"type,omitempty" binding:"omitempty,oneof=text video pdf quiz assignment"`
	URL             *string              `json:"url,omitempty"`
	Path            *string              `json:"path,omitempty" binding:"omitempty,max=500"`
	StorageProvider *string              `json:"storageProvider,omitempty"`
	Description     *string              `json:"description,omitempty" binding:"omitempty,max=2000"`
}

// CreateAssignmentRequest represents assignment creation data
type CreateAssignmentRequest struct {
	Title        string                `json:"title" binding:"required,max=255"`
	Type         models.AssignmentType `json:"type" binding:"required,oneof=quiz task"`
	TotalPoints  int                   `json:"totalPoints" binding:"required,gt=0"`
	PassingScore int                   `json:"passingScore" binding:"gte=0"`
	Description  string                `json:"description"`
}

// UpdateAssignmentRequest represents a partial assignment update
type UpdateAssignmentRequest struct {
	Title        *string                `json:"title,omitempty" binding:"omitempty,max=255"`
	Type         *models.AssignmentType `json:"type,omitempty" binding:"omitempty,oneof=quiz task"`
	TotalPoints  *int                   `json:"totalPoints,omitempty" binding:"omitempty,gt=0"`
	PassingScore *int                   `json:"passingScore,omitempty" binding:"omitempty,gte=0"`
	Description  *string                `json:"description,omitempty"`
}

// CreateTechnologyRequest represents technology tag creation data
type CreateTechnologyRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// UpdateTechnologyRequest represents technology tag update data
type UpdateTechnologyRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// ImportCourseRequest carries a whole nested course tree in one payload.
// The tree is assembled through the outline editor before anything is
// persisted, so a single invalid node rejects the entire import.
type ImportCourseRequest struct {
	Course   CreateCourseRequest    `json:"course" binding:"required"`
	Chapters []ImportChapterRequest `json:"chapters"`
}

// ImportChapterRequest is one chapter node of an import payload
type ImportChapterRequest struct {
	Chapter CreateChapterRequest  `json:"chapter" binding:"required"`
	Lessons []ImportLessonRequest `json:"lessons"`
}

// ImportLessonRequest is one lesson node of an import payload
type ImportLessonRequest struct {
	Lesson    CreateLessonRequest     `json:"lesson" binding:"required"`
	Resources []CreateResourceRequest `json:"resources"`
}

// CourseListResponse represents a paginated list of catalog entries
type CourseListResponse struct {
	Courses    []models.CatalogEntry `json:"courses"`
	Pagination PaginationInfo        `json:"pagination"`
}

package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleTeacher RoleType = "TEACHER"
	RoleAdmin   RoleType = "ADMIN"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// CourseLevel represents the difficulty level of a course
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// IsValid reports whether the level is one of the known levels.
func (l CourseLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// ContentStatus represents the publication status shared by courses,
// chapters and lessons.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// IsValid reports whether the status is one of the known statuses.
func (s ContentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ResourceType represents the kind of supplementary material attached to a lesson
type ResourceType string

const (
	ResourceText       ResourceType = "text"
	ResourceVideo      ResourceType = "video"
	ResourcePDF        ResourceType = "pdf"
	ResourceQuiz       ResourceType = "quiz"
	ResourceAssignment ResourceType = "assignment"
)

// IsValid reports whether the resource type is one of the known types.
func (t ResourceType) IsValid() bool {
	switch t {
	case ResourceText, ResourceVideo, ResourcePDF, ResourceQuiz, ResourceAssignment:
		return true
	}
	return false
}

// AssignmentType represents the kind of assignment attached to a course
type AssignmentType string

const (
	AssignmentQuiz AssignmentType = "quiz"
	AssignmentTask AssignmentType = "task"
)

// IsValid reports whether the assignment type is one of the known types.
func (t AssignmentType) IsValid() bool {
	return t == AssignmentQuiz || t == AssignmentTask
}

// CatalogSort represents the sort key applied to catalog listings
type CatalogSort string

const (
	SortPopular   CatalogSort = "popular"
	SortNew       CatalogSort = "new"
	SortRating    CatalogSort = "rating"
	SortPriceLow  CatalogSort = "price_low"
	SortPriceHigh CatalogSort = "price_high"
)

// IsValid reports whether the sort key is one of the known keys.
func (s CatalogSort) IsValid() bool {
	switch s {
	case SortPopular, SortNew, SortRating, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

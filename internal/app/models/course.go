package models

import "time"

// Course is the top-level purchasable/learnable unit composed of chapters.
type Course struct {
	ID           int64         `json:"id" db:"id" example:"1"`
	Title        string        `json:"title" db:"title" example:"React Basics"`
	Slug         string        `json:"slug" db:"slug" example:"react-basics"` // derived from title at creation, stable afterwards
	ShortSummary string        `json:"shortSummary" db:"short_summary"`
	Thumbnail    *string       `json:"thumbnail,omitempty" db:"thumbnail"` // Nullable, remote URL or upload path
	Category     string        `json:"category" db:"category" example:"Development"`
	Price        float64       `json:"price" db:"price" example:"49.99"`
	IsFree       bool          `json:"isFree" db:"is_free"` // when true, price is always 0
	Level        CourseLevel   `json:"level" db:"level" example:"beginner"`
	Status       ContentStatus `json:"status" db:"status" example:"draft"`
	TeacherID    int64         `json:"teacherId" db:"teacher_id"`
	InstituteID  *int64        `json:"instituteId,omitempty" db:"institute_id"` // Nullable
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Chapters     []*Chapter    `json:"chapters,omitempty"`
	Technologies []*Technology `json:"technologies,omitempty"`
	Assignments  []*Assignment `json:"assignments,omitempty"`
	Teacher      *User         `json:"teacher,omitempty"`
	Institute    *Institute    `json:"institute,omitempty"`
}

// CatalogEntry is the flattened course row shown on browse/discovery screens.
// EnrolledCount, Rating and IsNew come from aggregates, not course columns.
type CatalogEntry struct {
	ID            int64       `json:"id" db:"id"`
	Title         string      `json:"title" db:"title"`
	Slug          string      `json:"slug" db:"slug"`
	TeacherName   string      `json:"teacherName" db:"teacher_name"`
	Category      string      `json:"category" db:"category"`
	Price         float64     `json:"price" db:"price"`
	IsFree        bool        `json:"isFree" db:"is_free"`
	Level         CourseLevel `json:"level" db:"level"`
	Rating        float64     `json:"rating" db:"rating"`
	EnrolledCount int         `json:"enrolledCount" db:"enrolled_count"`
	IsNew         bool        `json:"isNew" db:"is_new"`
	Thumbnail     *string     `json:"thumbnail,omitempty" db:"thumbnail"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
}

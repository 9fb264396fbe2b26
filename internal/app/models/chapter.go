package models

// Chapter is an ordered grouping of lessons within a course.
// A chapter belongs to exactly one course.
type Chapter struct {
	ID       int64         `json:"id" db:"id"`
	CourseID int64         `json:"courseId" db:"course_id"`
	Title    string        `json:"title" db:"title"`
	Status   ContentStatus `json:"status" db:"status"`
	Position int           `json:"position" db:"position"` // order within the course

	// Relations (populated when needed)
	Lessons []*Lesson `json:"lessons,omitempty"`
}

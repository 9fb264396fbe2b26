package models

// Assignment is graded work attached to a course, reusable across the
// course's classes. PassingScore must never exceed TotalPoints.
type Assignment struct {
	ID           int64          `json:"id" db:"id"`
	CourseID     int64          `json:"courseId" db:"course_id"`
	Title        string         `json:"title" db:"title"`
	Type         AssignmentType `json:"type" db:"type"`
	TotalPoints  int            `json:"totalPoints" db:"total_points"`
	PassingScore int            `json:"passingScore" db:"passing_score"`
	Description  string         `json:"description" db:"description"`
}

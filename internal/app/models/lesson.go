package models

// Lesson is a single learning unit within a chapter, optionally carrying resources.
// A lesson belongs to exactly one chapter.
type Lesson struct {
	ID          int64         `json:"id" db:"id"`
	ChapterID   int64         `json:"chapterId" db:"chapter_id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Status      ContentStatus `json:"status" db:"status"`
	VideoURL    *string       `json:"videoUrl,omitempty" db:"video_url"` // Nullable
	Duration    string        `json:"duration" db:"duration"`            // free text, e.g. "12:45"
	IsPreview   bool          `json:"isPreview" db:"is_preview"`         // visible to non-enrolled users when true
	Position    int           `json:"position" db:"position"`

	// Relations (populated when needed)
	Resources []*Resource `json:"resources,omitempty"`
}

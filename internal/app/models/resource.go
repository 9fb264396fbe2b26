package models

// DefaultStorageProvider is used when a resource does not name its own provider.
const DefaultStorageProvider = "Local"

// Resource is supplementary material attached to a lesson.
// A resource belongs to exactly one lesson. Either URL (external link)
// or Path (internal storage path) may be set.
type Resource struct {
	ID              int64        `json:"id" db:"id"`
	LessonID        int64        `json:"lessonId" db:"lesson_id"`
	Title           string       `json:"title" db:"title"`
	Type            ResourceType `json:"type" db:"type"`
	URL             *string      `json:"url,omitempty" db:"url"`   // Nullable
	Path            *string      `json:"path,omitempty" db:"path"` // Nullable
	StorageProvider string       `json:"storageProvider" db:"storage_provider"`
	Description     string       `json:"description" db:"description"`
	Position        int          `json:"position" db:"position"`
}

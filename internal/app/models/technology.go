package models

// Technology is a simple tag entity, many-to-many with courses.
type Technology struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

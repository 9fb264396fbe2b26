package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	User               *UserRepository
	Token              *TokenRepository
	PasswordResetToken *PasswordResetTokenRepository
	Course             *CourseRepository
	Chapter            *ChapterRepository
	Lesson             *LessonRepository
	Resource           *ResourceRepository
	Assignment         *AssignmentRepository
	Technology         *TechnologyRepository
	Institute          *InstituteRepository
	File               *FileRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:               NewUserRepository(db),
		Token:              NewTokenRepository(db),
		PasswordResetToken: NewPasswordResetTokenRepository(db),
		Course:             NewCourseRepository(db),
		Chapter:            NewChapterRepository(db),
		Lesson:             NewLessonRepository(db),
		Resource:           NewResourceRepository(db),
		Assignment:         NewAssignmentRepository(db),
		Technology:         NewTechnologyRepository(db),
		Institute:          NewInstituteRepository(db),
		File:               NewFileRepository(db),
	}
}

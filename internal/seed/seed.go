package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	appRepos "github.com/kimhouy1997/lms-portal-sub000/internal/app/repositories"
	"github.com/kimhouy1997/lms-portal-sub000/internal/domain"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
	pkgAuth "github.com/kimhouy1997/lms-portal-sub000/internal/pkg/auth"
)

// CreateDefaultData seeds an institute, technologies, default accounts and a
// demo course catalog if they don't exist. Failures are logged and joined but
// do not abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default institute --- //
	phone := "+1-555-0140"
	institute := &appModels.Institute{
		Name:    "Open Learning Institute",
		Code:    "OLI",
		Address: "12 Harbour Street",
		Phone:   &phone,
	}
	created, err := repos.Institute.CreateInstitute(ctx, institute)
	switch {
	case err == nil:
		institute = created
	case errors.Is(err, apperrors.ErrInstituteAlreadyExists):
		institute = nil // already present, ID lookup not needed for seeding below
	default:
		lgr.Error().Err(err).Msg("Error creating default institute")
		finalErr = errors.Join(finalErr, err)
		institute = nil
	}

	// --- Technologies --- //
	for _, tech := range []*appModels.Technology{
		{Name: "Go", Description: "Backend development with Go"},
		{Name: "React", Description: "Component-based front-end library"},
		{Name: "PostgreSQL", Description: "Relational database engine"},
		{Name: "Docker", Description: "Container runtime and tooling"},
	} {
		if _, err := repos.Technology.CreateTechnology(ctx, tech); err != nil &&
			!errors.Is(err, apperrors.ErrTechnologyAlreadyExists) {
			lgr.Error().Err(err).Str("name", tech.Name).Msg("Error creating default technology")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Default accounts --- //
	if _, err := ensureUser(ctx, repos.User, lgr, &defaultAccount{
		Email:     "admin@lms-portal.dev",
		Password:  "Admin123!",
		FirstName: "Portal",
		LastName:  "Admin",
		Role:      appModels.RoleAdmin,
	}); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	var instituteID *int64
	if institute != nil {
		instituteID = &institute.ID
	}

	teacher, err := ensureUser(ctx, repos.User, lgr, &defaultAccount{
		Email:       "teacher@lms-portal.dev",
		Password:    "Teacher123!",
		FirstName:   "Dana",
		LastName:    "Whitfield",
		Role:        appModels.RoleTeacher,
		InstituteID: instituteID,
	})
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	student, err := ensureUser(ctx, repos.User, lgr, &defaultAccount{
		Email:       "student@lms-portal.dev",
		Password:    "Student123!",
		FirstName:   "Sam",
		LastName:    "Porter",
		Role:        appModels.RoleStudent,
		InstituteID: instituteID,
	})
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	// --- Demo courses --- //
	if teacher != nil {
		courseIDs, err := seedDemoCourses(ctx, repos.Course, lgr, teacher.ID, instituteID)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
		}

		// Give the catalog something to aggregate over
		if student != nil {
			for _, courseID := range courseIDs {
				if err := seedEngagement(ctx, dbPool, courseID, student.ID); err != nil {
					lgr.Error().Err(err).Int64("courseId", courseID).Msg("Error seeding course engagement")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}

type defaultAccount struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Role        appModels.RoleType
	InstituteID *int64
}

// ensureUser creates the account if the email is unused and returns the
// stored user either way. A nil user with nil error means lookup failed.
func ensureUser(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger, acct *defaultAccount) (*appModels.User, error) {
	existing, err := userRepo.GetUserByEmail(ctx, acct.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Str("email", acct.Email).Msg("Error checking default account")
		return nil, err
	}

	hashed, err := pkgAuth.HashPassword(acct.Password)
	if err != nil {
		lgr.Error().Err(err).Str("email", acct.Email).Msg("Error hashing default account password")
		return nil, err
	}

	user := &appModels.User{
		Email:       acct.Email,
		Password:    hashed,
		FirstName:   acct.FirstName,
		LastName:    acct.LastName,
		RoleType:    acct.Role,
		InstituteID: acct.InstituteID,
		IsActive:    true,
	}
	created, err := userRepo.CreateUser(ctx, user)
	if err != nil {
		lgr.Error().Err(err).Str("email", acct.Email).Msg("Error creating default account")
		return nil, err
	}
	lgr.Info().Str("email", acct.Email).Str("role", string(acct.Role)).Msg("Created default account")
	return created, nil
}

// seedDemoCourses builds a pair of published demo courses through the outline
// editor so the same creation rules apply as in the authoring endpoints.
func seedDemoCourses(ctx context.Context, courseRepo *appRepos.CourseRepository, lgr zerolog.Logger, teacherID int64, instituteID *int64) ([]int64, error) {
	var finalErr error
	var courseIDs []int64

	for _, spec := range demoCourses() {
		exists, err := courseRepo.SlugExists(ctx, domain.Slugify(spec.input.Title))
		if err != nil {
			lgr.Error().Err(err).Str("title", spec.input.Title).Msg("Error checking demo course slug")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		editor := domain.NewOutlineEditor()
		spec.input.InstituteID = instituteID
		course, err := editor.CreateCourse(spec.input)
		if err != nil {
			lgr.Error().Err(err).Str("title", spec.input.Title).Msg("Error building demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		ok := true
		for _, chapterSpec := range spec.chapters {
			chapter, err := editor.AddChapter(course.ID, chapterSpec.input)
			if err != nil {
				ok = false
				finalErr = errors.Join(finalErr, err)
				break
			}
			chapter.Status = appModels.StatusPublished
			for _, lessonSpec := range chapterSpec.lessons {
				lesson, err := editor.AddLesson(chapter.ID, lessonSpec.input)
				if err != nil {
					ok = false
					finalErr = errors.Join(finalErr, err)
					break
				}
				lesson.Status = appModels.StatusPublished
				for _, resourceInput := range lessonSpec.resources {
					if _, err := editor.AddResource(lesson.ID, resourceInput); err != nil {
						ok = false
						finalErr = errors.Join(finalErr, err)
						break
					}
				}
			}
		}
		for _, assignmentInput := range spec.assignments {
			if _, err := editor.AddAssignment(course.ID, assignmentInput); err != nil {
				ok = false
				finalErr = errors.Join(finalErr, err)
			}
		}
		if !ok {
			lgr.Error().Str("title", spec.input.Title).Msg("Skipping demo course after outline error")
			continue
		}

		course.TeacherID = teacherID
		course.Status = appModels.StatusPublished
		stored, err := courseRepo.CreateCourseTree(ctx, course)
		if err != nil {
			lgr.Error().Err(err).Str("title", spec.input.Title).Msg("Error persisting demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		courseIDs = append(courseIDs, stored.ID)
		lgr.Info().Str("slug", stored.Slug).Msg("Created demo course")
	}

	return courseIDs, finalErr
}

// seedEngagement enrolls the student on the course and leaves a review,
// ignoring duplicates on re-runs.
func seedEngagement(ctx context.Context, dbPool *pgxpool.Pool, courseID, studentID int64) error {
	_, err := dbPool.Exec(ctx, `
		INSERT INTO enrollments (course_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (course_id, user_id) DO NOTHING`,
		courseID, studentID)
	if err != nil {
		return err
	}

	_, err = dbPool.Exec(ctx, `
		INSERT INTO reviews (course_id, user_id, rating, comment)
		VALUES ($1, $2, 5, 'Clear and well paced.')
		ON CONFLICT (course_id, user_id) DO NOTHING`,
		courseID, studentID)
	return err
}

type demoLesson struct {
	input     domain.LessonInput
	resources []domain.ResourceInput
}

type demoChapter struct {
	input   domain.ChapterInput
	lessons []demoLesson
}

type demoCourse struct {
	input       domain.CourseInput
	chapters    []demoChapter
	assignments []domain.AssignmentInput
}

func demoCourses() []demoCourse {
	goVideo := "https://videos.lms-portal.dev/go-setup.mp4"
	reactVideo := "https://videos.lms-portal.dev/react-intro.mp4"
	cheatsheet := "https://cdn.lms-portal.dev/go-cheatsheet.pdf"

	return []demoCourse{
		{
			input: domain.CourseInput{
				Title:        "Go for Backend Developers",
				ShortSummary: "Build and ship HTTP services in Go, from routing to deployment.",
				Category:     "Development",
				Price:        49.99,
				Level:        appModels.LevelIntermediate,
			},
			chapters: []demoChapter{
				{
					input: domain.ChapterInput{Title: "Getting Started"},
					lessons: []demoLesson{
						{
							input: domain.LessonInput{
								Title:       "Installing the Toolchain",
								Description: "Set up Go, the module system and your editor.",
								VideoURL:    &goVideo,
								Duration:    "08:30",
								IsPreview:   true,
							},
							resources: []domain.ResourceInput{
								{
									Title:       "Go Cheatsheet",
									Type:        appModels.ResourcePDF,
									URL:         &cheatsheet,
									Description: "One page syntax reference.",
								},
							},
						},
						{
							input: domain.LessonInput{
								Title:       "Your First HTTP Server",
								Description: "Handlers, routing and graceful shutdown.",
								Duration:    "14:10",
							},
						},
					},
				},
				{
					input: domain.ChapterInput{Title: "Working with Databases"},
					lessons: []demoLesson{
						{
							input: domain.LessonInput{
								Title:       "Connecting to PostgreSQL",
								Description: "Connection pools, queries and transactions.",
								Duration:    "17:45",
							},
						},
					},
				},
			},
			assignments: []domain.AssignmentInput{
				{
					Title:        "HTTP Fundamentals Quiz",
					Type:         appModels.AssignmentQuiz,
					TotalPoints:  100,
					PassingScore: 70,
					Description:  "Covers routing, handlers and middleware.",
				},
			},
		},
		{
			input: domain.CourseInput{
				Title:        "React Essentials",
				ShortSummary: "Components, hooks and state management from the ground up.",
				Category:     "Development",
				Price:        0,
				IsFree:       true,
				Level:        appModels.LevelBeginner,
			},
			chapters: []demoChapter{
				{
					input: domain.ChapterInput{Title: "Thinking in Components"},
					lessons: []demoLesson{
						{
							input: domain.LessonInput{
								Title:       "What is a Component?",
								Description: "Props, composition and rendering.",
								VideoURL:    &reactVideo,
								Duration:    "10:05",
								IsPreview:   true,
							},
						},
					},
				},
			},
		},
	}
}

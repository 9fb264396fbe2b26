package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

func newCourseInput(title string) CourseInput {
	return CourseInput{
		Title:    title,
		Category: "Development",
		Level:    models.LevelBeginner,
	}
}

func TestCreateCourse_AssignsSlugAndDefaults(t *testing.T) {
	e := NewOutlineEditor()

	course, err := e.CreateCourse(newCourseInput("React  Basics"))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.ID != 1 {
		t.Fatalf("expected id=1 got %d", course.ID)
	}
	if course.Slug != "react-basics" {
		t.Fatalf("expected slug=react-basics got %q", course.Slug)
	}
	if course.Status != models.StatusDraft {
		t.Fatalf("expected draft status got %q", course.Status)
	}
	if course.Chapters == nil || len(course.Chapters) != 0 {
		t.Fatalf("expected empty chapter list")
	}
	if course.CreatedAt.IsZero() || course.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestCreateCourse_IDStrictlyIncreases(t *testing.T) {
	e := NewOutlineEditor(&models.Course{ID: 7, Title: "Existing"})

	var prev int64 = 7
	for _, title := range []string{"A", "B", "C"} {
		c, err := e.CreateCourse(newCourseInput(title))
		if err != nil {
			t.Fatalf("CreateCourse(%s): %v", title, err)
		}
		if c.ID <= prev {
			t.Fatalf("expected id > %d got %d", prev, c.ID)
		}
		prev = c.ID
	}
}

func TestCreateCourse_MissingTitleRejected(t *testing.T) {
	e := NewOutlineEditor()

	_, err := e.CreateCourse(newCourseInput("  "))
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField got %v", err)
	}
	if len(e.Courses()) != 0 {
		t.Fatalf("rejected course must not be appended")
	}
}

func TestCreateCourse_NegativePriceRejected(t *testing.T) {
	e := NewOutlineEditor()

	input := newCourseInput("Paid")
	input.Price = -1
	if _, err := e.CreateCourse(input); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange got %v", err)
	}
}

func TestCreateCourse_FreeForcesZeroPrice(t *testing.T) {
	e := NewOutlineEditor()

	input := newCourseInput("Free Course")
	input.Price = 49.99
	input.IsFree = true
	course, err := e.CreateCourse(input)
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if course.Price != 0 {
		t.Fatalf("free course must have price 0, got %v", course.Price)
	}
}

func TestUpdateCourse_TogglingFreeZeroesPrice(t *testing.T) {
	e := NewOutlineEditor()
	input := newCourseInput("Paid Course")
	input.Price = 49.99
	course, _ := e.CreateCourse(input)

	free := true
	updated, err := e.UpdateCourse(course.ID, CoursePatch{IsFree: &free})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if !updated.IsFree || updated.Price != 0 {
		t.Fatalf("expected free course with price 0, got isFree=%v price=%v", updated.IsFree, updated.Price)
	}
}

func TestUpdateCourse_SlugStaysStable(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("React Basics"))

	title := "Advanced React"
	updated, err := e.UpdateCourse(course.ID, CoursePatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated.Title != "Advanced React" {
		t.Fatalf("title not merged: %q", updated.Title)
	}
	if updated.Slug != "react-basics" {
		t.Fatalf("slug must not regenerate on title edit, got %q", updated.Slug)
	}
}

func TestUpdateCourse_NotFound(t *testing.T) {
	e := NewOutlineEditor()
	title := "x"
	if _, err := e.UpdateCourse(42, CoursePatch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestUpdateCourse_PartialMergeLeavesOtherFields(t *testing.T) {
	e := NewOutlineEditor()
	input := newCourseInput("Go Deep Dive")
	input.ShortSummary = "original summary"
	input.Price = 20
	course, _ := e.CreateCourse(input)

	price := 35.0
	updated, err := e.UpdateCourse(course.ID, CoursePatch{Price: &price})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated.Price != 35 {
		t.Fatalf("price not merged: %v", updated.Price)
	}
	if updated.ShortSummary != "original summary" || updated.Title != "Go Deep Dive" {
		t.Fatalf("untouched fields must survive a partial update")
	}
}

func TestAddLesson_EmptyTitleRejectedAndNotAppended(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	chapter, _ := e.AddChapter(course.ID, ChapterInput{Title: "Chapter 1"})

	_, err := e.AddLesson(chapter.ID, LessonInput{Title: ""})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField got %v", err)
	}
	if len(chapter.Lessons) != 0 {
		t.Fatalf("rejected lesson must not be appended, got %d lessons", len(chapter.Lessons))
	}
}

func TestAddChildren_ExclusiveParentAndOrder(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	c1, _ := e.AddChapter(course.ID, ChapterInput{Title: "One"})
	c2, _ := e.AddChapter(course.ID, ChapterInput{Title: "Two"})

	if c1.CourseID != course.ID || c2.CourseID != course.ID {
		t.Fatalf("chapters must reference their parent course")
	}
	if c1.Position != 0 || c2.Position != 1 {
		t.Fatalf("append order broken: %d, %d", c1.Position, c2.Position)
	}

	l1, err := e.AddLesson(c1.ID, LessonInput{Title: "Intro", Duration: "12:45"})
	if err != nil {
		t.Fatalf("AddLesson: %v", err)
	}
	if l1.ChapterID != c1.ID {
		t.Fatalf("lesson attached to wrong chapter")
	}
	if len(c2.Lessons) != 0 {
		t.Fatalf("lesson must never attach to more than one parent")
	}
}

func TestAddResource_DefaultStorageProvider(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	chapter, _ := e.AddChapter(course.ID, ChapterInput{Title: "Ch"})
	lesson, _ := e.AddLesson(chapter.ID, LessonInput{Title: "L"})

	res, err := e.AddResource(lesson.ID, ResourceInput{Title: "Slides", Type: models.ResourcePDF})
	if err != nil {
		t.Fatalf("AddResource: %v", err)
	}
	if res.StorageProvider != models.DefaultStorageProvider {
		t.Fatalf("expected default provider %q got %q", models.DefaultStorageProvider, res.StorageProvider)
	}
}

func TestDeleteChapter_CascadesToLessonsAndResources(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	chapter, _ := e.AddChapter(course.ID, ChapterInput{Title: "Ch"})
	lesson, _ := e.AddLesson(chapter.ID, LessonInput{Title: "L"})
	resource, _ := e.AddResource(lesson.ID, ResourceInput{Title: "R", Type: models.ResourceText})

	if err := e.DeleteChapter(chapter.ID); err != nil {
		t.Fatalf("DeleteChapter: %v", err)
	}
	if len(course.Chapters) != 0 {
		t.Fatalf("chapter still reachable from course root")
	}
	if _, _, _, err := e.findLesson(lesson.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("lesson still reachable after chapter delete")
	}
	if _, _, err := e.findResource(resource.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("resource still reachable after chapter delete")
	}
}

func TestDeleteCourse_RemovesDescendantsFromLookup(t *testing.T) {
	e := NewOutlineEditor()
	first, _ := e.CreateCourse(newCourseInput("First"))
	second, _ := e.CreateCourse(newCourseInput("Second"))
	chapter, _ := e.AddChapter(second.ID, ChapterInput{Title: "Ch"})

	if err := e.DeleteCourse(second.ID); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
	if _, _, err := e.findChapter(chapter.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("chapter %d still resolvable after course delete", chapter.ID)
	}
	if _, err := e.FindCourse(first.ID); err != nil {
		t.Fatalf("unrelated course must survive: %v", err)
	}
	if len(e.Courses()) != 1 {
		t.Fatalf("expected 1 course left, got %d", len(e.Courses()))
	}
}

func TestAddAssignment_PassingScoreBounds(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))

	_, err := e.AddAssignment(course.ID, AssignmentInput{
		Title:        "Quiz 1",
		Type:         models.AssignmentQuiz,
		TotalPoints:  50,
		PassingScore: 60,
	})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange got %v", err)
	}
	if len(course.Assignments) != 0 {
		t.Fatalf("rejected assignment must not be appended")
	}

	a, err := e.AddAssignment(course.ID, AssignmentInput{
		Title:        "Quiz 1",
		Type:         models.AssignmentQuiz,
		TotalPoints:  50,
		PassingScore: 30,
	})
	if err != nil {
		t.Fatalf("AddAssignment: %v", err)
	}
	if a.PassingScore > a.TotalPoints {
		t.Fatalf("invariant violated: passing %d > total %d", a.PassingScore, a.TotalPoints)
	}
}

func TestUpdateAssignment_RejectsPassingAboveNewTotal(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	a, _ := e.AddAssignment(course.ID, AssignmentInput{
		Title: "Task", Type: models.AssignmentTask, TotalPoints: 100, PassingScore: 80,
	})

	lower := 50
	if _, err := e.UpdateAssignment(a.ID, AssignmentPatch{TotalPoints: &lower}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange when total drops below passing, got %v", err)
	}
}

func TestDeleteLesson_RenumbersSiblings(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	chapter, _ := e.AddChapter(course.ID, ChapterInput{Title: "Ch"})
	l1, _ := e.AddLesson(chapter.ID, LessonInput{Title: "One"})
	_, _ = e.AddLesson(chapter.ID, LessonInput{Title: "Two"})
	l3, _ := e.AddLesson(chapter.ID, LessonInput{Title: "Three"})

	if err := e.DeleteLesson(l1.ID); err != nil {
		t.Fatalf("DeleteLesson: %v", err)
	}
	if len(chapter.Lessons) != 2 {
		t.Fatalf("expected 2 lessons got %d", len(chapter.Lessons))
	}
	if chapter.Lessons[0].Position != 0 || chapter.Lessons[1].Position != 1 {
		t.Fatalf("positions not renumbered: %d, %d", chapter.Lessons[0].Position, chapter.Lessons[1].Position)
	}
	if chapter.Lessons[1].ID != l3.ID {
		t.Fatalf("relative order must be preserved")
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"React Basics", "react-basics"},
		{"  Go  Deep   Dive ", "go-deep-dive"},
		{"C# For Beginners!", "c-for-beginners"},
		{"already-sluggy", "already-sluggy"},
		{"ÜX Design", "x-design"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUpdateLesson_RejectedPatchLeavesLessonUntouched(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	chapter, _ := e.AddChapter(course.ID, ChapterInput{Title: "Ch"})
	lesson, _ := e.AddLesson(chapter.ID, LessonInput{Title: "Intro", Description: "short"})

	title := "Renamed"
	tooLong := strings.Repeat("x", MaxLessonDescriptionLen+1)
	_, err := e.UpdateLesson(lesson.ID, LessonPatch{Title: &title, Description: &tooLong})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange got %v", err)
	}
	if lesson.Title != "Intro" || lesson.Description != "short" {
		t.Fatalf("rejected patch must not change the lesson, got title=%q description=%q", lesson.Title, lesson.Description)
	}
}

func TestUpdateChapter_OverlongTitleRejectedUntouched(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	chapter, _ := e.AddChapter(course.ID, ChapterInput{Title: "Ch"})

	overlong := strings.Repeat("t", MaxTitleLen+1)
	status := models.StatusPublished
	_, err := e.UpdateChapter(chapter.ID, ChapterPatch{Title: &overlong, Status: &status})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange got %v", err)
	}
	if chapter.Title != "Ch" || chapter.Status != models.StatusDraft {
		t.Fatalf("rejected patch must not change the chapter, got title=%q status=%q", chapter.Title, chapter.Status)
	}
}

func TestUpdateResource_OverlongTitleRejectedUntouched(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	chapter, _ := e.AddChapter(course.ID, ChapterInput{Title: "Ch"})
	lesson, _ := e.AddLesson(chapter.ID, LessonInput{Title: "L"})
	res, _ := e.AddResource(lesson.ID, ResourceInput{Title: "Slides", Type: models.ResourcePDF})

	overlong := strings.Repeat("t", MaxTitleLen+1)
	desc := "handout"
	_, err := e.UpdateResource(res.ID, ResourcePatch{Title: &overlong, Description: &desc})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange got %v", err)
	}
	if res.Title != "Slides" || res.Description != "" {
		t.Fatalf("rejected patch must not change the resource, got title=%q description=%q", res.Title, res.Description)
	}
}

func TestUpdateAssignment_InvalidTypeLeavesTitleUntouched(t *testing.T) {
	e := NewOutlineEditor()
	course, _ := e.CreateCourse(newCourseInput("Course"))
	assignment, _ := e.AddAssignment(course.ID, AssignmentInput{Title: "Quiz 1", Type: models.AssignmentQuiz, TotalPoints: 10})

	title := "Quiz 2"
	bogus := models.AssignmentType("homework")
	_, err := e.UpdateAssignment(assignment.ID, AssignmentPatch{Title: &title, Type: &bogus})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange got %v", err)
	}
	if assignment.Title != "Quiz 1" || assignment.Type != models.AssignmentQuiz {
		t.Fatalf("rejected patch must not change the assignment, got title=%q type=%q", assignment.Title, assignment.Type)
	}
}

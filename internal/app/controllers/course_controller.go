package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/repositories"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/services"
	"github.com/kimhouy1997/lms-portal-sub000/internal/middleware"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/filestorage"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/helpers"
)

// CourseController handles catalog and course authoring endpoints
type CourseController struct {
	courseService *services.CourseService
	fileRepo      *repositories.FileRepository
	storage       filestorage.FileStorage
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, fileRepo *repositories.FileRepository, storage filestorage.FileStorage) *CourseController {
	return &CourseController{
		courseService: courseService,
		fileRepo:      fileRepo,
		storage:       storage,
	}
}

// parseCatalogQuery reads the browse-screen filter parameters. Absent
// price bounds fall back to the default slider range.
func parseCatalogQuery(ctx *gin.Context) repositories.CatalogQuery {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	q := repositories.CatalogQuery{
		SearchQuery: strings.TrimSpace(ctx.Query("search")),
		Category:    ctx.DefaultQuery("category", "All"),
		PriceMin:    0,
		PriceMax:    100,
		Sort:        models.CatalogSort(ctx.DefaultQuery("sortBy", string(models.SortPopular))),
		Page:        page,
		PageSize:    pageSize,
	}
	if v, err := strconv.ParseFloat(ctx.Query("priceMin"), 64); err == nil {
		q.PriceMin = v
	}
	if v, err := strconv.ParseFloat(ctx.Query("priceMax"), 64); err == nil {
		q.PriceMax = v
	}
	if raw := ctx.Query("levels"); raw != "" {
		for _, level := range strings.Split(raw, ",") {
			q.Levels = append(q.Levels, models.CourseLevel(strings.TrimSpace(level)))
		}
	}
	return q
}

// ListCatalog returns the public course catalog
// @Summary Browse the course catalog
// @Description Lists published courses filtered by search text, category, price range and levels
// @Tags courses
// @Produce json
// @Param search query string false "Matches course title or teacher name, case-insensitive"
// @Param category query string false "Category name, or All" default(All)
// @Param priceMin query number false "Lower price bound, inclusive" default(0)
// @Param priceMax query number false "Upper price bound, inclusive" default(100)
// @Param levels query string false "Comma-separated levels (beginner,intermediate,advanced)"
// @Param sortBy query string false "popular, new, rating, price_low or price_high" default(popular)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Catalog page"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCatalog(ctx *gin.Context) {
	q := parseCatalogQuery(ctx)

	entries, total, err := c.courseService.ListCatalog(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses := make([]models.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		courses = append(courses, *e)
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.CourseListResponse{
			Courses:    courses,
			Pagination: helpers.NewPaginationInfo(total, q.Page, q.PageSize),
		},
		Timestamp: time.Now(),
	})
}

// ListCategories returns the distinct categories of published courses
// @Summary List catalog categories
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Categories"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/categories [get]
func (c *CourseController) ListCategories(ctx *gin.Context) {
	categories, err := c.courseService.ListCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      categories,
		Timestamp: time.Now(),
	})
}

// GetCourse returns a course with its full outline
// @Summary Get a course
// @Description Returns the course with chapters, lessons, resources, assignments and technologies
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course tree"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseTree(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// ListMyCourses returns the authenticated teacher's courses
// @Summary List own courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Course page"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/mine [get]
func (c *CourseController) ListMyCourses(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	page, pageSize := helpers.ParsePaginationParams(ctx)

	courses, total, err := c.courseService.ListCoursesByTeacher(ctx, userID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      courses,
			Pagination: helpers.NewPaginationInfo(total, page, pageSize),
		},
		Timestamp: time.Now(),
	})
}

// CreateCourse creates a new draft course
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid course data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Course title already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	course, err := c.courseService.CreateCourse(ctx, &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// UpdateCourse merges a partial update into a course
// @Summary Update a course
// @Description Merges the provided fields; the slug never changes after creation
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid course data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	course, err := c.courseService.UpdateCourse(ctx, id, &req, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// DeleteCourse removes a course and all of its content
// @Summary Delete a course
// @Description Removes the course with every chapter, lesson, resource and assignment. Irreversible.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.courseService.DeleteCourse(ctx, id, userID, middleware.CurrentRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course deleted"},
		Timestamp: time.Now(),
	})
}

// ImportCourse creates a whole course tree from one payload
// @Summary Import a course
// @Description Accepts a nested course tree, validates every node, then persists it atomically
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ImportCourseRequest true "Nested course tree"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course imported"
// @Failure 400 {object} dto.ErrorResponse "A node in the tree is invalid"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Course title already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/import [post]
func (c *CourseController) ImportCourse(ctx *gin.Context) {
	var req dto.ImportCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	course, err := c.courseService.ImportCourse(ctx, &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// UploadThumbnail stores a course thumbnail image
// @Summary Upload a course thumbnail
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param file formData file true "Thumbnail image"
// @Success 200 {object} dto.APIResponse{data=dto.FileResponse} "Thumbnail stored"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/thumbnail [post]
func (c *CourseController) UploadThumbnail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Thumbnail file is required").
			WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	info, err := c.storage.SaveFile(fileHeader, "thumbnails")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	thumbnail := info.URL
	_, err = c.courseService.UpdateCourse(ctx, id, &dto.UpdateCourseRequest{Thumbnail: &thumbnail}, userID, middleware.CurrentRole(ctx))
	if err != nil {
		// roll the orphaned upload back
		_ = c.storage.DeleteFile(info.Path)
		middleware.HandleAPIError(ctx, err)
		return
	}

	file := &models.File{
		FileName:     info.Filename,
		FilePath:     info.Path,
		FileURL:      info.URL,
		FileSize:     info.FileSize,
		FileType:     info.MimeType,
		ResourceType: models.FileTypeCourseThumbnail,
		ResourceID:   id,
		UploadedBy:   userID,
	}
	file, err = c.fileRepo.CreateFile(ctx, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FileResponse{
			ID:           file.ID,
			FileName:     file.FileName,
			FileURL:      file.FileURL,
			FileSize:     file.FileSize,
			FileType:     file.FileType,
			ResourceType: string(file.ResourceType),
		},
		Timestamp: time.Now(),
	})
}

// AddChapter appends a chapter to a course
// @Summary Add a chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CreateChapterRequest true "Chapter data"
// @Success 201 {object} dto.APIResponse{data=models.Chapter} "Chapter created"
// @Failure 400 {object} dto.ErrorResponse "Invalid chapter data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/chapters [post]
func (c *CourseController) AddChapter(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	chapter, err := c.courseService.AddChapter(ctx, id, &req, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      chapter,
		Timestamp: time.Now(),
	})
}

// UpdateChapter merges a partial update into a chapter
// @Summary Update a chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Param request body dto.UpdateChapterRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Chapter} "Chapter updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid chapter data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Chapter not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /chapters/{id} [put]
func (c *CourseController) UpdateChapter(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	chapter, err := c.courseService.UpdateChapter(ctx, id, &req, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      chapter,
		Timestamp: time.Now(),
	})
}

// DeleteChapter removes a chapter and its lessons
// @Summary Delete a chapter
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Chapter deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid chapter ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Chapter not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /chapters/{id} [delete]
func (c *CourseController) DeleteChapter(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.courseService.DeleteChapter(ctx, id, userID, middleware.CurrentRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Chapter deleted"},
		Timestamp: time.Now(),
	})
}

// AddLesson appends a lesson to a chapter
// @Summary Add a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Param request body dto.CreateLessonRequest true "Lesson data"
// @Success 201 {object} dto.APIResponse{data=models.Lesson} "Lesson created"
// @Failure 400 {object} dto.ErrorResponse "Invalid lesson data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Chapter not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /chapters/{id}/lessons [post]
func (c *CourseController) AddLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	lesson, err := c.courseService.AddLesson(ctx, id, &req, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      lesson,
		Timestamp: time.Now(),
	})
}

// UpdateLesson merges a partial update into a lesson
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Param request body dto.UpdateLessonRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Lesson} "Lesson updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid lesson data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons/{id} [put]
func (c *CourseController) UpdateLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	lesson, err := c.courseService.UpdateLesson(ctx, id, &req, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      lesson,
		Timestamp: time.Now(),
	})
}

// DeleteLesson removes a lesson and its resources
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Lesson deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid lesson ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons/{id} [delete]
func (c *CourseController) DeleteLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.courseService.DeleteLesson(ctx, id, userID, middleware.CurrentRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Lesson deleted"},
		Timestamp: time.Now(),
	})
}

// AddResource appends a resource to a lesson
// @Summary Add a lesson resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Param request body dto.CreateResourceRequest true "Resource data"
// @Success 201 {object} dto.APIResponse{data=models.Resource} "Resource created"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons/{id}/resources [post]
func (c *CourseController) AddResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	resource, err := c.courseService.AddResource(ctx, id, &req, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      resource,
		Timestamp: time.Now(),
	})
}

// UpdateResource merges a partial update into a resource
// @Summary Update a lesson resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param request body dto.UpdateResourceRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Resource} "Resource updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources/{id} [put]
func (c *CourseController) UpdateResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	resource, err := c.courseService.UpdateResource(ctx, id, &req, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resource,
		Timestamp: time.Now(),
	})
}

// DeleteResource removes a lesson resource
// @Summary Delete a lesson resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Resource deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources/{id} [delete]
func (c *CourseController) DeleteResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.courseService.DeleteResource(ctx, id, userID, middleware.CurrentRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Resource deleted"},
		Timestamp: time.Now(),
	})
}

// AddAssignment attaches an assignment to a course
// @Summary Add an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} dto.APIResponse{data=models.Assignment} "Assignment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment data, e.g. passing score above total points"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/assignments [post]
func (c *CourseController) AddAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	assignment, err := c.courseService.AddAssignment(ctx, id, &req, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      assignment,
		Timestamp: time.Now(),
	})
}

// UpdateAssignment merges a partial update into an assignment
// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [put]
func (c *CourseController) UpdateAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	assignment, err := c.courseService.UpdateAssignment(ctx, id, &req, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assignment,
		Timestamp: time.Now(),
	})
}

// DeleteAssignment removes an assignment
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/{id} [delete]
func (c *CourseController) DeleteAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.courseService.DeleteAssignment(ctx, id, userID, middleware.CurrentRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Assignment deleted"},
		Timestamp: time.Now(),
	})
}

// SetTechnologies replaces a course's technology tags
// @Summary Set course technologies
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body []int true "Technology IDs"
// @Success 200 {object} dto.APIResponse{data=[]models.Technology} "Technologies linked"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course belongs to another teacher"
// @Failure 404 {object} dto.ErrorResponse "Course or technology not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/technologies [put]
func (c *CourseController) SetTechnologies(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var technologyIDs []int64
	if err := ctx.ShouldBindJSON(&technologyIDs); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Expected an array of technology IDs")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	technologies, err := c.courseService.SetCourseTechnologies(ctx, id, technologyIDs, userID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      technologies,
		Timestamp: time.Now(),
	})
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/controllers"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	technologyController *controllers.TechnologyController,
	instituteController *controllers.InstituteController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Public catalog routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCatalog)
		courses.GET("/categories", courseController.ListCategories)
		courses.GET("/:id", courseController.GetCourse)
	}

	// Technology routes (public list)
	technologies := v1.Group("/technologies")
	{
		technologies.GET("", technologyController.ListTechnologies)
	}

	// Institute routes (public access)
	institutes := v1.Group("/institutes")
	{
		institutes.GET("", instituteController.ListInstitutes)
		institutes.GET("/:id", instituteController.GetInstitute)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.Me)

		authenticated.PUT("/users/me", userController.UpdateProfile)
		authenticated.POST("/users/me/photo", userController.UploadProfilePhoto)

		// Authoring routes are restricted to teachers and admins. Ownership of
		// the underlying course is enforced in the service layer.
		authoring := authenticated.Group("")
		authoring.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleAdmin))
		{
			authoring.GET("/courses/mine", courseController.ListMyCourses)
			authoring.POST("/courses", courseController.CreateCourse)
			authoring.POST("/courses/import", courseController.ImportCourse)
			authoring.PUT("/courses/:id", courseController.UpdateCourse)
			authoring.DELETE("/courses/:id", courseController.DeleteCourse)
			authoring.POST("/courses/:id/thumbnail", courseController.UploadThumbnail)
			authoring.PUT("/courses/:id/technologies", courseController.SetTechnologies)

			authoring.POST("/courses/:id/chapters", courseController.AddChapter)
			authoring.PUT("/chapters/:id", courseController.UpdateChapter)
			authoring.DELETE("/chapters/:id", courseController.DeleteChapter)

			authoring.POST("/chapters/:id/lessons", courseController.AddLesson)
			authoring.PUT("/lessons/:id", courseController.UpdateLesson)
			authoring.DELETE("/lessons/:id", courseController.DeleteLesson)

			authoring.POST("/lessons/:id/resources", courseController.AddResource)
			authoring.PUT("/resources/:id", courseController.UpdateResource)
			authoring.DELETE("/resources/:id", courseController.DeleteResource)

			authoring.POST("/courses/:id/assignments", courseController.AddAssignment)
			authoring.PUT("/assignments/:id", courseController.UpdateAssignment)
			authoring.DELETE("/assignments/:id", courseController.DeleteAssignment)

			// Teachers may list their students; the controller narrows the
			// visible set for non-admin callers.
			authoring.GET("/users", userController.ListUsers)
			authoring.GET("/users/:id", userController.GetUser)
		}

		// Admin-only management routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.PUT("/users/:id/role", userController.UpdateUserRole)
			admin.PUT("/users/:id/active", userController.SetUserActive)
			admin.DELETE("/users/:id", userController.DeleteUser)

			admin.POST("/institutes", instituteController.CreateInstitute)
			admin.PUT("/institutes/:id", instituteController.UpdateInstitute)
			admin.DELETE("/institutes/:id", instituteController.DeleteInstitute)

			admin.POST("/technologies", technologyController.CreateTechnology)
			admin.PUT("/technologies/:id", technologyController.UpdateTechnology)
			admin.DELETE("/technologies/:id", technologyController.DeleteTechnology)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}

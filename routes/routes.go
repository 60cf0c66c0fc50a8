package routes

import (
	"project-review-api/controllers"
	"project-review-api/middleware"
	"project-review-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Project Review API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Teams and students (read-only)
			protected.GET("/teams/:id", controllers.GetTeam)
			protected.GET("/students/:regNo", controllers.GetStudent)

			// Eligibility
			protected.GET("/eligibility/:studentId/:semester/:reviewType", controllers.GetEligibility)

			// Review requests
			requests := protected.Group("/review-requests")
			{
				requests.POST("", middleware.RequireRole(models.RoleStudent), controllers.CreateReviewRequest)
				requests.GET("/mine", middleware.RequireRole(models.RoleStudent), controllers.GetMyReviewRequests)
				requests.GET("", middleware.RequireRole(models.RoleStaff, models.RoleAdmin), controllers.ListReviewRequests)
				requests.POST("/:id/decision", middleware.RequireRole(models.RoleStaff, models.RoleAdmin), controllers.DecideReviewRequest)
			}

			// Challenge review assignment (admin)
			protected.GET("/pending-requests", middleware.RequireRole(models.RoleAdmin), controllers.GetPendingRequests)
			protected.GET("/reviewer-pool", middleware.RequireRole(models.RoleAdmin), controllers.GetReviewerPool)
			protected.POST("/assign-batch", middleware.RequireRole(models.RoleAdmin), controllers.AssignBatch)

			// Marks
			protected.GET("/average-marks/:studentId/:teamId", controllers.GetAverageMarks)
			protected.POST("/marks", middleware.RequireRole(models.RoleStaff), controllers.SubmitMarks)
			protected.GET("/marks/:studentId", middleware.RequireRole(models.RoleStaff, models.RoleAdmin), controllers.GetStudentMarks)

			// Schedules and review status
			schedules := protected.Group("/schedules")
			{
				schedules.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateSchedule)
				schedules.GET("", controllers.ListSchedules)
				schedules.GET("/:id", controllers.GetSchedule)
			}
			protected.PATCH("/review/:id/status", middleware.RequireRole(models.RoleStaff, models.RoleAdmin), controllers.UpdateReviewStatus)

			// Admin access toggles
			admin := protected.Group("/admin", middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/access", controllers.GetAccessToggles)
				admin.PUT("/access", controllers.SetAccessToggle)
			}
		}
	}
}

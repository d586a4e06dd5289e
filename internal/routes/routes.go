package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telehealth-connect-server/internal/config"
	"telehealth-connect-server/internal/handlers"
	"telehealth-connect-server/internal/middleware"
	"telehealth-connect-server/internal/models"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	doctorHandler := handlers.NewDoctorHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	doctorPortalHandler := handlers.NewDoctorPortalHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
		// Doctor portal login, gated on the doctor role
		public.POST("/doctor/auth/login", authHandler.DoctorLogin)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// Doctor directory
		doctorRoutes := private.Group("/doctors")
		{
			doctorRoutes.GET("", doctorHandler.ListDoctors)
			doctorRoutes.GET("/:id", doctorHandler.GetDoctorByID)
		}

		// Patient appointment lifecycle
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetMyAppointments)
			appointmentRoutes.PATCH("/:id/cancel", appointmentHandler.CancelAppointment)
		}

		// Patient dashboard
		private.GET("/dashboard", dashboardHandler.GetDashboard)

		// Doctor portal, restricted to the doctor role
		doctorPortal := private.Group("/doctor")
		doctorPortal.Use(middleware.RoleAuthMiddleware(models.RoleDoctor))
		{
			doctorPortal.GET("/appointments", doctorPortalHandler.GetAppointments)
			doctorPortal.PATCH("/appointments/:id", doctorPortalHandler.UpdateAppointment)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}

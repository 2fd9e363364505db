// Package routes wires the HTTP endpoints to their controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/controllers"
	"github.com/alumniconnect/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrls.AuthController.Register)
		auth.POST("/login", ctrls.AuthController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.POST("/auth/logout", ctrls.AuthController.Logout)

		users := authenticated.Group("/users")
		{
			users.GET("", ctrls.UserController.ListUsers)
			users.POST("", ctrls.UserController.CreateUser)
			users.GET("/:id", ctrls.UserController.GetUser)
			users.PUT("/:id", ctrls.UserController.UpdateUser)
			users.DELETE("/:id", ctrls.UserController.DeleteUser)
		}

		authenticated.GET("/alumni", ctrls.UserController.ListAlumni)

		events := authenticated.Group("/events")
		{
			events.GET("", ctrls.EventController.ListEvents)
			events.POST("", ctrls.EventController.CreateEvent)
			events.GET("/:id", ctrls.EventController.GetEvent)
			events.PUT("/:id", ctrls.EventController.UpdateEvent)
			events.DELETE("/:id", ctrls.EventController.DeleteEvent)
			events.POST("/:id/register", ctrls.EventController.RegisterForEvent)
		}

		authenticated.GET("/user/event-registrations", ctrls.EventController.ListMyRegistrations)

		mentorship := authenticated.Group("/mentorship-requests")
		{
			mentorship.GET("", ctrls.MentorshipController.ListRequests)
			mentorship.POST("", ctrls.MentorshipController.CreateRequest)
			mentorship.POST("/:id/:action", ctrls.MentorshipController.Respond)
		}

		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", ctrls.JobController.ListJobs)
			jobs.POST("", ctrls.JobController.CreateJob)
			jobs.GET("/:id", ctrls.JobController.GetJob)
			jobs.PUT("/:id", ctrls.JobController.UpdateJob)
			jobs.DELETE("/:id", ctrls.JobController.DeleteJob)
		}

		campaigns := authenticated.Group("/campaigns")
		{
			campaigns.GET("", ctrls.CampaignController.ListCampaigns)
			campaigns.POST("", ctrls.CampaignController.CreateCampaign)
			campaigns.GET("/:id", ctrls.CampaignController.GetCampaign)
			campaigns.PUT("/:id", ctrls.CampaignController.UpdateCampaign)
			campaigns.DELETE("/:id", ctrls.CampaignController.DeleteCampaign)
			campaigns.POST("/:id/donate", ctrls.CampaignController.Donate)
			campaigns.GET("/:id/donations", ctrls.CampaignController.ListDonations)
		}
	}
}

package routes

import (
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wetopinie/handlers"
	"wetopinie/middleware"
	"wetopinie/utils"
)

// RegisterClinicRoutes registers the public directory endpoints.
func RegisterClinicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clinics")
	{
		api.POST("/search", hb.SearchClinicsHandler)
		api.GET("/cities", hb.GetCitiesHandler)
		api.GET("/specializations", hb.GetSpecializationsHandler)
		api.GET("/:id", hb.GetClinicHandler)
		api.GET("/:id/reviews", hb.GetClinicReviewsHandler)
	}
}

// RegisterSubmissionRoutes registers endpoints that feed the moderation queues.
func RegisterSubmissionRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	api := r.Group("/api")
	{
		// Submissions accept anonymous callers; an attached token only
		// attributes the submission.
		api.Use(middleware.FirebaseAuthMiddleware(authClient, false))
		api.POST("/clinics", hb.SubmitClinicHandler)
		api.POST("/clinics/:id/edits", hb.SubmitEditHandler)
		api.POST("/clinics/:id/reviews", hb.SubmitReviewHandler)
	}
}

// RegisterFilterStateRoutes registers the persisted filter state endpoints.
func RegisterFilterStateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/filter-state")
	{
		api.GET("", hb.GetFilterStateHandler)
		api.PUT("", hb.SaveFilterStateHandler)
		api.DELETE("", hb.ClearFilterStateHandler)
	}
}

// RegisterModerationRoutes sets up endpoints for moderator operations.
func RegisterModerationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	adminGroup := r.Group("/api/moderation")
	{
		adminGroup.Use(middleware.FirebaseAuthMiddleware(authClient, true))
		adminGroup.Use(middleware.ModeratorOnly())
		adminGroup.GET("/queues", hb.GetModerationQueuesHandler)
		adminGroup.GET("/log", hb.GetModerationLogHandler)
		adminGroup.POST("/:kind/:id/approve", hb.ApproveSubmissionHandler)
		adminGroup.POST("/:kind/:id/reject", hb.RejectSubmissionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Cześć, tu WetOpinie",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-Id", "X-User-Latitude", "X-User-Longitude"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.SessionMiddleware())
	r.Use(middleware.CoordinateIntake())

	RegisterClinicRoutes(r, hb)
	RegisterSubmissionRoutes(r, hb, authClient)
	RegisterFilterStateRoutes(r, hb)
	RegisterModerationRoutes(r, hb, authClient)
	RegisterHealthRoute(r)
}

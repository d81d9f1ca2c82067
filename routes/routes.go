package routes

import (
	"net/http"
	"time"

	"roomdesk/handlers"
	"roomdesk/middleware"
	"roomdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and sign-in endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUser)
		api.POST("/login", hb.LoginUser)
		api.POST("/login/google", hb.LoginUserGoogle)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutUser)
		api.GET("/me", hb.GetProfile)
	}
}

// RegisterChatRoutes registers the conversational booking endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/session", hb.StartChatSession)
		api.POST("/session/:sessionID/message", hb.ProcessChatTurn)
		api.PUT("/session/:sessionID/details", hb.UpdateChatDetails)
		api.POST("/session/:sessionID/submit", hb.SubmitChatBooking)
		api.DELETE("/session/:sessionID", hb.ResetChatSession)
	}
}

// RegisterBookingRoutes registers read access to persisted bookings.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListMyBookings)
		api.GET("/:id", hb.GetBookingByID)
	}
}

// RegisterDashboardRoutes registers the approval-flow progress endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/flows", hb.GetDashboardFlows)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}

// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "roomdesk/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Chat endpoints
	StartChatSession  gin.HandlerFunc
	ProcessChatTurn   gin.HandlerFunc
	UpdateChatDetails gin.HandlerFunc
	SubmitChatBooking gin.HandlerFunc
	ResetChatSession  gin.HandlerFunc

	// Booking endpoints
	ListMyBookings gin.HandlerFunc
	GetBookingByID gin.HandlerFunc

	// Dashboard endpoints
	GetDashboardFlows gin.HandlerFunc

	// User endpoints
	RegisterUser    gin.HandlerFunc
	LoginUser       gin.HandlerFunc
	LoginUserGoogle gin.HandlerFunc
	LogoutUser      gin.HandlerFunc
	GetProfile      gin.HandlerFunc
}

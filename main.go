// File: roomdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomdesk/config"
	"roomdesk/cron"
	"roomdesk/database"
	bookingRepoPkg "roomdesk/database/repository/booking"
	flowRepoPkg "roomdesk/database/repository/flow"
	outboxRepoPkg "roomdesk/database/repository/outbox"
	userRepoPkg "roomdesk/database/repository/user"
	"roomdesk/handlers"
	"roomdesk/middleware"
	"roomdesk/routes"
	"roomdesk/services/booking"
	"roomdesk/services/conversation"
	"roomdesk/services/identity"
	ai "roomdesk/services/intelligence"
	"roomdesk/services/notification"
	"roomdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const chatSessionTTL = 30 * time.Minute

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	gemini, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	defer gemini.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	flowRepo := flowRepoPkg.NewMongoFlowRepo()
	outboxRepo := outboxRepoPkg.NewMongoOutboxRepo()

	// confirmation queue and its worker.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	mailService, err := notification.NewDefaultMailService(outboxRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize mail service: %v", err)
	}
	cron.InitConfirmationWorker(mailService)

	// services.
	aiService := ai.NewDefaultAIService(gemini)

	submissionService := &booking.DefaultSubmissionService{
		AI:    aiService,
		Repo:  bookingRepo,
		Queue: queueClient,
	}

	sessionStore := conversation.NewRedisSessionStore(utils.GetSessionCacheClient(), chatSessionTTL)
	conversationService := &conversation.DefaultConversationService{
		AI:        aiService,
		Store:     sessionStore,
		Submitter: submissionService,
	}

	notifier := identity.NewNotifier()
	identityService := &identity.DefaultIdentityService{
		Repo:           userRepo,
		Notifier:       notifier,
		AuthCache:      utils.GetAuthCacheClient(),
		Firebase:       utils.FirebaseAuthClient,
		GoogleAudience: config.AppConfig.GoogleOAuthAudience,
	}

	// Drop a user's live chat sessions when that user signs out.
	unsubscribe := notifier.Subscribe(func(ev identity.Event) {
		if ev.SignedIn {
			return
		}
		if err := conversationService.DropOwnerSessions(context.Background(), ev.UserID); err != nil {
			logger.Sugar().Warnf("main: failed to drop sessions for %s: %v", ev.UserID, err)
		}
	})
	defer unsubscribe()

	chatHandler := handlers.NewChatHandler(conversationService)
	bookingHandler := handlers.NewBookingHandler(bookingRepo)
	dashboardHandler := handlers.NewDashboardHandler(flowRepo)
	userHandler := handlers.NewUserHandler(identityService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Chat endpoints.
		StartChatSession:  chatHandler.StartSession,
		ProcessChatTurn:   chatHandler.ProcessMessage,
		UpdateChatDetails: chatHandler.UpdateDetails,
		SubmitChatBooking: chatHandler.Submit,
		ResetChatSession:  chatHandler.ResetSession,

		// Booking endpoints.
		ListMyBookings: bookingHandler.ListMine,
		GetBookingByID: bookingHandler.GetByID,

		// Dashboard endpoints.
		GetDashboardFlows: dashboardHandler.GetFlows,

		// User endpoints.
		RegisterUser:    userHandler.Register,
		LoginUser:       userHandler.Login,
		LoginUserGoogle: userHandler.LoginGoogle,
		LogoutUser:      userHandler.Logout,
		GetProfile:      userHandler.Profile,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

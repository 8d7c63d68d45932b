package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cowryhub/cowry-backend/internal/handler/http/middleware"
	usecasecontract "github.com/cowryhub/cowry-backend/internal/usecase/contract"
)

type Router struct {
	statusHandler *StatusHandler
	authHandler   *AuthHandler
	userHandler   *UserHandler
	adminHandler  *AdminHandler
	authUsecase   usecasecontract.IAuthUseCase
	config        usecasecontract.IConfigProvider
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	accountUsecase usecasecontract.IAccountUseCase,
	adminUsecase usecasecontract.IAdminUseCase,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		statusHandler: NewStatusHandler(config),
		authHandler:   NewAuthHandler(authUsecase),
		userHandler:   NewUserHandler(accountUsecase),
		adminHandler:  NewAdminHandler(adminUsecase),
		authUsecase:   authUsecase,
		config:        config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.config.GetRateLimitPerSecond(), &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.Use(middleware.Metrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// Public routes (no authentication required)
	api.GET("/status", r.statusHandler.GetStatus)
	api.POST("/register", r.authHandler.Register)
	api.POST("/login", r.authHandler.Login)

	// Protected routes (session verification required)
	protected := api.Group("/")
	protected.Use(middleware.SessionVerifier(r.authUsecase))
	{
		protected.GET("/verify-token", r.authHandler.VerifyToken)
		protected.GET("/dashboard", r.userHandler.GetDashboard)
		protected.POST("/logout", r.authHandler.Logout)

		protected.GET("/user/profile", r.userHandler.GetProfile)
		protected.PUT("/user/profile", r.userHandler.UpdateProfile)
		protected.GET("/user/balance", r.userHandler.GetBalance)
		protected.GET("/user/transactions", r.userHandler.GetTransactions)
		protected.POST("/user/change-password", r.authHandler.ChangePassword)

		// Admin routes (admin role required on top of a valid session)
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/users", r.adminHandler.ListUsers)
			admin.PUT("/users/:userId/balance", r.adminHandler.UpdateBalance)
			admin.PUT("/users/:userId/role", r.adminHandler.UpdateRole)
		}
	}
}

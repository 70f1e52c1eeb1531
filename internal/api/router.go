package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/todoapp/todo-api/internal/api/handler"
	"github.com/todoapp/todo-api/internal/api/middleware"
	"github.com/todoapp/todo-api/internal/auth"
	"github.com/todoapp/todo-api/internal/core/service"
	"github.com/todoapp/todo-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, tokens *auth.TokenManager, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("todoapp"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	todoRepo := sqlite.NewToDoRepository(db)

	authService := service.NewAuthService(userRepo, auth.NewPasswordHasher(), tokens)
	userService := service.NewUserService(userRepo)
	todoService := service.NewToDoService(todoRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	todoHandler := handler.NewToDoHandler(todoService)
	userTodoHandler := handler.NewUserToDoHandler(todoService)

	accessAuth := middleware.Auth(tokens, auth.TypeAccess, false)
	freshAuth := middleware.Auth(tokens, auth.TypeAccess, true)
	refreshAuth := middleware.Auth(tokens, auth.TypeRefresh, false)

	// --- Auth routes ---
	e.POST("/sign-up/", authHandler.SignUp)
	e.POST("/sign-in/", authHandler.SignIn)
	e.POST("/refresh", authHandler.Refresh, refreshAuth)

	// --- To-do routes (token-scoped to the caller) ---
	e.GET("/todo/", todoHandler.List, accessAuth)
	e.POST("/todo/", todoHandler.Create, accessAuth)
	e.GET("/todo/:id/", todoHandler.Get, accessAuth)
	e.PATCH("/todo/:id/", todoHandler.Update, accessAuth)
	e.DELETE("/todo/:id/", todoHandler.Delete, accessAuth)

	// --- User routes ---
	e.GET("/user/:id/", userHandler.Get)
	e.GET("/user/:id/todo/", userTodoHandler.List, freshAuth)
	e.POST("/user/:id/todo/", userTodoHandler.Create, freshAuth)
	e.GET("/user/:id/todo/:todo_id/", userTodoHandler.Get, accessAuth)
	e.PATCH("/user/:id/todo/:todo_id/", userTodoHandler.Update, accessAuth)
	e.DELETE("/user/:id/todo/:todo_id/", userTodoHandler.Delete, accessAuth)

	// --- Observability and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

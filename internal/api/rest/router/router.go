package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/espresso-emporium-server/internal/api/rest/handler"
	"github.com/dtroode/espresso-emporium-server/internal/api/rest/middleware"
	"github.com/dtroode/espresso-emporium-server/internal/logger"
)

// Router wires HTTP routes to handlers and middleware.
type Router struct {
	coffeeService  handler.CoffeeService
	userService    handler.UserService
	pinger         handler.Pinger
	tokenParser    middleware.TokenParser
	allowedOrigins []string
	logger         *logger.Logger
}

// Option configures optional Router behaviour.
type Option func(*Router)

// WithWriteAuth requires a bearer token accepted by parser on every
// POST, PUT and DELETE route.
func WithWriteAuth(parser middleware.TokenParser) Option {
	return func(r *Router) {
		r.tokenParser = parser
	}
}

// WithAllowedOrigins restricts CORS to origins. "*" allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(r *Router) {
		r.allowedOrigins = origins
	}
}

// New creates new Router instance.
func New(
	coffeeService handler.CoffeeService,
	userService handler.UserService,
	pinger handler.Pinger,
	logger *logger.Logger,
	opts ...Option,
) *Router {
	r := &Router{
		coffeeService:  coffeeService,
		userService:    userService,
		pinger:         pinger,
		allowedOrigins: []string{"*"},
		logger:         logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	e := gin.New()
	e.Use(
		gin.Recovery(),
		middleware.RequestID,
		middleware.NewLogging(r.logger).HandleHTTP,
		cors.New(r.corsConfig()),
	)

	r.registerHealthRoutes(e)
	r.registerCoffeeRoutes(e)
	r.registerUserRoutes(e)

	return e
}

func (r *Router) registerHealthRoutes(e *gin.Engine) {
	h := handler.NewHealth(r.pinger, r.logger)
	e.GET("/", h.Root)
	e.GET("/health", h.Check)
}

func (r *Router) registerCoffeeRoutes(e *gin.Engine) {
	h := handler.NewCoffee(r.coffeeService, r.logger)
	write := r.writeGuard()

	coffees := e.Group("/coffees")
	{
		coffees.GET("", h.ListCoffees)
		coffees.GET("/:id", h.GetCoffee)
		coffees.POST("", append(write, h.CreateCoffee)...)
		coffees.PUT("/:id", append(write, h.UpdateCoffee)...)
		coffees.DELETE("/:id", append(write, h.DeleteCoffee)...)
	}
}

func (r *Router) registerUserRoutes(e *gin.Engine) {
	h := handler.NewUser(r.userService, r.logger)
	write := r.writeGuard()

	users := e.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", append(write, h.CreateUser)...)
	}
}

// writeGuard returns the handlers that run before every write route.
// The result is a fresh slice so appending to it is safe.
func (r *Router) writeGuard() []gin.HandlerFunc {
	if r.tokenParser == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.NewAuthenticate(r.tokenParser, r.logger).HandleHTTP}
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(r.allowedOrigins) == 0 || slices.Contains(r.allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = r.allowedOrigins
	}
	return cfg
}

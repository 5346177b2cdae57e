package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"trailbook/internal/auth"
	"trailbook/internal/booking"
	"trailbook/internal/config"
	"trailbook/internal/email"
	"trailbook/internal/experience"
	"trailbook/internal/promo"
	"trailbook/internal/seed"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	catalogCache := experience.NewCache(
		redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}),
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
	)

	catalogRepo := experience.NewRepository(db)
	promoRepo := promo.NewRepository(db)
	bookingRepo := booking.NewRepository(db)

	catalogService := experience.NewService(catalogRepo, catalogCache)
	promoService := promo.NewService(promoRepo)
	bookingService := booking.NewService(bookingRepo, catalogRepo, promoRepo, catalogCache, emailService)

	catalogHandler := experience.NewHandler(catalogService)
	promoHandler := promo.NewHandler(promoService)
	bookingHandler := booking.NewHandler(bookingService)
	authHandler := auth.NewHandler(cfg.AdminPasswordHash, cfg.JWTSecret)
	seedHandler := seed.NewHandler(seed.NewSeeder(catalogRepo, promoRepo))

	public := router.Group("/api")
	public.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		public.GET("/experiences", catalogHandler.ListExperiences)
		public.GET("/experiences/:id", catalogHandler.GetExperience)
		public.POST("/bookings", bookingHandler.CreateBooking)
		public.GET("/bookings/:referenceID", bookingHandler.GetBooking)
		public.POST("/promo/validate", promoHandler.Validate)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	{
		admin.POST("/login", authHandler.Login)

		protected := admin.Group("")
		protected.Use(authMiddleware, adminMiddleware)
		{
			protected.POST("/experiences", catalogHandler.CreateExperience)
			protected.POST("/experiences/:id/slots", catalogHandler.CreateSlot)
			protected.POST("/promos", promoHandler.Create)
			protected.POST("/seed", seedHandler.Seed)
			protected.GET("/slots/:slotID/bookings", bookingHandler.ListBookingsBySlot)
		}
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

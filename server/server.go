package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"bidserver/database"
	"bidserver/internal/config"
	"bidserver/server/handlers"
	"bidserver/server/middleware"
	"bidserver/server/services"
)

// Server HTTP сервер поиска тендеров
type Server struct {
	config *config.Config
	db     *database.DB

	onbidClient   *OnbidClient
	tenderService *services.TenderService
	authService   *services.AuthService

	tenderHandler    *handlers.TenderHandler
	exportHandler    *handlers.ExportHandler
	authHandler      *handlers.AuthHandler
	favoritesHandler *handlers.FavoritesHandler
	healthHandler    *handlers.HealthHandler

	httpServer  *http.Server
	httpHandler http.Handler
	handlerOnce sync.Once
}

// NewServer создает сервер и собирает все его сервисы
func NewServer(cfg *config.Config, db *database.DB) *Server {
	s := &Server{
		config: cfg,
		db:     db,
	}

	s.onbidClient = NewOnbidClient(cfg.OnbidTimeout, cfg.OnbidRateLimit)
	s.tenderService = services.NewTenderService(s.onbidClient, cfg.OnbidBaseURL, cfg.OnbidServiceKey)
	s.authService = services.NewAuthService(db, cfg.JWTSecret, cfg.TokenExpiry)

	s.tenderHandler = handlers.NewTenderHandler(s.tenderService)
	s.exportHandler = handlers.NewExportHandler(s.tenderService)
	s.authHandler = handlers.NewAuthHandler(s.authService)
	s.favoritesHandler = handlers.NewFavoritesHandler(db)
	s.healthHandler = handlers.NewHealthHandler(db, func() string {
		return s.onbidClient.BreakerState().String()
	})

	return s
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	handler := s.ensureHTTPHandler()

	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // экспорт больших страниц в xlsx может быть долгим
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Сервер запускается на порту %s", s.config.Port)
	log.Printf("API доступно по адресу: http://localhost%s/api", addr)
	log.Printf("Swagger UI: http://localhost%s/swagger/index.html", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("запуск HTTP сервера на %s: %w", addr, err)
	}

	return nil
}

func (s *Server) ensureHTTPHandler() http.Handler {
	s.handlerOnce.Do(func() {
		s.httpHandler = s.buildHTTPHandler()
	})
	return s.httpHandler
}

func (s *Server) buildHTTPHandler() http.Handler {
	// Режим Gin: release по умолчанию, переопределяется через GIN_MODE
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(gin.Recovery())

	handlers.RegisterSwaggerRoutes(router, "localhost:"+s.config.Port)

	s.registerGinHandlers(router)

	return router
}

// registerGinHandlers регистрирует все маршруты API
func (s *Server) registerGinHandlers(router *gin.Engine) {
	api := router.Group("/api")

	api.GET("/health", s.healthHandler.HandleHealth)

	tendersAPI := api.Group("/tenders")
	{
		tendersAPI.GET("", s.tenderHandler.HandleTendersList)
		tendersAPI.GET("/search", s.tenderHandler.HandleTendersSearch)
		tendersAPI.GET("/export", s.exportHandler.HandleTendersExport)
	}

	authAPI := api.Group("/auth")
	{
		authAPI.POST("/register", s.authHandler.HandleRegister)
		authAPI.POST("/login", s.authHandler.HandleLogin)
	}

	favoritesAPI := api.Group("/favorites")
	favoritesAPI.Use(middleware.GinAuthMiddleware(s.authService))
	{
		favoritesAPI.GET("", s.favoritesHandler.HandleFavoritesList)
		favoritesAPI.POST("", s.favoritesHandler.HandleFavoriteAdd)
		favoritesAPI.DELETE("/:id", s.favoritesHandler.HandleFavoriteDelete)
	}
}

// ServeHTTP реализует http.Handler для тестов и вспомогательных утилит
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.ensureHTTPHandler().ServeHTTP(w, r)
}

// Shutdown останавливает HTTP сервер gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	log.Println("Остановка сервера...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}

	log.Println("Сервер остановлен")
	return nil
}

// ABOUTME: HTTP API server wiring for the healthify backend.
// ABOUTME: Gin router with CORS, zap request logging, and error mapping.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/harperreed/healthify/internal/models"
	"github.com/harperreed/healthify/internal/storage"
	"go.uber.org/zap"
)

// Server exposes the storage layer over HTTP.
type Server struct {
	repo   storage.Repository
	log    *zap.SugaredLogger
	engine *gin.Engine
}

// New builds the router with middleware and all API routes registered.
func New(repo storage.Repository, log *zap.SugaredLogger, corsOrigins []string) *Server {
	engine := gin.New()
	engine.Use(requestLogger(log))
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{repo: repo, log: log, engine: engine}
	s.registerRoutes()
	return s
}

// Handler returns the http.Handler for the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api.GET("/entries", s.listEntries)
	api.POST("/entries", s.createEntry)
	api.GET("/entries/:date", s.getEntry)
	api.PUT("/entries/:date", s.updateEntry)
	api.DELETE("/entries/:date", s.deleteEntry)
	api.GET("/today", s.getToday)
	api.GET("/stats", s.getStats)

	api.GET("/issue-types", s.listIssueTypes)
	api.POST("/issue-types", s.createIssueType)

	api.GET("/routines", s.listRoutines)
	api.POST("/routines", s.createRoutine)
	api.GET("/routines/:id", s.getRoutine)
	api.PATCH("/routines/:id", s.updateRoutine)
	api.DELETE("/routines/:id", s.deleteRoutine)
	api.POST("/routines/:id/days", s.createDay)
	api.PATCH("/days/:id", s.updateDay)
	api.DELETE("/days/:id", s.deleteDay)
	api.POST("/days/:id/exercises", s.createExercise)
	api.PATCH("/exercises/:id", s.updateExercise)
	api.DELETE("/exercises/:id", s.deleteExercise)
	api.GET("/workouts/today", s.todaysWorkout)
}

// respondError translates storage and validation errors into status
// codes: 404 NotFound, 409 Conflict, 400 validation, 500 otherwise.
func (s *Server) respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		s.log.Errorw("internal error", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// requestLogger logs one line per request with method, path, status,
// and latency.
func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

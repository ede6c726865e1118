package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SzymonTokarzProgramista/HikerApp/internal/config"
	"github.com/SzymonTokarzProgramista/HikerApp/internal/posts"
	"github.com/SzymonTokarzProgramista/HikerApp/internal/storage"
	"github.com/SzymonTokarzProgramista/HikerApp/internal/users"
)

// Server bundles the handlers' dependencies. Everything is injected at
// startup; there is no package-level state.
type Server struct {
	cfg   *config.Config
	users *users.Repo
	posts *posts.Repo
	store *storage.FileStore
}

func NewServer(cfg *config.Config, userRepo *users.Repo, postRepo *posts.Repo, store *storage.FileStore) *Server {
	return &Server{cfg: cfg, users: userRepo, posts: postRepo, store: store}
}

// Router builds the full HTTP surface: the /api endpoints plus static
// serving of uploaded photos.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(s.cfg.CORSAllowedOrigins))
	r.Use(timeoutMiddleware(s.cfg.RequestTimeout))

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/register", s.handleRegister)
		api.POST("/login", s.handleLogin)
		api.POST("/upload", s.handleUpload)
		api.GET("/feed", s.handleFeed)
	}

	r.Static("/uploads", s.store.Root())

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// timeoutMiddleware puts a deadline on the request context so database
// round-trips give up when a request stalls.
func timeoutMiddleware(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleFeed(c *gin.Context) {
	items, err := s.posts.Feed(c.Request.Context(), s.cfg.FeedLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to load feed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

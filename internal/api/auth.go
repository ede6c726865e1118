package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SzymonTokarzProgramista/HikerApp/internal/users"
)

type credentialsForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email and password are required"})
		return
	}

	hash, err := users.HashPassword(form.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to hash password"})
		return
	}

	if _, err := s.users.Create(c.Request.Context(), form.Email, hash); err != nil {
		if errors.Is(err, users.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "registration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleLogin(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email and password are required"})
		return
	}

	user, err := s.users.FindByEmail(c.Request.Context(), form.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "login failed"})
		return
	}
	// Unknown email and wrong password get the same response on purpose.
	if user == nil || !users.CheckPassword(user.PasswordHash, form.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user_id": user.ID, "email": user.Email})
}

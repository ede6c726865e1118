package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type uploadRequest struct {
	UserID uint
	Lat    *float64
	Lon    *float64
	File   *multipart.FileHeader
}

// parseUploadRequest pulls the typed fields out of the multipart form.
// Lat and lon are each optional on their own; the pairing is not enforced.
func parseUploadRequest(c *gin.Context) (*uploadRequest, error) {
	id, err := strconv.ParseUint(c.PostForm("user_id"), 10, 32)
	if err != nil {
		return nil, errors.New("user_id must be a positive integer")
	}

	req := uploadRequest{UserID: uint(id)}
	for _, coord := range []struct {
		name string
		dst  **float64
	}{
		{"lat", &req.Lat},
		{"lon", &req.Lon},
	} {
		raw, ok := c.GetPostForm(coord.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", coord.name)
		}
		*coord.dst = &v
	}

	file, err := c.FormFile("file")
	if err != nil {
		return nil, errors.New("file is required")
	}
	req.File = file
	return &req, nil
}

// handleUpload validates the user before anything touches the filesystem,
// then writes the photo and only afterwards inserts the post row. A crash
// between the two leaves an orphan file, never a post without its photo.
func (s *Server) handleUpload(c *gin.Context) {
	req, err := parseUploadRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := s.users.FindByID(c.Request.Context(), req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "upload failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "user does not exist"})
		return
	}

	src, err := req.File.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unreadable file"})
		return
	}
	defer src.Close()

	storedName, err := s.store.Save(req.UserID, req.File.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to store photo"})
		return
	}

	if _, err := s.posts.Create(c.Request.Context(), req.UserID, storedName, req.Lat, req.Lon); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to save post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "photo_url": s.store.URLFor(storedName)})
}

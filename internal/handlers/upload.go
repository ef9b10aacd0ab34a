package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadDir is where listing images land on disk; they are served back
// under /uploads.
var uploadDir = "web/static/uploads"

// saveUpload stores the optional "image" form file and returns its
// public path. No file on the request is not an error: the caller gets
// an empty path and leaves the listing's image alone.
func saveUpload(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// plain urlencoded posts come through here too
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

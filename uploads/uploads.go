package uploads

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/auth"
)

// MaxFileSize caps uploads at 5 MB.
const MaxFileSize = 5 * 1024 * 1024

const uploadDir = "public/uploads/portfolio-profile"

// allowedTypes is the image allow-list, matched against the declared
// Content-Type.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidateImage applies the upload rule. The same check runs on both
// sides of the network boundary: callers run it before sending a file,
// the handler runs it again on receipt.
func ValidateImage(contentType string, size int64) error {
	if !allowedTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("invalid file type %q, only images are allowed", contentType)
	}
	if size > MaxFileSize {
		return fmt.Errorf("file size too large, maximum size is 5MB")
	}
	return nil
}

type UploadModule struct {
	baseDir string
}

func NewUploadModule() *UploadModule {
	return &UploadModule{baseDir: uploadDir}
}

func (u *UploadModule) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/upload", auth.RequireAPI, u.upload)
}

func (u *UploadModule) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	if err := ValidateImage(file.Header.Get("Content-Type"), file.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := os.MkdirAll(u.baseDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	filename := generateFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(u.baseDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      "/uploads/portfolio-profile/" + filename,
		"filename": filename,
	})
}

// generateFilename builds a timestamp-plus-random name so concurrent
// uploads of the same file never collide. Only the extension survives
// from the original name.
func generateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

package builder

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"folio/auth"
	"folio/cache"
	"folio/models"
	"folio/portfolios"
	"folio/templates"
)

type BuilderModule struct {
	db *gorm.DB
}

func NewBuilderModule(db *gorm.DB) *BuilderModule {
	return &BuilderModule{db: db}
}

func (b *BuilderModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/builder/:id", auth.RequireWeb, b.builderPage)
	router.POST("/api/portfolios/:id/autosave", auth.RequireAPI, b.autoSave)
}

func (b *BuilderModule) builderPage(c *gin.Context) {
	userID := auth.UserID(c)
	portfolioID := c.Param("id")

	var portfolio models.Portfolio
	if err := b.db.Where("id = ? AND user_id = ?", portfolioID, userID).First(&portfolio).Error; err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"error": "Portfolio not found",
		})
		return
	}

	// The builder edits the same payload every other reader sees.
	content, source := portfolios.ResolveContent(&portfolio, portfolios.DBProfileLookup(b.db))

	c.HTML(http.StatusOK, "builder.html", gin.H{
		"portfolio":     portfolio,
		"content":       content,
		"contentSource": string(source),
		"templates":     templates.List(),
	})
}

// autoSave is the debounced write-back from the builder: content, title
// and description in one shot, snapshot only. It marks the portfolio
// edited and drops the cached public page.
func (b *BuilderModule) autoSave(c *gin.Context) {
	userID := auth.UserID(c)
	portfolioID := c.Param("id")

	var portfolio models.Portfolio
	if err := b.db.Where("id = ? AND user_id = ?", portfolioID, userID).First(&portfolio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var request struct {
		Content     *models.Content `json:"content"`
		Title       string          `json:"title"`
		Description *string         `json:"description"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if request.Content != nil {
		portfolio.Content = *request.Content
	}
	if request.Title != "" {
		portfolio.Title = request.Title
	}
	if request.Description != nil {
		portfolio.Description = *request.Description
	}
	portfolio.HasBeenEdited = true
	portfolio.UpdatedAt = time.Now()

	if err := b.db.Save(&portfolio).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving automatically"})
		return
	}

	cache.ClearPortfolio(portfolio.Slug)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"saved_at": time.Now().Format("15:04:05"),
	})
}

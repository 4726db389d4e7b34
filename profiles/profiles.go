package profiles

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"folio/auth"
	"folio/cache"
	"folio/models"
)

type ProfileModule struct {
	db *gorm.DB
}

func NewProfileModule(db *gorm.DB) *ProfileModule {
	return &ProfileModule{db: db}
}

func (p *ProfileModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/profiles", auth.RequireWeb, p.profilesPage)

	api := router.Group("/api/profiles")
	api.Use(auth.RequireAPI)
	{
		api.GET("", p.list)
		api.POST("", p.create)
		api.GET("/:id", p.get)
		api.PUT("/:id", p.update)
		api.DELETE("/:id", p.delete)
	}
}

func (p *ProfileModule) profilesPage(c *gin.Context) {
	userID := auth.UserID(c)

	var profiles []models.Profile
	if err := p.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&profiles).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"error": "Error loading profiles",
		})
		return
	}

	c.HTML(http.StatusOK, "profiles.html", gin.H{
		"profiles": profiles,
	})
}

func (p *ProfileModule) list(c *gin.Context) {
	userID := auth.UserID(c)

	var profiles []models.Profile
	if err := p.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading profiles"})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (p *ProfileModule) create(c *gin.Context) {
	userID := auth.UserID(c)

	var request struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Content     *models.Content `json:"content"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if request.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile name is required"})
		return
	}

	content := models.Content{}
	if request.Content != nil {
		content = *request.Content
	} else {
		// Seed the scaffold from the account so the builder never starts empty.
		var user models.User
		if err := p.db.First(&user, userID).Error; err == nil {
			content = models.DefaultContent(&user)
		} else {
			content = models.DefaultContent(nil)
		}
	}

	profile := models.Profile{
		UserID:      userID,
		Name:        request.Name,
		Description: request.Description,
		Content:     content,
	}

	if err := p.db.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating profile"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (p *ProfileModule) get(c *gin.Context) {
	userID := auth.UserID(c)
	profileID := c.Param("id")

	var profile models.Profile
	if err := p.db.Where("id = ? AND user_id = ?", profileID, userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// update is a whitelisted partial merge: only name, description and
// content can change, and only when present in the request body.
func (p *ProfileModule) update(c *gin.Context) {
	userID := auth.UserID(c)
	profileID := c.Param("id")

	var profile models.Profile
	if err := p.db.Where("id = ? AND user_id = ?", profileID, userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var request struct {
		Name        *string         `json:"name"`
		Description *string         `json:"description"`
		Content     *models.Content `json:"content"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if request.Name != nil {
		if *request.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Profile name is required"})
			return
		}
		profile.Name = *request.Name
	}
	if request.Description != nil {
		profile.Description = *request.Description
	}
	if request.Content != nil {
		profile.Content = *request.Content
	}

	if err := p.db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile"})
		return
	}

	// Linked portfolios serve this profile's live content, so their
	// cached public pages are stale now.
	p.clearLinkedPages(userID, profile.ID)

	c.JSON(http.StatusOK, profile)
}

// delete removes the profile only. Portfolios that point at it keep their
// dangling reference and fall back to their stored snapshot on reads.
func (p *ProfileModule) delete(c *gin.Context) {
	userID := auth.UserID(c)
	profileID := c.Param("id")

	result := p.db.Where("id = ? AND user_id = ?", profileID, userID).Delete(&models.Profile{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting profile"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	// Dangling portfolios fall back to their snapshot from now on; drop
	// the cached pages still showing the profile content.
	if id, err := strconv.Atoi(profileID); err == nil {
		p.clearLinkedPages(userID, id)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// clearLinkedPages invalidates the public page cache for every portfolio
// of the user that points at the profile.
func (p *ProfileModule) clearLinkedPages(userID, profileID int) {
	var portfolios []models.Portfolio
	if err := p.db.Where("profile_id = ? AND user_id = ?", profileID, userID).Find(&portfolios).Error; err != nil {
		return
	}
	for _, portfolio := range portfolios {
		cache.ClearPortfolio(portfolio.Slug)
	}
}

package portfolios

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"folio/analytics"
	"folio/auth"
	"folio/cache"
	"folio/models"
	"folio/templates"
)

const slugLength = 10

type PortfolioModule struct {
	db        *gorm.DB
	analytics *analytics.AnalyticsModule
}

func NewPortfolioModule(db *gorm.DB, analyticsModule *analytics.AnalyticsModule) *PortfolioModule {
	return &PortfolioModule{
		db:        db,
		analytics: analyticsModule,
	}
}

func (m *PortfolioModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/dashboard", auth.RequireWeb, m.dashboard)
	router.GET("/create", auth.RequireWeb, m.createPage)

	api := router.Group("/api/portfolios")
	api.Use(auth.RequireAPI)
	{
		api.GET("", m.list)
		api.POST("", m.create)
		api.GET("/:id", m.get)
		api.PUT("/:id", m.update)
		api.DELETE("/:id", m.delete)
	}
}

// portfolioView is a portfolio as served to readers: the content field
// carries the resolved payload, never blindly the stored snapshot.
type portfolioView struct {
	models.Portfolio
	Content       models.Content `json:"content"`
	ContentSource ContentSource  `json:"contentSource"`
}

func (m *PortfolioModule) view(portfolio *models.Portfolio) portfolioView {
	content, source := ResolveContent(portfolio, DBProfileLookup(m.db))
	return portfolioView{
		Portfolio:     *portfolio,
		Content:       content,
		ContentSource: source,
	}
}

func (m *PortfolioModule) dashboard(c *gin.Context) {
	userID := auth.UserID(c)

	var portfolios []models.Portfolio
	if err := m.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&portfolios).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"error": "Error loading portfolios",
		})
		return
	}

	type dashboardEntry struct {
		models.Portfolio
		VisitCount int64
	}

	entries := make([]dashboardEntry, 0, len(portfolios))
	for _, p := range portfolios {
		count := int64(0)
		if m.analytics != nil {
			count = m.analytics.GetVisitCount(p.ID)
		}
		entries = append(entries, dashboardEntry{Portfolio: p, VisitCount: count})
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"portfolios": entries,
	})
}

func (m *PortfolioModule) createPage(c *gin.Context) {
	userID := auth.UserID(c)

	var profiles []models.Profile
	if err := m.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&profiles).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"error": "Error loading profiles",
		})
		return
	}

	c.HTML(http.StatusOK, "create.html", gin.H{
		"profiles":  profiles,
		"templates": templates.List(),
	})
}

func (m *PortfolioModule) list(c *gin.Context) {
	userID := auth.UserID(c)

	var portfolios []models.Portfolio
	if err := m.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&portfolios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading portfolios"})
		return
	}

	c.JSON(http.StatusOK, portfolios)
}

func (m *PortfolioModule) create(c *gin.Context) {
	userID := auth.UserID(c)

	var request struct {
		TemplateID  string `json:"templateId"`
		ProfileID   int    `json:"profileId"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if request.TemplateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template ID is required"})
		return
	}
	if !templates.Valid(request.TemplateID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
		return
	}
	if request.ProfileID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile ID is required"})
		return
	}

	var profile models.Profile
	if err := m.db.Where("id = ? AND user_id = ?", request.ProfileID, userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	title := request.Title
	if title == "" {
		title = "My Portfolio"
	}

	slug, err := m.generateSlug()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating portfolio"})
		return
	}

	profileID := profile.ID
	portfolio := models.Portfolio{
		UserID:      userID,
		TemplateID:  request.TemplateID,
		ProfileID:   &profileID,
		Slug:        slug,
		Title:       title,
		Description: request.Description,
		// Snapshot of the profile at creation time. Reads prefer the live
		// profile while the link holds; this copy is the fallback.
		Content: profile.Content,
	}

	if err := m.db.Create(&portfolio).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating portfolio"})
		return
	}

	c.JSON(http.StatusCreated, m.view(&portfolio))
}

func (m *PortfolioModule) get(c *gin.Context) {
	userID := auth.UserID(c)
	portfolioID := c.Param("id")

	var portfolio models.Portfolio
	if err := m.db.Where("id = ? AND user_id = ?", portfolioID, userID).First(&portfolio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, m.view(&portfolio))
}

// update merges the whitelisted fields. Slug and owner are immutable.
// Linking a new profile without supplying content copies that profile's
// content into the snapshot, once; it is a plain read-then-write, not a
// transaction.
func (m *PortfolioModule) update(c *gin.Context) {
	userID := auth.UserID(c)
	portfolioID := c.Param("id")

	var portfolio models.Portfolio
	if err := m.db.Where("id = ? AND user_id = ?", portfolioID, userID).First(&portfolio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var request struct {
		Title         *string         `json:"title"`
		Description   *string         `json:"description"`
		TemplateID    *string         `json:"templateId"`
		ProfileID     *int            `json:"profileId"`
		Content       *models.Content `json:"content"`
		IsPublished   *bool           `json:"isPublished"`
		HasBeenEdited *bool           `json:"hasBeenEdited"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if request.Title != nil {
		portfolio.Title = *request.Title
	}
	if request.Description != nil {
		portfolio.Description = *request.Description
	}
	if request.TemplateID != nil {
		if !templates.Valid(*request.TemplateID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
			return
		}
		portfolio.TemplateID = *request.TemplateID
	}
	if request.Content != nil {
		portfolio.Content = *request.Content
	}
	if request.ProfileID != nil {
		var profile models.Profile
		if err := m.db.Where("id = ? AND user_id = ?", *request.ProfileID, userID).First(&profile).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		profileID := profile.ID
		portfolio.ProfileID = &profileID
		if request.Content == nil {
			portfolio.Content = profile.Content
		}
	}
	if request.IsPublished != nil {
		portfolio.IsPublished = *request.IsPublished
	}
	if request.HasBeenEdited != nil {
		portfolio.HasBeenEdited = *request.HasBeenEdited
	}

	if err := m.db.Save(&portfolio).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating portfolio"})
		return
	}

	if err := cache.ClearPortfolio(portfolio.Slug); err != nil {
		// Stale public pages age out on their own; not worth failing the save.
		c.Header("X-Cache-Clear", "failed")
	}

	c.JSON(http.StatusOK, m.view(&portfolio))
}

func (m *PortfolioModule) delete(c *gin.Context) {
	userID := auth.UserID(c)
	portfolioID := c.Param("id")

	var portfolio models.Portfolio
	if err := m.db.Where("id = ? AND user_id = ?", portfolioID, userID).First(&portfolio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := m.db.Delete(&portfolio).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting portfolio"})
		return
	}

	cache.ClearPortfolio(portfolio.Slug)

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// generateSlug mints a short random public identifier. Collisions are
// improbable at this length but the unique index is authoritative, so
// retry a few times before giving up.
func (m *PortfolioModule) generateSlug() (string, error) {
	for i := 0; i < 5; i++ {
		slug := strings.ReplaceAll(uuid.NewString(), "-", "")[:slugLength]

		var existing models.Portfolio
		err := m.db.Where("slug = ?", slug).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return slug, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", gorm.ErrDuplicatedKey
}

package public

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"folio/analytics"
	"folio/cache"
	"folio/models"
	"folio/portfolios"
	"folio/templates"
)

type PublicModule struct {
	db        *gorm.DB
	analytics *analytics.AnalyticsModule
}

func NewPublicModule(db *gorm.DB, analyticsModule *analytics.AnalyticsModule) *PublicModule {
	return &PublicModule{
		db:        db,
		analytics: analyticsModule,
	}
}

func (s *PublicModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.index)
	router.GET("/p/:slug", cache.Middleware(10*time.Minute, s.trackCachedVisit), s.portfolioPage)
	router.GET("/sitemap.xml", s.sitemap)
}

func (s *PublicModule) index(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": "Folio - Portfolio Builder",
	})
}

// portfolioPage serves the published portfolio at its public slug. Only
// published records resolve; unpublishing turns the URL into a 404
// immediately. The rendered payload goes through the same content
// resolution as the builder.
func (s *PublicModule) portfolioPage(c *gin.Context) {
	slug := c.Param("slug")

	var portfolio models.Portfolio
	if err := s.db.Where("slug = ? AND is_published = ?", slug, true).First(&portfolio).Error; err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"error": "Portfolio not found",
		})
		return
	}

	content, _ := portfolios.ResolveContent(&portfolio, portfolios.DBProfileLookup(s.db))

	if s.analytics != nil {
		s.analytics.TrackVisit(c, portfolio.ID)
	}

	renderer := templates.Lookup(portfolio.TemplateID)

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(c.Writer, templates.PageData{
		Title:       portfolio.Title,
		Description: portfolio.Description,
		Content:     content,
	}); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"error": "Error rendering portfolio",
		})
	}
}

// trackCachedVisit counts visits served straight from the page cache,
// which never reach the handler.
func (s *PublicModule) trackCachedVisit(c *gin.Context, slug string) {
	if s.analytics == nil {
		return
	}

	var portfolio models.Portfolio
	if err := s.db.Where("slug = ? AND is_published = ?", slug, true).First(&portfolio).Error; err != nil {
		return
	}

	s.analytics.TrackVisit(c, portfolio.ID)
}

func (s *PublicModule) sitemap(c *gin.Context) {
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "http://localhost:8080"
	}
	domain = strings.TrimSuffix(domain, "/")

	var sitemap strings.Builder
	sitemap.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sitemap.WriteString("\n")
	sitemap.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	sitemap.WriteString("\n")

	sitemap.WriteString("  <url>\n")
	sitemap.WriteString("    <loc>" + domain + "/</loc>\n")
	sitemap.WriteString("    <changefreq>weekly</changefreq>\n")
	sitemap.WriteString("    <priority>1.0</priority>\n")
	sitemap.WriteString("  </url>\n")

	var published []models.Portfolio
	s.db.Where("is_published = ?", true).Find(&published)

	for _, p := range published {
		sitemap.WriteString("  <url>\n")
		sitemap.WriteString("    <loc>" + domain + "/p/" + p.Slug + "</loc>\n")
		sitemap.WriteString("    <lastmod>" + p.UpdatedAt.Format(time.RFC3339) + "</lastmod>\n")
		sitemap.WriteString("    <changefreq>weekly</changefreq>\n")
		sitemap.WriteString("    <priority>0.7</priority>\n")
		sitemap.WriteString("  </url>\n")
	}

	sitemap.WriteString("</urlset>\n")

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, sitemap.String())
}

package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VisitEvent is one public-page visit. Events live in their own optional
// database so traffic recording never competes with the main store.
type VisitEvent struct {
	ID          uint    `gorm:"primary_key;autoIncrement"`
	PortfolioID int     `gorm:"not null;index"`
	CookieID    string  `gorm:"not null;index"`
	IP          string  `gorm:"not null"`
	Language    *string // nullable
	Browser     *string // nullable
	CreatedAt   time.Time `gorm:"index"`
}

type AnalyticsModule struct {
	db *gorm.DB
}

func NewAnalyticsModule(db *gorm.DB) *AnalyticsModule {
	if db == nil {
		log.Println("Analytics DB is nil, analytics will be disabled")
		return nil
	}

	if err := db.AutoMigrate(&VisitEvent{}); err != nil {
		log.Printf("Error migrating visit_events table: %v", err)
		return nil
	}

	log.Println("Analytics module initialized successfully")
	return &AnalyticsModule{db: db}
}

// TrackVisit records a visit to a published portfolio page. Repeat hits
// from the same visitor within 30 minutes are not counted again, so
// refreshes don't inflate the numbers.
func (a *AnalyticsModule) TrackVisit(c *gin.Context, portfolioID int) {
	if a == nil || a.db == nil {
		return
	}

	cookieID := a.getOrCreateCookieID(c)

	thirtyMinutesAgo := time.Now().Add(-30 * time.Minute)

	var recentVisit VisitEvent
	err := a.db.Where("cookie_id = ? AND portfolio_id = ? AND created_at > ?",
		cookieID, portfolioID, thirtyMinutesAgo).First(&recentVisit).Error
	if err == nil {
		return
	}

	event := VisitEvent{
		PortfolioID: portfolioID,
		CookieID:    cookieID,
		IP:          a.getClientIP(c),
		Language:    a.extractLanguage(c),
		Browser:     a.extractBrowser(c.Request.UserAgent()),
		CreatedAt:   time.Now(),
	}

	// Saved asynchronously so page rendering never waits on analytics.
	go func() {
		if err := a.db.Create(&event).Error; err != nil {
			log.Printf("Error saving analytics event: %v", err)
		}
	}()
}

func (a *AnalyticsModule) getOrCreateCookieID(c *gin.Context) string {
	cookieName := "folio_visitor_id"

	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	data := time.Now().String() + c.ClientIP() + c.Request.UserAgent()
	hash := sha256.Sum256([]byte(data))
	cookieID := hex.EncodeToString(hash[:])

	c.SetCookie(
		cookieName,
		cookieID,
		60*60*24*365*2, // 2 years
		"/",
		"",
		false, // secure - would be true behind HTTPS
		true,  // httpOnly
	)

	return cookieID
}

func (a *AnalyticsModule) getClientIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		ips := strings.Split(ip, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	return c.ClientIP()
}

func (a *AnalyticsModule) extractBrowser(userAgent string) *string {
	if userAgent == "" {
		return nil
	}

	ua := strings.ToLower(userAgent)
	var browser string

	// Order matters, the more specific tokens come first
	switch {
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg"):
		browser = "Chrome"
	case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome"):
		browser = "Safari"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr"):
		browser = "Opera"
	default:
		browser = "Other"
	}

	return &browser
}

func (a *AnalyticsModule) extractLanguage(c *gin.Context) *string {
	acceptLang := c.GetHeader("Accept-Language")
	if acceptLang == "" {
		return nil
	}

	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(parts[0])
		lang = strings.Split(lang, ";")[0]
		return &lang
	}

	return nil
}

// DayVisits is the visit count for one calendar day.
type DayVisits struct {
	Date  string
	Count int64
}

// GetVisitCount returns the all-time visit total for a portfolio.
func (a *AnalyticsModule) GetVisitCount(portfolioID int) int64 {
	if a == nil || a.db == nil {
		return 0
	}

	var count int64
	a.db.Model(&VisitEvent{}).Where("portfolio_id = ?", portfolioID).Count(&count)
	return count
}

// GetVisitsByDay returns per-day counts for the last N days, zero-filled
// so charts always have a full axis.
func (a *AnalyticsModule) GetVisitsByDay(portfolioID int, days int) []DayVisits {
	if a == nil || a.db == nil {
		return []DayVisits{}
	}

	startDate := time.Now().AddDate(0, 0, -days)

	var results []struct {
		Date  string
		Count int64
	}

	a.db.Model(&VisitEvent{}).
		Select("DATE(created_at) as date, COUNT(*) as count").
		Where("portfolio_id = ? AND created_at >= ?", portfolioID, startDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&results)

	dayVisits := make([]DayVisits, days)
	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, -(days - 1 - i))
		dayVisits[i] = DayVisits{
			Date:  date.Format("2006-01-02"),
			Count: 0,
		}
	}

	for _, result := range results {
		for i := range dayVisits {
			if dayVisits[i].Date == result.Date {
				dayVisits[i].Count = result.Count
				break
			}
		}
	}

	return dayVisits
}

package profiles

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"folio/auth"
	"folio/cache"
	"folio/models"
	"folio/views"
)

var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Portfolio{})
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("secret"))
	router.Use(sessions.Sessions("test-session", store))
	router.SetHTMLTemplate(views.Templates())
	auth.NewAuthModule(db).RegisterRoutes(router)
	NewProfileModule(db).RegisterRoutes(router)
	return router
}

func createTestUser(db *gorm.DB, email string) *models.User {
	user := &models.User{Name: "Jane", Email: email, PasswordHash: testPasswordHash, Image: "jane.png"}
	db.Create(user)
	return user
}

func loginAs(t *testing.T, router *gin.Engine, email string) []*http.Cookie {
	form := url.Values{"email": {email}, "password": {"password123"}}
	req, _ := http.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code, "login must succeed")
	return w.Result().Cookies()
}

func jsonRequest(method, path string, body any, cookies []*http.Cookie) *http.Request {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestCreateProfile_SeedsDefaultContent(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	createTestUser(db, "jane@example.com")
	cookies := loginAs(t, router, "jane@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/profiles", gin.H{"name": "Main"}, cookies))

	require.Equal(t, http.StatusCreated, w.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Main", profile.Name)
	assert.Equal(t, "Jane", profile.Content.PersonalInfo.Name)
	assert.Equal(t, "jane@example.com", profile.Content.PersonalInfo.Email)
	assert.Equal(t, "jane.png", profile.Content.PersonalInfo.ProfilePhoto)
	assert.Equal(t, "Professional Title", profile.Content.PersonalInfo.Title)
}

func TestCreateProfile_NameRequired(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	createTestUser(db, "jane@example.com")
	cookies := loginAs(t, router, "jane@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/profiles", gin.H{"description": "no name"}, cookies))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProfile_SuppliedContentKept(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	createTestUser(db, "jane@example.com")
	cookies := loginAs(t, router, "jane@example.com")

	content := models.Content{
		PersonalInfo: models.PersonalInfo{Name: "Custom Name"},
		Skills:       models.SimpleSkills("Go"),
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/profiles", gin.H{
		"name":    "Custom",
		"content": content,
	}, cookies))

	require.Equal(t, http.StatusCreated, w.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Custom Name", profile.Content.PersonalInfo.Name)
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	user := createTestUser(db, "jane@example.com")
	cookies := loginAs(t, router, "jane@example.com")

	profile := &models.Profile{
		UserID:      user.ID,
		Name:        "Main",
		Description: "Original description",
		Content:     models.Content{PersonalInfo: models.PersonalInfo{Name: "Original"}},
	}
	db.Create(profile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/profiles/"+strconv.Itoa(profile.ID), gin.H{
		"name": "Renamed",
	}, cookies))

	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Profile
	require.NoError(t, db.First(&stored, profile.ID).Error)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "Original description", stored.Description)
	assert.Equal(t, "Original", stored.Content.PersonalInfo.Name)
}

func TestUpdateProfile_EmptyNameRejected(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	user := createTestUser(db, "jane@example.com")
	cookies := loginAs(t, router, "jane@example.com")

	profile := &models.Profile{UserID: user.ID, Name: "Main"}
	db.Create(profile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/profiles/"+strconv.Itoa(profile.ID), gin.H{
		"name": "",
	}, cookies))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfiles_OwnershipIsolation(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	owner := createTestUser(db, "owner@example.com")
	createTestUser(db, "intruder@example.com")

	profile := &models.Profile{UserID: owner.ID, Name: "Main"}
	db.Create(profile)

	cookies := loginAs(t, router, "intruder@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/profiles/"+strconv.Itoa(profile.ID), nil, cookies))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/api/profiles/"+strconv.Itoa(profile.ID), nil, cookies))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var still models.Profile
	assert.NoError(t, db.First(&still, profile.ID).Error)
}

func TestUpdateProfile_ClearsLinkedPortfolioPages(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(orig) })

	db := setupTestDB()
	router := setupTestRouter(db)
	user := createTestUser(db, "jane@example.com")
	cookies := loginAs(t, router, "jane@example.com")

	profile := &models.Profile{UserID: user.ID, Name: "Main"}
	db.Create(profile)

	profileID := profile.ID
	portfolio := &models.Portfolio{
		UserID:      user.ID,
		TemplateID:  "minimal",
		ProfileID:   &profileID,
		Slug:        "linkedslug1",
		Title:       "Linked",
		IsPublished: true,
	}
	db.Create(portfolio)

	require.NoError(t, cache.Write(portfolio.Slug, "<html>old page</html>"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/api/profiles/"+strconv.Itoa(profile.ID), gin.H{
		"description": "changed",
	}, cookies))
	require.Equal(t, http.StatusOK, w.Code)

	_, found := cache.Read(portfolio.Slug, time.Hour)
	assert.False(t, found, "linked portfolio pages must drop out of the cache")
}

func TestDeleteProfile_ClearsLinkedPortfolioPages(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(orig) })

	db := setupTestDB()
	router := setupTestRouter(db)
	user := createTestUser(db, "jane@example.com")
	cookies := loginAs(t, router, "jane@example.com")

	profile := &models.Profile{UserID: user.ID, Name: "Main"}
	db.Create(profile)

	profileID := profile.ID
	portfolio := &models.Portfolio{
		UserID:      user.ID,
		TemplateID:  "minimal",
		ProfileID:   &profileID,
		Slug:        "linkedslug2",
		Title:       "Linked",
		IsPublished: true,
	}
	db.Create(portfolio)

	require.NoError(t, cache.Write(portfolio.Slug, "<html>old page</html>"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/api/profiles/"+strconv.Itoa(profile.ID), nil, cookies))
	require.Equal(t, http.StatusOK, w.Code)

	_, found := cache.Read(portfolio.Slug, time.Hour)
	assert.False(t, found)
}

func TestDeleteProfile_LeavesPortfoliosDangling(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	user := createTestUser(db, "jane@example.com")
	cookies := loginAs(t, router, "jane@example.com")

	profile := &models.Profile{
		UserID:  user.ID,
		Name:    "Main",
		Content: models.Content{PersonalInfo: models.PersonalInfo{Name: "Live"}},
	}
	db.Create(profile)

	profileID := profile.ID
	portfolio := &models.Portfolio{
		UserID:     user.ID,
		TemplateID: "minimal",
		ProfileID:  &profileID,
		Slug:       "slug123456",
		Title:      "Test",
		Content:    models.Content{PersonalInfo: models.PersonalInfo{Name: "Snapshot"}},
	}
	db.Create(portfolio)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/api/profiles/"+strconv.Itoa(profile.ID), nil, cookies))
	require.Equal(t, http.StatusOK, w.Code)

	// The portfolio survives with its link still pointing at the gone
	// profile; reads fall back to the snapshot.
	var stored models.Portfolio
	require.NoError(t, db.First(&stored, portfolio.ID).Error)
	require.NotNil(t, stored.ProfileID)
	assert.Equal(t, profileID, *stored.ProfileID)
	assert.Equal(t, "Snapshot", stored.Content.PersonalInfo.Name)
}

package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"folio/models"
)

type AuthModule struct {
	db *gorm.DB
}

func NewAuthModule(db *gorm.DB) *AuthModule {
	return &AuthModule{db: db}
}

func (a *AuthModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", a.loginPage)
	router.POST("/login", a.loginPost)
	router.GET("/register", a.registerPage)
	router.POST("/register", a.registerPost)
	router.GET("/logout", a.logout)
}

// RequireWeb guards HTML pages: no session means a redirect to /login.
func RequireWeb(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get("user_id")

	if userID == nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

// RequireAPI guards JSON endpoints: no session means a 401, never a redirect.
func RequireAPI(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get("user_id")

	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

// UserID returns the authenticated user id set by the middleware.
func UserID(c *gin.Context) int {
	return c.GetInt("user_id")
}

func (a *AuthModule) loginPage(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (a *AuthModule) loginPost(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	var user models.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Incorrect email or password",
			"email": email,
		})
		return
	}

	if !CheckPasswordHash(password, user.PasswordHash) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Incorrect email or password",
			"email": email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/dashboard")
}

func (a *AuthModule) registerPage(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (a *AuthModule) registerPost(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	// Resent on error so the user does not retype everything (never the password)
	formData := gin.H{
		"name":  name,
		"email": email,
	}

	if name == "" || email == "" || password == "" {
		formData["error"] = "Name, email and password are required"
		c.HTML(http.StatusBadRequest, "register.html", formData)
		return
	}

	var existingUser models.User
	if err := a.db.Where("email = ?", email).First(&existingUser).Error; err == nil {
		formData["error"] = "This email is already registered"
		c.HTML(http.StatusBadRequest, "register.html", formData)
		return
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		formData["error"] = "Error creating account"
		c.HTML(http.StatusInternalServerError, "register.html", formData)
		return
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := a.db.Create(&user).Error; err != nil {
		formData["error"] = "Error creating account"
		c.HTML(http.StatusInternalServerError, "register.html", formData)
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/dashboard")
}

func (a *AuthModule) logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusFound, "/login")
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

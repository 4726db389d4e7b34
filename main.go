package main

import (
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"folio/analytics"
	"folio/auth"
	"folio/builder"
	"folio/common"
	"folio/database"
	"folio/portfolios"
	"folio/profiles"
	"folio/public"
	"folio/templates"
	"folio/uploads"
	"folio/views"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	db := common.ConnectDb()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Admin provisioning is a visible startup step, not a side effect of
	// the first request.
	database.EnsureAdminUser(db)

	if err := templates.Validate(); err != nil {
		log.Fatal("template registry:", err)
	}

	analyticsModule := analytics.NewAnalyticsModule(common.ConnectAnalyticsDb())

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})

	router.Use(sessions.Sessions("folio-session", store))

	router.SetHTMLTemplate(views.Templates())

	// Uploaded images are returned as /uploads/... URLs, so the mount
	// must match what the upload handler hands out.
	router.Static("/uploads", "./public/uploads")

	authModule := auth.NewAuthModule(db)
	authModule.RegisterRoutes(router)

	profileModule := profiles.NewProfileModule(db)
	profileModule.RegisterRoutes(router)

	portfolioModule := portfolios.NewPortfolioModule(db, analyticsModule)
	portfolioModule.RegisterRoutes(router)

	builderModule := builder.NewBuilderModule(db)
	builderModule.RegisterRoutes(router)

	uploadModule := uploads.NewUploadModule()
	uploadModule.RegisterRoutes(router)

	publicModule := public.NewPublicModule(db, analyticsModule)
	publicModule.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

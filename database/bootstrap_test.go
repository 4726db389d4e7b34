package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"folio/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	return db
}

func TestEnsureAdminUser_CreatesAdmin(t *testing.T) {
	t.Setenv("ADMIN_NAME", "Admin")
	t.Setenv("ADMIN_MAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "supersecret")

	db := setupTestDB(t)
	EnsureAdminUser(db)

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.Equal(t, "Admin", admin.Name)
	assert.True(t, admin.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("supersecret")))
}

func TestEnsureAdminUser_Idempotent(t *testing.T) {
	t.Setenv("ADMIN_NAME", "Admin")
	t.Setenv("ADMIN_MAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "supersecret")

	db := setupTestDB(t)
	EnsureAdminUser(db)

	var first models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&first).Error)

	// Running the bootstrap again changes nothing, even with a different
	// password in the environment.
	t.Setenv("ADMIN_PASSWORD", "rotated")
	EnsureAdminUser(db)

	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&count)
	assert.Equal(t, int64(1), count)

	var second models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&second).Error)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}

func TestEnsureAdminUser_SkipsWithoutCredentials(t *testing.T) {
	t.Setenv("ADMIN_NAME", "")
	t.Setenv("ADMIN_MAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	db := setupTestDB(t)
	EnsureAdminUser(db)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRunMigrations(t *testing.T) {
	db := setupTestDB(t)

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Profile{}))
	assert.True(t, db.Migrator().HasTable(&models.Portfolio{}))
}

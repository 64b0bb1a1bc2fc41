package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/atelierserenite/wellness-api/internal/middleware"
	"github.com/atelierserenite/wellness-api/internal/models"
)

func setupUserDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func meContext(userID uint) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/me", nil)
	c.Set(middleware.ContextUserID, userID)
	return c, w
}

func TestGetMe(t *testing.T) {
	db := setupUserDB(t)
	h := NewMeHandler(db)

	email := fmt.Sprintf("me-%d@example.com", time.Now().UnixNano())
	user := models.User{Email: email, PasswordHash: "x", Role: "user"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { db.Delete(&models.User{}, user.ID) })

	c, w := meContext(user.ID)
	h.GetMe(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), email) {
		t.Fatalf("body %q does not carry the user email", w.Body.String())
	}
}

func TestGetMeDeletedUserIs404(t *testing.T) {
	db := setupUserDB(t)
	h := NewMeHandler(db)

	// Create and remove a user so the id is guaranteed to miss; a valid
	// token for a deleted account must read as gone, not as a server
	// fault.
	email := fmt.Sprintf("gone-%d@example.com", time.Now().UnixNano())
	user := models.User{Email: email, PasswordHash: "x", Role: "user"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Delete(&models.User{}, user.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	c, w := meContext(user.ID)
	h.GetMe(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

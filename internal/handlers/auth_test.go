package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyvibe/internal/middleware"
	"studyvibe/internal/models"

	"github.com/gin-gonic/gin"
)

// Me 应当复用 LoadUser 放进 context 的未读数，而不是自己再查一次库。
// 这里没有初始化 db，如果 Me 又去查库会直接 panic。
func TestMeUsesPreloadedUnreadCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/me", nil)

	user := &models.User{ID: 7, Email: "ivan@example.com", FullName: "Иван", Role: "user"}
	c.Set(middleware.CheckUserKey, user)
	c.Set(middleware.UnreadCountKey, int64(3))

	NewAuthHandler().Me(c)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		UnreadCount int64 `json:"unread_count"`
		User        struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.UnreadCount != 3 {
		t.Errorf("Expected unread_count 3, got %d", resp.UnreadCount)
	}
	if resp.User.Email != "ivan@example.com" {
		t.Errorf("Expected user email, got %q", resp.User.Email)
	}
}

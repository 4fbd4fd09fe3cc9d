package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rinde17/stocky/internal/database"
	"github.com/Rinde17/stocky/internal/models"
	"github.com/Rinde17/stocky/internal/repository"
)

func setupAuthTest(t *testing.T) (*gin.Engine, repository.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "stocky_test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := zap.NewNop()
	users := repository.NewSQLiteUserRepository(db)
	jwtManager := NewJWTManager("test-secret-key-min-32-chars-for-testing", logger)
	handler := NewAuthHandler(jwtManager, users, logger)

	router := gin.New()
	router.GET("/login", handler.LoginPage)
	router.POST("/login", handler.Login)
	router.POST("/register", handler.Register)
	router.POST("/logout", handler.Logout)

	return router, users
}

func registerTestUser(t *testing.T, users repository.UserRepository, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.NewUser("Jane Doe", email, string(hash))
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_Success(t *testing.T) {
	router, users := setupAuthTest(t)

	w := postJSON(router, "/register", `{"name":"Jane Doe","email":"jane@example.com","password":"correct-horse"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["id"])

	user, err := users.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
	// Stored as a bcrypt hash, never the raw password
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, users := setupAuthTest(t)
	registerTestUser(t, users, "jane@example.com", "correct-horse")

	w := postJSON(router, "/register", `{"name":"Second Jane","email":"jane@example.com","password":"other-password"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_InvalidRequest(t *testing.T) {
	router, _ := setupAuthTest(t)

	testCases := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"missing email", `{"name":"Jane","password":"correct-horse"}`},
		{"malformed email", `{"name":"Jane","email":"not-an-email","password":"correct-horse"}`},
		{"short password", `{"name":"Jane","email":"jane@example.com","password":"short"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(router, "/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginPage(t *testing.T) {
	router, _ := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_Success(t *testing.T) {
	router, users := setupAuthTest(t)
	registerTestUser(t, users, "jane@example.com", "correct-horse")

	w := postJSON(router, "/login", `{"email":"jane@example.com","password":"correct-horse"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "Bearer", response.Type)

	// The session cookie is set alongside the token
	cookies := w.Result().Cookies()
	var sessionValue string
	for _, cookie := range cookies {
		if cookie.Name == SessionCookie {
			sessionValue = cookie.Value
		}
	}
	assert.Equal(t, response.Token, sessionValue)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, users := setupAuthTest(t)
	registerTestUser(t, users, "jane@example.com", "correct-horse")

	testCases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"jane@example.com","password":"wrong-password"}`},
		{"unknown email", `{"email":"nobody@example.com","password":"correct-horse"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(router, "/login", tc.body)

			// Same answer either way
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "invalid credentials")
		})
	}
}

func TestLogin_InvalidRequest(t *testing.T) {
	router, _ := setupAuthTest(t)

	w := postJSON(router, "/login", `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	router, _ := setupAuthTest(t)

	req := httptest.NewRequest("POST", "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	setCookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, SessionCookie+"="))
	assert.Contains(t, setCookie, "Max-Age=0")
}

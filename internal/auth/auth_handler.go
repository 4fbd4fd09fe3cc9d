package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rinde17/stocky/internal/models"
	"github.com/Rinde17/stocky/internal/repository"
	stderrors "github.com/Rinde17/stocky/pkg/errors"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "stocky_session"

// AuthHandler handles registration and session management
type AuthHandler struct {
	jwtManager *JWTManager
	users      repository.UserRepository
	logger     *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(jwtManager *JWTManager, users repository.UserRepository, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		jwtManager: jwtManager,
		users:      users,
		logger:     logger,
	}
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"correct-horse-battery"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token     string    `json:"token"`
	Type      string    `json:"type" example:"Bearer"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginPage handles GET /login. It is the entry point unauthenticated
// requests are redirected to.
// @Summary      Login entry point
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "please log in"})
}

// Register handles POST /register
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Registration data"
// @Success      201      {object}  map[string]string
// @Failure      400      {object}  errors.StandardError
// @Failure      409      {object}  errors.StandardError
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		stdErr := stderrors.NewInvalidRequest("invalid registration request", err.Error())
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	if _, err := h.users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		stdErr := stderrors.NewConflict("email already registered", "")
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		h.logger.Error("Failed to check email", zap.Error(err))
		stdErr := stderrors.NewDatabaseError("check email", err)
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("Failed to hash password", zap.Error(err))
		stdErr := stderrors.NewInternalError("failed to register", nil)
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	user := models.NewUser(req.Name, req.Email, string(hash))
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		h.logger.Error("Failed to create user", zap.Error(err))
		stdErr := stderrors.NewDatabaseError("create user", err)
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	h.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	c.JSON(http.StatusCreated, gin.H{"id": user.ID.String()})
}

// Login handles POST /login
// @Summary      Login and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Login credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  errors.StandardError
// @Failure      401      {object}  errors.StandardError
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		stdErr := stderrors.NewInvalidRequest("invalid login request", err.Error())
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Same answer for unknown email and bad password
		stdErr := stderrors.NewUnauthorized("invalid credentials")
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.Warn("Invalid credentials", zap.String("email", req.Email))
		stdErr := stderrors.NewUnauthorized("invalid credentials")
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		stdErr := stderrors.NewInternalError("failed to generate token", err)
		c.JSON(stdErr.HTTPStatus(), stdErr)
		return
	}

	c.SetCookie(SessionCookie, token, int(SessionDuration.Seconds()), "/", "", false, true)

	h.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		Type:      "Bearer",
		ExpiresAt: time.Now().Add(SessionDuration),
	})
}

// Logout handles POST /logout
// @Summary      End the session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

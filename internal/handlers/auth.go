package handlers

import (
	"errors"
	"net/http"

	"devdash-backend/internal/config"
	"devdash-backend/internal/middleware"
	"devdash-backend/internal/models"
	"devdash-backend/internal/services"
	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	config      *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, config: cfg}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.UserRegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "register", "User not found")
		return
	}

	token, ok := h.issueToken(c, user)
	if !ok {
		return
	}
	utils.Created(c, models.UserResponse{User: user, Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.UserLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Login(c.Request.Context(), &req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}
	if err != nil {
		respondError(c, err, "login", "User not found")
		return
	}

	token, ok := h.issueToken(c, user)
	if !ok {
		return
	}
	utils.Success(c, models.UserResponse{User: user, Token: token})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "get me", "User not found")
		return
	}
	utils.Success(c, user)
}

// issueToken signs a session token and also sets it as an http-only cookie.
func (h *AuthHandler) issueToken(c *gin.Context, user *models.User) (string, bool) {
	token, err := utils.GenerateToken(user.ID, user.Email, h.config.JWT.Secret, h.config.JWT.ExpireHours)
	if err != nil {
		respondError(c, err, "issue token", "User not found")
		return "", false
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, h.config.JWT.ExpireHours*3600, "/", "", h.config.Server.Mode == "release", true)
	return token, true
}

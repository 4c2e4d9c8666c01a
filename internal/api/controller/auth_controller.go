package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Sanzzyy/management-finasial/internal/api/response"
	"github.com/Sanzzyy/management-finasial/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthController handles registration and login.
type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ==========================================
// DTOs
// ==========================================

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ==========================================
// Handlers
// ==========================================

// Register creates a new account
// @Summary Register
// @Description Create a new user, password stored hashed
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "registration payload"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register params invalid", "err", err)
		response.Error(c, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	err := ctrl.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "email already registered")
			return
		}
		slog.Error("register failed", "email", req.Email, "err", err)
		response.Error(c, http.StatusInternalServerError, "registration failed")
		return
	}

	slog.Info("user registered", "email", req.Email)
	response.Success(c, nil)
}

// Login issues a JWT
// @Summary Login
// @Description Validate credentials and issue a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "login payload"
// @Success 200 {object} response.Response{data=LoginResponse}
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters")
		return
	}

	token, user, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "email", req.Email, "err", err)
		// Deliberately vague, whether the email exists or the password is wrong.
		response.Error(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	slog.Info("user logged in", "userID", user.ID)
	response.Success(c, LoginResponse{
		Token: token,
		User: LoginUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

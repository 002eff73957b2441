package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/connecta/identity-service/internal/application"
	"github.com/connecta/identity-service/internal/domain/entity"
	"github.com/connecta/identity-service/pkg/response"
	"github.com/connecta/identity-service/pkg/validation"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type registerRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required,phone"`
	Password    string `json:"password" binding:"required,pwd"`
	ProfileKind string `json:"profile_kind" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenPayload struct {
	Identity *entity.Identity `json:"identity"`
	Token    string           `json:"token"`
	Expires  time.Time        `json:"expires_at"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	ident, err := h.Auth.Register(c.Request.Context(), application.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		ProfileKind: req.ProfileKind,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmailTaken):
			response.Error(c, http.StatusConflict, "email already registered", nil)
		case errors.Is(err, application.ErrInvalidProfileKind):
			response.Error(c, http.StatusBadRequest, "invalid profile kind", nil)
		default:
			h.Logger.WithError(err).Error("registration failed")
			response.Error(c, http.StatusServiceUnavailable, "registration unavailable", nil)
		}
		return
	}

	token, exp, err := h.Auth.IssueToken(ident)
	if err != nil {
		h.Logger.WithError(err).WithField("identity_id", ident.ID).Error("token issuance failed")
		response.Error(c, http.StatusInternalServerError, "token issuance failed", nil)
		return
	}

	response.Success(c, http.StatusCreated, tokenPayload{Identity: ident, Token: token, Expires: exp}, "registered")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	ident, err := h.Auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		case errors.Is(err, application.ErrAccountDeactivated):
			response.Error(c, http.StatusForbidden, "account deactivated", nil)
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error(c, http.StatusServiceUnavailable, "login unavailable", nil)
		}
		return
	}

	token, exp, err := h.Auth.IssueToken(ident)
	if err != nil {
		h.Logger.WithError(err).WithField("identity_id", ident.ID).Error("token issuance failed")
		response.Error(c, http.StatusInternalServerError, "token issuance failed", nil)
		return
	}

	response.Success(c, http.StatusOK, tokenPayload{Identity: ident, Token: token, Expires: exp}, "login successful")
}

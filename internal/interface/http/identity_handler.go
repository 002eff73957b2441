package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/connecta/identity-service/internal/application"
	"github.com/connecta/identity-service/internal/interface/middleware"
	"github.com/connecta/identity-service/pkg/response"
	"github.com/connecta/identity-service/pkg/validation"
)

// IdentityHandler exposes the authenticated profile operations.
type IdentityHandler struct {
	Identities *application.IdentityService
	Logger     *logrus.Logger
}

func NewIdentityHandler(identities *application.IdentityService, logger *logrus.Logger) *IdentityHandler {
	return &IdentityHandler{Identities: identities, Logger: logger}
}

type updateProfileRequest struct {
	Name     string `json:"name" binding:"omitempty,min=3,max=100"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
	Password string `json:"password" binding:"omitempty,pwd"`
}

// Me GET /api/users/me
func (h *IdentityHandler) Me(c *gin.Context) {
	id := c.GetString(middleware.CtxIdentityIDKey)
	ident, err := h.Identities.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrIdentityNotFound) {
			response.Error(c, http.StatusNotFound, "identity not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("identity_id", id).Error("profile lookup failed")
		response.Error(c, http.StatusServiceUnavailable, "lookup unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, ident, "profile")
}

// Update PUT /api/users/me
func (h *IdentityHandler) Update(c *gin.Context) {
	id := c.GetString(middleware.CtxIdentityIDKey)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	ident, err := h.Identities.UpdateProfile(c.Request.Context(), id, application.UpdateProfileInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrIdentityNotFound) {
			response.Error(c, http.StatusNotFound, "identity not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("identity_id", id).Error("profile update failed")
		response.Error(c, http.StatusServiceUnavailable, "update unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, ident, "profile updated")
}

// Deactivate DELETE /api/users/me
// Deactivation is terminal and idempotent; tokens already issued stay
// valid until they expire.
func (h *IdentityHandler) Deactivate(c *gin.Context) {
	id := c.GetString(middleware.CtxIdentityIDKey)
	if err := h.Identities.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrIdentityNotFound) {
			response.Error(c, http.StatusNotFound, "identity not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("identity_id", id).Error("deactivation failed")
		response.Error(c, http.StatusServiceUnavailable, "deactivation unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true}, "account deactivated")
}

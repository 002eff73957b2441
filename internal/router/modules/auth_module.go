package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/connecta/identity-service/internal/container"
	handlers "github.com/connecta/identity-service/internal/interface/http"
	"github.com/connecta/identity-service/internal/interface/middleware"
	"github.com/connecta/identity-service/pkg/helpers"
)

// AuthModule wires the public registration and login routes.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Codec   *helpers.TokenCodec
}

func NewAuthModule(h *handlers.AuthHandler, codec *helpers.TokenCodec) *AuthModule {
	return &AuthModule{Handler: h, Codec: codec}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}

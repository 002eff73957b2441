package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/connecta/identity-service/internal/container"
	handlers "github.com/connecta/identity-service/internal/interface/http"
	"github.com/connecta/identity-service/internal/interface/middleware"
	"github.com/connecta/identity-service/pkg/helpers"
)

// IdentityModule wires the authenticated profile routes behind the
// bearer-token middleware.
type IdentityModule struct {
	Handler *handlers.IdentityHandler
	Codec   *helpers.TokenCodec
}

func NewIdentityModule(h *handlers.IdentityHandler, codec *helpers.TokenCodec) *IdentityModule {
	return &IdentityModule{Handler: h, Codec: codec}
}

func (m *IdentityModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Codec))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIdentity(), middleware.AllowPrivateIP()))
	{
		auth.GET("/me", m.Handler.Me)
		auth.PUT("/me", m.Handler.Update)
		auth.DELETE("/me", m.Handler.Deactivate)
	}
}

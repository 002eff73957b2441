package router

import (
	"github.com/connecta/identity-service/internal/application"
	"github.com/connecta/identity-service/internal/container"
	pginfra "github.com/connecta/identity-service/internal/infrastructure/postgres"
	handlers "github.com/connecta/identity-service/internal/interface/http"
	"github.com/connecta/identity-service/internal/router/modules"
)

// InitModules builds the application services from container singletons
// and registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	repo := pginfra.NewIdentityRepository(container.GetPGPool())
	logger := container.GetLogger()

	authSvc := application.NewAuthService(
		repo,
		container.GetCache(),
		container.GetCodec(),
		publisherOrNil(),
		logger,
	)
	identitySvc := application.NewIdentityService(repo, container.GetCache(), logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger)
	identityHandler := handlers.NewIdentityHandler(identitySvc, logger)

	r.Add(
		modules.NewAuthModule(authHandler, container.GetCodec()),
		modules.NewIdentityModule(identityHandler, container.GetCodec()),
		modules.NewHealthModule(),
	)
}

// publisherOrNil keeps the typed-nil out of the EventPublisher
// interface when RabbitMQ is not configured.
func publisherOrNil() application.EventPublisher {
	if p := container.GetRabbitPub(); p != nil {
		return p
	}
	return nil
}

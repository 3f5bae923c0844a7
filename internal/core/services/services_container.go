package services

import (
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/platform/config"
)

// ContainerDeps are the adapters the services need besides repositories.
type ContainerDeps struct {
	Settings portssvc.CaptchaSettingsSvc
	Verifier portssvc.CaptchaVerifier
	Nonces   portssvc.NonceSvc
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps ContainerDeps) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Submission:      NewSubmissionService(repos.ReviewRepo, deps.Verifier, deps.Nonces),
		Publication:     NewPublicationService(repos.ReviewRepo, deps.Nonces),
		Moderation:      NewModerationService(repos.ReviewRepo),
		CaptchaSettings: deps.Settings,
		Nonce:           deps.Nonces,
		Auth:            NewAuthService(cfg),
	}
}

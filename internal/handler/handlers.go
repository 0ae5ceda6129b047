package handler

import (
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup takes a single value.
type Handlers struct {
	Health  *HealthHandler
	Contact *ContactHandler
	Resume  *ResumeHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Contact: NewContactHandler(s, services.Contact),
		Resume:  NewResumeHandler(s, services.Resume),
		OpenAPI: NewOpenAPIHandler(s),
	}
}

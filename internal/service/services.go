package service

import (
	"github.com/deppfellow/portfolio-api/internal/lib/email"
	"github.com/deppfellow/portfolio-api/internal/server"
)

// Services is a container for every business service.
type Services struct {
	Contact *ContactService
	Resume  *ResumeService
}

// NewServices builds the services, including the outbound email client.
func NewServices(s *server.Server) (*Services, error) {
	emailClient, err := email.NewClient(s.Config, s.Logger)
	if err != nil {
		return nil, err
	}

	s.Logger.Info().
		Str("provider", emailClient.ProviderName()).
		Msg("email client initialized")

	return &Services{
		Contact: NewContactService(s, emailClient),
		Resume:  NewResumeServiceFromConfig(s),
	}, nil
}

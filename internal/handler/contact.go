package handler

import (
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	Handler
	contactService *service.ContactService
}

func NewContactHandler(s *server.Server, contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:        NewHandler(s),
		contactService: contactService,
	}
}

// SubmitContact relays a validated submission. Validation failures never
// get here, so an invalid form never reaches the email provider.
func (h *ContactHandler) SubmitContact(c echo.Context, req *model.ContactRequest) (*model.NotificationResult, error) {
	return h.contactService.Submit(c.Request().Context(), req.Submission())
}

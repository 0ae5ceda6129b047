package router

import (
	"net/http"

	"github.com/deppfellow/portfolio-api/internal/handler"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/labstack/echo/v4"
)

// registerContactRoutes mounts the contact form under its public path and
// under /api next to the resume route.
func registerContactRoutes(r *echo.Echo, h *handler.Handlers) {
	submit := handler.Handle(
		h.Contact.Handler,
		h.Contact.SubmitContact,
		http.StatusOK,
		&model.ContactRequest{},
	)

	r.POST("/contact", submit)
	r.Group("/api").POST("/contact", submit)
}

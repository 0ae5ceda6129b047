package router

import (
	"net/http"

	"github.com/deppfellow/portfolio-api/internal/handler"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/labstack/echo/v4"
)

func registerResumeRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	api.GET("/resume", handler.HandleFile(
		h.Resume.Handler,
		h.Resume.GetResume,
		http.StatusOK,
		&model.GetResumeRequest{},
		h.Resume.FileName(),
		handler.ResumeContentType,
	))
}

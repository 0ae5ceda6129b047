package handler

import (
	"github.com/deppfellow/portfolio-api/internal/middleware"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ResumeContentType is the media type of the resume download.
const ResumeContentType = "application/pdf"

// ResumeHandler serves the resume PDF.
type ResumeHandler struct {
	Handler
	resumeService *service.ResumeService
}

func NewResumeHandler(s *server.Server, resumeService *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		Handler:       NewHandler(s),
		resumeService: resumeService,
	}
}

// FileName is the name the resume is served under.
func (h *ResumeHandler) FileName() string {
	return h.resumeService.FileName()
}

// GetResume returns the resume bytes. A missing or unreadable asset is a
// server fault and ends up as a generic 500.
func (h *ResumeHandler) GetResume(c echo.Context, _ *model.GetResumeRequest) ([]byte, error) {
	data, err := h.resumeService.Load()
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(c).Debug().
		Str("path", h.resumeService.Path()).
		Int("size_bytes", len(data)).
		Msg("resume loaded")

	return data, nil
}

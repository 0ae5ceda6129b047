package handler

import (
	"mime"
	"reflect"
	"time"

	"github.com/deppfellow/portfolio-api/internal/middleware"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is the base handler type that holds shared application dependencies.
//
// Concrete handlers embed it to reach config and logger through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint that receives a bound, sanitized and
// validated request and returns a response or an error.
//
// Req is a pointer type, e.g. *model.ContactRequest, so Bind can fill it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler writes a successful handler result and tags the
// transaction with response-specific attributes.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error

	// GetOperation names the handler type in logs (json/file).
	GetOperation() string

	// AddAttributes is called with a nil result before the handler runs
	// and with the real result after it succeeds. txn may be nil.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler answers with result encoded as JSON.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(*newrelic.Transaction, interface{}) {}

// FileResponseHandler answers with raw bytes; the handler result must be
// a []byte. Files are served inline so browsers open them in place, with
// the filename advertised for "save as".
type FileResponseHandler struct {
	status      int
	filename    string
	contentType string
}

func (h FileResponseHandler) Handle(c echo.Context, result interface{}) error {
	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, mime.FormatMediaType("inline", map[string]string{"filename": h.filename}))
	header.Set("Cache-Control", "no-cache")

	return c.Blob(h.status, h.contentType, result.([]byte))
}

func (h FileResponseHandler) GetOperation() string {
	return "handler_file"
}

func (h FileResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn == nil {
		return
	}

	txn.AddAttribute("file.name", h.filename)
	txn.AddAttribute("file.content_type", h.contentType)
	if data, ok := result.([]byte); ok {
		txn.AddAttribute("file.size_bytes", len(data))
	}
}

// newRequest returns a zeroed request of the same type as template, so
// concurrent requests never share a payload.
func newRequest[Req validation.Validatable](template Req) Req {
	t := reflect.TypeOf(template)
	if t == nil || t.Kind() != reflect.Pointer {
		return template
	}
	return reflect.New(t.Elem()).Interface().(Req)
}

// phaseObserver reports the outcome of each pipeline phase to the logger
// and, when present, the New Relic transaction.
type phaseObserver struct {
	txn    *newrelic.Transaction
	logger zerolog.Logger
}

func (o phaseObserver) attr(key string, value interface{}) {
	if o.txn != nil {
		o.txn.AddAttribute(key, value)
	}
}

// finish records a phase ("validation" or "handler"). Failed phases are
// noticed on the transaction; the error itself is returned by the caller
// and logged once more by the global error handler with its final status.
func (o phaseObserver) finish(phase string, took time.Duration, err error) {
	o.attr(phase+".duration_ms", took.Milliseconds())

	if err != nil {
		o.attr(phase+".status", "failed")
		if o.txn != nil {
			o.txn.NoticeError(nrpkgerrors.Wrap(err))
		}
		o.logger.Warn().Err(err).Dur(phase+"_duration", took).Msgf("%s failed", phase)
		return
	}

	o.attr(phase+".status", "success")
	o.logger.Debug().Dur(phase+"_duration", took).Msgf("%s succeeded", phase)
}

// handleRequest runs one request through bind/sanitize/validate, the typed
// handler and the response writer, timing each phase.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	logCtx := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route)
	if file, ok := responseHandler.(FileResponseHandler); ok {
		logCtx = logCtx.Str("filename", file.filename).Str("content_type", file.contentType)
	}

	obs := phaseObserver{
		txn:    newrelic.FromContext(c.Request().Context()),
		logger: logCtx.Logger(),
	}
	obs.attr("handler.name", route)
	responseHandler.AddAttributes(obs.txn, nil)

	phaseStart := time.Now()
	err := validation.BindAndValidate(c, req)
	obs.finish("validation", time.Since(phaseStart), err)
	if err != nil {
		return err
	}

	phaseStart = time.Now()
	result, err := handler(c, req)
	obs.finish("handler", time.Since(phaseStart), err)

	total := time.Since(start)
	obs.attr("total.duration_ms", total.Milliseconds())
	if err != nil {
		return err
	}

	responseHandler.AddAttributes(obs.txn, result)
	obs.logger.Info().Dur("total_duration", total).Msg("request handled")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler into an echo.HandlerFunc that answers JSON.
//
// req is only a type template; every request binds into a fresh value.
//
//	e.POST("/contact", handler.Handle(h, h.SubmitContact, http.StatusOK, &model.ContactRequest{}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleFile wraps a handler that returns file bytes.
func HandleFile[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, []byte],
	status int,
	req Req,
	filename string,
	contentType string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, FileResponseHandler{
			status:      status,
			filename:    filename,
			contentType: contentType,
		})
	}
}

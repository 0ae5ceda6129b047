package middleware

import (
	"net/http"
	"slices"

	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultBodyLimit caps request bodies. A maximal contact form is far below it.
const DefaultBodyLimit = "64K"

// GlobalMiddlewares groups "global" middleware and the global error handler.
// Each one reads config (CORS origins, env) from the shared *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// OriginGuard rejects with 403 any request whose Origin header is set and
// not on the allowlist. Requests without an Origin (curl, uptime monitors)
// pass through; Echo's CORS middleware only withholds headers and would
// still run the handler.
func (global *GlobalMiddlewares) OriginGuard() echo.MiddlewareFunc {
	allowed := global.server.Config.Server.CORSAllowedOrigins

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" || slices.Contains(allowed, origin) {
				return next(c)
			}

			GetLogger(c).Warn().
				Str("origin", origin).
				Msg("request from disallowed origin")

			return errs.NewForbiddenError("Origin not allowed", false)
		}
	}
}

// CORS returns Echo's CORS middleware restricted to the configured origins,
// the methods the API serves and the Content-Type header.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType},
		ExposeHeaders: []string{RequestIDHeader, echo.HeaderContentDisposition},
		MaxAge:        3600,
	})
}

// RequestLogger produces one "API" log line per request, with severity
// based on the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The response is not written yet when a handler returns an error,
			// so take the status the error handler is going to use.
			// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = errorStatus(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into 500 responses.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure adds the standard security headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// BodyLimit answers 413 for bodies above DefaultBodyLimit.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(DefaultBodyLimit)
}

// errorStatus returns the HTTP status GlobalErrorHandler will answer err with.
func errorStatus(err error) int {
	var respErr *errs.ResponseError
	if errors.As(err, &respErr) {
		return respErr.Status
	}
	return toHTTPError(err).Status
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error ends up here. The original error is always logged; the client
// only ever gets the sanitized shape:
//   - *errs.ResponseError: its own body and status
//   - *errs.HTTPError: serialized as is
//   - *echo.HTTPError: mapped onto the HTTPError shape (route 404 included)
//   - anything else: a generic 500
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	logger := GetLogger(c)

	var respErr *errs.ResponseError
	if errors.As(err, &respErr) {
		logger.Error().Stack().Err(err).Int("status", respErr.Status).Msg("request failed")

		if !c.Response().Committed {
			_ = c.JSON(respErr.Status, respErr.Body)
		}
		return
	}

	httpErr := toHTTPError(err)

	event := logger.Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Stack().
		Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}
	_ = c.JSON(httpErr.Status, httpErr)
}

// toHTTPError normalizes err into the response shape. Only *errs.HTTPError
// messages are trusted; anything unclassified collapses into a bare 500 so
// internal detail never reaches the client.
func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return errs.NewInternalServerError()
	}

	switch {
	case echoErr.Code == http.StatusNotFound:
		return errs.NewNotFoundError("Route not found", false, nil)
	case echoErr.Code >= http.StatusInternalServerError:
		return errs.NewInternalServerError()
	}

	message, ok := echoErr.Message.(string)
	if !ok {
		message = http.StatusText(echoErr.Code)
	}

	return &errs.HTTPError{
		Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
		Message: message,
		Status:  echoErr.Code,
	}
}

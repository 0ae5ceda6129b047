package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/portfolio-api/internal/server"
)

// TracingMiddleware wires New Relic into Echo. With a nil nrApp both of
// its middlewares pass requests through untouched.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

// NewRelicMiddleware opens one transaction per request and stores it in
// the request context for newrelic.FromContext.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return passThrough
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the transaction with request metadata before the
// handler runs and with the final status after, noticing returned errors.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return passThrough
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			req := c.Request()
			for key, value := range map[string]string{
				"http.real_ip":        c.RealIP(),
				"http.user_agent":     req.UserAgent(),
				"http.origin":         req.Header.Get(echo.HeaderOrigin),
				"request.id":          GetRequestID(c),
				"service.environment": tm.server.Config.Primary.Env,
			} {
				if value != "" {
					txn.AddAttribute(key, value)
				}
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			status := c.Response().Status
			if err != nil {
				status = errorStatus(err)
			}
			txn.AddAttribute("http.status_code", status)

			return err
		}
	}
}

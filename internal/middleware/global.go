package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/oakhollow/squirreld/internal/errs"
	"github.com/oakhollow/squirreld/internal/server"
)

// GlobalMiddlewares groups the middleware applied to every route and
// the global error handler. A struct so middleware functions can read
// shared app dependencies from *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// RequestLogger returns Echo's request logger middleware with a custom
// LogValuesFunc that emits one structured "API" line per request,
// leveled by status class.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,

		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error the final status is decided
			// by the global error handler, after this hook runs. Derive it
			// from the error type so error requests don't log status=200.
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
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
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo's panic recovery middleware so a panicking
// handler becomes a 500 response instead of a dropped connection.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return echomw.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return echomw.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP
// server. Every error returned from a handler ends up here and is
// rendered as a plain-text status line.
//
// Errors that are not *errs.HTTPError are classified first: Echo's
// router errors (unregistered route, unmatched method) become the
// API's own 404 shape, since the routing table treats unknown
// method/path combinations as not-found. Anything else is a genuine
// fault and falls back to 500.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			switch echoErr.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				// Unregistered path, or a non-standard method Echo could
				// not dispatch. Both are "no such route" to this API.
				err = errs.NewNotFoundError()
			case http.StatusTooManyRequests:
				err = &errs.HTTPError{
					Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
					Message: "429 Too Many Requests",
					Status:  http.StatusTooManyRequests,
				}
			}
		}
	}

	var status int
	var code string
	var message string

	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Status
		code = httpErr.Code
		message = httpErr.Message

	default:
		status = http.StatusInternalServerError
		code = errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError))
		message = http.StatusText(http.StatusInternalServerError)
	}

	logger := GetLogger(c)
	logger.Error().
		Err(originalErr).
		Int("status", status).
		Str("error_code", code).
		Msg(message)

	if !c.Response().Committed {
		_ = c.String(status, message)
	}
}

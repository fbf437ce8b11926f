// Package middleware contains the HTTP middleware stack: request
// correlation, request-scoped logging, panic recovery, rate limiting,
// and the global error handler that renders the API's plain-text
// error bodies.
package middleware

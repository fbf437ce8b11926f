// Package errs defines the error types the API returns to clients.
//
// Every client-visible failure is a *HTTPError carrying the status
// code, a machine-readable code for logs, and the short plain-text
// status line written as the response body. Handlers and services
// return these values; the global error handler renders them.
package errs

// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and the embedded HTML pages for
// the public form and the admin surface. Tracing, logging, security
// headers, rate limiting, CSRF verification, and session authentication
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

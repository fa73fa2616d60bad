// Package http implements the REST transport of the contact server.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as API key checks, request tracing, access logging with
// metrics and response compression are handled in this package before
// requests are delegated to the service layer.
package http

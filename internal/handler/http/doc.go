// Package http implements the HTTP transport layer of the development
// configuration server.
//
// It exposes route wiring, request handlers, and middleware for the
// well-known metadata document, the demand and claim exchanges, and the
// device-code challenge flow. Cross-cutting concerns such as request
// tracing and access logging are handled here before requests are delegated
// to the service layer.
package http

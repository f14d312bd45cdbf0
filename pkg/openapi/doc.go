// Package openapi describes the HTTP surface of the sign-up page as an
// OpenAPI 3 document built with kin-openapi. The document is validated when it
// is built and served by the HTTP server at /openapi.json.
package openapi

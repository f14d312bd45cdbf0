// Package server hosts the sign-up page over HTTP with a chi router: the page
// itself, the submit endpoint, static assets, the OpenAPI description and a
// health check.
package server

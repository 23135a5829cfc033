// Package apiclient provides a typed Go client for the TaskFlow REST API.
//
// The package is shared between the server and its consumers: HTTP handlers
// use the request/response types and APIError to shape the wire format, and
// callers (including the end-to-end tests) use Client and Session to talk to
// a running instance.
//
// Unauthenticated operations (register, login) live on Client. Successful
// authentication yields a Session, which attaches the bearer token to every
// request.
package apiclient

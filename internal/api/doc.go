// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts HTTP to the identity and item services.
//
// Handlers that need a signed-in user call Authenticator.Caller first, before
// looking at path parameters or the body, so an unauthenticated request is
// always answered with 401.
package api

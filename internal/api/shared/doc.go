// Package shared holds request decoding, validation, response writing and
// trace ID helpers used by both the api handlers and the middleware.
package shared

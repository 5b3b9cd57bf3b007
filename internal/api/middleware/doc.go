// Package middleware provides HTTP middleware for request tracing and logging.
package middleware

// Package service contains the application use cases. It coordinates the
// stores defined in internal/store with the credential and token helpers in
// internal/service/auth.
//
// Services translate store errors into the domain sentinels the API layer
// maps to responses (domain.ErrNotFound, domain.ErrConflict, ...). Any other
// failure is returned as a *ServiceError wrapping the cause.
package service

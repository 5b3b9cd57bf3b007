// Package mocks provides in-memory implementations of the store and auth
// interfaces for use in tests.
//
// Each mock keeps its data in maps guarded by a sync.RWMutex, so it is safe
// for concurrent use, and exposes optional Fn fields that override a
// method's default behavior.
package mocks

// Package domain contains the core business entities (users and item
// listings), their invariants, and the error taxonomy shared by every
// layer. It is independent of storage and transport.
package domain

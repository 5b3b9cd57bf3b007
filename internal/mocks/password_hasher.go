package mocks

import (
	"sync"

	"github.com/phrazzld/market-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher without bcrypt's cost.
// Hash prefixes the plaintext; Compare checks the prefix form.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	mu           sync.Mutex
	compareCalls int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.mu.Lock()
	m.compareCalls++
	m.mu.Unlock()

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return auth.ErrPasswordMismatch
	}
	return nil
}

// CompareCalls returns how many times Compare has been called.
func (m *MockPasswordHasher) CompareCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compareCalls
}

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"ErrUserNotFound", ErrUserNotFound, true},
		{"ErrItemNotFound", ErrItemNotFound, true},
		{"wrapped ErrItemNotFound", fmt.Errorf("mark sold out: %w", ErrItemNotFound), true},
		{"store error around not found", NewStoreError("item", "delete", "no match", ErrItemNotFound), true},
		{"ErrEmailExists", ErrEmailExists, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("item", "create", "failed to insert item", cause)

	assert.Equal(t, "create operation on item failed: failed to insert item: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("user", "get", "missing", nil)
	assert.Equal(t, "get operation on user failed: missing", bare.Error())
}

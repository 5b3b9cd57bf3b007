package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUserName       = errors.New("user name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrInvalidUserStatus   = errors.New("invalid user status")
)

// UserStatus is the account state recorded at registration.
type UserStatus string

// Known account states.
const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusFree    UserStatus = "FREE"
	UserStatusPremium UserStatus = "PREMIUM"
)

// UserStatuses lists every valid UserStatus.
var UserStatuses = []UserStatus{UserStatusActive, UserStatusFree, UserStatusPremium}

// Valid reports whether s is one of the known account states.
func (s UserStatus) Valid() bool {
	for _, known := range UserStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// User represents a registered account. The password is only ever held as
// a bcrypt digest and is never serialized.
type User struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	Status         UserStatus `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// NewUser creates a new User from already-hashed credentials.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
func NewUser(name, email, hashedPassword string, status UserStatus) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the invariants every persisted user must satisfy.
// Field format rules (lengths, email syntax) are enforced earlier, at the
// API boundary.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.Name == "" {
		return ErrEmptyUserName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	if !u.Status.Valid() {
		return ErrInvalidUserStatus
	}
	return nil
}

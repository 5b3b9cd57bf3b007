package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewItemStartsOnSale(t *testing.T) {
	owner := uuid.New()
	desc := "a sturdy chair"

	item, err := NewItem(CreateItemInput{Name: "chair", Price: 500, Description: &desc}, owner)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if item.ID == uuid.Nil {
		t.Error("Expected generated item ID")
	}
	if item.Status != ItemStatusOnSale {
		t.Errorf("Expected status ON_SALE, got %s", item.Status)
	}
	if item.OwnerID != owner {
		t.Errorf("Expected owner %s, got %s", owner, item.OwnerID)
	}
	if !item.IsOwnedBy(owner) {
		t.Error("Expected item to be owned by its creator")
	}
	if item.IsOwnedBy(uuid.New()) {
		t.Error("Expected item not to be owned by another user")
	}
	if item.Description == nil || *item.Description != desc {
		t.Error("Expected description to be preserved")
	}
}

func TestNewItemValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateItemInput
		owner   uuid.UUID
		wantErr error
	}{
		{"empty name", CreateItemInput{Price: 1}, uuid.New(), ErrEmptyItemName},
		{"zero price", CreateItemInput{Name: "chair"}, uuid.New(), ErrInvalidItemPrice},
		{"negative price", CreateItemInput{Name: "chair", Price: -5}, uuid.New(), ErrInvalidItemPrice},
		{"price above column range", CreateItemInput{Name: "chair", Price: MaxItemPrice + 1}, uuid.New(), ErrItemPriceTooHigh},
		{"no owner", CreateItemInput{Name: "chair", Price: 1}, uuid.Nil, ErrEmptyItemOwnerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(tt.input, tt.owner)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewItemAcceptsMaxPrice(t *testing.T) {
	item, err := NewItem(CreateItemInput{Name: "chair", Price: MaxItemPrice}, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if item.Price != MaxItemPrice {
		t.Errorf("Expected price %d, got %d", MaxItemPrice, item.Price)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Violations: []Violation{
		{Field: "name", Rule: "max", Message: "must be at most 40 characters"},
		{Field: "price", Rule: "min", Message: "must be at least 1"},
	}}

	if !errors.Is(err, ErrValidation) {
		t.Error("Expected ValidationError to unwrap to ErrValidation")
	}
	want := "validation failed: name: must be at most 40 characters; price: must be at least 1"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}

	single := NewValidationError("id", "uuid", "must be a valid UUID")
	if len(single.Violations) != 1 || single.Violations[0].Field != "id" {
		t.Errorf("Unexpected violations: %+v", single.Violations)
	}
}

package domain

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// Item validation errors
var (
	ErrEmptyItemID      = errors.New("item ID cannot be empty")
	ErrEmptyItemOwnerID = errors.New("item owner ID cannot be empty")
	ErrEmptyItemName    = errors.New("item name cannot be empty")
	ErrInvalidItemPrice = errors.New("item price must be at least 1")
	ErrItemPriceTooHigh = errors.New("item price exceeds the maximum")
	ErrInvalidItemState = errors.New("invalid item status")
)

// MaxItemPrice is the largest price the items.price INTEGER column holds.
const MaxItemPrice = math.MaxInt32

// ItemStatus is the state of a listing.
//
// The only transition is ItemStatusOnSale -> ItemStatusSoldOut.
type ItemStatus string

// Listing states.
const (
	ItemStatusOnSale  ItemStatus = "ON_SALE"
	ItemStatusSoldOut ItemStatus = "SOLD_OUT"
)

// Valid reports whether s is a known listing state.
func (s ItemStatus) Valid() bool {
	return s == ItemStatusOnSale || s == ItemStatusSoldOut
}

// Item is a marketplace listing owned by the user who created it.
type Item struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Price       int        `json:"price"`
	Description *string    `json:"description"`
	Status      ItemStatus `json:"status"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateItemInput holds the caller-supplied fields of a new listing.
// There is no status field: new items always start on sale.
type CreateItemInput struct {
	Name        string
	Price       int
	Description *string
}

// NewItem creates an ON_SALE item owned by ownerID.
// Timestamps are provisional; the store overwrites them on insert.
func NewItem(input CreateItemInput, ownerID uuid.UUID) (*Item, error) {
	now := time.Now().UTC()
	item := &Item{
		ID:          uuid.New(),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Status:      ItemStatusOnSale,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks the invariants every persisted item must satisfy.
func (i *Item) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyItemID
	}
	if i.OwnerID == uuid.Nil {
		return ErrEmptyItemOwnerID
	}
	if i.Name == "" {
		return ErrEmptyItemName
	}
	if i.Price < 1 {
		return ErrInvalidItemPrice
	}
	if i.Price > MaxItemPrice {
		return ErrItemPriceTooHigh
	}
	if !i.Status.Valid() {
		return ErrInvalidItemState
	}
	return nil
}

// IsOwnedBy reports whether userID created the item.
func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.OwnerID == userID
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns items and item types. LowStockThreshold is the
// per-user boundary below which a positive item quantity counts as low stock;
// it defaults to 0, which makes the low-stock count always zero until the
// user raises it.
type User struct {
	ID                uuid.UUID
	Name              string
	Email             string
	PasswordHash      string
	IsAdmin           bool
	LowStockThreshold int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ItemType is a user-defined category for items. Names are unique per owner,
// not globally.
type ItemType struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item is a stock unit owned by a user. Unit and PricePerUnit are optional;
// ItemTypeID is nil when the item is untyped, and the referenced type always
// belongs to the same owner.
type Item struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Quantity     int
	Unit         string
	PricePerUnit *float64
	ItemTypeID   *uuid.UUID
	ItemType     *ItemType // eagerly joined when the reference is set
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with the default low-stock threshold.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewItemType creates an item type owned by the given user.
func NewItemType(userID uuid.UUID, name, description string) *ItemType {
	now := time.Now().UTC()
	return &ItemType{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewItem creates an item owned by the given user.
func NewItem(userID uuid.UUID, name string, quantity int) *Item {
	now := time.Now().UTC()
	return &Item{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Owner returns the owning user id.
func (i *Item) Owner() uuid.UUID { return i.UserID }

// Owner returns the owning user id.
func (t *ItemType) Owner() uuid.UUID { return t.UserID }

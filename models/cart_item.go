package models

import "time"

const CartItemTable = "dh_cart_items"

// CartItem is a staged, not-yet-paid rental selection. Checkout flips
// CheckedOut; a checked-out row can never be checked out again.
type CartItem struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;index;not null" json:"userId"`
	ItemID string `gorm:"type:uuid;index;not null" json:"itemId"`

	RentalStart time.Time `gorm:"not null" json:"rentalStart"`
	RentalEnd   time.Time `gorm:"not null" json:"rentalEnd"`
	CheckedOut  bool      `gorm:"not null;default:false" json:"checkedOut"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CartItem) TableName() string { return CartItemTable }

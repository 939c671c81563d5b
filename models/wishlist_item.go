package models

import "time"

const WishlistItemTable = "dh_wishlist_items"

// WishlistItem is unique per (user, item); add is an idempotent upsert.
type WishlistItem struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_item" json:"userId"`
	ItemID string `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_item" json:"itemId"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (WishlistItem) TableName() string { return WishlistItemTable }

package db

import (
	"context"

	"dresshub/models"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// AddWishlistItem is an idempotent upsert on (user, item): the unique
// index absorbs duplicates and the existing row is returned.
func (r *Repo) AddWishlistItem(ctx context.Context, userID, itemID string) (*models.WishlistItem, error) {
	w := models.WishlistItem{ID: uuid.NewString(), UserID: userID, ItemID: itemID}
	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
			DoNothing: true,
		}).
		Create(&w).Error; err != nil {
		return nil, err
	}
	var row models.WishlistItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repo) ListWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	var rows []models.WishlistItem
	err := r.DB.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// RemoveWishlistItem is a no-op when the row is absent.
func (r *Repo) RemoveWishlistItem(ctx context.Context, userID, itemID string) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.WishlistItem{}).Error
}

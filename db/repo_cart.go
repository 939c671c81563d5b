package db

import (
	"context"

	"dresshub/models"
)

func (r *Repo) AddCartItem(ctx context.Context, ci *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(ci).Error
}

// ListCart returns the user's open (not checked out) selections with the
// item joined in.
func (r *Repo) ListCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.DB.WithContext(ctx).
		Preload("Item").
		Where("user_id = ? AND checked_out = FALSE", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// RemoveCartItem deletes only the caller's own open row; anything else
// reads as not found.
func (r *Repo) RemoveCartItem(ctx context.Context, userID, cartItemID string) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ? AND checked_out = FALSE", cartItemID, userID).
		Delete(&models.CartItem{})
	return res.RowsAffected > 0, res.Error
}

package db

import (
	"context"
	"strings"

	"dresshub/models"
)

// SearchMaxResults caps the public listing; there is no pagination.
const SearchMaxResults = 50

// ItemSearch carries the optional catalog filters, AND-combined.
type ItemSearch struct {
	Query        string
	Category     string
	Size         string
	GenderTarget string
	MinPrice     *float64
	MaxPrice     *float64
}

func (r *Repo) CreateItem(ctx context.Context, it *models.Item) error {
	return r.DB.WithContext(ctx).Create(it).Error
}

func (r *Repo) FindItemByID(ctx context.Context, id string) (*models.Item, error) {
	var it models.Item
	if err := r.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// SearchItems returns available items matching every supplied filter,
// newest first, capped at SearchMaxResults.
func (r *Repo) SearchItems(ctx context.Context, q ItemSearch) ([]models.Item, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Item{}).Where("available = TRUE")

	if s := strings.TrimSpace(q.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Size != "" {
		tx = tx.Where("size = ?", q.Size)
	}
	if q.GenderTarget != "" {
		tx = tx.Where("gender_target = ?", q.GenderTarget)
	}
	if q.MinPrice != nil {
		tx = tx.Where("daily_price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("daily_price <= ?", *q.MaxPrice)
	}

	var items []models.Item
	err := tx.Order("created_at DESC").Limit(SearchMaxResults).Find(&items).Error
	return items, err
}

func (r *Repo) DeleteItem(ctx context.Context, ownerID, itemID string) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", itemID, ownerID).
		Delete(&models.Item{})
	return res.RowsAffected > 0, res.Error
}

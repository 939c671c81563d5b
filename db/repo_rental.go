package db

import (
	"context"

	"dresshub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Checkout converts the caller's open cart rows into confirmed rentals in
// one transaction: lock the cart rows, lock each item, reject on an
// availability conflict, price the window, create the rental, mark the
// cart row consumed. Any failure rolls the whole batch back.
func (r *Repo) Checkout(ctx context.Context, userID string, cartItemIDs []string) ([]models.Rental, error) {
	var rentals []models.Rental
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ? AND user_id = ? AND checked_out = FALSE", cartItemIDs, userID).
			Find(&cartItems).Error; err != nil {
			return err
		}

		for _, ci := range cartItems {
			var it models.Item
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&it, "id = ?", ci.ItemID).Error; err != nil {
				return err
			}
			if !it.Available {
				return ErrItemUnavailable
			}

			// conflict: an active rental whose window overlaps the request
			var n int64
			if err := tx.Model(&models.Rental{}).
				Where("item_id = ? AND status IN ?", it.ID,
					[]models.RentalStatus{models.RentalConfirmed, models.RentalInUse}).
				Where("start_date < ? AND end_date > ?", ci.RentalEnd, ci.RentalStart).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrItemUnavailable
			}

			rental := models.Rental{
				ID:         uuid.NewString(),
				ItemID:     it.ID,
				OwnerID:    it.OwnerID,
				RenterID:   userID,
				StartDate:  ci.RentalStart,
				EndDate:    ci.RentalEnd,
				TotalPrice: models.TotalPrice(it.DailyPrice, ci.RentalStart, ci.RentalEnd),
				Status:     models.RentalConfirmed,
			}
			if err := tx.Create(&rental).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.CartItem{}).
				Where("id = ? AND checked_out = FALSE", ci.ID).
				Update("checked_out", true).Error; err != nil {
				return err
			}

			rental.Item = &it
			rentals = append(rentals, rental)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rentals == nil {
		rentals = []models.Rental{}
	}
	return rentals, nil
}

// ListRentals returns rentals where the caller is owner or renter.
func (r *Repo) ListRentals(ctx context.Context, userID, role string) ([]models.Rental, error) {
	q := r.DB.WithContext(ctx).Preload("Item").Order("created_at DESC")
	if role == "owner" {
		q = q.Where("owner_id = ?", userID)
	} else {
		q = q.Where("renter_id = ?", userID)
	}
	var rows []models.Rental
	err := q.Find(&rows).Error
	return rows, err
}

func (r *Repo) FindRentalByID(ctx context.Context, id string) (*models.Rental, error) {
	var rental models.Rental
	if err := r.DB.WithContext(ctx).First(&rental, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

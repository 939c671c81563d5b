package db

import (
	"context"

	"dresshub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repo) CreateReturn(ctx context.Context, rr *models.ReturnRequest) error {
	return r.DB.WithContext(ctx).Create(rr).Error
}

func (r *Repo) FindReturnByID(ctx context.Context, id string) (*models.ReturnRequest, error) {
	var rr models.ReturnRequest
	if err := r.DB.WithContext(ctx).First(&rr, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rr, nil
}

// SetReturnStatus advances a return request through the guarded transition
// table. Reaching "received" cascades the linked rental to "returned" in
// the same transaction; "issue_reported" leaves the rental alone.
func (r *Repo) SetReturnStatus(ctx context.Context, id string, status models.ReturnStatus) (*models.ReturnRequest, error) {
	var rr models.ReturnRequest
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&rr, "id = ?", id).Error; err != nil {
			return err
		}
		if !rr.Status.CanTransition(status) {
			return ErrInvalidTransition
		}
		rr.Status = status
		if err := tx.Save(&rr).Error; err != nil {
			return err
		}
		if status == models.ReturnReceived {
			if err := tx.Model(&models.Rental{}).
				Where("id = ?", rr.RentalID).
				Update("status", models.RentalReturned).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rr, nil
}

// ListReturns returns requests where the caller is owner or renter.
func (r *Repo) ListReturns(ctx context.Context, userID, role string) ([]models.ReturnRequest, error) {
	q := r.DB.WithContext(ctx).Preload("Rental").Order("created_at DESC")
	if role == "owner" {
		q = q.Where("owner_id = ?", userID)
	} else {
		q = q.Where("renter_id = ?", userID)
	}
	var rows []models.ReturnRequest
	err := q.Find(&rows).Error
	return rows, err
}

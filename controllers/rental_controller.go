package controllers

import (
	"context"
	"errors"
	"net/http"

	"dresshub/app"
	"dresshub/db"
	"dresshub/models"

	"github.com/gin-gonic/gin"
)

type RentalStore interface {
	Checkout(ctx context.Context, userID string, cartItemIDs []string) ([]models.Rental, error)
	ListRentals(ctx context.Context, userID, role string) ([]models.Rental, error)
}

type RentalController struct {
	store RentalStore
}

func NewRentalController(store RentalStore) *RentalController {
	return &RentalController{store: store}
}

// Checkout converts cart selections into confirmed rentals, all or nothing.
func (rc *RentalController) Checkout(c *gin.Context) {
	var in struct {
		CartItemIDs []string `json:"cartItemIds" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	rentals, err := rc.store.Checkout(c.Request.Context(), app.UserID(c), in.CartItemIDs)
	if err != nil {
		if errors.Is(err, db.ErrItemUnavailable) {
			c.JSON(http.StatusConflict, app.H{"error": "item not available for the requested dates"})
			return
		}
		abortStoreErr(c, "checkout", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"rentals": rentals})
}

// ListRentals returns the caller's rentals; ?role=owner flips the side.
func (rc *RentalController) ListRentals(c *gin.Context) {
	role := c.DefaultQuery("role", "renter")
	rows, err := rc.store.ListRentals(c.Request.Context(), app.UserID(c), role)
	if err != nil {
		abortStoreErr(c, "list rentals", err)
		return
	}
	if rows == nil {
		rows = []models.Rental{}
	}
	c.JSON(http.StatusOK, app.H{"rentals": rows})
}

package controllers

import (
	"context"
	"net/http"

	"dresshub/app"
	"dresshub/models"

	"github.com/gin-gonic/gin"
)

type WishlistStore interface {
	AddWishlistItem(ctx context.Context, userID, itemID string) (*models.WishlistItem, error)
	ListWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error)
	RemoveWishlistItem(ctx context.Context, userID, itemID string) error
}

type WishlistController struct {
	store WishlistStore
}

func NewWishlistController(store WishlistStore) *WishlistController {
	return &WishlistController{store: store}
}

// Add is idempotent: a second add of the same (user, item) returns the
// existing row.
func (wc *WishlistController) Add(c *gin.Context) {
	var in struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	row, err := wc.store.AddWishlistItem(c.Request.Context(), app.UserID(c), in.ItemID)
	if err != nil {
		abortStoreErr(c, "add to wishlist", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (wc *WishlistController) List(c *gin.Context) {
	rows, err := wc.store.ListWishlist(c.Request.Context(), app.UserID(c))
	if err != nil {
		abortStoreErr(c, "list wishlist", err)
		return
	}
	if rows == nil {
		rows = []models.WishlistItem{}
	}
	c.JSON(http.StatusOK, app.H{"items": rows})
}

// Remove is a no-op when the row is absent.
func (wc *WishlistController) Remove(c *gin.Context) {
	if err := wc.store.RemoveWishlistItem(c.Request.Context(), app.UserID(c), c.Param("itemId")); err != nil {
		abortStoreErr(c, "remove from wishlist", err)
		return
	}
	c.Status(http.StatusNoContent)
}

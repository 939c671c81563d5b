package controllers

import (
	"context"
	"net/http"
	"time"

	"dresshub/app"
	"dresshub/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartStore interface {
	FindItemByID(ctx context.Context, id string) (*models.Item, error)
	AddCartItem(ctx context.Context, ci *models.CartItem) error
	ListCart(ctx context.Context, userID string) ([]models.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, cartItemID string) (bool, error)
}

type CartController struct {
	store CartStore
}

func NewCartController(store CartStore) *CartController { return &CartController{store: store} }

// AddToCart stages a rental selection. Overlapping selections are allowed
// here; conflicts surface at checkout.
func (cc *CartController) AddToCart(c *gin.Context) {
	var in struct {
		ItemID      string    `json:"itemId" binding:"required"`
		RentalStart time.Time `json:"rentalStart" binding:"required"`
		RentalEnd   time.Time `json:"rentalEnd" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !in.RentalEnd.After(in.RentalStart) {
		c.JSON(http.StatusBadRequest, app.H{"error": "rentalEnd must be after rentalStart"})
		return
	}

	if _, err := cc.store.FindItemByID(c.Request.Context(), in.ItemID); err != nil {
		abortStoreErr(c, "add to cart", err)
		return
	}

	ci := &models.CartItem{
		ID:          uuid.NewString(),
		UserID:      app.UserID(c),
		ItemID:      in.ItemID,
		RentalStart: in.RentalStart,
		RentalEnd:   in.RentalEnd,
	}
	if err := cc.store.AddCartItem(c.Request.Context(), ci); err != nil {
		abortStoreErr(c, "add to cart", err)
		return
	}
	c.JSON(http.StatusCreated, ci)
}

func (cc *CartController) ListCart(c *gin.Context) {
	rows, err := cc.store.ListCart(c.Request.Context(), app.UserID(c))
	if err != nil {
		abortStoreErr(c, "list cart", err)
		return
	}
	if rows == nil {
		rows = []models.CartItem{}
	}
	c.JSON(http.StatusOK, app.H{"items": rows})
}

func (cc *CartController) RemoveFromCart(c *gin.Context) {
	ok, err := cc.store.RemoveCartItem(c.Request.Context(), app.UserID(c), c.Param("id"))
	if err != nil {
		abortStoreErr(c, "remove from cart", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, app.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

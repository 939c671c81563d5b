package controllers

import (
	"context"
	"net/http"
	"strconv"

	"dresshub/app"
	"dresshub/db"
	"dresshub/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemStore interface {
	CreateItem(ctx context.Context, it *models.Item) error
	FindItemByID(ctx context.Context, id string) (*models.Item, error)
	SearchItems(ctx context.Context, q db.ItemSearch) ([]models.Item, error)
	DeleteItem(ctx context.Context, ownerID, itemID string) (bool, error)
}

type ItemController struct {
	store ItemStore
}

func NewItemController(store ItemStore) *ItemController { return &ItemController{store: store} }

func (ic *ItemController) CreateItem(c *gin.Context) {
	var in struct {
		Title         string   `json:"title" binding:"required"`
		Description   string   `json:"description"`
		Category      string   `json:"category"`
		Size          string   `json:"size"`
		GenderTarget  string   `json:"genderTarget"`
		DailyPrice    float64  `json:"dailyPrice" binding:"required,gt=0"`
		DepositAmount *float64 `json:"depositAmount" binding:"omitempty,gte=0"`
		Condition     string   `json:"condition"`
		Available     *bool    `json:"available"`
		Images        []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	it := &models.Item{
		ID:            uuid.NewString(),
		OwnerID:       app.UserID(c),
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Size:          in.Size,
		GenderTarget:  in.GenderTarget,
		DailyPrice:    in.DailyPrice,
		DepositAmount: in.DepositAmount,
		Condition:     in.Condition,
		Available:     available,
		Images:        in.Images,
	}
	if err := ic.store.CreateItem(c.Request.Context(), it); err != nil {
		abortStoreErr(c, "create item", err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// SearchItems is the public catalog: all filters optional, AND-combined,
// capped at 50 available items.
func (ic *ItemController) SearchItems(c *gin.Context) {
	q := db.ItemSearch{
		Query:        c.Query("query"),
		Category:     c.Query("category"),
		Size:         c.Query("size"),
		GenderTarget: c.Query("genderTarget"),
	}
	if v := c.Query("minPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "minPrice must be a number"})
			return
		}
		q.MinPrice = &f
	}
	if v := c.Query("maxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "maxPrice must be a number"})
			return
		}
		q.MaxPrice = &f
	}

	items, err := ic.store.SearchItems(c.Request.Context(), q)
	if err != nil {
		abortStoreErr(c, "search items", err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.JSON(http.StatusOK, app.H{"items": items})
}

func (ic *ItemController) GetItem(c *gin.Context) {
	it, err := ic.store.FindItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortStoreErr(c, "get item", err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// DeleteItem removes a listing; only the owner's own listing qualifies.
func (ic *ItemController) DeleteItem(c *gin.Context) {
	ok, err := ic.store.DeleteItem(c.Request.Context(), app.UserID(c), c.Param("id"))
	if err != nil {
		abortStoreErr(c, "delete item", err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, app.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

package controllers

import (
	"context"
	"net/http"
	"testing"

	"dresshub/db"
	"dresshub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeItemStore struct {
	createFn func(ctx context.Context, it *models.Item) error
	byIDFn   func(ctx context.Context, id string) (*models.Item, error)
	searchFn func(ctx context.Context, q db.ItemSearch) ([]models.Item, error)
	deleteFn func(ctx context.Context, ownerID, itemID string) (bool, error)
}

var _ ItemStore = (*fakeItemStore)(nil)

func (f *fakeItemStore) CreateItem(ctx context.Context, it *models.Item) error {
	return f.createFn(ctx, it)
}

func (f *fakeItemStore) FindItemByID(ctx context.Context, id string) (*models.Item, error) {
	return f.byIDFn(ctx, id)
}

func (f *fakeItemStore) SearchItems(ctx context.Context, q db.ItemSearch) ([]models.Item, error) {
	return f.searchFn(ctx, q)
}

func (f *fakeItemStore) DeleteItem(ctx context.Context, ownerID, itemID string) (bool, error) {
	return f.deleteFn(ctx, ownerID, itemID)
}

func TestCreateItemAttachesOwner(t *testing.T) {
	uid := uuid.NewString()
	var created *models.Item
	store := &fakeItemStore{
		createFn: func(ctx context.Context, it *models.Item) error {
			created = it
			return nil
		},
	}
	ic := NewItemController(store)
	r := newTestRouter(uid)
	r.POST("/items", ic.CreateItem)

	w := doJSON(t, r, http.MethodPost, "/items", map[string]any{
		"title": "Silk evening dress", "dailyPrice": 50.0, "category": "dress", "size": "M",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	require.Equal(t, uid, created.OwnerID)
	require.True(t, created.Available, "items default to available")
}

func TestCreateItemRejectsNonPositivePrice(t *testing.T) {
	ic := NewItemController(&fakeItemStore{})
	r := newTestRouter(uuid.NewString())
	r.POST("/items", ic.CreateItem)

	for name, price := range map[string]float64{"zero": 0, "negative": -5} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/items", map[string]any{
				"title": "Dress", "dailyPrice": price,
			})
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSearchItemsForwardsFilters(t *testing.T) {
	var got db.ItemSearch
	store := &fakeItemStore{
		searchFn: func(ctx context.Context, q db.ItemSearch) ([]models.Item, error) {
			got = q
			return []models.Item{{ID: uuid.NewString(), Title: "Gown", Available: true}}, nil
		},
	}
	ic := NewItemController(store)
	r := newTestRouter("")
	r.GET("/items", ic.SearchItems)

	w := doJSON(t, r, http.MethodGet,
		"/items?query=gown&category=dress&size=M&genderTarget=women&minPrice=10&maxPrice=99.5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, "gown", got.Query)
	require.Equal(t, "dress", got.Category)
	require.Equal(t, "M", got.Size)
	require.Equal(t, "women", got.GenderTarget)
	require.NotNil(t, got.MinPrice)
	require.Equal(t, 10.0, *got.MinPrice)
	require.NotNil(t, got.MaxPrice)
	require.Equal(t, 99.5, *got.MaxPrice)

	body := decodeBody(t, w)
	require.Len(t, body["items"], 1)
}

func TestSearchItemsRejectsBadPrice(t *testing.T) {
	ic := NewItemController(&fakeItemStore{})
	r := newTestRouter("")
	r.GET("/items", ic.SearchItems)

	w := doJSON(t, r, http.MethodGet, "/items?minPrice=cheap", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetItemNotFound(t *testing.T) {
	store := &fakeItemStore{
		byIDFn: func(ctx context.Context, id string) (*models.Item, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	ic := NewItemController(store)
	r := newTestRouter("")
	r.GET("/items/:id", ic.GetItem)

	w := doJSON(t, r, http.MethodGet, "/items/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteItemOwnerOnly(t *testing.T) {
	uid := uuid.NewString()
	itemID := uuid.NewString()
	store := &fakeItemStore{
		deleteFn: func(ctx context.Context, ownerID, id string) (bool, error) {
			return ownerID == uid && id == itemID, nil
		},
	}
	ic := NewItemController(store)

	r := newTestRouter(uid)
	r.DELETE("/items/:id", ic.DeleteItem)
	w := doJSON(t, r, http.MethodDelete, "/items/"+itemID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	stranger := newTestRouter(uuid.NewString())
	stranger.DELETE("/items/:id", ic.DeleteItem)
	w = doJSON(t, stranger, http.MethodDelete, "/items/"+itemID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

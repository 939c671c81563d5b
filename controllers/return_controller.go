package controllers

import (
	"context"
	"errors"
	"net/http"

	"dresshub/app"
	"dresshub/db"
	"dresshub/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReturnStore interface {
	FindRentalByID(ctx context.Context, id string) (*models.Rental, error)
	CreateReturn(ctx context.Context, rr *models.ReturnRequest) error
	FindReturnByID(ctx context.Context, id string) (*models.ReturnRequest, error)
	SetReturnStatus(ctx context.Context, id string, status models.ReturnStatus) (*models.ReturnRequest, error)
	ListReturns(ctx context.Context, userID, role string) ([]models.ReturnRequest, error)
}

type ReturnController struct {
	store ReturnStore
}

func NewReturnController(store ReturnStore) *ReturnController {
	return &ReturnController{store: store}
}

// CreateReturn opens the return workflow for a rental. Only the rental's
// renter may initiate.
func (rc *ReturnController) CreateReturn(c *gin.Context) {
	var in struct {
		RentalID string `json:"rentalId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	rental, err := rc.store.FindRentalByID(c.Request.Context(), in.RentalID)
	if err != nil {
		abortStoreErr(c, "create return", err)
		return
	}
	if rental.RenterID != app.UserID(c) {
		c.JSON(http.StatusForbidden, app.H{"error": "only the renter may initiate a return"})
		return
	}

	rr := &models.ReturnRequest{
		ID:       uuid.NewString(),
		RentalID: rental.ID,
		RenterID: rental.RenterID,
		OwnerID:  rental.OwnerID,
		Status:   models.ReturnInitiated,
	}
	if err := rc.store.CreateReturn(c.Request.Context(), rr); err != nil {
		abortStoreErr(c, "create return", err)
		return
	}
	c.JSON(http.StatusCreated, rr)
}

// UpdateReturn advances the workflow. Transitions outside the table are
// rejected; "received" cascades the rental to "returned".
func (rc *ReturnController) UpdateReturn(c *gin.Context) {
	var in struct {
		Status models.ReturnStatus `json:"status" binding:"required,oneof=initiated in_transit received issue_reported"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	rr, err := rc.store.FindReturnByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortStoreErr(c, "update return", err)
		return
	}
	uid := app.UserID(c)
	if rr.RenterID != uid && rr.OwnerID != uid {
		c.JSON(http.StatusForbidden, app.H{"error": "not a party to this return"})
		return
	}

	updated, err := rc.store.SetReturnStatus(c.Request.Context(), rr.ID, in.Status)
	if err != nil {
		if errors.Is(err, db.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, app.H{"error": "return status transition not allowed"})
			return
		}
		abortStoreErr(c, "update return", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (rc *ReturnController) ListReturns(c *gin.Context) {
	role := c.DefaultQuery("role", "renter")
	rows, err := rc.store.ListReturns(c.Request.Context(), app.UserID(c), role)
	if err != nil {
		abortStoreErr(c, "list returns", err)
		return
	}
	if rows == nil {
		rows = []models.ReturnRequest{}
	}
	c.JSON(http.StatusOK, app.H{"returns": rows})
}

package models

import (
	"math"
	"time"
)

const RentalTable = "dh_rentals"

type RentalStatus string

const (
	RentalPending   RentalStatus = "pending"
	RentalConfirmed RentalStatus = "confirmed"
	RentalInUse     RentalStatus = "in_use"
	RentalReturned  RentalStatus = "returned"
	RentalCanceled  RentalStatus = "canceled"
)

type Rental struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID   string `gorm:"type:uuid;index;not null" json:"itemId"`
	OwnerID  string `gorm:"type:uuid;index;not null" json:"ownerId"`
	RenterID string `gorm:"type:uuid;index;not null" json:"renterId"`

	StartDate  time.Time    `gorm:"not null" json:"startDate"`
	EndDate    time.Time    `gorm:"not null" json:"endDate"`
	TotalPrice float64      `gorm:"not null" json:"totalPrice"`
	Status     RentalStatus `gorm:"size:20;not null;default:'pending'" json:"status"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Rental) TableName() string { return RentalTable }

// RentalDays returns the billable whole days between start and end.
// Partial days round up; anything shorter than a day still bills one.
func RentalDays(start, end time.Time) int {
	if !end.After(start) {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPrice is dailyPrice × billable days.
func TotalPrice(dailyPrice float64, start, end time.Time) float64 {
	return dailyPrice * float64(RentalDays(start, end))
}

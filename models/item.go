package models

import "time"

const ItemTable = "dh_items"

type Item struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"type:uuid;index;not null" json:"ownerId"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Category     string `gorm:"size:60;index" json:"category,omitempty"`
	Size         string `gorm:"size:20" json:"size,omitempty"`
	GenderTarget string `gorm:"size:20" json:"genderTarget,omitempty"`
	Condition    string `gorm:"size:60" json:"condition,omitempty"`

	DailyPrice    float64  `gorm:"not null" json:"dailyPrice"`
	DepositAmount *float64 `json:"depositAmount,omitempty"`

	Available bool     `gorm:"not null;default:true" json:"available"`
	Images    []string `gorm:"serializer:json" json:"images,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Item) TableName() string { return ItemTable }

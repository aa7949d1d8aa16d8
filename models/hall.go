package models

import "time"

type Hall struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Image     string    `gorm:"type:varchar(500)" json:"image"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	StoreID   uint      `gorm:"index;not null" json:"storeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

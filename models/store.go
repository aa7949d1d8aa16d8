package models

import "time"

// Store belongs to exactly one owner; OwnerID is unique so a second store
// for the same user is rejected at the schema level too.
type Store struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug            string    `gorm:"type:varchar(255);unique;not null" json:"slug"`
	OwnerID         uint      `gorm:"uniqueIndex;not null" json:"ownerId"`
	Currency        string    `gorm:"type:varchar(10);not null;default:'AED'" json:"currency"`
	Logo            string    `gorm:"type:varchar(500)" json:"logo"`
	CoverImage      string    `gorm:"type:varchar(500)" json:"coverImage"`
	Location        string    `gorm:"type:varchar(255)" json:"location"`
	Description     string    `gorm:"type:text" json:"description"`
	Address         string    `gorm:"type:varchar(500)" json:"address"`
	Phone           string    `gorm:"type:varchar(50)" json:"phone"`
	Email           string    `gorm:"type:varchar(255)" json:"email"`
	AcceptingOrders bool      `gorm:"not null;default:true" json:"acceptingOrders"`
	IsActive        bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

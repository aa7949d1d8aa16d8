package models

import "time"

// SubCategory cannot exist without a parent Category. The reference is a
// plain indexed column: orphan prevention is handled by the catalog
// service's cascade deletes, not by a database constraint.
type SubCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Image       string    `gorm:"type:varchar(500)" json:"image"`
	CategoryID  uint      `gorm:"index;not null" json:"categoryId"`
	IsAvailable bool      `gorm:"not null;default:true" json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

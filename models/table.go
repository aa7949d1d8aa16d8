package models

import "time"

// Table requires a non-empty QRCodeImage at creation. A freshly provisioned
// table carries the "pending" placeholder until the rendered QR image is
// uploaded and patched in.
type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Seats       int       `gorm:"not null" json:"seats"`
	IsOccupied  bool      `gorm:"not null;default:false" json:"isOccupied"`
	IsAvailable bool      `gorm:"not null;default:true" json:"isAvailable"`
	QRCodeImage string    `gorm:"column:qr_code_image;type:varchar(500);not null" json:"qrCodeImage"`
	HallID      uint      `gorm:"index;not null" json:"hallId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

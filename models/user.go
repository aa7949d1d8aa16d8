package models

import "time"

// User is keyed by email. The one-time code fields are write-only: the code
// is stored bcrypt-hashed and never leaves the server.
type User struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(255)" json:"name"`
	Email      string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	OTP        string     `gorm:"column:otp;type:varchar(255)" json:"-"`
	OTPExpires *time.Time `gorm:"column:otp_expires" json:"-"`
	Role       string     `gorm:"type:varchar(50);not null;default:'store_owner'" json:"role"`
	StoreID    *uint      `gorm:"index" json:"storeId"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

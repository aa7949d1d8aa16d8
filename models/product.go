package models

import "time"

// Product references its Category (required) and optionally a SubCategory.
// Whether SubCategoryID belongs to the same category is not enforced here;
// the admin UI only ever offers sub-categories of the selected category.
type Product struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Name          string       `gorm:"type:varchar(255);not null" json:"name"`
	Description   string       `gorm:"type:text" json:"description"`
	MRP           float64      `gorm:"column:mrp;type:decimal(10,2)" json:"mrp"`
	SellingPrice  float64      `gorm:"type:decimal(10,2);not null" json:"sellingPrice"`
	Images        []string     `gorm:"serializer:json" json:"images"`
	CategoryID    uint         `gorm:"index;not null" json:"categoryId"`
	Category      *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategoryID *uint        `gorm:"index" json:"subCategoryId"`
	SubCategory   *SubCategory `gorm:"foreignKey:SubCategoryID" json:"subCategory,omitempty"`
	IsVeg         bool         `gorm:"not null;default:true" json:"isVeg"`
	StockQuantity int          `gorm:"not null;default:0" json:"stockQuantity"`
	InStock       bool         `gorm:"not null;default:true" json:"inStock"`
	IsActive      bool         `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

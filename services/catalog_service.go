package services

import (
	"fmt"

	"github.com/BijinVijayan/food-store/models"
	"gorm.io/gorm"
)

// CatalogService owns the catalog-tree consistency rules: cascade deletes run
// children-first, and the sub-category sync is an additive per-item upsert.
// Every boundary handler that touches the tree goes through here so the
// ordering invariant lives in one place.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// SubCategoryInput is a sub-category draft supplied alongside a category
// create or update. A present ID means "update in place", absent means
// "create under this category".
type SubCategoryInput struct {
	ID    *uint  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CreateSubCategories bulk-inserts drafts under the given category.
func (s *CatalogService) CreateSubCategories(categoryID uint, inputs []SubCategoryInput) ([]models.SubCategory, error) {
	if len(inputs) == 0 {
		return []models.SubCategory{}, nil
	}

	subCats := make([]models.SubCategory, 0, len(inputs))
	for _, in := range inputs {
		subCats = append(subCats, models.SubCategory{
			Name:        in.Name,
			Image:       in.Image,
			CategoryID:  categoryID,
			IsAvailable: true,
		})
	}
	if err := s.DB.Create(&subCats).Error; err != nil {
		return nil, err
	}
	return subCats, nil
}

// SyncSubCategories upserts the supplied list under the category. Entries
// carrying an id are updated in place, the rest are created. Sub-categories
// missing from the list are left alone: removal is its own explicit call.
func (s *CatalogService) SyncSubCategories(categoryID uint, inputs []SubCategoryInput) error {
	for _, in := range inputs {
		if in.ID != nil {
			err := s.DB.Model(&models.SubCategory{}).
				Where("id = ?", *in.ID).
				Updates(map[string]interface{}{
					"name":  in.Name,
					"image": in.Image,
				}).Error
			if err != nil {
				return err
			}
			continue
		}

		sub := models.SubCategory{
			Name:        in.Name,
			Image:       in.Image,
			CategoryID:  categoryID,
			IsAvailable: true,
		}
		if err := s.DB.Create(&sub).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteCategoryTree removes a category and everything beneath it: products
// first, then sub-categories, then the category itself. The child deletes run
// before the existence check; on an unknown id they are harmless no-ops and
// gorm.ErrRecordNotFound is returned for the parent.
func (s *CatalogService) DeleteCategoryTree(id uint) error {
	if err := s.DB.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
		return err
	}
	if err := s.DB.Where("category_id = ?", id).Delete(&models.SubCategory{}).Error; err != nil {
		return err
	}

	res := s.DB.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteSubCategoryTree removes a sub-category and its products.
func (s *CatalogService) DeleteSubCategoryTree(id uint) error {
	if err := s.DB.Where("sub_category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
		return err
	}

	res := s.DB.Delete(&models.SubCategory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteHallTree removes a hall and its tables.
func (s *CatalogService) DeleteHallTree(id uint) error {
	if err := s.DB.Where("hall_id = ?", id).Delete(&models.Table{}).Error; err != nil {
		return err
	}

	res := s.DB.Delete(&models.Hall{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SubCategorySummary is a list-page row for one sub-category.
type SubCategorySummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Count string `json:"count"`
}

// CategoryOverview is a list-page row: the category plus product counts for
// itself and each child sub-category.
type CategoryOverview struct {
	ID            uint                 `json:"id"`
	Name          string               `json:"name"`
	Image         string               `json:"image"`
	Count         string               `json:"count"`
	Updated       string               `json:"updated"`
	SubCategories []SubCategorySummary `json:"subCategories"`
}

// ListCategoryOverviews fans out one count query per category plus one per
// sub-category. Fine at menu scale; revisit if catalogs grow past a few
// hundred rows.
func (s *CatalogService) ListCategoryOverviews() ([]CategoryOverview, error) {
	var categories []models.Category
	if err := s.DB.Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, err
	}

	overviews := make([]CategoryOverview, 0, len(categories))
	for _, cat := range categories {
		var productCount int64
		if err := s.DB.Model(&models.Product{}).Where("category_id = ?", cat.ID).Count(&productCount).Error; err != nil {
			return nil, err
		}

		var subCats []models.SubCategory
		if err := s.DB.Where("category_id = ?", cat.ID).Find(&subCats).Error; err != nil {
			return nil, err
		}

		summaries := make([]SubCategorySummary, 0, len(subCats))
		for _, sub := range subCats {
			var subCount int64
			if err := s.DB.Model(&models.Product{}).Where("sub_category_id = ?", sub.ID).Count(&subCount).Error; err != nil {
				return nil, err
			}
			summaries = append(summaries, SubCategorySummary{
				ID:    sub.ID,
				Name:  sub.Name,
				Image: sub.Image,
				Count: fmt.Sprintf("%d items", subCount),
			})
		}

		overviews = append(overviews, CategoryOverview{
			ID:            cat.ID,
			Name:          cat.Name,
			Image:         cat.Image,
			Count:         fmt.Sprintf("%d Products", productCount),
			Updated:       cat.UpdatedAt.Format("02/01/2006"),
			SubCategories: summaries,
		})
	}
	return overviews, nil
}

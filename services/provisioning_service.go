package services

import (
	"fmt"

	"github.com/BijinVijayan/food-store/models"
	"github.com/BijinVijayan/food-store/utils"
	"gorm.io/gorm"
)

// QRPlaceholder satisfies the non-empty QR constraint before the real image
// URL is known.
const QRPlaceholder = "pending"

// ProvisioningService runs the table-provisioning saga server-side:
//
//	create placeholder -> build redirect URL -> render QR -> store blob -> patch table
//
// The table id must exist before the QR can encode it, hence the
// create-then-patch lifecycle. If any step after the create fails, the
// placeholder table is deleted again so no half-provisioned row survives.
type ProvisioningService struct {
	DB      *gorm.DB
	QR      QRGenerator
	Blobs   BlobStore
	BaseURL string
}

func NewProvisioningService(db *gorm.DB, qr QRGenerator, blobs BlobStore, baseURL string) *ProvisioningService {
	return &ProvisioningService{DB: db, QR: qr, Blobs: blobs, BaseURL: baseURL}
}

// ProvisionTable creates a table in the hall and returns it with its final
// QR image URL in place.
func (s *ProvisioningService) ProvisionTable(storeSlug string, hallID uint, name string, seats int) (*models.Table, error) {
	table := models.Table{
		Name:        name,
		Seats:       seats,
		QRCodeImage: QRPlaceholder,
		HallID:      hallID,
		IsAvailable: true,
	}
	if err := s.DB.Create(&table).Error; err != nil {
		return nil, err
	}

	target := BuildQRRedirectURL(s.BaseURL, storeSlug, hallID, table.ID)
	png, err := s.QR.Generate(target)
	if err != nil {
		s.compensate(&table)
		return nil, fmt.Errorf("render qr: %w", err)
	}

	url, err := s.Blobs.Save(fmt.Sprintf("qr-%s-%d.png", storeSlug, table.ID), png)
	if err != nil {
		s.compensate(&table)
		return nil, fmt.Errorf("upload qr: %w", err)
	}

	if err := s.DB.Model(&table).Update("qr_code_image", url).Error; err != nil {
		s.compensate(&table)
		return nil, err
	}

	table.QRCodeImage = url
	return &table, nil
}

// compensate rolls back the placeholder row created in step one.
func (s *ProvisioningService) compensate(table *models.Table) {
	if err := s.DB.Delete(table).Error; err != nil {
		utils.ErrorLogger.Printf("provisioning compensation failed for table %d: %v", table.ID, err)
	}
}

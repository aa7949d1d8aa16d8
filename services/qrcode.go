package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRGenerator renders a redirect URL to a QR bitmap.
type QRGenerator interface {
	Generate(url string) ([]byte, error)
}

type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(url string) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, 256)
}

// BuildQRRedirectURL derives the redirect target a table's QR code encodes.
// The derivation is deterministic: the same (slug, hall, table) triple always
// reproduces the identical string.
func BuildQRRedirectURL(base, storeSlug string, hallID, tableID uint) string {
	return fmt.Sprintf("%s/qr/%s-%d-%d", base, storeSlug, hallID, tableID)
}

// ParseQRData splits the "<slug>-<hallId>-<tableId>" payload back into its
// parts. The two trailing segments are the numeric ids; everything before
// them is the slug, which may itself contain dashes.
func ParseQRData(data string) (storeSlug string, hallID, tableID uint, err error) {
	parts := strings.Split(data, "-")
	if len(parts) < 3 {
		return "", 0, 0, errors.New("malformed qr payload")
	}

	table, err := strconv.ParseUint(parts[len(parts)-1], 10, 32)
	if err != nil {
		return "", 0, 0, errors.New("malformed qr payload")
	}
	hall, err := strconv.ParseUint(parts[len(parts)-2], 10, 32)
	if err != nil {
		return "", 0, 0, errors.New("malformed qr payload")
	}

	slug := strings.Join(parts[:len(parts)-2], "-")
	if slug == "" {
		return "", 0, 0, errors.New("malformed qr payload")
	}
	return slug, uint(hall), uint(table), nil
}

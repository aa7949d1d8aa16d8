package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

// BlobStore is the single upload boundary: bytes in, permanent public URL out.
type BlobStore interface {
	Save(filename string, data []byte) (string, error)
}

var unsafeFilenameChars = regexp.MustCompile(`[^\w\-.]`)

// LocalBlobStore writes blobs under Dir and serves them from BaseURL/uploads.
type LocalBlobStore struct {
	Dir     string
	BaseURL string
}

func NewLocalBlobStore(dir, baseURL string) *LocalBlobStore {
	return &LocalBlobStore{Dir: dir, BaseURL: baseURL}
}

func (s *LocalBlobStore) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	clean := unsafeFilenameChars.ReplaceAllString(filename, "_")
	name := fmt.Sprintf("%s_%s", uuid.NewString(), clean)

	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return fmt.Sprintf("%s/uploads/%s", s.BaseURL, name), nil
}

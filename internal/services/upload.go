package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadService stores uploaded images on the local filesystem. Stored
// names carry a timestamp and a random token so concurrent uploads
// sharing an original name never collide; no locking is needed.
type UploadService struct {
	dir string
}

// NewUploadService creates a new upload service, creating the upload
// directory when it does not exist yet.
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// SaveImage writes an uploaded file to the upload directory under a
// generated unique name and returns the relative URL it is served at.
func (s *UploadService) SaveImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := storedName(header.Filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return "/uploads/" + name, nil
}

// storedName builds {base}-{timestamp}-{token}{ext} from the original
// filename. filepath.Base strips any path the client sent along.
func storedName(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), uuid.New().String(), ext)
}

// internal/store/file.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
)

// FileStore lưu collection trong một file JSON duy nhất trên đĩa.
type FileStore struct {
	Path string
}

// NewFileStore tạo một FileStore với đường dẫn data file.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load đọc document từ đĩa. File chưa tồn tại không phải là lỗi:
// trả về một collection rỗng để lần Save đầu tiên tạo file.
func (s *FileStore) Load(ctx context.Context) (models.FeatureCollection, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewFeatureCollection(), nil
		}
		return models.FeatureCollection{}, fmt.Errorf("failed to read data file: %w", err)
	}

	var data models.FeatureCollection
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.FeatureCollection{}, fmt.Errorf("failed to parse data file: %w", err)
	}
	if data.Features == nil {
		data.Features = []models.Feature{}
	}
	return data, nil
}

// Save ghi đè toàn bộ document. Ghi ra file tạm cùng thư mục rồi rename
// để reader không bao giờ thấy document ghi dở.
func (s *FileStore) Save(ctx context.Context, data models.FeatureCollection) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

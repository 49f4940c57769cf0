// internal/store/store.go
package store

import (
	"context"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
)

// DocumentStore lưu toàn bộ collection như một document JSON duy nhất.
// Mọi thao tác ghi là ghi đè cả document; Save phải atomic từ góc nhìn
// của reader (không bao giờ đọc được document ghi dở).
type DocumentStore interface {
	Load(ctx context.Context) (models.FeatureCollection, error)
	Save(ctx context.Context, data models.FeatureCollection) error
}

// FindByID quét tuyến tính và trả về feature theo properties.id.
// Không tìm thấy không phải là lỗi, trả về ok = false.
func FindByID(data models.FeatureCollection, id string) (models.Feature, bool) {
	for _, f := range data.Features {
		if f.Properties.ID == id {
			return f, true
		}
	}
	return models.Feature{}, false
}

// Insert thêm một feature mới vào cuối collection. Caller chịu trách nhiệm
// gọi Save sau đó. Trả về *ValidationError nếu thiếu trường bắt buộc,
// ErrConflict nếu trùng ID.
func Insert(data *models.FeatureCollection, f models.Feature) error {
	var missing []string
	if f.Properties.ID == "" {
		missing = append(missing, "id")
	}
	if f.Properties.Name == "" {
		missing = append(missing, "name")
	}
	if f.Properties.Type == "" {
		missing = append(missing, "type")
	}
	if f.Properties.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	if _, ok := FindByID(*data, f.Properties.ID); ok {
		return ErrConflict
	}

	data.Features = append(data.Features, f)
	return nil
}

// Replace ghi đè feature có properties.id bằng bản ghi mới, giữ nguyên vị trí.
// ID trong bản ghi mới được tin tưởng như caller gửi lên, không ép phải trùng
// với id tra cứu. Trả về ErrNotFound nếu id không tồn tại.
func Replace(data *models.FeatureCollection, id string, f models.Feature) error {
	for i := range data.Features {
		if data.Features[i].Properties.ID == id {
			data.Features[i] = f
			return nil
		}
	}
	return ErrNotFound
}

// Delete xóa feature theo id và trả về bản ghi đã xóa.
func Delete(data *models.FeatureCollection, id string) (models.Feature, error) {
	for i := range data.Features {
		if data.Features[i].Properties.ID == id {
			removed := data.Features[i]
			data.Features = append(data.Features[:i], data.Features[i+1:]...)
			return removed, nil
		}
	}
	return models.Feature{}, ErrNotFound
}

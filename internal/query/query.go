// internal/query/query.go
package query

import (
	"errors"
	"strings"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
)

// ErrEmptyQuery báo lỗi khi search được gọi với query rỗng.
var ErrEmptyQuery = errors.New("search query required")

// Tất cả hàm trong package này là hàm thuần trên một snapshot của collection,
// không bao giờ thay đổi input.

// FilterByType giữ lại các cơ sở có type khớp chính xác.
func FilterByType(data models.FeatureCollection, facilityType string) models.FeatureCollection {
	out := models.NewFeatureCollection()
	for _, f := range data.Features {
		if f.Properties.Type == facilityType {
			out.Features = append(out.Features, f)
		}
	}
	return out
}

// FilterByState giữ lại các cơ sở có address chứa chuỗi state (không phân biệt
// hoa thường). Address là text tự do nên đây chỉ là substring match, chấp nhận
// khớp nhầm, không phải tách state code thật.
func FilterByState(data models.FeatureCollection, state string) models.FeatureCollection {
	out := models.NewFeatureCollection()
	needle := strings.ToUpper(state)
	for _, f := range data.Features {
		if strings.Contains(strings.ToUpper(f.Properties.Address), needle) {
			out.Features = append(out.Features, f)
		}
	}
	return out
}

// Limit cắt collection còn n bản ghi đầu tiên, giữ nguyên thứ tự.
// n <= 0 nghĩa là không giới hạn.
func Limit(data models.FeatureCollection, n int) models.FeatureCollection {
	out := models.NewFeatureCollection()
	out.Features = append(out.Features, data.Features...)
	if n > 0 && len(out.Features) > n {
		out.Features = out.Features[:n]
	}
	return out
}

// Search tìm các cơ sở có name, id hoặc address chứa query (không phân biệt
// hoa thường). Query rỗng là lỗi của caller.
func Search(data models.FeatureCollection, query string) (models.FeatureCollection, error) {
	if query == "" {
		return models.FeatureCollection{}, ErrEmptyQuery
	}

	out := models.NewFeatureCollection()
	q := strings.ToLower(query)
	for _, f := range data.Features {
		p := f.Properties
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.ID), q) ||
			strings.Contains(strings.ToLower(p.Address), q) {
			out.Features = append(out.Features, f)
		}
	}
	return out, nil
}

// Stats là kết quả thống kê trên một snapshot của collection.
type Stats struct {
	TotalFacilities int       `json:"total_facilities"`
	TotalSqft       int       `json:"total_sqft"`
	TotalEmployees  int       `json:"total_employees"`
	AvgSqft         int       `json:"avg_sqft"`
	AvgEmployees    int       `json:"avg_employees"`
	ByType          *CountMap `json:"by_type"`
	ByState         *CountMap `json:"by_state"`
}

// StateOf rút ra "state" từ address: phần sau dấu phẩy cuối cùng, đã trim.
// Address có ít hơn 2 phần thì không đóng góp state nào (trả về chuỗi rỗng).
func StateOf(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-1])
}

// ComputeStats tính tổng, trung bình và phân bố theo type/state.
// Trung bình dùng chia nguyên (sqft và headcount báo cáo theo đơn vị chẵn),
// collection rỗng trả về 0 thay vì chia cho 0.
func ComputeStats(data models.FeatureCollection) Stats {
	stats := Stats{
		ByType:  NewCountMap(),
		ByState: NewCountMap(),
	}

	for _, f := range data.Features {
		p := f.Properties
		stats.TotalFacilities++
		stats.TotalSqft += p.SizeSqft
		stats.TotalEmployees += p.Employees

		ftype := p.Type
		if ftype == "" {
			ftype = "unknown"
		}
		stats.ByType.Inc(ftype)

		if state := StateOf(p.Address); state != "" {
			stats.ByState.Inc(state)
		}
	}

	if stats.TotalFacilities > 0 {
		stats.AvgSqft = stats.TotalSqft / stats.TotalFacilities
		stats.AvgEmployees = stats.TotalEmployees / stats.TotalFacilities
	}
	return stats
}

// internal/ticket/ledger.go
package ticket

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/store"
)

// ErrNotFound báo lỗi khi id ticket không tồn tại.
var ErrNotFound = errors.New("ticket not found")

// CreateRequest là dữ liệu tạo ticket mới.
type CreateRequest struct {
	FacilityID  string `json:"facility_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// UpdateRequest là dữ liệu cập nhật ticket. Trường rỗng nghĩa là "không đổi",
// giá trị rỗng tường minh sẽ bị bỏ qua.
type UpdateRequest struct {
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

// Stats là thống kê ticket theo từng chiều độc lập.
type Stats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
	ByCategory map[string]int `json:"by_category"`
}

// Ledger giữ danh sách ticket trong bộ nhớ với bộ đếm id tự tăng.
// State thuộc về instance và được inject vào handler, không phải state
// toàn cục của process; bộ đếm reset khi restart.
type Ledger struct {
	mu      sync.Mutex
	tickets []models.Ticket
	counter int
}

// NewLedger tạo một ledger rỗng, đánh số ticket từ TKT-0001.
func NewLedger() *Ledger {
	return &Ledger{counter: 1}
}

// Create tạo ticket mới với id tuần tự dạng TKT-0001.
// facility_id, title và category là bắt buộc; priority mặc định "medium",
// status luôn bắt đầu là "open".
func (l *Ledger) Create(req CreateRequest) (models.Ticket, error) {
	var missing []string
	if req.FacilityID == "" {
		missing = append(missing, "facility_id")
	}
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return models.Ticket{}, &store.ValidationError{Missing: missing}
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	t := models.Ticket{
		ID:          fmt.Sprintf("TKT-%04d", l.counter),
		FacilityID:  req.FacilityID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      "open",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	l.tickets = append(l.tickets, t)
	l.counter++
	return t, nil
}

// Get trả về ticket theo id.
func (l *Ledger) Get(id string) (models.Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, t := range l.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, ErrNotFound
}

// Update cập nhật status/priority/description của một ticket. Chỉ các trường
// khác rỗng trong request mới được áp dụng; giá trị status không bị kiểm tra
// tính hợp lệ của chuyển trạng thái. updated_at luôn được làm mới.
func (l *Ledger) Update(id string, req UpdateRequest) (models.Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.tickets {
		if l.tickets[i].ID != id {
			continue
		}
		if req.Status != "" {
			l.tickets[i].Status = req.Status
		}
		if req.Priority != "" {
			l.tickets[i].Priority = req.Priority
		}
		if req.Description != "" {
			l.tickets[i].Description = req.Description
		}
		l.tickets[i].UpdatedAt = time.Now()
		return l.tickets[i], nil
	}
	return models.Ticket{}, ErrNotFound
}

// List trả về các ticket khớp cả hai filter (filter rỗng nghĩa là bỏ qua).
// Kết quả là bản sao, không bao giờ nil.
func (l *Ledger) List(facilityID, status string) []models.Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := []models.Ticket{}
	for _, t := range l.tickets {
		if facilityID != "" && t.FacilityID != facilityID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Stats đếm ticket theo status, priority và category, mỗi chiều độc lập.
func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := Stats{
		Total:      len(l.tickets),
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
		ByCategory: make(map[string]int),
	}
	for _, t := range l.tickets {
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
		stats.ByCategory[t.Category]++
	}
	return stats
}

// internal/models/ticket.go
package models

import "time"

// Ticket là một yêu cầu bảo trì gắn với một cơ sở.
// FacilityID không bắt buộc phải trỏ tới một cơ sở đang tồn tại.
type Ticket struct {
	ID          string    `json:"id"`          // e.g., "TKT-0001"
	FacilityID  string    `json:"facility_id"` // e.g., "FAC-001"
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"` // e.g., "hvac", "electrical", "plumbing"
	Priority    string    `json:"priority"` // e.g., "low", "medium", "high"
	Status      string    `json:"status"`   // e.g., "open", "in_progress", "closed"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

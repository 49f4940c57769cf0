// internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event là một sự kiện thay đổi dữ liệu được đẩy tới các client.
type Event struct {
	Event string      `json:"event"` // e.g., "facility.created", "ticket.updated"
	ID    string      `json:"id"`
	Data  interface{} `json:"data,omitempty"`
}

// Hub quản lý tất cả các client WebSocket đang theo dõi sự kiện.
type Hub struct {
	// clients lưu các kết nối đang mở.
	clients map[*websocket.Conn]bool
	// mu bảo vệ map clients, đồng thời tuần tự hóa các lần Broadcast:
	// gorilla/websocket chỉ cho phép một writer trên mỗi kết nối.
	mu sync.Mutex
}

// NewHub tạo một Hub mới.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// Register thêm một client mới vào Hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	log.Printf("WebSocket client registered: %s", conn.RemoteAddr())
}

// Unregister xóa một client khỏi Hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		log.Printf("WebSocket client unregistered: %s", conn.RemoteAddr())
	}
}

// Broadcast gửi một sự kiện tới tất cả client. Lỗi gửi trên một kết nối
// không chặn các kết nối còn lại. Giữ lock ghi trong suốt vòng gửi để hai
// Broadcast đồng thời không cùng ghi lên một kết nối.
func (h *Hub) Broadcast(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode event %q: %v", event.Event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Failed to send event to %s: %v", conn.RemoteAddr(), err)
		}
	}
}

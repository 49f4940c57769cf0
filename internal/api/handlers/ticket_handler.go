// internal/api/handlers/ticket_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/socket"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/store"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/ticket"
)

type TicketHandler struct {
	Ledger *ticket.Ledger
	Hub    *socket.Hub
}

// GetTickets trả về danh sách ticket, filter tùy chọn theo facility_id và status.
func (h *TicketHandler) GetTickets(c *gin.Context) {
	result := h.Ledger.List(c.Query("facility_id"), c.Query("status"))
	c.JSON(http.StatusOK, gin.H{
		"count":   len(result),
		"tickets": result,
	})
}

// CreateTicket tạo một ticket bảo trì mới.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req ticket.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Ledger.Create(req)
	if err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
		return
	}

	h.Hub.Broadcast(socket.Event{Event: "ticket.created", ID: created.ID})
	c.JSON(http.StatusCreated, gin.H{
		"message": "Ticket created successfully",
		"ticket":  created,
	})
}

// GetTicket trả về một ticket theo id.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	t, err := h.Ledger.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTicket cập nhật status/priority/description của một ticket.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req ticket.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Ledger.Update(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	h.Hub.Broadcast(socket.Event{Event: "ticket.updated", ID: updated.ID})
	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket updated",
		"ticket":  updated,
	})
}

// GetTicketStats trả về thống kê ticket theo status/priority/category.
func (h *TicketHandler) GetTicketStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.Stats())
}

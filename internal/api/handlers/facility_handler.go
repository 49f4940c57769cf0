// internal/api/handlers/facility_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/query"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/socket"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/store"
)

type FacilityHandler struct {
	Store store.DocumentStore
	Hub   *socket.Hub
}

// GetAllFacilities trả về danh sách cơ sở, có filter tùy chọn theo
// type, state và limit qua query string.
func (h *FacilityHandler) GetAllFacilities(c *gin.Context) {
	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	if facilityType := c.Query("type"); facilityType != "" {
		data = query.FilterByType(data, facilityType)
	}
	if state := c.Query("state"); state != "" {
		data = query.FilterByState(data, state)
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		// limit không parse được thì bỏ qua, không trả lỗi
		if limit, err := strconv.Atoi(limitStr); err == nil {
			data = query.Limit(data, limit)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"type":     "FeatureCollection",
		"count":    len(data.Features),
		"features": data.Features,
	})
}

// GetFacilityByID trả về một cơ sở theo properties.id.
func (h *FacilityHandler) GetFacilityByID(c *gin.Context) {
	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	feature, ok := store.FindByID(data, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
		return
	}
	c.JSON(http.StatusOK, feature)
}

// GetStats trả về thống kê trên toàn bộ collection.
func (h *FacilityHandler) GetStats(c *gin.Context) {
	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}
	c.JSON(http.StatusOK, query.ComputeStats(data))
}

// SearchFacilities tìm kiếm theo name, id hoặc address.
// Query được lowercase cả khi match lẫn khi echo lại trong response.
func (h *FacilityHandler) SearchFacilities(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))

	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	results, err := query.Search(data, q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":     "FeatureCollection",
		"query":    q,
		"count":    len(results.Features),
		"features": results.Features,
	})
}

// CreateFacility thêm một cơ sở mới và ghi lại toàn bộ document.
func (h *FacilityHandler) CreateFacility(c *gin.Context) {
	var feature models.Feature
	if err := c.ShouldBindJSON(&feature); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	if err := store.Insert(&data, feature); err != nil {
		var vErr *store.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		case errors.Is(err, store.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Facility ID already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create facility"})
		}
		return
	}

	if err := h.Store.Save(c.Request.Context(), data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save facilities"})
		return
	}

	h.Hub.Broadcast(socket.Event{Event: "facility.created", ID: feature.Properties.ID})
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Facility created successfully",
		"facility": feature,
	})
}

// UpdateFacility thay thế toàn bộ bản ghi theo id trên path.
// ID trong body được giữ nguyên như caller gửi, không ép trùng path.
func (h *FacilityHandler) UpdateFacility(c *gin.Context) {
	facilityID := c.Param("id")

	var feature models.Feature
	if err := c.ShouldBindJSON(&feature); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	if err := store.Replace(&data, facilityID, feature); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
		return
	}

	if err := h.Store.Save(c.Request.Context(), data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save facilities"})
		return
	}

	h.Hub.Broadcast(socket.Event{Event: "facility.updated", ID: facilityID})
	c.JSON(http.StatusOK, gin.H{
		"message":  "Facility updated successfully",
		"facility": feature,
	})
}

// DeleteFacility xóa một cơ sở theo id và trả về bản ghi đã xóa.
func (h *FacilityHandler) DeleteFacility(c *gin.Context) {
	facilityID := c.Param("id")

	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	removed, err := store.Delete(&data, facilityID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
		return
	}

	if err := h.Store.Save(c.Request.Context(), data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save facilities"})
		return
	}

	h.Hub.Broadcast(socket.Event{Event: "facility.deleted", ID: facilityID})
	c.JSON(http.StatusOK, gin.H{
		"message":  "Facility deleted successfully",
		"facility": removed,
	})
}

// GetContacts trả về danh bạ liên hệ của một cơ sở.
func (h *FacilityHandler) GetContacts(c *gin.Context) {
	facilityID := c.Param("id")

	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	feature, ok := store.FindByID(data, facilityID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
		return
	}

	contacts := feature.Properties.Contacts
	if contacts == nil {
		contacts = map[string]models.Contact{}
	}
	c.JSON(http.StatusOK, gin.H{
		"facility_id": facilityID,
		"contacts":    contacts,
	})
}

// GetEmergencyProcedures trả về quy trình khẩn cấp của một cơ sở.
func (h *FacilityHandler) GetEmergencyProcedures(c *gin.Context) {
	facilityID := c.Param("id")

	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	feature, ok := store.FindByID(data, facilityID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
		return
	}

	procedures := feature.Properties.EmergencyProcedures
	if procedures == nil {
		procedures = map[string][]string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"facility_id":          facilityID,
		"emergency_procedures": procedures,
	})
}

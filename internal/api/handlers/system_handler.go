// internal/api/handlers/system_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index là health check kiêm mô tả API ở route gốc.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "DHL FM Mapping Tool API",
		"version": "1.0.0",
		"status":  "healthy",
		"endpoints": gin.H{
			"GET /api/facilities":        "List facilities (filters: type, state, limit)",
			"POST /api/facilities":       "Create facility",
			"GET /api/facilities/:id":    "Get single facility",
			"PUT /api/facilities/:id":    "Update facility",
			"DELETE /api/facilities/:id": "Delete facility",
			"GET /api/facilities/stats":  "Facility statistics",
			"GET /api/facilities/search": "Search by name, id or address (?q=)",
			"GET /api/contacts/:id":      "Facility contacts",
			"GET /api/emergency/:id":     "Emergency procedures",
			"POST /api/upload/csv":       "Convert uploaded CSV to GeoJSON",
			"GET /api/template":          "CSV template description",
			"GET /api/export/csv":        "Export facilities as CSV",
			"GET /api/export/contacts":   "Export contacts as CSV",
			"GET /api/tickets":           "List tickets (filters: facility_id, status)",
			"POST /api/tickets":          "Create maintenance ticket",
			"GET /api/tickets/:id":       "Get single ticket",
			"PUT /api/tickets/:id":       "Update ticket",
			"GET /api/tickets/stats":     "Ticket statistics",
			"GET /ws":                    "WebSocket mutation events",
		},
	})
}

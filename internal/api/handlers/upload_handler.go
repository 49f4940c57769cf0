// internal/api/handlers/upload_handler.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/csvconv"
	"github.com/rhulucas/dhl-fm-mapping-tool/internal/store"
)

type UploadHandler struct {
	Store store.DocumentStore
}

// UploadCSV nhận file CSV multipart và chuyển thành GeoJSON.
// Kết quả chỉ được trả về cho caller, không ghi vào store; import lỗi ở bất kỳ
// dòng nào sẽ hủy toàn bộ, không có import một phần.
func (h *UploadHandler) UploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}
	if !strings.HasSuffix(fileHeader.Filename, ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only CSV files are supported"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	rows, err := csvconv.ParseRows(string(content))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	geojson, err := csvconv.RowsToFacilities(rows, csvconv.UploadDefaults)
	if err != nil {
		var pErr *csvconv.ParseError
		if errors.As(err, &pErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": pErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert CSV"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Successfully imported %d facilities", len(geojson.Features)),
		"import_id": fmt.Sprintf("IMP-%s", uuid.New().String()[:8]),
		"count":     len(geojson.Features),
		"data":      geojson,
	})
}

// GetTemplate mô tả định dạng CSV mà endpoint upload chấp nhận.
func (h *UploadHandler) GetTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"columns": []gin.H{
			{"name": "id", "required": true, "example": "FAC-001"},
			{"name": "name", "required": true, "example": "Main Warehouse"},
			{"name": "type", "required": true, "example": "warehouse"},
			{"name": "address", "required": true, "example": "123 Main St Chicago IL"},
			{"name": "latitude", "required": true, "example": "41.8781"},
			{"name": "longitude", "required": true, "example": "-87.6298"},
			{"name": "size_sqft", "required": false, "example": "50000"},
			{"name": "employees", "required": false, "example": "120"},
			{"name": "manager_name", "required": false, "example": "John Smith"},
			{"name": "manager_email", "required": false, "example": "j.smith@company.com"},
			{"name": "manager_phone", "required": false, "example": "312-555-1234"},
		},
		"sample_csv": "id,name,type,address,latitude,longitude,size_sqft,employees,manager_name,manager_email,manager_phone\n" +
			"FAC-001,Main Warehouse,warehouse,123 Main St Chicago IL,41.8781,-87.6298,50000,120,John Smith,j.smith@company.com,312-555-1234",
	})
}

// ExportCSV xuất toàn bộ cơ sở thành CSV 14 cột.
func (h *UploadHandler) ExportCSV(c *gin.Context) {
	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	content := csvconv.WriteCSV(csvconv.ExportHeader, csvconv.FacilitiesToRows(data))
	c.Header("Content-Disposition", "attachment; filename=facilities_export.csv")
	c.Data(http.StatusOK, "text/csv", []byte(content))
}

// ExportContacts xuất danh bạ liên hệ, một dòng cho mỗi cặp (cơ sở, vai trò).
func (h *UploadHandler) ExportContacts(c *gin.Context) {
	data, err := h.Store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}

	content := csvconv.WriteCSV(csvconv.ContactsHeader, csvconv.ContactsToRows(data))
	c.Header("Content-Disposition", "attachment; filename=contacts_export.csv")
	c.Data(http.StatusOK, "text/csv", []byte(content))
}

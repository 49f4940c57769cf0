// internal/models/facility.go
package models

// Contact là thông tin liên hệ của một vai trò tại cơ sở.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Geometry theo chuẩn GeoJSON, luôn là "Point" với [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// FacilityProperties chứa toàn bộ metadata vận hành của một cơ sở.
type FacilityProperties struct {
	ID                  string              `json:"id"`   // User-friendly unique ID, e.g., "FAC-001"
	Name                string              `json:"name"` // e.g., "Columbus Distribution Center"
	Type                string              `json:"type"` // e.g., "warehouse", "hub", "distribution"
	Address             string              `json:"address"`
	SizeSqft            int                 `json:"size_sqft"`
	Employees           int                 `json:"employees"`
	Contacts            map[string]Contact  `json:"contacts,omitempty"` // key là vai trò, e.g., "facility_manager"
	Equipment           []string            `json:"equipment,omitempty"`
	EmergencyProcedures map[string][]string `json:"emergency_procedures,omitempty"` // key là loại sự cố, e.g., "fire_alarm"
}

// Feature là một cơ sở theo định dạng GeoJSON Feature.
type Feature struct {
	Type       string             `json:"type"`
	Geometry   Geometry           `json:"geometry"`
	Properties FacilityProperties `json:"properties"`
}

// FeatureCollection là toàn bộ collection, cũng chính là định dạng lưu trên đĩa.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeature tạo một Feature với geometry Point chuẩn.
func NewFeature(lng, lat float64, props FacilityProperties) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{lng, lat},
		},
		Properties: props,
	}
}

// NewFeatureCollection tạo một collection rỗng (không bao giờ nil Features).
func NewFeatureCollection() FeatureCollection {
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: []Feature{},
	}
}

// internal/models/validate.go
package models

import "fmt"

// requiredContacts là các vai trò liên hệ mà một bản ghi đầy đủ phải có.
var requiredContacts = []string{"facility_manager", "it_support", "maintenance", "security"}

// ValidateFeature kiểm tra tính đầy đủ của một bản ghi cơ sở và trả về
// danh sách lỗi (rỗng nếu hợp lệ). Dùng cho import CLI và tooling, không
// dùng cho validation khi tạo qua API (API chỉ yêu cầu id/name/type/address).
func ValidateFeature(f Feature) []string {
	var errs []string

	p := f.Properties
	if p.ID == "" {
		errs = append(errs, "Missing required field: id")
	}
	if p.Name == "" {
		errs = append(errs, "Missing required field: name")
	}
	if p.Type == "" {
		errs = append(errs, "Missing required field: type")
	}
	if p.Address == "" {
		errs = append(errs, "Missing required field: address")
	}
	if p.SizeSqft < 0 {
		errs = append(errs, "size_sqft must not be negative")
	}
	if p.Employees < 0 {
		errs = append(errs, "employees must not be negative")
	}

	for _, role := range requiredContacts {
		contact, ok := p.Contacts[role]
		if !ok {
			errs = append(errs, fmt.Sprintf("Missing contact: %s", role))
			continue
		}
		if contact.Name == "" || contact.Email == "" || contact.Phone == "" {
			errs = append(errs, fmt.Sprintf("Incomplete contact info for: %s", role))
		}
	}

	if f.Geometry.Type != "Point" {
		errs = append(errs, "Invalid geometry type (expected Point)")
	}
	if len(f.Geometry.Coordinates) != 2 {
		errs = append(errs, "Invalid coordinates")
	}

	return errs
}

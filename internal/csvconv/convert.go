// internal/csvconv/convert.go
package csvconv

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
)

// ParseError báo lỗi một dòng import không hợp lệ. Toàn bộ lần import bị hủy,
// không có import một phần.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

// Row là một dòng dữ liệu đã gắn với tên cột từ header.
type Row map[string]string

// Defaults là bộ giá trị mặc định cho các cột không bắt buộc. Hai entry point
// import (upload API và CLI) dùng hai bộ khác nhau, chưa thống nhất.
type Defaults struct {
	ManagerName      string
	PowerOutageSteps []string
	FireAlarmSteps   []string
}

// UploadDefaults dùng cho endpoint upload CSV.
var UploadDefaults = Defaults{
	ManagerName:      "Manager",
	PowerOutageSteps: []string{"Check main breaker", "Contact facility manager", "Activate backup power"},
	FireAlarmSteps:   []string{"Evacuate immediately", "Call 911", "Meet at assembly point"},
}

// FileImportDefaults dùng cho CLI import từ file.
var FileImportDefaults = Defaults{
	ManagerName:      "TBD",
	PowerOutageSteps: []string{"Check main breaker panel", "Contact facility manager", "Activate backup generators if available"},
	FireAlarmSteps:   []string{"Evacuate immediately", "Call 911", "Meet at designated assembly point"},
}

// baselineEquipment được gán cho mọi cơ sở import từ CSV.
var baselineEquipment = []string{"HVAC System", "Fire Suppression System", "Security System"}

// ParseRows đọc text CSV thô (dòng đầu là header) thành các Row.
func ParseRows(raw string) ([]Row, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid CSV: %v", err)}
	}
	if len(records) == 0 {
		return nil, &ParseError{Reason: "empty CSV: header row required"}
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// RowsToFacilities chuyển các dòng CSV thành một FeatureCollection.
// Bắt buộc: id, name, address, latitude, longitude. Các cột còn lại nhận
// giá trị mặc định. Bất kỳ dòng nào lỗi sẽ hủy toàn bộ import.
func RowsToFacilities(rows []Row, defaults Defaults) (models.FeatureCollection, error) {
	data := models.NewFeatureCollection()

	for i, row := range rows {
		rowNum := i + 1

		for _, col := range []string{"id", "name", "address", "latitude", "longitude"} {
			if row[col] == "" {
				return models.FeatureCollection{}, &ParseError{
					Reason: fmt.Sprintf("row %d: missing required column %q", rowNum, col),
				}
			}
		}

		lat, err := strconv.ParseFloat(row["latitude"], 64)
		if err != nil {
			return models.FeatureCollection{}, &ParseError{
				Reason: fmt.Sprintf("row %d: invalid latitude %q", rowNum, row["latitude"]),
			}
		}
		lng, err := strconv.ParseFloat(row["longitude"], 64)
		if err != nil {
			return models.FeatureCollection{}, &ParseError{
				Reason: fmt.Sprintf("row %d: invalid longitude %q", rowNum, row["longitude"]),
			}
		}

		sizeSqft, err := intColumn(row, "size_sqft", 10000)
		if err != nil {
			return models.FeatureCollection{}, &ParseError{
				Reason: fmt.Sprintf("row %d: invalid size_sqft %q", rowNum, row["size_sqft"]),
			}
		}
		employees, err := intColumn(row, "employees", 50)
		if err != nil {
			return models.FeatureCollection{}, &ParseError{
				Reason: fmt.Sprintf("row %d: invalid employees %q", rowNum, row["employees"]),
			}
		}

		props := models.FacilityProperties{
			ID:        row["id"],
			Name:      row["name"],
			Type:      stringColumn(row, "type", "warehouse"),
			Address:   row["address"],
			SizeSqft:  sizeSqft,
			Employees: employees,
			Contacts: map[string]models.Contact{
				"facility_manager": {
					Name:  stringColumn(row, "manager_name", defaults.ManagerName),
					Email: stringColumn(row, "manager_email", "manager@company.com"),
					Phone: stringColumn(row, "manager_phone", "555-0000"),
				},
				"it_support": {
					Name:  stringColumn(row, "it_name", "IT Support"),
					Email: stringColumn(row, "it_email", "it@company.com"),
					Phone: stringColumn(row, "it_phone", "555-0001"),
				},
				"maintenance": {
					Name:  "Maintenance Team",
					Email: "maintenance@company.com",
					Phone: "555-0002",
				},
				"security": {
					Name:  "Security Team",
					Email: "security@company.com",
					Phone: "555-0003",
				},
			},
			Equipment: append([]string{}, baselineEquipment...),
			EmergencyProcedures: map[string][]string{
				"power_outage": append([]string{}, defaults.PowerOutageSteps...),
				"fire_alarm":   append([]string{}, defaults.FireAlarmSteps...),
			},
		}

		data.Features = append(data.Features, models.NewFeature(lng, lat, props))
	}

	return data, nil
}

func stringColumn(row Row, col, fallback string) string {
	if v := row[col]; v != "" {
		return v
	}
	return fallback
}

func intColumn(row Row, col string, fallback int) (int, error) {
	v := row[col]
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

// --- Export ---

// ExportHeader là header cố định 14 cột của export cơ sở.
var ExportHeader = []string{
	"id", "name", "type", "address", "latitude", "longitude", "size_sqft", "employees",
	"manager_name", "manager_email", "manager_phone", "it_name", "it_email", "it_phone",
}

// ContactsHeader là header của export danh bạ liên hệ.
var ContactsHeader = []string{"facility_id", "facility_name", "role", "name", "email", "phone"}

// contactRoleOrder là thứ tự xuất các vai trò đã biết; vai trò lạ xếp sau theo alphabet.
var contactRoleOrder = []string{"facility_manager", "it_support", "maintenance", "security"}

// FacilitiesToRows trải phẳng collection thành các dòng 14 cột (không gồm header).
// Dấu phẩy trong name/address bị thay bằng chấm phẩy để giữ delimiter — không có
// cơ chế quote/escape, mất thông tin nhưng deterministic.
func FacilitiesToRows(data models.FeatureCollection) [][]string {
	rows := make([][]string, 0, len(data.Features))
	for _, f := range data.Features {
		p := f.Properties
		lat, lng := "", ""
		if len(f.Geometry.Coordinates) == 2 {
			lng = strconv.FormatFloat(f.Geometry.Coordinates[0], 'f', -1, 64)
			lat = strconv.FormatFloat(f.Geometry.Coordinates[1], 'f', -1, 64)
		}
		manager := p.Contacts["facility_manager"]
		it := p.Contacts["it_support"]

		rows = append(rows, []string{
			p.ID,
			sanitize(p.Name),
			p.Type,
			sanitize(p.Address),
			lat,
			lng,
			strconv.Itoa(p.SizeSqft),
			strconv.Itoa(p.Employees),
			manager.Name,
			manager.Email,
			manager.Phone,
			it.Name,
			it.Email,
			it.Phone,
		})
	}
	return rows
}

// ContactsToRows tạo một dòng cho mỗi cặp (cơ sở, vai trò liên hệ).
// Tên vai trò được title-case và thay gạch dưới bằng khoảng trắng.
func ContactsToRows(data models.FeatureCollection) [][]string {
	// cases.Caser là transformer có state, không dùng chung giữa các goroutine
	// nên phải tạo mới cho mỗi lần export.
	roleTitle := cases.Title(language.English)

	var rows [][]string
	for _, f := range data.Features {
		p := f.Properties
		for _, role := range orderedRoles(p.Contacts) {
			contact := p.Contacts[role]
			rows = append(rows, []string{
				p.ID,
				sanitize(p.Name),
				roleTitle.String(strings.ReplaceAll(role, "_", " ")),
				contact.Name,
				contact.Email,
				contact.Phone,
			})
		}
	}
	return rows
}

// WriteCSV ghép header và các dòng thành text CSV thuần, không quote.
func WriteCSV(header []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(header, ","))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, ",", ";")
}

func orderedRoles(contacts map[string]models.Contact) []string {
	roles := make([]string, 0, len(contacts))
	seen := make(map[string]bool, len(contacts))
	for _, role := range contactRoleOrder {
		if _, ok := contacts[role]; ok {
			roles = append(roles, role)
			seen[role] = true
		}
	}
	var extra []string
	for role := range contacts {
		if !seen[role] {
			extra = append(extra, role)
		}
	}
	// Map iteration không có thứ tự, sort để output ổn định.
	sort.Strings(extra)
	return append(roles, extra...)
}

package csvconv

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
)

const sampleCSV = `id,name,type,address,latitude,longitude,size_sqft,employees,manager_name,manager_email,manager_phone
DC-001,Columbus DC,distribution,"100 Commerce Way, Columbus, OH",39.9612,-82.9988,250000,120,Jane Smith,jane@dhl.com,555-1234
WH-002,Chicago Warehouse,,55 Freight Road Chicago IL,41.8781,-87.6298,,,,,
`

func TestParseRowsTrimsHeaderAndCells(t *testing.T) {
	rows, err := ParseRows(" id , name \nDC-001 , Columbus DC \n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "DC-001", rows[0]["id"])
	assert.Equal(t, "Columbus DC", rows[0]["name"])
}

func TestParseRowsEmptyInput(t *testing.T) {
	_, err := ParseRows("")
	var pErr *ParseError
	assert.ErrorAs(t, err, &pErr)
}

func TestRowsToFacilitiesDefaults(t *testing.T) {
	rows, err := ParseRows(sampleCSV)
	require.NoError(t, err)

	data, err := RowsToFacilities(rows, UploadDefaults)
	require.NoError(t, err)
	require.Len(t, data.Features, 2)

	first := data.Features[0].Properties
	assert.Equal(t, "DC-001", first.ID)
	assert.Equal(t, "distribution", first.Type)
	assert.Equal(t, 250000, first.SizeSqft)
	assert.Equal(t, "Jane Smith", first.Contacts["facility_manager"].Name)

	// Các cột để trống nhận giá trị mặc định
	second := data.Features[1].Properties
	assert.Equal(t, "warehouse", second.Type)
	assert.Equal(t, 10000, second.SizeSqft)
	assert.Equal(t, 50, second.Employees)
	assert.Equal(t, "Manager", second.Contacts["facility_manager"].Name)
	assert.Equal(t, "manager@company.com", second.Contacts["facility_manager"].Email)
	assert.Equal(t, "IT Support", second.Contacts["it_support"].Name)
	assert.Equal(t, "Maintenance Team", second.Contacts["maintenance"].Name)
	assert.Equal(t, "Security Team", second.Contacts["security"].Name)

	assert.Equal(t, []string{"HVAC System", "Fire Suppression System", "Security System"}, second.Equipment)
	assert.Equal(t, []string{"Check main breaker", "Contact facility manager", "Activate backup power"},
		second.EmergencyProcedures["power_outage"])
	assert.Equal(t, []string{"Evacuate immediately", "Call 911", "Meet at assembly point"},
		second.EmergencyProcedures["fire_alarm"])

	// geometry: [longitude, latitude]
	geo := data.Features[0].Geometry
	assert.Equal(t, "Point", geo.Type)
	assert.Equal(t, []float64{-82.9988, 39.9612}, geo.Coordinates)
}

func TestRowsToFacilitiesEntryPointDefaultsDiffer(t *testing.T) {
	rows, err := ParseRows(sampleCSV)
	require.NoError(t, err)

	data, err := RowsToFacilities(rows, FileImportDefaults)
	require.NoError(t, err)

	second := data.Features[1].Properties
	assert.Equal(t, "TBD", second.Contacts["facility_manager"].Name)
	assert.Equal(t, []string{"Check main breaker panel", "Contact facility manager", "Activate backup generators if available"},
		second.EmergencyProcedures["power_outage"])
	assert.Equal(t, []string{"Evacuate immediately", "Call 911", "Meet at designated assembly point"},
		second.EmergencyProcedures["fire_alarm"])
}

func TestRowsToFacilitiesMissingRequiredColumn(t *testing.T) {
	rows, err := ParseRows("id,name,address,latitude,longitude\nDC-001,Columbus DC,100 Commerce Way,,-82.9988\n")
	require.NoError(t, err)

	// Một dòng lỗi hủy toàn bộ import, không có kết quả một phần
	data, err := RowsToFacilities(rows, UploadDefaults)
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Contains(t, pErr.Reason, "row 1")
	assert.Contains(t, pErr.Reason, "latitude")
	assert.Empty(t, data.Features)
}

func TestRowsToFacilitiesBadNumeric(t *testing.T) {
	rows, err := ParseRows("id,name,address,latitude,longitude,size_sqft\nDC-001,Columbus DC,100 Commerce Way,39.9,-82.9,huge\n")
	require.NoError(t, err)

	_, err = RowsToFacilities(rows, UploadDefaults)
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Contains(t, pErr.Reason, "size_sqft")
}

func TestRowsToFacilitiesBadLatitude(t *testing.T) {
	rows, err := ParseRows("id,name,address,latitude,longitude\nDC-001,Columbus DC,100 Commerce Way,north,-82.9\n")
	require.NoError(t, err)

	_, err = RowsToFacilities(rows, UploadDefaults)
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Contains(t, pErr.Reason, "invalid latitude")
}

func exportFixture() models.FeatureCollection {
	data := models.NewFeatureCollection()
	data.Features = append(data.Features, models.NewFeature(-82.9988, 39.9612, models.FacilityProperties{
		ID:        "DC-001",
		Name:      "Columbus DC, Main",
		Type:      "distribution",
		Address:   "100 Commerce Way, Columbus, OH",
		SizeSqft:  250000,
		Employees: 120,
		Contacts: map[string]models.Contact{
			"facility_manager": {Name: "Jane Smith", Email: "jane@dhl.com", Phone: "555-1234"},
			"it_support":       {Name: "Bob Lee", Email: "bob@dhl.com", Phone: "555-5678"},
		},
	}))
	return data
}

func TestFacilitiesToRowsSanitizesCommas(t *testing.T) {
	rows := FacilitiesToRows(exportFixture())
	require.Len(t, rows, 1)
	row := rows[0]
	require.Len(t, row, len(ExportHeader))

	assert.Equal(t, "Columbus DC; Main", row[1])
	assert.Equal(t, "100 Commerce Way; Columbus; OH", row[3])
	// latitude trước longitude trong cột, ngược với geometry
	assert.Equal(t, "39.9612", row[4])
	assert.Equal(t, "-82.9988", row[5])
	assert.Equal(t, "250000", row[6])
	assert.Equal(t, "Jane Smith", row[8])
	assert.Equal(t, "Bob Lee", row[11])
}

func TestFacilitiesToRowsMissingContacts(t *testing.T) {
	data := models.NewFeatureCollection()
	data.Features = append(data.Features, models.NewFeature(-82.9988, 39.9612, models.FacilityProperties{
		ID: "DC-001", Name: "X", Type: "hub", Address: "Y",
	}))

	rows := FacilitiesToRows(data)
	require.Len(t, rows, 1)
	// Contact không có thì cột để trống
	assert.Equal(t, "", rows[0][8])
	assert.Equal(t, "", rows[0][13])
}

func TestContactsToRowsRoleOrderAndTitleCase(t *testing.T) {
	data := exportFixture()
	data.Features[0].Properties.Contacts["zone_lead"] = models.Contact{Name: "Z", Email: "z@dhl.com", Phone: "555-0009"}
	data.Features[0].Properties.Contacts["after_hours"] = models.Contact{Name: "A", Email: "a@dhl.com", Phone: "555-0008"}

	rows := ContactsToRows(data)
	require.Len(t, rows, 4)

	var roles []string
	for _, row := range rows {
		require.Len(t, row, len(ContactsHeader))
		roles = append(roles, row[2])
	}
	// Vai trò chuẩn trước theo thứ tự cố định, vai trò lạ sau theo alphabet
	assert.Equal(t, []string{"Facility Manager", "It Support", "After Hours", "Zone Lead"}, roles)
	assert.Equal(t, "Columbus DC; Main", rows[0][1])
}

func TestContactsToRowsConcurrentExports(t *testing.T) {
	data := exportFixture()
	want := ContactsToRows(data)

	// Nhiều export chạy song song phải cho cùng một kết quả, không đụng
	// state dùng chung nào
	var wg sync.WaitGroup
	results := make([][][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ContactsToRows(data)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestWriteCSVNoQuoting(t *testing.T) {
	out := WriteCSV([]string{"a", "b"}, [][]string{{"1", "x;y"}, {"2", "z"}})
	assert.Equal(t, "a,b\n1,x;y\n2,z", out)
	// Không có quote hay CRLF
	assert.NotContains(t, out, `"`)
	assert.NotContains(t, out, "\r")
}

func TestWriteCSVExportRoundTrip(t *testing.T) {
	out := WriteCSV(ExportHeader, FacilitiesToRows(exportFixture()))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(ExportHeader, ","), lines[0])
	assert.Len(t, strings.Split(lines[1], ","), len(ExportHeader))
}

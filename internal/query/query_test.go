package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
)

func feature(id, name, ftype, address string, sqft, employees int) models.Feature {
	return models.NewFeature(-82.99, 39.96, models.FacilityProperties{
		ID:        id,
		Name:      name,
		Type:      ftype,
		Address:   address,
		SizeSqft:  sqft,
		Employees: employees,
	})
}

func sampleCollection() models.FeatureCollection {
	data := models.NewFeatureCollection()
	data.Features = append(data.Features,
		feature("DC-001", "Columbus Distribution Center", "distribution", "100 Commerce Way, Columbus, OH", 250000, 120),
		feature("WH-002", "Chicago Warehouse", "warehouse", "55 Freight Road, Chicago, IL", 90000, 40),
		feature("HB-003", "Cleveland Regional Hub", "hub", "7 Cargo Drive, Cleveland, OH", 180000, 85),
	)
	return data
}

func TestFilterByType(t *testing.T) {
	out := FilterByType(sampleCollection(), "warehouse")
	require.Len(t, out.Features, 1)
	assert.Equal(t, "WH-002", out.Features[0].Properties.ID)

	// Match phải chính xác, không phải substring
	assert.Empty(t, FilterByType(sampleCollection(), "ware").Features)
}

func TestFilterByStateSubstring(t *testing.T) {
	out := FilterByState(sampleCollection(), "OH")
	require.Len(t, out.Features, 2)
	assert.Equal(t, "DC-001", out.Features[0].Properties.ID)
	assert.Equal(t, "HB-003", out.Features[1].Properties.ID)

	// Không phân biệt hoa thường
	assert.Len(t, FilterByState(sampleCollection(), "oh").Features, 2)
}

func TestFilterByStateFalsePositive(t *testing.T) {
	data := models.NewFeatureCollection()
	data.Features = append(data.Features,
		feature("WH-009", "Oddball", "warehouse", "12 Oh-io Drive Springfield", 1000, 5))

	// Substring match cố ý chấp nhận khớp nhầm kiểu này.
	assert.Len(t, FilterByState(data, "OH").Features, 1)
}

func TestLimit(t *testing.T) {
	out := Limit(sampleCollection(), 2)
	require.Len(t, out.Features, 2)
	assert.Equal(t, "DC-001", out.Features[0].Properties.ID)
	assert.Equal(t, "WH-002", out.Features[1].Properties.ID)

	// 0 nghĩa là không giới hạn
	assert.Len(t, Limit(sampleCollection(), 0).Features, 3)
	// Limit lớn hơn collection không lỗi
	assert.Len(t, Limit(sampleCollection(), 10).Features, 3)
}

func TestSearchEmptyQuery(t *testing.T) {
	_, err := Search(sampleCollection(), "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearchMatchesNameIDAndAddress(t *testing.T) {
	// name
	out, err := Search(sampleCollection(), "warehouse")
	require.NoError(t, err)
	require.Len(t, out.Features, 1)
	assert.Equal(t, "WH-002", out.Features[0].Properties.ID)

	// id, không phân biệt hoa thường
	out, err = Search(sampleCollection(), "hb-003")
	require.NoError(t, err)
	require.Len(t, out.Features, 1)
	assert.Equal(t, "HB-003", out.Features[0].Properties.ID)

	// address
	out, err = Search(sampleCollection(), "freight")
	require.NoError(t, err)
	require.Len(t, out.Features, 1)
	assert.Equal(t, "WH-002", out.Features[0].Properties.ID)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, "OH", StateOf("100 Commerce Way, Columbus, OH"))
	assert.Equal(t, "IL", StateOf("55 Freight Road,Chicago,  IL  "))
	// Ít hơn 2 phần thì không có state
	assert.Equal(t, "", StateOf("123 Main St Chicago IL"))
	assert.Equal(t, "", StateOf(""))
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(models.NewFeatureCollection())
	assert.Equal(t, 0, stats.TotalFacilities)
	assert.Equal(t, 0, stats.TotalSqft)
	assert.Equal(t, 0, stats.TotalEmployees)
	assert.Equal(t, 0, stats.AvgSqft)
	assert.Equal(t, 0, stats.AvgEmployees)
	assert.Equal(t, 0, stats.ByType.Len())
	assert.Equal(t, 0, stats.ByState.Len())
}

func TestComputeStatsSingleFacility(t *testing.T) {
	data := models.NewFeatureCollection()
	data.Features = append(data.Features,
		feature("FAC-1", "Test", "warehouse", "1 Main St, Columbus, OH", 1000, 10))

	stats := ComputeStats(data)
	assert.Equal(t, 1, stats.TotalFacilities)
	assert.Equal(t, 1000, stats.TotalSqft)
	assert.Equal(t, 10, stats.TotalEmployees)
	assert.Equal(t, 1000, stats.AvgSqft)
	assert.Equal(t, 10, stats.AvgEmployees)
	assert.Equal(t, 1, stats.ByType.Get("warehouse"))
	assert.Equal(t, 1, stats.ByState.Get("OH"))
}

func TestComputeStatsAveragesTruncate(t *testing.T) {
	data := models.NewFeatureCollection()
	data.Features = append(data.Features,
		feature("A", "A", "hub", "1 X, Columbus, OH", 100, 3),
		feature("B", "B", "hub", "2 Y, Chicago, IL", 101, 4),
	)

	stats := ComputeStats(data)
	// Chia nguyên: (100+101)/2 = 100, (3+4)/2 = 3
	assert.Equal(t, 100, stats.AvgSqft)
	assert.Equal(t, 3, stats.AvgEmployees)
}

func TestComputeStatsNoStateBucketWithoutComma(t *testing.T) {
	data := models.NewFeatureCollection()
	data.Features = append(data.Features,
		feature("A", "A", "hub", "123 Main St Chicago IL", 100, 3))

	stats := ComputeStats(data)
	assert.Equal(t, 0, stats.ByState.Len())
}

func TestStatsJSONPreservesGroupOrder(t *testing.T) {
	data := models.NewFeatureCollection()
	data.Features = append(data.Features,
		feature("A", "A", "warehouse", "1 X, Columbus, OH", 100, 3),
		feature("B", "B", "distribution", "2 Y, Chicago, IL", 100, 3),
		feature("C", "C", "warehouse", "3 Z, Dayton, OH", 100, 3),
	)

	raw, err := json.Marshal(ComputeStats(data))
	require.NoError(t, err)
	// by_type giữ thứ tự xuất hiện lần đầu: warehouse trước distribution
	assert.Contains(t, string(raw), `"by_type":{"warehouse":2,"distribution":1}`)
	assert.Contains(t, string(raw), `"by_state":{"OH":2,"IL":1}`)
}

func TestCountMap(t *testing.T) {
	m := NewCountMap()
	m.Inc("b")
	m.Inc("a")
	m.Inc("b")

	assert.Equal(t, 2, m.Get("b"))
	assert.Equal(t, 1, m.Get("a"))
	assert.Equal(t, 0, m.Get("c"))
	assert.Equal(t, []string{"b", "a"}, m.Keys())

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"b":2,"a":1}`, string(raw))
}

func TestQueryFunctionsDoNotMutateInput(t *testing.T) {
	data := sampleCollection()
	FilterByType(data, "warehouse")
	FilterByState(data, "OH")
	Limit(data, 1)
	if _, err := Search(data, "columbus"); err != nil {
		t.Fatalf("search: %v", err)
	}
	ComputeStats(data)

	assert.Equal(t, sampleCollection(), data)
}

// internal/generator/generator.go
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/rhulucas/dhl-fm-mapping-tool/internal/models"
)

// city là một hub logistics lớn cùng hướng offset tọa độ an toàn
// (tránh rơi xuống hồ/biển khi dịch ngẫu nhiên).
type city struct {
	City      string
	State     string
	Lat       float64
	Lng       float64
	OffsetDir string // "any", "north", "south", "east", "west"
}

var cities = []city{
	{"Columbus", "OH", 39.9612, -82.9988, "any"},
	{"Cleveland", "OH", 41.4500, -81.7000, "south"},
	{"Cincinnati", "OH", 39.1031, -84.5120, "any"},
	{"Toledo", "OH", 41.6200, -83.5500, "south"},
	{"Indianapolis", "IN", 39.7684, -86.1581, "any"},
	{"Fort Wayne", "IN", 41.0793, -85.1394, "any"},
	{"Chicago", "IL", 41.8500, -87.7500, "west"},
	{"Joliet", "IL", 41.5250, -88.0817, "any"},
	{"Detroit", "MI", 42.3500, -83.1000, "north"},
	{"Grand Rapids", "MI", 42.9634, -85.6681, "any"},
	{"Louisville", "KY", 38.2527, -85.7585, "any"},
	{"Pittsburgh", "PA", 40.4406, -79.9959, "any"},
	{"Philadelphia", "PA", 39.9800, -75.1500, "west"},
	{"Nashville", "TN", 36.1627, -86.7816, "any"},
	{"Memphis", "TN", 35.1495, -90.0000, "east"},
	{"Atlanta", "GA", 33.7490, -84.3880, "any"},
	{"Dallas", "TX", 32.7767, -96.7970, "any"},
	{"Houston", "TX", 29.7800, -95.4000, "north"},
	{"Los Angeles", "CA", 34.0522, -118.2437, "east"},
	{"Sacramento", "CA", 38.5816, -121.4944, "any"},
	{"New York", "NY", 40.7500, -73.9500, "north"},
	{"Buffalo", "NY", 42.9000, -78.8000, "east"},
	{"Newark", "NJ", 40.7357, -74.1724, "west"},
	{"Orlando", "FL", 28.5383, -81.3792, "any"},
	{"Jacksonville", "FL", 30.3500, -81.7000, "west"},
}

// facilityTypes với trọng số: loại phổ biến có trọng số cao hơn.
var facilityTypes = []struct {
	Name   string
	Weight int
}{
	{"distribution", 25},
	{"hub", 20},
	{"warehouse", 20},
	{"fulfillment", 15},
	{"sorting", 8},
	{"crossdock", 5},
	{"cold_storage", 4},
	{"returns", 2},
	{"service", 1},
}

var streetTypes = []string{"Way", "Drive", "Road", "Boulevard", "Parkway", "Lane", "Avenue", "Street"}

var streetNames = []string{
	"Industrial", "Commerce", "Logistics", "Distribution", "Enterprise", "Gateway",
	"Corporate", "Business", "Trade", "Freight", "Cargo", "Supply Chain",
	"Innovation", "Technology", "Warehouse", "Central", "Metro", "Regional",
}

var firstNames = []string{
	"James", "Michael", "Robert", "David", "William", "Richard", "Joseph", "Thomas",
	"Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Steven", "Paul", "Andrew",
	"Jennifer", "Elizabeth", "Linda", "Barbara", "Susan", "Jessica", "Sarah", "Karen",
	"Nancy", "Lisa", "Emily", "Donna", "Michelle", "Carol", "Amanda", "Stephanie",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
	"Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Clark",
	"Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright", "Nguyen",
}

var equipmentByType = map[string][]string{
	"distribution": {"Automated Sorting System", "Conveyor Network", "Pallet Racking System", "Loading Dock Equipment", "Forklift Fleet", "Stretch Wrapper", "Label Printer Array"},
	"hub":          {"High-Speed Sorter", "Cross-Belt Conveyor", "Automated Guided Vehicles", "Package Scanner Array", "Dimensioning System", "Fleet Vehicles"},
	"warehouse":    {"Racking System", "Forklift Fleet", "Pallet Jacks", "Inventory Scanner Network", "Shelving Units", "Order Picking Carts", "Stretch Wrap Machine"},
	"fulfillment":  {"Pick-to-Light System", "Automated Storage/Retrieval", "Packing Stations", "Shipping Scale Array", "Robotic Arms", "Conveyor System"},
	"sorting":      {"High-Speed Sorter", "Conveyor Network", "Barcode Scanner Array", "Divert Systems", "Accumulation Tables", "Label Applicators"},
	"crossdock":    {"Dock Levelers", "Pallet Jacks", "Staging Area Equipment", "RF Scanner System", "Dock Lights", "Truck Restraints"},
	"cold_storage": {"Refrigeration Units", "Freezer Compressors", "Temperature Monitoring System", "Cold Room Doors", "Pallet Racking (Cold)", "Defrost System"},
	"returns":      {"Inspection Stations", "Grading Equipment", "Repackaging Line", "Quality Control Scanners", "Refurbishment Tools", "Inventory System"},
	"service":      {"Vehicle Service Bays", "Diagnostic Equipment", "Parts Storage", "Fuel Station", "Wash Bay", "Tire Service Equipment"},
}

var emergencyProcedureKeys = []string{
	"power_outage", "hvac_failure", "security_breach", "fire_alarm", "water_leak", "equipment_malfunction",
}

var emergencyProcedures = map[string][]string{
	"power_outage":          {"Activate emergency lighting", "Check main circuit breakers", "Start backup generator if available", "Contact utility company", "Notify facility manager", "Secure temperature-sensitive inventory"},
	"hvac_failure":          {"Check thermostat settings", "Inspect air filters", "Verify outdoor unit operation", "Contact HVAC service provider", "Open dock doors for ventilation if needed", "Monitor temperature readings"},
	"security_breach":       {"Activate alarm system", "Lock down all entry points", "Contact security team", "Review surveillance footage", "Notify local authorities if needed", "Document incident details"},
	"fire_alarm":            {"Evacuate building immediately", "Call 911", "Account for all personnel", "Meet at designated assembly point", "Do not re-enter until cleared by fire department", "Contact facility manager"},
	"water_leak":            {"Locate and close main water valve", "Move inventory away from affected area", "Contact maintenance team", "Document damage for insurance", "Set up water extraction equipment", "Check for electrical hazards"},
	"equipment_malfunction": {"Press emergency stop button", "Clear area around equipment", "Do not attempt repairs without training", "Contact maintenance department", "Document malfunction details", "Implement backup procedures"},
}

var sizeRanges = map[string][2]int{
	"distribution": {150000, 500000},
	"hub":          {100000, 350000},
	"warehouse":    {80000, 250000},
	"fulfillment":  {120000, 400000},
	"sorting":      {60000, 180000},
	"crossdock":    {40000, 120000},
	"cold_storage": {50000, 200000},
	"returns":      {30000, 100000},
	"service":      {20000, 80000},
}

var typePrefixes = map[string]string{
	"distribution": "DC", "hub": "HB", "warehouse": "WH", "fulfillment": "FC",
	"sorting": "SF", "crossdock": "CD", "cold_storage": "CS", "returns": "RC", "service": "SC",
}

var typeNames = map[string]string{
	"distribution": "Distribution Center", "hub": "Regional Hub", "warehouse": "Warehouse",
	"fulfillment": "Fulfillment Center", "sorting": "Sorting Facility", "crossdock": "Cross-Dock",
	"cold_storage": "Cold Storage", "returns": "Returns Center", "service": "Service Center",
}

var nameSuffixes = []string{"", " East", " West", " North", " South", " Central", " Metro", " Gateway"}

// Generator sinh dữ liệu cơ sở tổng hợp, deterministic theo seed.
type Generator struct {
	rng *rand.Rand
}

// New tạo một Generator với seed cho trước (cùng seed cho cùng output).
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate sinh count cơ sở phân bố ngẫu nhiên trên các hub logistics Mỹ.
func (g *Generator) Generate(count int) models.FeatureCollection {
	data := models.NewFeatureCollection()
	for i := 1; i <= count; i++ {
		cityInfo := cities[g.rng.Intn(len(cities))]
		data.Features = append(data.Features, g.facility(i, cityInfo))
	}
	return data
}

func (g *Generator) facility(index int, cityInfo city) models.Feature {
	facilityType := g.weightedType()

	sizeRange, ok := sizeRanges[facilityType]
	if !ok {
		sizeRange = [2]int{50000, 150000}
	}
	size := sizeRange[0] + g.rng.Intn(sizeRange[1]-sizeRange[0]+1)

	// Nhân sự tỉ lệ với diện tích
	employees := int(float64(size) * (0.0003 + g.rng.Float64()*0.0005))

	available := equipmentByType[facilityType]
	equipment := g.sample(available, 4)
	equipment = append(equipment, "HVAC System", "Fire Suppression System", "Security System")

	procedures := make(map[string][]string, 4)
	for _, key := range g.sample(emergencyProcedureKeys, 4) {
		procedures[key] = emergencyProcedures[key]
	}

	prefix, ok := typePrefixes[facilityType]
	if !ok {
		prefix = "FL"
	}
	facilityID := fmt.Sprintf("%s-%03d", prefix, index)

	typeName, ok := typeNames[facilityType]
	if !ok {
		typeName = "Facility"
	}
	name := strings.TrimSpace(cityInfo.City + " " + typeName + nameSuffixes[g.rng.Intn(len(nameSuffixes))])

	lng, lat := g.coordinates(cityInfo)
	return models.NewFeature(lng, lat, models.FacilityProperties{
		ID:        facilityID,
		Name:      name,
		Type:      facilityType,
		Address:   g.address(cityInfo),
		SizeSqft:  size,
		Employees: employees,
		Contacts: map[string]models.Contact{
			"facility_manager": g.contact(),
			"it_support":       g.contact(),
			"maintenance":      g.contact(),
			"security":         g.contact(),
		},
		Equipment:           equipment,
		EmergencyProcedures: procedures,
	})
}

func (g *Generator) weightedType() string {
	total := 0
	for _, t := range facilityTypes {
		total += t.Weight
	}
	r := g.rng.Intn(total)
	upto := 0
	for _, t := range facilityTypes {
		upto += t.Weight
		if r < upto {
			return t.Name
		}
	}
	return facilityTypes[len(facilityTypes)-1].Name
}

func (g *Generator) address(cityInfo city) string {
	number := 100 + g.rng.Intn(9900)
	return fmt.Sprintf("%d %s %s, %s, %s",
		number,
		streetNames[g.rng.Intn(len(streetNames))],
		streetTypes[g.rng.Intn(len(streetTypes))],
		cityInfo.City,
		cityInfo.State,
	)
}

func (g *Generator) contact() models.Contact {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]
	return models.Contact{
		Name:  first + " " + last,
		Email: fmt.Sprintf("%s.%s@dhl.com", strings.ToLower(first[:1]), strings.ToLower(last)),
		Phone: fmt.Sprintf("%d-555-%04d", 200+g.rng.Intn(800), 1000+g.rng.Intn(9000)),
	}
}

// coordinates dịch tọa độ thành phố theo hướng an toàn khoảng 2-3 dặm.
func (g *Generator) coordinates(cityInfo city) (lng, lat float64) {
	const offsetRange = 0.04

	var latOffset, lngOffset float64
	switch cityInfo.OffsetDir {
	case "north":
		latOffset = 0.01 + g.rng.Float64()*(offsetRange-0.01)
		lngOffset = -offsetRange/2 + g.rng.Float64()*offsetRange
	case "south":
		latOffset = -offsetRange + g.rng.Float64()*(offsetRange-0.01)
		lngOffset = -offsetRange/2 + g.rng.Float64()*offsetRange
	case "east":
		latOffset = -offsetRange/2 + g.rng.Float64()*offsetRange
		lngOffset = 0.01 + g.rng.Float64()*(offsetRange-0.01)
	case "west":
		latOffset = -offsetRange/2 + g.rng.Float64()*offsetRange
		lngOffset = -offsetRange + g.rng.Float64()*(offsetRange-0.01)
	default:
		latOffset = -offsetRange + g.rng.Float64()*2*offsetRange
		lngOffset = -offsetRange + g.rng.Float64()*2*offsetRange
	}

	return round4(cityInfo.Lng + lngOffset), round4(cityInfo.Lat + latOffset)
}

func (g *Generator) sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	idx := g.rng.Perm(len(items))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

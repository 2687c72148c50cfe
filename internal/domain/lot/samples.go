package lot

// Sample describes a lot inserted when the database starts empty.
type Sample struct {
	Name        string
	Capacity    int
	Rate        string
	Location    string
	Coordinates Coordinates
	SpecialInfo string
}

func SampleLots() []Sample {
	return []Sample{
		{Name: "Great Hall", Capacity: 31, Rate: "0.70/hr", Location: "Near Main Entrance", Coordinates: Coordinates{Latitude: 37.7749, Longitude: -122.4194}, SpecialInfo: "Visitor Parking"},
		{Name: "Faculty of Science", Capacity: 200, Rate: "1.00/hr", Location: "MLT and SLT Buildings", Coordinates: Coordinates{Latitude: 37.7755, Longitude: -122.4180}, SpecialInfo: "Students/Lecturers"},
		{Name: "Student Union Lot", Capacity: 40, Rate: "1.00/hr", Location: "Next to Student Center", Coordinates: Coordinates{Latitude: 37.7735, Longitude: -122.4210}, SpecialInfo: "Student Permits"},
		{Name: "Athletics Field Parking", Capacity: 150, Rate: "1.50/hr", Location: "Near Sports Complex", Coordinates: Coordinates{Latitude: 37.7760, Longitude: -122.4200}, SpecialInfo: "Event Parking"},
	}
}

// SeedOccupancy draws the demo occupancy for the lot with the given id from
// [10*id, 20*id], clamped to capacity. intn returns a value in [0, n).
func SeedOccupancy(id int64, capacity int, intn func(n int) int) int {
	low := int(10 * id)
	high := int(20 * id)
	occupied := low + intn(high-low+1)
	if occupied > capacity {
		return capacity
	}
	return occupied
}

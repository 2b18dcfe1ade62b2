package schema

// BeachAmenityTable represents the 'core.beachamenity' junction table
type BeachAmenityTable struct {
	Table     string
	BeachID   string
	AmenityID string
}

// BeachAmenity is the schema definition for core.beachamenity
var BeachAmenity = BeachAmenityTable{
	Table:     "core.beachamenity",
	BeachID:   "beachid",
	AmenityID: "amenityid",
}

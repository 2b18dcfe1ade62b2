package schema

// BeachTagTable represents the 'core.beachtag' junction table
type BeachTagTable struct {
	Table   string
	BeachID string
	TagID   string
}

// BeachTag is the schema definition for core.beachtag
var BeachTag = BeachTagTable{
	Table:   "core.beachtag",
	BeachID: "beachid",
	TagID:   "tagid",
}
